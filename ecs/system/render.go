package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/script"
)

var (
	playerColor      = color.RGBA{R: 0x40, G: 0xa0, B: 0xff, A: 0xff}
	playerShotColor  = color.RGBA{R: 0x90, G: 0xd0, B: 0xff, A: 0xc0}
	enemyColor       = color.RGBA{R: 0xe0, G: 0x50, B: 0x50, A: 0xff}
	enemyBulletColor = color.RGBA{R: 0xff, G: 0xd0, B: 0x60, A: 0xff}
	hudColor         = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	barBackColor     = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	barFillColor     = color.RGBA{R: 0xe0, G: 0x40, B: 0x80, A: 0xff}
)

// RenderSystem draws every positioned sprite as a colored disc plus the
// boss/score HUD. Placeholder art; the simulation never reads anything back
// from here.
type RenderSystem struct {
	face ebtext.Face
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(),
		func(e ecs.Entity, pos *component.Transform, sprite *component.Sprite) {
			radius := sprite.Width / 2
			if radius <= 0 {
				radius = 4
			}
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(radius), r.spriteColor(w, e), true)
		})

	r.drawHUD(w, screen)
}

func (r *RenderSystem) spriteColor(w *ecs.World, e ecs.Entity) color.Color {
	switch {
	case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
		return playerColor
	case ecs.Has(w, e, component.PlayerBulletComponent.Kind()):
		return playerShotColor
	case ecs.Has(w, e, component.EnemyBulletComponent.Kind()):
		return enemyBulletColor
	}
	return enemyColor
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image) {
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		lives := 0
		if hp, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
			lives = hp.HP
		}
		line := fmt.Sprintf("Lives %d", lives)
		if score, ok := ecs.Get(w, player, component.PlayerScoreComponent.Kind()); ok {
			line = fmt.Sprintf("Score %08d  Graze %d  Lives %d", score.Score, score.Graze, lives)
		}
		r.text(screen, line, 8, 8)
	}

	boss, ok := ecs.First(w, script.BossStateComponent.Kind())
	if !ok {
		return
	}
	state, _ := ecs.Get(w, boss, script.BossStateComponent.Kind())
	if state == nil || state.Defeated {
		return
	}

	if hp, ok := ecs.Get(w, boss, component.HealthComponent.Kind()); ok && hp.MaxHP > 0 {
		frac := common.Clamp(float64(hp.HP)/float64(hp.MaxHP), 0, 1)
		vector.DrawFilledRect(screen, 8, 28, common.ScreenWidth-16, 6, barBackColor, false)
		vector.DrawFilledRect(screen, 8, 28, float32(common.Lerp(0, common.ScreenWidth-16, frac)), 6, barFillColor, false)
	}

	// One marker per phase still in reserve after this one.
	for i := 0; i < len(state.Phases)-state.Current-1; i++ {
		vector.DrawFilledCircle(screen, float32(common.ScreenWidth-14-10*i), 22, 3, barFillColor, true)
	}

	label := fmt.Sprintf("Phase %d/%d  %4.1f", state.Current+1, len(state.Phases), state.PhaseTimer)
	if sc, ok := ecs.Get(w, boss, script.SpellCardComponent.Kind()); ok && sc.SpellName != "" {
		label = fmt.Sprintf("%s  %4.1f", sc.SpellName, state.PhaseTimer)
	}
	r.text(screen, label, 8, 38)
}

func (r *RenderSystem) text(screen *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudColor)
	ebtext.Draw(screen, s, r.face, op)
}
