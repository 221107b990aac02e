package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/ecs/system"
	"github.com/milk9111/danmaku/prefabs"
	"github.com/milk9111/danmaku/script"
	"github.com/milk9111/danmaku/stages"
)

const playerLives = 3

type Game struct {
	world  *ecs.World
	stage  *script.StageRunner
	render *system.RenderSystem

	player    ecs.Entity
	stageName string
	seed      int64
	debug     bool
	watcher   *prefabs.Watcher

	gameOver bool
	cleared  bool
}

func NewGame(stageName string, seed int64, debug bool) *Game {
	g := &Game{
		stageName: stageName,
		seed:      seed,
		debug:     debug,
		render:    system.NewRenderSystem(),
	}

	if debug {
		g.watcher = prefabs.WatchArchetypes()
	}

	g.reset()
	return g
}

// reset rebuilds the world from scratch, so a restart replays the same seed
// tick for tick.
func (g *Game) reset() {
	w := ecs.NewWorld()
	g.world = w
	g.gameOver = false
	g.cleared = false

	g.player = newPlayer(w)

	g.stage = script.NewStageRunner()

	w.AddSystem(system.NewInputSystem())
	w.AddSystem(system.NewPlayerControllerSystem())
	w.AddSystem(system.NewTaskSystem(g.stage))
	w.AddSystem(system.NewBossPhaseSystem())
	w.AddSystem(system.NewMotionSystem())
	w.AddSystem(system.NewMovementSystem())
	w.AddSystem(system.NewCollisionSystem())
	w.AddSystem(system.NewLifetimeSystem())
	w.AddSystem(system.NewDeathSystem())

	stage, ok := stages.Stage(g.stageName)
	if !ok {
		log.Printf("unknown stage %q, falling back to stage1", g.stageName)
		stage, _ = stages.Stage("stage1")
	}
	g.stage.Start(w, stage, g.seed)
}

func newPlayer(w *ecs.World) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: common.ScreenWidth / 2,
		Y: common.ScreenHeight - 80,
	})
	_ = ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	_ = ecs.Add(w, e, component.InputStateComponent.Kind(), &component.InputState{})
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{HP: playerLives, MaxHP: playerLives})
	_ = ecs.Add(w, e, component.PlayerScoreComponent.Kind(), &component.PlayerScore{})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Name: "player", Width: 16, Height: 16})
	_ = ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Radius: 3, // hitbox is far smaller than the sprite
		Layer:  component.LayerPlayer,
		Mask:   component.LayerEnemyBullet,
	})
	return e
}

func (g *Game) Update() error {
	g.pollWatcher()

	if g.gameOver || g.cleared {
		if ebiten.IsKeyPressed(ebiten.KeyR) {
			g.reset()
		}
		return nil
	}

	g.world.Update()

	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventPlayerDead:
			g.gameOver = true
		case ecs.EventBossDefeated:
			log.Printf("boss defeated on tick %d", g.world.Frame())
		}
	}
	if g.stage.Finished() {
		g.cleared = true
	}

	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case _, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		if err := prefabs.LoadArchetypes(); err != nil {
			log.Printf("archetype reload: %v", err)
		} else if mod, ok := prefabs.ModTime("archetypes.yaml"); ok {
			log.Printf("archetypes reloaded (modified %s)", mod.Format("15:04:05"))
		} else {
			log.Printf("archetypes reloaded")
		}
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("watcher: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	switch {
	case g.cleared:
		ebitenutil.DebugPrintAt(screen, "STAGE CLEAR  (R to replay)", common.ScreenWidth/2-80, common.ScreenHeight/2)
	case g.gameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER  (R to retry)", common.ScreenWidth/2-70, common.ScreenHeight/2)
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d  fps %.1f  seed %d", g.world.Frame(), ebiten.ActualFPS(), g.seed), 8, common.ScreenHeight-18)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}
