package system

import (
	"math"

	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/script"
)

const (
	playerMoveSpeed  = 300.0
	playerFocusSpeed = 140.0
	playerShotOffset = 8.0
	shotCooldown     = 5 // frames
	playerMargin     = 12.0
)

// PlayerControllerSystem moves the player from captured input, keeps it
// inside the playfield, and fires the twin forward shot while the fire key
// is held.
type PlayerControllerSystem struct {
	cooldown int
}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if p.cooldown > 0 {
		p.cooldown--
	}

	ecs.ForEach3(w,
		component.PlayerTagComponent.Kind(),
		component.InputStateComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, _ *component.PlayerTag, input *component.InputState, pos *component.Transform) {
			speed := playerMoveSpeed
			if input.Focus {
				speed = playerFocusSpeed
			}

			dx, dy := input.MoveX, input.MoveY
			if mag := math.Hypot(dx, dy); mag > 1 {
				dx /= mag
				dy /= mag
			}

			pos.X = common.Clamp(pos.X+dx*speed*common.Dt, playerMargin, common.ScreenWidth-playerMargin)
			pos.Y = common.Clamp(pos.Y+dy*speed*common.Dt, playerMargin, common.ScreenHeight-playerMargin)

			if input.Fire && p.cooldown == 0 {
				p.cooldown = shotCooldown
				ctx := script.NewContext(w, e, nil)
				ctx.Fire(pos.X-playerShotOffset, pos.Y-10, 900, -90, "player_shot", nil)
				ctx.Fire(pos.X+playerShotOffset, pos.Y-10, 900, -90, "player_shot", nil)
			}
		})
}
