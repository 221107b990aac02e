package system

import (
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
)

// MovementSystem integrates velocity into position at a fixed timestep.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(),
		func(e ecs.Entity, pos *component.Transform, vel *component.Velocity) {
			pos.X += vel.Vec.X * common.Dt
			pos.Y += vel.Vec.Y * common.Dt
		})
}
