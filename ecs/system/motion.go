package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/motion"
)

// MotionSystem runs one motion program instruction per entity per tick and
// writes the resulting velocity. The player position is sampled once at the
// top of the tick so every program aims at the same snapshot.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (m *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	env := motion.Env{}
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if pos, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			env.PlayerPos = cp.Vector{X: pos.X, Y: pos.Y}
			env.HasPlayer = true
		}
	}

	ecs.ForEach(w, component.MotionComponent.Kind(), func(e ecs.Entity, prog *motion.Program) {
		if prog == nil {
			return
		}

		env := env
		if pos, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			env.Pos = cp.Vector{X: pos.X, Y: pos.Y}
			env.HasPos = true
		}

		vel, active := prog.Step(env)
		if !active {
			// Finished programs keep their last velocity.
			ecs.Remove(w, e, component.MotionComponent.Kind())
			return
		}

		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			v.Vec = vel
		} else {
			_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Vec: vel})
		}
	})
}
