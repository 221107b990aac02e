package system

import (
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
)

// LifetimeSystem decrements frame-based TTL components and destroys
// entities when the TTL reaches zero. Bullets that drift past the screen
// margin are culled early, and invulnerability windows are ticked down here
// as well.
type LifetimeSystem struct{}

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if ttl == nil {
			return
		}

		if ttl.Frames > 0 {
			ttl.Frames--
			if ttl.Frames > 0 {
				return
			}
		}

		ecs.DestroyEntity(w, e)
	})

	ecs.ForEach2(w, component.BulletComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, _ *component.Bullet, pos *component.Transform) {
			if pos.X < -common.OffscreenMargin || pos.X > common.ScreenWidth+common.OffscreenMargin ||
				pos.Y < -common.OffscreenMargin || pos.Y > common.ScreenHeight+common.OffscreenMargin {
				ecs.DestroyEntity(w, e)
			}
		})

	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		if inv.Permanent {
			return
		}
		inv.Frames--
		if inv.Frames <= 0 {
			ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		}
	})
}
