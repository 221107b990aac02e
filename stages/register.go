// Package stages holds the shipped level timelines, enemy archetypes, and
// boss fights. Everything here is plain script code layered on the
// primitive api; nothing below this package knows stage structure.
package stages

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/script"
)

// Register installs the stage roster into the script registries. Call once
// at startup before any stage script runs.
func Register() {
	script.RegisterEnemy("fairy_small", newFairyFactory(fairyKindSmall))
	script.RegisterEnemy("fairy_large", newFairyFactory(fairyKindLarge))
	script.RegisterBoss("boss1", NewBoss1)
}

// Stage looks up a stage timeline by name.
func Stage(name string) (script.Script, bool) {
	switch name {
	case "stage1":
		return NewStage1(), true
	}
	return nil, false
}

type fairyKind struct {
	name   string
	hp     int
	radius float64
	sprite string
}

var (
	fairyKindSmall = fairyKind{name: "fairy_small", hp: 3, radius: 10, sprite: "fairy_small"}
	fairyKindLarge = fairyKind{name: "fairy_large", hp: 12, radius: 16, sprite: "fairy_large"}
)

func newFairyFactory(kind fairyKind) script.EnemyFactory {
	return func(w *ecs.World, x, y float64, opts script.EnemyOpts) ecs.Entity {
		e := ecs.CreateEntity(w)
		hp := opts.HP
		if hp <= 0 {
			hp = kind.hp
		}

		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
		_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
		_ = ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{HP: hp, MaxHP: hp})
		_ = ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
		_ = ecs.Add(w, e, component.EnemyKindTagComponent.Kind(), &component.EnemyKindTag{Kind: kind.name})
		_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Name: kind.sprite, Width: kind.radius * 2, Height: kind.radius * 2})
		_ = ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
			Radius: kind.radius,
			Layer:  component.LayerEnemy,
			Mask:   component.LayerPlayerBullet,
		})

		if opts.Behavior != nil {
			script.AttachBehavior(w, e, opts.Behavior, opts.Rng)
		}
		return e
	}
}
