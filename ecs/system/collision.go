package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/script"
)

const (
	grazeRange      = 16.0
	hitInvulnFrames = 120
)

// CollisionSystem resolves circle overlaps through a chipmunk space rebuilt
// from collider components every tick. Enemy bullets test against the
// player hitbox and a wider graze ring; player bullets test against
// enemies. All outcomes are applied in entity creation order so a replayed
// seed produces the same hits.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (c *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	space := cp.NewSpace()

	insert := func(e ecs.Entity, pos *component.Transform, col *component.Collider) {
		body := space.AddBody(cp.NewStaticBody())
		body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
		shape := space.AddShape(cp.NewCircle(body, col.Radius, cp.Vector{}))
		shape.SetSensor(true)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(col.Layer), uint(col.Mask)))
		shape.UserData = e
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(e ecs.Entity, pos *component.Transform, col *component.Collider) {
			if col.Layer == component.LayerEnemyBullet || col.Layer == component.LayerEnemy {
				insert(e, pos, col)
			}
		})

	c.resolvePlayer(w, space)
	c.resolvePlayerBullets(w, space)
}

// queryCircle collects the entities whose inserted shapes overlap a probe
// circle, in ascending entity order.
func queryCircle(space *cp.Space, x, y, radius float64, categories, mask component.Layer) []ecs.Entity {
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: x, Y: y})
	probe := cp.NewCircle(body, radius, cp.Vector{})
	probe.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(categories), uint(mask)))

	var hits []ecs.Entity
	space.ShapeQuery(probe, func(shape *cp.Shape, points *cp.ContactPointSet) {
		if e, ok := shape.UserData.(ecs.Entity); ok {
			hits = append(hits, e)
		}
	})
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j] < hits[j-1]; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	return hits
}

func (c *CollisionSystem) resolvePlayer(w *ecs.World, space *cp.Space) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pos, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	col, ok := ecs.Get(w, player, component.ColliderComponent.Kind())
	if !ok {
		return
	}

	invulnerable := false
	if inv, ok := ecs.Get(w, player, component.InvulnerableComponent.Kind()); ok {
		invulnerable = inv.Permanent || inv.Frames > 0
	}

	hit := map[ecs.Entity]bool{}
	if !invulnerable {
		hits := queryCircle(space, pos.X, pos.Y, col.Radius, component.LayerPlayer, component.LayerEnemyBullet)
		for _, bullet := range hits {
			if !ecs.IsAlive(w, bullet) {
				continue
			}
			hit[bullet] = true
			c.hitPlayer(w, player, bullet)
			break // one hit per tick, the rest graze or expire
		}
	}

	// Graze ring. Each bullet grazes at most once in its lifetime, and a
	// bullet that connected this tick doesn't also graze.
	grazed := queryCircle(space, pos.X, pos.Y, col.Radius+grazeRange, component.LayerPlayer, component.LayerEnemyBullet)
	for _, bullet := range grazed {
		if hit[bullet] || !ecs.IsAlive(w, bullet) {
			continue
		}
		state, ok := ecs.Get(w, bullet, component.GrazeStateComponent.Kind())
		if !ok || state.Grazed {
			continue
		}
		state.Grazed = true
		if score, ok := ecs.Get(w, player, component.PlayerScoreComponent.Kind()); ok {
			score.Graze++
			score.Score += 10
		}
		w.Events().Push(ecs.Event{Type: ecs.EventGraze, Data: bullet})
	}
}

func (c *CollisionSystem) hitPlayer(w *ecs.World, player, bullet ecs.Entity) {
	damage := 1
	if b, ok := ecs.Get(w, bullet, component.BulletComponent.Kind()); ok && b.Damage > 0 {
		damage = b.Damage
	}
	ecs.DestroyEntity(w, bullet)

	if hp, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
		hp.HP -= damage
		if hp.HP <= 0 {
			w.Events().Push(ecs.Event{Type: ecs.EventPlayerDead, Data: player})
		}
	}
	_ = ecs.Add(w, player, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: hitInvulnFrames})

	// Getting hit forfeits every pending spell card bonus.
	ecs.ForEach(w, script.SpellCardComponent.Kind(), func(_ ecs.Entity, sc *script.SpellCardState) {
		sc.BonusAvailable = false
	})

	w.Events().Push(ecs.Event{Type: ecs.EventPlayerHit, Data: player})
}

func (c *CollisionSystem) resolvePlayerBullets(w *ecs.World, space *cp.Space) {
	ecs.ForEach2(w, component.PlayerBulletComponent.Kind(), component.TransformComponent.Kind(),
		func(bullet ecs.Entity, _ *component.PlayerBulletTag, pos *component.Transform) {
			col, ok := ecs.Get(w, bullet, component.ColliderComponent.Kind())
			if !ok {
				return
			}

			targets := queryCircle(space, pos.X, pos.Y, col.Radius, component.LayerPlayerBullet, component.LayerEnemy)
			for _, enemy := range targets {
				if !ecs.IsAlive(w, enemy) || !ecs.IsAlive(w, bullet) {
					continue
				}
				c.hitEnemy(w, enemy, bullet)
				break // a bullet spends itself on one target
			}
		})
}

func (c *CollisionSystem) hitEnemy(w *ecs.World, enemy, bullet ecs.Entity) {
	damage := 1
	if b, ok := ecs.Get(w, bullet, component.BulletComponent.Kind()); ok && b.Damage > 0 {
		damage = b.Damage
	}
	ecs.DestroyEntity(w, bullet)

	if inv, ok := ecs.Get(w, enemy, component.InvulnerableComponent.Kind()); ok {
		if inv.Permanent || inv.Frames > 0 {
			return // absorbed
		}
	}

	scaled := float64(damage)
	if sc, ok := ecs.Get(w, enemy, script.SpellCardComponent.Kind()); ok {
		if sc.Invulnerable {
			return
		}
		if sc.DamageMultiplier > 0 {
			scaled *= sc.DamageMultiplier
		}
	}

	if hp, ok := ecs.Get(w, enemy, component.HealthComponent.Kind()); ok {
		dmg := int(scaled)
		if dmg < 1 {
			dmg = 1
		}
		hp.HP -= dmg
	}
}
