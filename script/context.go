package script

import (
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/motion"
	"github.com/milk9111/danmaku/prefabs"
)

// Context is the environment a script executes against: shared world state,
// the owning actor (zero for stage-level scripts), and a private
// deterministic random source. Its fields never change identity after
// creation; only the RNG's internal state advances with use.
type Context struct {
	World *ecs.World
	Owner ecs.Entity
	Rng   *RNG
}

// NewContext binds a context to a world and owner.
func NewContext(w *ecs.World, owner ecs.Entity, rng *RNG) *Context {
	return &Context{World: w, Owner: owner, Rng: rng}
}

// Child derives a context for a script spawned from this one. The RNG is
// shared, not copied, so the combined draw sequence stays reproducible.
func (c *Context) Child(owner ecs.Entity) *Context {
	return &Context{World: c.World, Owner: owner, Rng: c.Rng}
}

// Random returns a deterministic float in [0, 1).
func (c *Context) Random() float64 {
	return c.Rng.Float()
}

// RandomRange returns a deterministic float in [a, b).
func (c *Context) RandomRange(a, b float64) float64 {
	return c.Rng.Range(a, b)
}

// RandomInt returns a deterministic int in [0, n).
func (c *Context) RandomInt(n int) int {
	return c.Rng.Intn(n)
}

// PlayerPos returns the live player position, or (0, 0) if no player exists.
func (c *Context) PlayerPos() (float64, float64) {
	if c == nil || c.World == nil {
		return 0, 0
	}
	player, ok := ecs.First(c.World, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, 0
	}
	pos, ok := ecs.Get(c.World, player, component.TransformComponent.Kind())
	if !ok {
		return 0, 0
	}
	return pos.X, pos.Y
}

// OwnerPos returns the owning actor's position, or (0, 0) when the context
// has no owner or its owner has no position.
func (c *Context) OwnerPos() (float64, float64) {
	if c == nil || !c.Owner.Valid() {
		return 0, 0
	}
	pos, ok := ecs.Get(c.World, c.Owner, component.TransformComponent.Kind())
	if !ok {
		return 0, 0
	}
	return pos.X, pos.Y
}

// EnemiesAlive counts live enemy-tagged actors.
func (c *Context) EnemiesAlive() int {
	if c == nil || c.World == nil {
		return 0
	}
	return ecs.Count(c.World, component.EnemyTagComponent.Kind())
}

// FireOpts overrides individual archetype defaults on a single fire call.
// Nil fields keep the archetype value.
type FireOpts struct {
	Motion   *motion.Program
	Damage   *int
	Sprite   *string
	Radius   *float64
	Layer    *component.Layer
	Mask     *component.Layer
	Lifetime *float64 // seconds
}

// Fire creates a projectile at (x, y) with velocity from polar (speed,
// angle): 0 degrees toward +X, 90 toward +Y (screen down), clockwise.
// Visual and physical attributes come from the named archetype; an unknown
// archetype degrades to the default entry. A supplied motion program is
// cloned so program counters never alias between bullets.
func (c *Context) Fire(x, y, speed, angle float64, archetype string, opts *FireOpts) ecs.Entity {
	arch, _ := prefabs.GetArchetype(archetype)

	damage := arch.Damage
	sprite := arch.Sprite
	radius := arch.Radius
	layer := arch.Layer
	mask := arch.Mask
	lifetime := arch.LifetimeFrames
	if opts != nil {
		if opts.Damage != nil {
			damage = *opts.Damage
		}
		if opts.Sprite != nil {
			sprite = *opts.Sprite
		}
		if opts.Radius != nil {
			radius = *opts.Radius
		}
		if opts.Layer != nil {
			layer = *opts.Layer
		}
		if opts.Mask != nil {
			mask = *opts.Mask
		}
		if opts.Lifetime != nil {
			lifetime = int(*opts.Lifetime * common.TPS)
		}
	}

	w := c.World
	bullet := ecs.CreateEntity(w)
	_ = ecs.Add(w, bullet, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, bullet, component.VelocityComponent.Kind(), &component.Velocity{Vec: motion.PolarVector(speed, angle)})
	_ = ecs.Add(w, bullet, component.BulletComponent.Kind(), &component.Bullet{Damage: damage})
	_ = ecs.Add(w, bullet, component.SpriteComponent.Kind(), &component.Sprite{Name: sprite, Width: radius * 2, Height: radius * 2})
	_ = ecs.Add(w, bullet, component.ColliderComponent.Kind(), &component.Collider{Radius: radius, Layer: layer, Mask: mask})
	_ = ecs.Add(w, bullet, component.TTLComponent.Kind(), &component.TTL{Frames: lifetime})

	if layer == component.LayerPlayerBullet {
		_ = ecs.Add(w, bullet, component.PlayerBulletComponent.Kind(), &component.PlayerBulletTag{})
	} else {
		_ = ecs.Add(w, bullet, component.EnemyBulletComponent.Kind(), &component.EnemyBulletTag{})
		_ = ecs.Add(w, bullet, component.GrazeStateComponent.Kind(), &component.GrazeState{})
	}

	if opts != nil && opts.Motion != nil {
		prog := opts.Motion.Clone()
		// A bullet's program continues from the state it was fired with.
		prog.Speed = speed
		prog.Angle = motion.Normalize(angle)
		_ = ecs.Add(w, bullet, component.MotionComponent.Kind(), prog)
	}

	return bullet
}

// FireAimed fires toward the live player position at call time.
func (c *Context) FireAimed(x, y, speed float64, archetype string, opts *FireOpts) ecs.Entity {
	px, py := c.PlayerPos()
	return c.Fire(x, y, speed, motion.AngleBetween(x, y, px, py), archetype, opts)
}

// SpawnEnemy looks up a factory by kind and constructs the enemy. A behavior
// script is attached through a fresh or existing Runner on the new actor,
// sharing this context's random source.
func (c *Context) SpawnEnemy(kind string, x, y float64, behavior Script, hp int) (ecs.Entity, error) {
	factory, err := LookupEnemy(kind)
	if err != nil {
		return 0, err
	}
	enemy := factory(c.World, x, y, EnemyOpts{HP: hp, Behavior: behavior, Rng: c.Rng})
	return enemy, nil
}

// SpawnBoss looks up a boss factory by id and constructs the boss. For a
// boss without a phase machine, supplied script factories stand in for one:
// the first is attached immediately to the boss's own scheduler. A boss that
// carries BossState gets its phase scripts from the phase system instead.
func (c *Context) SpawnBoss(id string, x, y float64, phases ...func() Script) (ecs.Entity, error) {
	factory, err := LookupBoss(id)
	if err != nil {
		return 0, err
	}
	boss := factory(c.World, x, y)
	if !ecs.Has(c.World, boss, BossStateComponent.Kind()) && len(phases) > 0 && phases[0] != nil {
		AttachBehavior(c.World, boss, phases[0](), c.Rng)
	}
	return boss, nil
}

// SetPos moves the owning actor immediately. No-op without an owner or
// position, since scripts run against heterogeneous actor shapes.
func (c *Context) SetPos(x, y float64) {
	if c == nil || !c.Owner.Valid() {
		return
	}
	if pos, ok := ecs.Get(c.World, c.Owner, component.TransformComponent.Kind()); ok {
		pos.X = x
		pos.Y = y
	}
}

// AttachBehavior starts a behavior script on an actor, creating the Runner
// component if the actor doesn't carry one yet.
func AttachBehavior(w *ecs.World, e ecs.Entity, behavior Script, rng *RNG) *Task {
	if w == nil || behavior == nil || !ecs.IsAlive(w, e) {
		return nil
	}
	runner, ok := ecs.Get(w, e, RunnerComponent.Kind())
	if !ok {
		runner = &Runner{}
		_ = ecs.Add(w, e, RunnerComponent.Kind(), runner)
	}
	if rng == nil {
		rng = NewRNG(int64(w.Frame()))
	}
	task, _ := runner.Attach(behavior, NewContext(w, e, rng))
	return task
}
