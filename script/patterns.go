package script

import "github.com/milk9111/danmaku/ecs"

// Pattern helpers compose the Fire primitive into the standard barrage
// shapes. They are stateless: callers sequence them from routines or tengo
// scripts and own all timing.

// FireRing fires count projectiles evenly spaced over a full turn starting
// at startAngle. count < 1 fires nothing.
func FireRing(ctx *Context, x, y float64, count int, speed float64, archetype string, opts *FireOpts, startAngle float64) []ecs.Entity {
	if count < 1 {
		return nil
	}
	bullets := make([]ecs.Entity, 0, count)
	step := 360.0 / float64(count)
	for i := 0; i < count; i++ {
		angle := startAngle + float64(i)*step
		bullets = append(bullets, ctx.Fire(x, y, speed, angle, archetype, opts))
	}
	return bullets
}

// FireFan fires count projectiles evenly spaced across spread degrees
// centered on baseAngle. count == 1 fires exactly at baseAngle regardless of
// spread; count < 1 fires nothing.
func FireFan(ctx *Context, x, y float64, count int, spread, baseAngle, speed float64, archetype string, opts *FireOpts) []ecs.Entity {
	if count < 1 {
		return nil
	}
	if count == 1 {
		return []ecs.Entity{ctx.Fire(x, y, speed, baseAngle, archetype, opts)}
	}
	bullets := make([]ecs.Entity, 0, count)
	start := baseAngle - spread/2
	step := spread / float64(count-1)
	for i := 0; i < count; i++ {
		bullets = append(bullets, ctx.Fire(x, y, speed, start+float64(i)*step, archetype, opts))
	}
	return bullets
}

// FireSpiral fires arms evenly spaced starting angles, each followed by
// bulletsPerArm projectiles offset by 1/(arms*bulletsPerArm) of a full turn.
// arms < 1 or bulletsPerArm < 1 fires nothing.
func FireSpiral(ctx *Context, x, y float64, arms, bulletsPerArm int, speed, angleOffset float64, archetype string, opts *FireOpts) []ecs.Entity {
	if arms < 1 || bulletsPerArm < 1 {
		return nil
	}
	bullets := make([]ecs.Entity, 0, arms*bulletsPerArm)
	armStep := 360.0 / float64(arms)
	bulletStep := 360.0 / float64(arms*bulletsPerArm)
	for arm := 0; arm < arms; arm++ {
		for i := 0; i < bulletsPerArm; i++ {
			angle := angleOffset + float64(arm)*armStep + float64(i)*bulletStep
			bullets = append(bullets, ctx.Fire(x, y, speed, angle, archetype, opts))
		}
	}
	return bullets
}

// FireAimed fires a single projectile toward the player's current position.
func FireAimed(ctx *Context, x, y, speed float64, archetype string, opts *FireOpts) ecs.Entity {
	return ctx.FireAimed(x, y, speed, archetype, opts)
}
