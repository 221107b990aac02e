package script

import (
	"math"
	"testing"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/motion"
	"github.com/milk9111/danmaku/prefabs"
)

func init() {
	if err := prefabs.LoadArchetypes(); err != nil {
		panic(err)
	}
}

func bulletAngle(t *testing.T, w *ecs.World, e ecs.Entity) float64 {
	t.Helper()
	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		t.Fatalf("bullet %s has no velocity", e)
	}
	return motion.VectorAngle(vel.Vec)
}

func almostEqual(a, b float64) bool {
	return math.Abs(motion.ShortestArc(a, b)) < 1e-9
}

func TestFireRingEvenSpacing(t *testing.T) {
	ctx := testContext()
	bullets := FireRing(ctx, 100, 100, 4, 100, "bullet_small", nil, 0)
	if len(bullets) != 4 {
		t.Fatalf("expected 4 bullets, got %d", len(bullets))
	}
	for i, want := range []float64{0, 90, -180, -90} {
		got := bulletAngle(t, ctx.World, bullets[i])
		if !almostEqual(got, want) {
			t.Fatalf("bullet %d angle = %v, want %v", i, got, want)
		}
	}
}

func TestFireRingStartAngleRotatesSeam(t *testing.T) {
	ctx := testContext()
	bullets := FireRing(ctx, 0, 0, 2, 100, "bullet_small", nil, 45)
	if len(bullets) != 2 {
		t.Fatalf("expected 2 bullets, got %d", len(bullets))
	}
	if got := bulletAngle(t, ctx.World, bullets[0]); !almostEqual(got, 45) {
		t.Fatalf("first bullet angle = %v, want 45", got)
	}
	if got := bulletAngle(t, ctx.World, bullets[1]); !almostEqual(got, -135) {
		t.Fatalf("second bullet angle = %v, want -135", got)
	}
}

func TestFireRingRejectsNonPositiveCount(t *testing.T) {
	ctx := testContext()
	if got := FireRing(ctx, 0, 0, 0, 100, "bullet_small", nil, 0); got != nil {
		t.Fatalf("expected nil for count 0, got %d bullets", len(got))
	}
	if ecs.Count(ctx.World, component.BulletComponent.Kind()) != 0 {
		t.Fatalf("no bullets should have spawned")
	}
}

func TestFireFanCentersOnBaseAngle(t *testing.T) {
	ctx := testContext()
	bullets := FireFan(ctx, 0, 0, 3, 60, 90, 100, "bullet_small", nil)
	if len(bullets) != 3 {
		t.Fatalf("expected 3 bullets, got %d", len(bullets))
	}
	for i, want := range []float64{60, 90, 120} {
		got := bulletAngle(t, ctx.World, bullets[i])
		if !almostEqual(got, want) {
			t.Fatalf("bullet %d angle = %v, want %v", i, got, want)
		}
	}
}

func TestFireFanSingleBulletFiresAtBase(t *testing.T) {
	ctx := testContext()
	bullets := FireFan(ctx, 0, 0, 1, 60, 33, 100, "bullet_small", nil)
	if len(bullets) != 1 {
		t.Fatalf("expected 1 bullet, got %d", len(bullets))
	}
	if got := bulletAngle(t, ctx.World, bullets[0]); !almostEqual(got, 33) {
		t.Fatalf("angle = %v, want 33", got)
	}
}

func TestFireSpiralArmCount(t *testing.T) {
	ctx := testContext()
	bullets := FireSpiral(ctx, 0, 0, 3, 4, 100, 10, "bullet_small", nil)
	if len(bullets) != 12 {
		t.Fatalf("expected 12 bullets, got %d", len(bullets))
	}
}

func TestFireAimedPointsAtPlayer(t *testing.T) {
	w := ecs.NewWorld()
	player := ecs.CreateEntity(w)
	_ = ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	_ = ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 100})
	ctx := NewContext(w, 0, NewRNG(1))

	b := ctx.FireAimed(0, 0, 150, "bullet_small", nil)
	if got := bulletAngle(t, w, b); !almostEqual(got, 90) {
		t.Fatalf("aimed angle = %v, want 90 (screen down)", got)
	}
}

func TestFireTagsByLayer(t *testing.T) {
	ctx := testContext()
	enemyShot := ctx.Fire(0, 0, 100, 0, "bullet_small", nil)
	playerShot := ctx.Fire(0, 0, 100, -90, "player_shot", nil)

	if !ecs.Has(ctx.World, enemyShot, component.EnemyBulletComponent.Kind()) {
		t.Fatalf("enemy-layer bullet missing enemy tag")
	}
	if !ecs.Has(ctx.World, enemyShot, component.GrazeStateComponent.Kind()) {
		t.Fatalf("enemy bullet missing graze state")
	}
	if !ecs.Has(ctx.World, playerShot, component.PlayerBulletComponent.Kind()) {
		t.Fatalf("player-layer bullet missing player tag")
	}
	if ecs.Has(ctx.World, playerShot, component.GrazeStateComponent.Kind()) {
		t.Fatalf("player bullets never graze")
	}
}

func TestFireMotionProgramsNeverAlias(t *testing.T) {
	ctx := testContext()
	prog := motion.NewBuilder(100, 0).Wait(10).AccelerateTo(200, 10).Build()
	opts := &FireOpts{Motion: prog}

	a := ctx.Fire(0, 0, 100, 0, "bullet_small", opts)
	b := ctx.Fire(0, 0, 100, 90, "bullet_small", opts)

	pa, _ := ecs.Get(ctx.World, a, component.MotionComponent.Kind())
	pb, _ := ecs.Get(ctx.World, b, component.MotionComponent.Kind())
	if pa == nil || pb == nil {
		t.Fatalf("expected motion programs on both bullets")
	}
	if pa == pb {
		t.Fatalf("bullets share one program instance")
	}
	if pa.Angle == pb.Angle {
		t.Fatalf("cloned program must adopt the bullet's own angle")
	}

	// Stepping one program must not advance the other.
	pa.Step(motion.Env{})
	if pb.PC != 0 || pb.Finished {
		t.Fatalf("stepping one bullet advanced another")
	}
}
