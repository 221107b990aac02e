package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/motion"
)

func TestMotionSystemWritesVelocity(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 10, Y: 10})
	_ = ecs.Add(w, e, component.MotionComponent.Kind(), motion.NewBuilder(100, 90).Wait(2).Build())

	NewMotionSystem().Update(w)

	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		t.Fatalf("velocity not written")
	}
	if math.Abs(vel.Vec.Y-100) > 1e-9 || math.Abs(vel.Vec.X) > 1e-9 {
		t.Fatalf("velocity = (%v, %v), want (0, 100)", vel.Vec.X, vel.Vec.Y)
	}
}

func TestMotionSystemDropsFinishedPrograms(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Vec: cp.Vector{X: 100}})
	_ = ecs.Add(w, e, component.MotionComponent.Kind(), motion.NewBuilder(50, 0).Wait(1).Build())

	sys := NewMotionSystem()
	sys.Update(w) // runs the single wait tick
	sys.Update(w) // program finished, component dropped

	if ecs.Has(w, e, component.MotionComponent.Kind()) {
		t.Fatalf("finished program should be removed")
	}
	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if vel.Vec.X != 50 {
		t.Fatalf("finished program must leave the last velocity in place, got %v", vel.Vec.X)
	}
}

func TestMotionSystemAimsAtPlayerSnapshot(t *testing.T) {
	w := ecs.NewWorld()
	player := ecs.CreateEntity(w)
	_ = ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	_ = ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 100})

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 0})
	_ = ecs.Add(w, e, component.MotionComponent.Kind(), motion.NewBuilder(100, 0).AimPlayer().Wait(1).Build())

	NewMotionSystem().Update(w)

	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if math.Abs(vel.Vec.Y-100) > 1e-9 {
		t.Fatalf("aimed velocity = (%v, %v), want straight down", vel.Vec.X, vel.Vec.Y)
	}
}

func TestMovementIntegratesAtFixedStep(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 0})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Vec: cp.Vector{X: 60, Y: -120}})

	sys := NewMovementSystem()
	for i := 0; i < common.TPS; i++ {
		sys.Update(w)
	}

	pos, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if math.Abs(pos.X-60) > 1e-6 || math.Abs(pos.Y+120) > 1e-6 {
		t.Fatalf("after one second: (%v, %v), want (60, -120)", pos.X, pos.Y)
	}
}

func TestLifetimeTTLAndOffscreenCull(t *testing.T) {
	w := ecs.NewWorld()

	short := ecs.CreateEntity(w)
	_ = ecs.Add(w, short, component.TTLComponent.Kind(), &component.TTL{Frames: 2})

	offscreen := ecs.CreateEntity(w)
	_ = ecs.Add(w, offscreen, component.BulletComponent.Kind(), &component.Bullet{})
	_ = ecs.Add(w, offscreen, component.TransformComponent.Kind(), &component.Transform{X: -200, Y: 100})

	onscreen := ecs.CreateEntity(w)
	_ = ecs.Add(w, onscreen, component.BulletComponent.Kind(), &component.Bullet{})
	_ = ecs.Add(w, onscreen, component.TransformComponent.Kind(), &component.Transform{X: 100, Y: 100})

	sys := NewLifetimeSystem()
	sys.Update(w)
	w.Flush()

	if ecs.IsAlive(w, offscreen) {
		t.Fatalf("offscreen bullet should be culled")
	}
	if !ecs.IsAlive(w, onscreen) {
		t.Fatalf("onscreen bullet culled by mistake")
	}
	if !ecs.IsAlive(w, short) {
		t.Fatalf("TTL expired a frame early")
	}

	sys.Update(w)
	w.Flush()
	if ecs.IsAlive(w, short) {
		t.Fatalf("TTL should have expired")
	}
}

func TestLifetimeInvulnerabilityWindow(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: 2})
	p := ecs.CreateEntity(w)
	_ = ecs.Add(w, p, component.InvulnerableComponent.Kind(), &component.Invulnerable{Permanent: true})

	sys := NewLifetimeSystem()
	sys.Update(w)
	if !ecs.Has(w, e, component.InvulnerableComponent.Kind()) {
		t.Fatalf("window removed a frame early")
	}
	sys.Update(w)
	if ecs.Has(w, e, component.InvulnerableComponent.Kind()) {
		t.Fatalf("window should have expired")
	}
	if !ecs.Has(w, p, component.InvulnerableComponent.Kind()) {
		t.Fatalf("permanent invulnerability must not tick away")
	}
}
