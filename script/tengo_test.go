package script

import (
	"testing"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
)

const tengoTestBehavior = `
update := func(api, state) {
	if is_undefined(state.n) {
		state.n = 0
	}
	state.n += 1
	api.fire(100.0, 100.0, 120.0, 90.0, "bullet_small")
	if state.n >= 2 {
		return -1
	}
	return 3
}
`

func TestTengoScriptRunsAndCompletes(t *testing.T) {
	s, err := NewTengoScript("test", []byte(tengoTestBehavior))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	ctx := testContext()

	wait, done, err := s.Resume(ctx)
	if err != nil {
		t.Fatalf("first resume: %v", err)
	}
	if done || wait != 3 {
		t.Fatalf("first resume: wait=%d done=%v, want wait=3", wait, done)
	}
	if n := ecs.Count(ctx.World, component.BulletComponent.Kind()); n != 1 {
		t.Fatalf("expected 1 bullet fired, got %d", n)
	}

	// State persists: the second call sees n=1 and finishes.
	_, done, err = s.Resume(ctx)
	if err != nil {
		t.Fatalf("second resume: %v", err)
	}
	if !done {
		t.Fatalf("expected completion on second resume")
	}
	if n := ecs.Count(ctx.World, component.BulletComponent.Kind()); n != 2 {
		t.Fatalf("expected 2 bullets fired, got %d", n)
	}
}

func TestTengoScriptCompileError(t *testing.T) {
	if _, err := NewTengoScript("bad", []byte(`update := `)); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestTengoScriptRuntimeErrorSurfaces(t *testing.T) {
	src := `
update := func(api, state) {
	return undefined_function()
}
`
	s, err := NewTengoScript("broken", []byte(src))
	if err != nil {
		// Referencing an undefined symbol may already fail at compile time,
		// which is just as acceptable.
		return
	}
	if _, _, err := s.Resume(testContext()); err == nil {
		t.Fatalf("expected runtime error")
	}
}

func TestTengoScriptPatternHelpers(t *testing.T) {
	src := `
update := func(api, state) {
	api.fire_ring(50.0, 50.0, 8, 100.0, 0.0, "bullet_small")
	api.fire_fan(50.0, 50.0, 3, 60.0, 90.0, 100.0, "bullet_small")
	return -1
}
`
	s, err := NewTengoScript("patterns", []byte(src))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	ctx := testContext()
	if _, done, err := s.Resume(ctx); err != nil || !done {
		t.Fatalf("resume: done=%v err=%v", done, err)
	}
	if n := ecs.Count(ctx.World, component.BulletComponent.Kind()); n != 11 {
		t.Fatalf("expected 11 bullets, got %d", n)
	}
}

func TestTengoScriptReadsWorldState(t *testing.T) {
	w := ecs.NewWorld()
	player := ecs.CreateEntity(w)
	_ = ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	_ = ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: 320, Y: 600})
	owner := ecs.CreateEntity(w)
	_ = ecs.Add(w, owner, component.TransformComponent.Kind(), &component.Transform{X: 100, Y: 50})
	ctx := NewContext(w, owner, NewRNG(5))

	src := `
update := func(api, state) {
	p := api.player_pos()
	o := api.owner_pos()
	if p[0] != 320.0 || p[1] != 600.0 {
		return -2
	}
	if o[0] != 100.0 || o[1] != 50.0 {
		return -3
	}
	api.set_pos(o[0] + 10.0, o[1])
	return -1
}
`
	s, err := NewTengoScript("world", []byte(src))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, done, err := s.Resume(ctx); err != nil || !done {
		t.Fatalf("resume: done=%v err=%v", done, err)
	}
	pos, _ := ecs.Get(w, owner, component.TransformComponent.Kind())
	if pos.X != 110 || pos.Y != 50 {
		t.Fatalf("set_pos not applied, got (%v, %v)", pos.X, pos.Y)
	}
}
