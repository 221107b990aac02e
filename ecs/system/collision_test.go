package system

import (
	"testing"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/script"
)

func newCollisionWorld(t *testing.T) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	player := ecs.CreateEntity(w)
	_ = ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	_ = ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: 320, Y: 600})
	_ = ecs.Add(w, player, component.HealthComponent.Kind(), &component.Health{HP: 3, MaxHP: 3})
	_ = ecs.Add(w, player, component.PlayerScoreComponent.Kind(), &component.PlayerScore{})
	_ = ecs.Add(w, player, component.ColliderComponent.Kind(), &component.Collider{
		Radius: 3,
		Layer:  component.LayerPlayer,
		Mask:   component.LayerEnemyBullet,
	})
	return w, player
}

func spawnEnemyBullet(w *ecs.World, x, y float64, damage int) ecs.Entity {
	b := ecs.CreateEntity(w)
	_ = ecs.Add(w, b, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, b, component.BulletComponent.Kind(), &component.Bullet{Damage: damage})
	_ = ecs.Add(w, b, component.EnemyBulletComponent.Kind(), &component.EnemyBulletTag{})
	_ = ecs.Add(w, b, component.GrazeStateComponent.Kind(), &component.GrazeState{})
	_ = ecs.Add(w, b, component.ColliderComponent.Kind(), &component.Collider{
		Radius: 4,
		Layer:  component.LayerEnemyBullet,
		Mask:   component.LayerPlayer,
	})
	return b
}

func spawnPlayerBullet(w *ecs.World, x, y float64, damage int) ecs.Entity {
	b := ecs.CreateEntity(w)
	_ = ecs.Add(w, b, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, b, component.BulletComponent.Kind(), &component.Bullet{Damage: damage})
	_ = ecs.Add(w, b, component.PlayerBulletComponent.Kind(), &component.PlayerBulletTag{})
	_ = ecs.Add(w, b, component.ColliderComponent.Kind(), &component.Collider{
		Radius: 4,
		Layer:  component.LayerPlayerBullet,
		Mask:   component.LayerEnemy,
	})
	return b
}

func spawnEnemy(w *ecs.World, x, y float64, hp int) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{HP: hp, MaxHP: hp})
	_ = ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Radius: 12,
		Layer:  component.LayerEnemy,
		Mask:   component.LayerPlayerBullet,
	})
	return e
}

func TestCollisionPlayerHit(t *testing.T) {
	w, player := newCollisionWorld(t)
	bullet := spawnEnemyBullet(w, 320, 600, 1)

	sys := NewCollisionSystem()
	sys.Update(w)

	if hp, _ := ecs.Get(w, player, component.HealthComponent.Kind()); hp.HP != 2 {
		t.Fatalf("player HP = %d, want 2", hp.HP)
	}
	if ecs.IsAlive(w, bullet) {
		t.Fatalf("bullet should be consumed by the hit")
	}
	if !ecs.Has(w, player, component.InvulnerableComponent.Kind()) {
		t.Fatalf("hit should grant an invulnerability window")
	}

	found := false
	for _, evt := range w.Events().Peek() {
		if evt.Type == ecs.EventPlayerHit {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s event", ecs.EventPlayerHit)
	}
}

func TestCollisionInvulnerablePlayerNotHit(t *testing.T) {
	w, player := newCollisionWorld(t)
	_ = ecs.Add(w, player, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: 10})
	bullet := spawnEnemyBullet(w, 320, 600, 1)

	NewCollisionSystem().Update(w)

	if hp, _ := ecs.Get(w, player, component.HealthComponent.Kind()); hp.HP != 3 {
		t.Fatalf("invulnerable player lost HP: %d", hp.HP)
	}
	if !ecs.IsAlive(w, bullet) {
		t.Fatalf("bullet should pass through an invulnerable player")
	}
}

func TestCollisionGrazeOncePerBullet(t *testing.T) {
	w, player := newCollisionWorld(t)
	// Inside the graze ring (radius 3 + 16) but outside the hitbox.
	bullet := spawnEnemyBullet(w, 320+12, 600, 1)

	sys := NewCollisionSystem()
	sys.Update(w)
	sys.Update(w)

	score, _ := ecs.Get(w, player, component.PlayerScoreComponent.Kind())
	if score.Graze != 1 {
		t.Fatalf("graze counted %d times, want exactly once", score.Graze)
	}
	if !ecs.IsAlive(w, bullet) {
		t.Fatalf("grazed bullet must survive")
	}
	state, _ := ecs.Get(w, bullet, component.GrazeStateComponent.Kind())
	if !state.Grazed {
		t.Fatalf("bullet not marked grazed")
	}
	if hp, _ := ecs.Get(w, player, component.HealthComponent.Kind()); hp.HP != 3 {
		t.Fatalf("graze must not damage the player")
	}
}

func TestCollisionPlayerHitForfeitsSpellBonus(t *testing.T) {
	w, _ := newCollisionWorld(t)
	boss := spawnEnemy(w, 320, 140, 100)
	_ = ecs.Add(w, boss, script.SpellCardComponent.Kind(), &script.SpellCardState{BonusAvailable: true, BonusValue: 1000})
	spawnEnemyBullet(w, 320, 600, 1)

	NewCollisionSystem().Update(w)

	sc, _ := ecs.Get(w, boss, script.SpellCardComponent.Kind())
	if sc.BonusAvailable {
		t.Fatalf("player hit must revoke the pending spell bonus")
	}
}

func TestCollisionPlayerBulletDamagesEnemy(t *testing.T) {
	w, _ := newCollisionWorld(t)
	enemy := spawnEnemy(w, 100, 100, 10)
	bullet := spawnPlayerBullet(w, 100, 105, 2)

	NewCollisionSystem().Update(w)

	if hp, _ := ecs.Get(w, enemy, component.HealthComponent.Kind()); hp.HP != 8 {
		t.Fatalf("enemy HP = %d, want 8", hp.HP)
	}
	if ecs.IsAlive(w, bullet) {
		t.Fatalf("player bullet spends itself on the hit")
	}
}

func TestCollisionSpellDamageMultiplier(t *testing.T) {
	w, _ := newCollisionWorld(t)
	boss := spawnEnemy(w, 100, 100, 100)
	_ = ecs.Add(w, boss, script.SpellCardComponent.Kind(), &script.SpellCardState{DamageMultiplier: 0.5})
	spawnPlayerBullet(w, 100, 105, 10)

	NewCollisionSystem().Update(w)

	if hp, _ := ecs.Get(w, boss, component.HealthComponent.Kind()); hp.HP != 95 {
		t.Fatalf("boss HP = %d, want 95 (10 damage halved)", hp.HP)
	}
}

func TestCollisionSurvivalBossAbsorbsShots(t *testing.T) {
	w, _ := newCollisionWorld(t)
	boss := spawnEnemy(w, 100, 100, 100)
	_ = ecs.Add(w, boss, script.SpellCardComponent.Kind(), &script.SpellCardState{Invulnerable: true})
	bullet := spawnPlayerBullet(w, 100, 105, 10)

	NewCollisionSystem().Update(w)

	if hp, _ := ecs.Get(w, boss, component.HealthComponent.Kind()); hp.HP != 100 {
		t.Fatalf("invulnerable boss took damage: %d", hp.HP)
	}
	if ecs.IsAlive(w, bullet) {
		t.Fatalf("shot should still be absorbed")
	}
}

func TestCollisionMissesOutOfRange(t *testing.T) {
	w, player := newCollisionWorld(t)
	spawnEnemyBullet(w, 100, 100, 1)

	NewCollisionSystem().Update(w)

	if hp, _ := ecs.Get(w, player, component.HealthComponent.Kind()); hp.HP != 3 {
		t.Fatalf("distant bullet hit the player")
	}
	score, _ := ecs.Get(w, player, component.PlayerScoreComponent.Kind())
	if score.Graze != 0 {
		t.Fatalf("distant bullet grazed")
	}
}
