package script

import (
	"errors"
	"fmt"

	"github.com/milk9111/danmaku/ecs"
)

var (
	ErrUnknownEnemyKind = errors.New("script: unknown enemy kind")
	ErrUnknownBossID    = errors.New("script: unknown boss id")
)

// EnemyOpts carries optional spawn overrides.
type EnemyOpts struct {
	// HP overrides the factory default when > 0.
	HP int
	// Behavior is attached to the new actor via a Runner component,
	// sharing Rng so parent and child draws stay one sequence.
	Behavior Script
	Rng      *RNG
}

// EnemyFactory constructs an enemy actor at (x, y).
type EnemyFactory func(w *ecs.World, x, y float64, opts EnemyOpts) ecs.Entity

// BossFactory constructs a boss actor at (x, y).
type BossFactory func(w *ecs.World, x, y float64) ecs.Entity

// Registries are populated by an explicit registration call at process
// start (stages.Register), never by import side effects.
var (
	enemyRegistry = map[string]EnemyFactory{}
	bossRegistry  = map[string]BossFactory{}
)

// RegisterEnemy binds a kind to its factory, replacing any previous binding.
func RegisterEnemy(kind string, f EnemyFactory) {
	if kind == "" || f == nil {
		return
	}
	enemyRegistry[kind] = f
}

// RegisterBoss binds a boss id to its factory, replacing any previous binding.
func RegisterBoss(id string, f BossFactory) {
	if id == "" || f == nil {
		return
	}
	bossRegistry[id] = f
}

// LookupEnemy resolves an enemy factory by kind.
func LookupEnemy(kind string) (EnemyFactory, error) {
	f, ok := enemyRegistry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnemyKind, kind)
	}
	return f, nil
}

// LookupBoss resolves a boss factory by id.
func LookupBoss(id string) (BossFactory, error) {
	f, ok := bossRegistry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBossID, id)
	}
	return f, nil
}
