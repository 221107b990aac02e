package system

import (
	"log"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/script"
)

const enemyKillScore = 100

// DeathSystem removes depleted enemies and defeated bosses. Bosses are
// exempt from plain HP death; only the phase machine's Defeated signal
// retires them.
type DeathSystem struct{}

func NewDeathSystem() *DeathSystem {
	return &DeathSystem{}
}

func (d *DeathSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.EnemyTagComponent.Kind(), component.HealthComponent.Kind(),
		func(e ecs.Entity, _ *component.EnemyTag, hp *component.Health) {
			if hp.HP > 0 {
				return
			}
			if ecs.Has(w, e, script.BossStateComponent.Kind()) {
				return
			}
			d.score(w, enemyKillScore)
			ecs.DestroyEntity(w, e)
		})

	ecs.ForEach(w, script.BossStateComponent.Kind(), func(e ecs.Entity, state *script.BossState) {
		if state == nil || !state.Defeated {
			return
		}
		if runner, ok := ecs.Get(w, e, script.RunnerComponent.Kind()); ok {
			runner.TerminateAll()
		}
		log.Printf("boss %s defeated", e)
		ecs.DestroyEntity(w, e)
	})
}

func (d *DeathSystem) score(w *ecs.World, points int) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	if score, ok := ecs.Get(w, player, component.PlayerScoreComponent.Kind()); ok {
		score.Score += points
	}
}
