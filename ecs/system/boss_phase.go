package system

import (
	"log"

	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/script"
)

// transitionDuration is the bullet-free pause between phases, in seconds.
const transitionDuration = 1.0

// BossPhaseSystem drives each boss through its phase list. A phase ends
// when its timer expires or its HP pool is depleted. Only a depletion that
// beats the timer awards a spell card bonus; a depletion landing on the same
// tick the timer runs out counts as a timeout. Ending a phase terminates the
// phase's tasks, clears every enemy bullet on screen, and starts a
// fixed-length transition before the next phase initializes.
type BossPhaseSystem struct{}

func NewBossPhaseSystem() *BossPhaseSystem {
	return &BossPhaseSystem{}
}

func (s *BossPhaseSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, script.BossStateComponent.Kind(), func(boss ecs.Entity, state *script.BossState) {
		if state == nil || state.Defeated {
			return
		}

		if state.Transitioning {
			state.TransitionTimer -= common.Dt
			if state.TransitionTimer <= 0 {
				state.Transitioning = false
				state.Initialized = false
			}
			return
		}

		if !state.Initialized {
			s.initPhase(w, boss, state)
			return
		}

		phase := state.CurrentPhase()
		if phase == nil {
			state.Defeated = true
			return
		}

		state.PhaseTimer -= common.Dt

		depleted := false
		if phase.Kind != script.PhaseSurvival {
			if hp, ok := ecs.Get(w, boss, component.HealthComponent.Kind()); ok && hp.HP <= 0 {
				depleted = true
			}
		}
		timedOut := state.PhaseTimer <= 0

		if !depleted && !timedOut {
			return
		}

		s.endPhase(w, boss, state, depleted && !timedOut)
	})
}

func (s *BossPhaseSystem) initPhase(w *ecs.World, boss ecs.Entity, state *script.BossState) {
	phase := state.CurrentPhase()
	if phase == nil {
		state.Defeated = true
		w.Events().Push(ecs.Event{Type: ecs.EventBossDefeated, Data: boss})
		return
	}

	state.Initialized = true
	state.PhaseTimer = phase.Duration

	if hp, ok := ecs.Get(w, boss, component.HealthComponent.Kind()); ok {
		hp.HP = phase.HP
		hp.MaxHP = phase.HP
	} else {
		_ = ecs.Add(w, boss, component.HealthComponent.Kind(), &component.Health{HP: phase.HP, MaxHP: phase.HP})
	}

	if phase.Kind != script.PhaseNormal {
		sc := &script.SpellCardState{
			SpellName:        phase.SpellName,
			BonusAvailable:   true,
			BonusValue:       phase.Bonus,
			DamageMultiplier: phase.DamageMultiplier,
			Invulnerable:     phase.Kind == script.PhaseSurvival,
		}
		_ = ecs.Add(w, boss, script.SpellCardComponent.Kind(), sc)
		if sc.Invulnerable {
			_ = ecs.Add(w, boss, component.InvulnerableComponent.Kind(), &component.Invulnerable{Permanent: true})
		}
	}

	// Phase scripts draw from a fresh source seeded off the frame counter,
	// which is itself deterministic under a fixed stage seed.
	rng := script.NewRNG(int64(w.Frame()))
	if phase.Script != nil {
		state.PhaseTask = script.AttachBehavior(w, boss, phase.Script(), rng)
	}
	if phase.Pattern != nil {
		state.PatternTask = script.AttachBehavior(w, boss, phase.Pattern(), rng)
	}

	log.Printf("boss %s: phase %d/%d start (hp=%d, %.1fs)", boss, state.Current+1, len(state.Phases), phase.HP, phase.Duration)
}

func (s *BossPhaseSystem) endPhase(w *ecs.World, boss ecs.Entity, state *script.BossState, bonusEligible bool) {
	phase := state.CurrentPhase()

	if state.PhaseTask != nil {
		state.PhaseTask.Terminate()
		state.PhaseTask = nil
	}
	if state.PatternTask != nil {
		state.PatternTask.Terminate()
		state.PatternTask = nil
	}

	// Spell bonus pays out only on a clean depletion with the card unbroken.
	if bonusEligible && phase != nil && phase.Kind == script.PhaseSpellCard {
		if sc, ok := ecs.Get(w, boss, script.SpellCardComponent.Kind()); ok && sc.BonusAvailable {
			s.awardBonus(w, sc.BonusValue)
		}
	}
	ecs.Remove(w, boss, script.SpellCardComponent.Kind())
	ecs.Remove(w, boss, component.InvulnerableComponent.Kind())

	clearEnemyBullets(w)

	if state.LastPhase() {
		state.Defeated = true
		w.Events().Push(ecs.Event{Type: ecs.EventBossDefeated, Data: boss})
		return
	}

	state.Current++
	state.Transitioning = true
	state.TransitionTimer = transitionDuration
	// The boss can't be chipped down between phases.
	_ = ecs.Add(w, boss, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: int(transitionDuration * common.TPS)})
}

func (s *BossPhaseSystem) awardBonus(w *ecs.World, bonus int) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	if score, ok := ecs.Get(w, player, component.PlayerScoreComponent.Kind()); ok {
		score.Score += bonus
	}
}

func clearEnemyBullets(w *ecs.World) {
	ecs.ForEach(w, component.EnemyBulletComponent.Kind(), func(e ecs.Entity, _ *component.EnemyBulletTag) {
		ecs.DestroyEntity(w, e)
	})
}
