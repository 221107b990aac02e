package script

import "github.com/milk9111/danmaku/ecs/component"

// PhaseKind classifies a boss phase.
type PhaseKind int

const (
	// PhaseNormal is a plain HP/timer bounded segment.
	PhaseNormal PhaseKind = iota
	// PhaseSpellCard is bonus-eligible: depleting it before the timer runs
	// out awards its bonus, unless the player was hit during the phase.
	PhaseSpellCard
	// PhaseSurvival is a spell card the boss is invulnerable through; it
	// only ends by timeout.
	PhaseSurvival
)

// Phase defines one timed/HP-bounded segment of boss behavior. Script and
// Pattern are factories so every initialization gets a fresh, single-use
// script state.
type Phase struct {
	HP               int
	Duration         float64 // seconds
	Kind             PhaseKind
	SpellName        string
	Bonus            int
	DamageMultiplier float64
	// Pattern is the phase's default firing pattern, run as its own task
	// alongside the phase script.
	Pattern func() Script
	// Script drives the phase's choreography.
	Script func() Script
}

// BossState sequences a boss through its phases. Exactly one phase is
// current at any time and the index never decreases; Defeated is a one-shot
// signal consumed by the death system.
type BossState struct {
	Phases          []Phase
	Current         int
	PhaseTimer      float64
	Transitioning   bool
	TransitionTimer float64
	Initialized     bool
	PhaseTask       *Task
	PatternTask     *Task
	Defeated        bool
}

// CurrentPhase returns the active phase definition.
func (b *BossState) CurrentPhase() *Phase {
	if b == nil || b.Current < 0 || b.Current >= len(b.Phases) {
		return nil
	}
	return &b.Phases[b.Current]
}

// LastPhase reports whether the current phase is the final one.
func (b *BossState) LastPhase() bool {
	return b != nil && b.Current >= len(b.Phases)-1
}

// SpellCardState is attached to a boss while a spell-card or survival phase
// runs. BonusAvailable flips to false when the player is hit and when the
// bonus is paid out, whichever comes first.
type SpellCardState struct {
	SpellName        string
	BonusAvailable   bool
	BonusValue       int
	DamageMultiplier float64
	Invulnerable     bool
}

var (
	BossStateComponent = component.NewComponent[BossState]()
	SpellCardComponent = component.NewComponent[SpellCardState]()
)
