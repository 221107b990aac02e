package motion

import "github.com/jakecoffman/cp"

// Kind identifies a motion instruction variant.
type Kind int

const (
	// KindWait holds the current velocity for Frames ticks.
	KindWait Kind = iota
	// KindSetSpeed sets the speed immediately (zero-duration).
	KindSetSpeed
	// KindSetAngle sets the angle immediately (zero-duration).
	KindSetAngle
	// KindAccelerateTo interpolates speed linearly to Speed over Frames ticks.
	KindAccelerateTo
	// KindTurnTo interpolates angle to Angle over Frames ticks along the
	// shortest arc.
	KindTurnTo
	// KindAimPlayer points the angle at the player (zero-duration).
	KindAimPlayer
)

// Instruction is one motion program step. Field use depends on Kind.
// Instructions are immutable once built; per-instruction interpolation state
// lives on the Program so instruction slices can be shared between bullets.
type Instruction struct {
	Kind   Kind
	Frames int
	Speed  float64
	Angle  float64
}

// Env carries the world state an instruction may read.
type Env struct {
	Pos       cp.Vector
	PlayerPos cp.Vector
	HasPos    bool
	HasPlayer bool
}

// Program is a per-actor instruction sequence with a program counter, a
// per-instruction frame counter, and current polar motion state. It is
// mutated only by Step.
type Program struct {
	Instructions []Instruction
	PC           int
	Speed        float64
	Angle        float64
	Finished     bool

	frameCounter int
	deltaSpeed   float64
	deltaAngle   float64
}

// Clone returns an independent copy sharing the (immutable) instruction
// slice. Every spawned bullet gets its own clone so program counters never
// alias between projectiles.
func (p *Program) Clone() *Program {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Step executes the current instruction for one tick and updates the polar
// state. It returns the resulting velocity and false once the program has
// finished, after which the velocity must no longer be applied.
func (p *Program) Step(env Env) (cp.Vector, bool) {
	if p == nil || p.Finished {
		return cp.Vector{}, false
	}
	if p.PC >= len(p.Instructions) {
		p.Finished = true
		return cp.Vector{}, false
	}

	ins := p.Instructions[p.PC]
	switch ins.Kind {
	case KindWait:
		p.stepWait(ins)
	case KindSetSpeed:
		p.Speed = ins.Speed
		p.PC++
	case KindSetAngle:
		p.Angle = Normalize(ins.Angle)
		p.PC++
	case KindAccelerateTo:
		p.stepAccelerateTo(ins)
	case KindTurnTo:
		p.stepTurnTo(ins)
	case KindAimPlayer:
		if env.HasPos && env.HasPlayer {
			p.Angle = AngleBetween(env.Pos.X, env.Pos.Y, env.PlayerPos.X, env.PlayerPos.Y)
		}
		p.PC++
	default:
		p.PC++
	}

	return PolarVector(p.Speed, p.Angle), true
}

func (p *Program) stepWait(ins Instruction) {
	if p.frameCounter == 0 {
		p.frameCounter = ins.Frames
	}
	p.frameCounter--
	if p.frameCounter <= 0 {
		p.frameCounter = 0
		p.PC++
	}
}

func (p *Program) stepAccelerateTo(ins Instruction) {
	if p.frameCounter == 0 {
		if ins.Frames > 0 {
			p.deltaSpeed = (ins.Speed - p.Speed) / float64(ins.Frames)
		} else {
			p.deltaSpeed = 0
		}
		p.frameCounter = ins.Frames
	}
	p.Speed += p.deltaSpeed
	p.frameCounter--
	if p.frameCounter <= 0 {
		// Snap to the target to eliminate accumulated rounding error.
		p.Speed = ins.Speed
		p.frameCounter = 0
		p.PC++
	}
}

func (p *Program) stepTurnTo(ins Instruction) {
	if p.frameCounter == 0 {
		if ins.Frames > 0 {
			p.deltaAngle = ShortestArc(p.Angle, ins.Angle) / float64(ins.Frames)
		} else {
			p.deltaAngle = 0
		}
		p.frameCounter = ins.Frames
	}
	p.Angle = Normalize(p.Angle + p.deltaAngle)
	p.frameCounter--
	if p.frameCounter <= 0 {
		p.Angle = Normalize(ins.Angle)
		p.frameCounter = 0
		p.PC++
	}
}
