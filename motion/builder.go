package motion

// Builder assembles motion programs fluently:
//
//	prog := motion.NewBuilder(120, 90).
//		Wait(30).
//		AccelerateTo(240, 60).
//		AimPlayer().
//		Build()
type Builder struct {
	speed        float64
	angle        float64
	instructions []Instruction
}

// NewBuilder starts a program with an initial polar state.
func NewBuilder(speed, angle float64) *Builder {
	return &Builder{speed: speed, angle: Normalize(angle)}
}

// Wait holds the current velocity for frames ticks.
func (b *Builder) Wait(frames int) *Builder {
	b.instructions = append(b.instructions, Instruction{Kind: KindWait, Frames: frames})
	return b
}

// SetSpeed sets the speed immediately, keeping the angle.
func (b *Builder) SetSpeed(speed float64) *Builder {
	b.instructions = append(b.instructions, Instruction{Kind: KindSetSpeed, Speed: speed})
	return b
}

// SetAngle sets the angle immediately, keeping the speed.
func (b *Builder) SetAngle(angle float64) *Builder {
	b.instructions = append(b.instructions, Instruction{Kind: KindSetAngle, Angle: angle})
	return b
}

// AccelerateTo interpolates speed linearly to target over frames ticks.
func (b *Builder) AccelerateTo(target float64, frames int) *Builder {
	b.instructions = append(b.instructions, Instruction{Kind: KindAccelerateTo, Speed: target, Frames: frames})
	return b
}

// TurnTo interpolates angle to target over frames ticks via the shortest arc.
func (b *Builder) TurnTo(target float64, frames int) *Builder {
	b.instructions = append(b.instructions, Instruction{Kind: KindTurnTo, Angle: target, Frames: frames})
	return b
}

// AimPlayer points the angle at the player's position at execution time.
func (b *Builder) AimPlayer() *Builder {
	b.instructions = append(b.instructions, Instruction{Kind: KindAimPlayer})
	return b
}

// Build returns the assembled program.
func (b *Builder) Build() *Program {
	ins := make([]Instruction, len(b.instructions))
	copy(ins, b.instructions)
	return &Program{Instructions: ins, Speed: b.speed, Angle: b.angle}
}
