package script

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
)

// Step is one element of a Routine. A step is called on each resumption
// until it reports done; wait is how many frames to suspend before the next
// call. A step that returns done with wait 0 hands control to the next step
// within the same resumption, which is how several actions run in one tick.
type Step func(ctx *Context) (wait int, done bool)

// Routine is an ordered step list driven as a resumable script, the same
// bytecode-like shape the motion interpreter uses applied to behavior
// control flow. Steps may carry closure state, so a Routine instance is
// single-use: build a fresh one per attached task.
type Routine struct {
	steps []Step
	pc    int
}

// NewRoutine builds a routine over the given steps.
func NewRoutine(steps ...Step) *Routine {
	return &Routine{steps: steps}
}

// Resume implements Script.
func (r *Routine) Resume(ctx *Context) (int, bool, error) {
	for r.pc < len(r.steps) {
		step := r.steps[r.pc]
		if step == nil {
			r.pc++
			continue
		}
		wait, done := step(ctx)
		if done {
			r.pc++
			if wait > 0 {
				return wait, false, nil
			}
			continue
		}
		if wait < 1 {
			// A suspending step must consume at least one frame or the
			// scheduler would spin on it forever.
			wait = 1
		}
		return wait, false, nil
	}
	return 0, true, nil
}

// Do runs fn and continues to the next step in the same tick.
func Do(fn func(ctx *Context)) Step {
	return func(ctx *Context) (int, bool) {
		if fn != nil {
			fn(ctx)
		}
		return 0, true
	}
}

// Wait suspends the routine for frames ticks.
func Wait(frames int) Step {
	return func(*Context) (int, bool) {
		if frames < 0 {
			frames = 0
		}
		return frames, true
	}
}

// WaitUntil polls pred once per tick until it holds.
func WaitUntil(pred func(ctx *Context) bool) Step {
	return func(ctx *Context) (int, bool) {
		if pred == nil || pred(ctx) {
			return 0, true
		}
		return 1, false
	}
}

// MoveTo linearly interpolates the owning actor's position to the target
// over frames ticks, advancing an equal delta each tick and snapping exactly
// to the target on the final one. frames <= 0 sets the position immediately.
// Without an owner or position the step is a no-op.
func MoveTo(targetX, targetY float64, frames int) Step {
	started := false
	remaining := 0
	var dx, dy float64
	return func(ctx *Context) (int, bool) {
		if ctx == nil || !ctx.Owner.Valid() {
			return 0, true
		}
		pos, ok := ecs.Get(ctx.World, ctx.Owner, component.TransformComponent.Kind())
		if !ok {
			return 0, true
		}
		if frames <= 0 {
			pos.X = targetX
			pos.Y = targetY
			return 0, true
		}
		if !started {
			started = true
			remaining = frames
			dx = (targetX - pos.X) / float64(frames)
			dy = (targetY - pos.Y) / float64(frames)
		}
		pos.X += dx
		pos.Y += dy
		remaining--
		if remaining <= 0 {
			// Land exactly on the target; per-frame deltas accumulate
			// floating point error.
			pos.X = targetX
			pos.Y = targetY
			return 1, true
		}
		return 1, false
	}
}

// Repeat runs the steps produced by build n times in sequence. build is
// invoked once per iteration so stateful steps start fresh.
func Repeat(n int, build func() []Step) Step {
	iter := 0
	var inner *Routine
	return func(ctx *Context) (int, bool) {
		for iter < n {
			if inner == nil {
				inner = NewRoutine(build()...)
			}
			wait, done, _ := inner.Resume(ctx)
			if !done {
				return wait, false
			}
			inner = nil
			iter++
		}
		return 0, true
	}
}

// Forever repeats the steps produced by build until the task is terminated.
func Forever(build func() []Step) Step {
	var inner *Routine
	return func(ctx *Context) (int, bool) {
		for {
			if inner == nil {
				inner = NewRoutine(build()...)
			}
			wait, done, _ := inner.Resume(ctx)
			if !done {
				return wait, false
			}
			inner = nil
			// An all-immediate iteration still has to yield or the loop
			// would never suspend.
			if wait <= 0 {
				return 1, false
			}
			return wait, false
		}
	}
}
