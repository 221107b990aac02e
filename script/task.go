// Package script implements the cooperative task scheduler, the primitive
// operations behavior scripts run against, and the scripting surfaces built
// on top of them (step routines and embedded tengo scripts).
//
// Execution is single-threaded and frame-synchronous: a script runs until it
// voluntarily yields a wait-frame count, and every scheduler resumes its
// tasks in attachment order exactly once per tick.
package script

import (
	"fmt"
	"log"

	"github.com/milk9111/danmaku/ecs/component"
)

// Script is a resumable behavior. Resume runs the script to its next
// suspension point and reports how many frames to wait before the next
// resumption. Returning done ends the task; returning an error ends the
// task and is logged at the scheduler boundary, never propagated.
type Script interface {
	Resume(ctx *Context) (wait int, done bool, err error)
}

// ScriptFunc adapts a function to the Script interface. The function is
// called once per resumption and must keep its own state between calls.
type ScriptFunc func(ctx *Context) (wait int, done bool, err error)

func (f ScriptFunc) Resume(ctx *Context) (int, bool, error) {
	return f(ctx)
}

// Task is one suspended script instance owned by the Runner that created it.
type Task struct {
	script     Script
	ctx        *Context
	waitFrames int
	finished   bool
}

// Finished reports whether the task has completed or been terminated.
func (t *Task) Finished() bool {
	return t == nil || t.finished
}

// Terminate marks the task finished. Idempotent; takes effect before the
// task's next would-be resumption and never interrupts one in progress.
func (t *Task) Terminate() {
	if t != nil {
		t.finished = true
	}
}

// Context returns the execution context the task was attached with.
func (t *Task) Context() *Context {
	if t == nil {
		return nil
	}
	return t.ctx
}

func (t *Task) resume() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("script: task panic: %v", r)
			t.finished = true
		}
	}()

	wait, done, err := t.script.Resume(t.ctx)
	if err != nil {
		log.Printf("script: task error: %v", err)
		t.finished = true
		return
	}
	if done {
		t.finished = true
		return
	}
	if wait > 0 {
		t.waitFrames = wait
	} else {
		t.waitFrames = 0
	}
}

// Runner is an ordered task collection attached to one actor or to the
// stage. Attachment order defines tick-processing order; later scripts
// observe state changes made by earlier ones in the same tick.
type Runner struct {
	tasks []*Task
}

// RunnerComponent attaches a Runner to an actor.
var RunnerComponent = component.NewComponent[Runner]()

// Attach starts a script. The first step runs synchronously, so its side
// effects are visible to the caller immediately.
func (r *Runner) Attach(s Script, ctx *Context) (*Task, error) {
	if s == nil {
		return nil, fmt.Errorf("script: attach nil script")
	}
	t := &Task{script: s, ctx: ctx}
	r.tasks = append(r.tasks, t)
	t.resume()
	return t, nil
}

// Advance processes every non-finished task once, in attachment order: a
// waiting task decrements its counter, any other is resumed to its next
// suspension point. Finished tasks are then removed in a single pass that
// preserves the relative order of survivors.
func (r *Runner) Advance() {
	if r == nil {
		return
	}
	n := len(r.tasks)
	for i := 0; i < n; i++ {
		t := r.tasks[i]
		if t.finished {
			continue
		}
		if t.waitFrames > 0 {
			t.waitFrames--
			continue
		}
		t.resume()
	}

	kept := r.tasks[:0]
	for _, t := range r.tasks {
		if !t.finished {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(r.tasks); i++ {
		r.tasks[i] = nil
	}
	r.tasks = kept
}

// TerminateAll marks every task finished and clears the collection.
func (r *Runner) TerminateAll() {
	if r == nil {
		return
	}
	for _, t := range r.tasks {
		t.Terminate()
	}
	r.tasks = nil
}

// HasActive reports whether any task is still running or waiting.
func (r *Runner) HasActive() bool {
	if r == nil {
		return false
	}
	for _, t := range r.tasks {
		if !t.finished {
			return true
		}
	}
	return false
}

// Len returns the number of attached tasks, finished ones included until the
// next Advance sweeps them.
func (r *Runner) Len() int {
	if r == nil {
		return 0
	}
	return len(r.tasks)
}
