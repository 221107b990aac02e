package script

import "github.com/milk9111/danmaku/ecs"

// StageRunner owns the top-level script representing the level timeline.
// The stage script runs with no owning actor and a context seeded for
// deterministic replay.
type StageRunner struct {
	runner    Runner
	stageTask *Task
	ctx       *Context
	seed      int64
	finished  bool
}

// NewStageRunner creates an idle stage runner.
func NewStageRunner() *StageRunner {
	return &StageRunner{}
}

// Start attaches the stage script, replacing any previous stage.
func (s *StageRunner) Start(w *ecs.World, stage Script, seed int64) *Task {
	if s == nil || stage == nil {
		return nil
	}
	s.seed = seed
	s.ctx = NewContext(w, 0, NewRNG(seed))
	task, err := s.runner.Attach(stage, s.ctx)
	if err != nil {
		return nil
	}
	s.stageTask = task
	s.finished = false
	return task
}

// Advance steps the stage by one tick and tracks completion of the main
// stage task.
func (s *StageRunner) Advance() {
	if s == nil {
		return
	}
	s.runner.Advance()
	if s.stageTask != nil && s.stageTask.Finished() {
		s.finished = true
	}
}

// Finished reports whether the main stage task has completed.
func (s *StageRunner) Finished() bool {
	return s != nil && s.finished
}

// Running reports whether a stage script has been started and not finished.
func (s *StageRunner) Running() bool {
	return s != nil && s.stageTask != nil && !s.finished
}

// Seed returns the seed the stage context was created with.
func (s *StageRunner) Seed() int64 {
	if s == nil {
		return 0
	}
	return s.seed
}

// Terminate stops the stage task and everything it scheduled on this runner.
func (s *StageRunner) Terminate() {
	if s == nil {
		return
	}
	s.runner.TerminateAll()
	s.finished = true
}
