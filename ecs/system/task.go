package system

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/script"
)

// TaskSystem advances every cooperative script by one tick: the stage
// timeline first, then each actor's Runner in entity creation order. Actors
// spawned during this tick are not advanced until the next one.
type TaskSystem struct {
	stage *script.StageRunner
}

func NewTaskSystem(stage *script.StageRunner) *TaskSystem {
	return &TaskSystem{stage: stage}
}

func (t *TaskSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if t.stage != nil {
		t.stage.Advance()
	}

	ecs.ForEach(w, script.RunnerComponent.Kind(), func(e ecs.Entity, runner *script.Runner) {
		if runner == nil {
			return
		}
		runner.Advance()
	})
}
