package stages

import (
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/script"
)

// NewStage1 builds the stage 1 timeline: three escalating waves, a
// clear-the-field gate, then the boss. The stage task finishes once the
// boss is gone, which the game shell reads as stage complete.
func NewStage1() script.Script {
	return script.NewRoutine(
		script.Wait(common.TPS),

		// Wave 1: sweeping fairies from both sides.
		script.Do(func(ctx *script.Context) {
			_, _ = ctx.SpawnEnemy("fairy_small", -30, 120, FairySweep(140, 150, 700), 0)
			_, _ = ctx.SpawnEnemy("fairy_small", common.ScreenWidth+30, 120, FairySweep(common.ScreenWidth-140, 150, -60), 0)
		}),
		script.Wait(2*common.TPS),
		script.Do(func(ctx *script.Context) {
			_, _ = ctx.SpawnEnemy("fairy_small", -30, 200, FairySweep(200, 220, 700), 0)
			_, _ = ctx.SpawnEnemy("fairy_small", common.ScreenWidth+30, 200, FairySweep(common.ScreenWidth-200, 220, -60), 0)
		}),

		// Wave 2: divers across the top, staggered by a random beat.
		script.Wait(3*common.TPS),
		script.Repeat(6, func() []script.Step {
			return []script.Step{
				script.Do(func(ctx *script.Context) {
					x := ctx.RandomRange(60, common.ScreenWidth-60)
					_, _ = ctx.SpawnEnemy("fairy_small", x, -30, FairyDive(150, 3+ctx.RandomInt(3)), 0)
				}),
				script.Wait(45),
			}
		}),

		// Wave 3: tougher weavers, one scripted in tengo.
		script.Wait(2*common.TPS),
		script.Do(func(ctx *script.Context) {
			_, _ = ctx.SpawnEnemy("fairy_large", common.ScreenWidth/3, -40, NewSineWeave(6*common.TPS, 60, 80, 40), 20)
			_, _ = ctx.SpawnEnemy("fairy_large", 2*common.ScreenWidth/3, -40, LoadWeaver(), 20)
		}),

		// Field must be clear before the midboss beat.
		script.WaitUntil(func(ctx *script.Context) bool {
			return ctx.EnemiesAlive() == 0
		}),
		script.Wait(2*common.TPS),

		script.Do(func(ctx *script.Context) {
			_, _ = ctx.SpawnBoss("boss1", common.ScreenWidth/2, -60)
		}),
		script.WaitUntil(func(ctx *script.Context) bool {
			return ctx.EnemiesAlive() == 0
		}),
		script.Wait(2*common.TPS),
	)
}
