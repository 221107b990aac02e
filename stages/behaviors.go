package stages

import (
	"log"
	"math"

	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/motion"
	"github.com/milk9111/danmaku/script"
)

// FairySweep enters from offscreen to a hold point, fires three aimed fans,
// then leaves toward exitX above the top edge.
func FairySweep(targetX, targetY, exitX float64) script.Script {
	return script.NewRoutine(
		script.MoveTo(targetX, targetY, 60),
		script.Wait(30),
		script.Repeat(3, func() []script.Step {
			return []script.Step{
				script.Do(func(ctx *script.Context) {
					x, y := ctx.OwnerPos()
					px, py := ctx.PlayerPos()
					script.FireFan(ctx, x, y, 5, 60, motion.AngleBetween(x, y, px, py), 140, "bullet_small", nil)
				}),
				script.Wait(20),
			}
		}),
		script.Wait(20),
		script.MoveTo(exitX, -40, 90),
		script.Do(func(ctx *script.Context) {
			ecs.DestroyEntity(ctx.World, ctx.Owner)
		}),
	)
}

// FairyDive runs the owner straight down on a motion program while dropping
// aimed shots. The owner despawns on a timer rather than a waypoint.
func FairyDive(speed float64, drops int) script.Script {
	return script.NewRoutine(
		script.Do(func(ctx *script.Context) {
			prog := motion.NewBuilder(speed, 90).
				AccelerateTo(speed*1.8, 120).
				Build()
			_ = ecs.Add(ctx.World, ctx.Owner, component.MotionComponent.Kind(), prog)
			_ = ecs.Add(ctx.World, ctx.Owner, component.TTLComponent.Kind(), &component.TTL{Frames: 8 * common.TPS})
		}),
		script.Repeat(drops, func() []script.Step {
			return []script.Step{
				script.Wait(25),
				script.Do(func(ctx *script.Context) {
					x, y := ctx.OwnerPos()
					ctx.FireAimed(x, y, 120+ctx.Random()*40, "bullet_round", nil)
				}),
			}
		}),
	)
}

// sineWeave drifts the owner downward along a sine, dropping aimed shots at
// a fixed cadence. Direct translation control, so it bypasses the motion
// interpreter on purpose.
type sineWeave struct {
	frames    int
	amplitude float64
	speedY    float64
	fireEvery int

	t     int
	baseX float64
}

// NewSineWeave builds a weaving descent lasting the given number of frames.
func NewSineWeave(frames int, amplitude, speedY float64, fireEvery int) script.Script {
	return &sineWeave{frames: frames, amplitude: amplitude, speedY: speedY, fireEvery: fireEvery}
}

func (s *sineWeave) Resume(ctx *script.Context) (int, bool, error) {
	x, y := ctx.OwnerPos()
	if s.t == 0 {
		s.baseX = x
	}
	s.t++

	nx := s.baseX + s.amplitude*math.Sin(float64(s.t)*0.05)
	ctx.SetPos(nx, y+s.speedY*common.Dt)

	if s.fireEvery > 0 && s.t%s.fireEvery == 0 {
		ctx.FireAimed(nx, y, 110+ctx.Random()*50, "bullet_round", nil)
	}

	if s.t >= s.frames {
		ecs.DestroyEntity(ctx.World, ctx.Owner)
		return 0, true, nil
	}
	// Zero wait keeps the resumption cadence at one step per tick, so the
	// frame counts above mean what they say.
	return 0, false, nil
}

// LoadWeaver compiles the designer-authored weaver behavior. Falls back to
// the built-in sine weave when the script is missing or broken, so a bad
// hot-reload never empties a wave.
func LoadWeaver() script.Script {
	s, err := script.LoadTengoScript("weaver.tengo")
	if err != nil {
		log.Printf("stages: weaver script unavailable, using builtin: %v", err)
		return NewSineWeave(6*common.TPS, 60, 80, 40)
	}
	return s
}
