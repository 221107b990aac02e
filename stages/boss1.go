package stages

import (
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/motion"
	"github.com/milk9111/danmaku/script"
)

const (
	boss1Radius = 22.0
	boss1HomeX  = common.ScreenWidth / 2
	boss1HomeY  = 140.0
)

// NewBoss1 constructs the stage 1 boss with its three phase fight. The
// phase machine owns HP pools and timers; everything here is geometry and
// bullet choreography.
func NewBoss1(w *ecs.World, x, y float64) ecs.Entity {
	e := ecs.CreateEntity(w)

	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{HP: 1, MaxHP: 1})
	_ = ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	_ = ecs.Add(w, e, component.EnemyKindTagComponent.Kind(), &component.EnemyKindTag{Kind: "boss1"})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Name: "boss1", Width: boss1Radius * 2, Height: boss1Radius * 2})
	_ = ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Radius: boss1Radius,
		Layer:  component.LayerEnemy,
		Mask:   component.LayerPlayerBullet,
	})

	_ = ecs.Add(w, e, script.BossStateComponent.Kind(), &script.BossState{
		Phases: []script.Phase{
			{
				HP:       300,
				Duration: 30,
				Kind:     script.PhaseNormal,
				Pattern:  boss1RingPattern,
				Script:   boss1SwayScript,
			},
			{
				HP:               450,
				Duration:         40,
				Kind:             script.PhaseSpellCard,
				SpellName:        "Night Sign \"Scarlet Net\"",
				Bonus:            100000,
				DamageMultiplier: 0.8,
				Pattern:          boss1NetPattern,
				Script:           boss1ReturnHomeScript,
			},
			{
				HP:        1000,
				Duration:  20,
				Kind:      script.PhaseSurvival,
				SpellName: "Final Rite \"Unyielding Torrent\"",
				Bonus:     200000,
				Pattern:   boss1TorrentPattern,
				Script:    boss1ReturnHomeScript,
			},
		},
	})

	return e
}

// boss1SwayScript drifts the boss between two hold points forever.
func boss1SwayScript() script.Script {
	return script.NewRoutine(
		script.Forever(func() []script.Step {
			return []script.Step{
				script.MoveTo(boss1HomeX-120, boss1HomeY, 90),
				script.Wait(45),
				script.MoveTo(boss1HomeX+120, boss1HomeY, 90),
				script.Wait(45),
			}
		}),
	)
}

func boss1ReturnHomeScript() script.Script {
	return script.NewRoutine(
		script.MoveTo(boss1HomeX, boss1HomeY, 60),
	)
}

// boss1RingPattern fires a ring whose seam rotates a little each volley.
func boss1RingPattern() script.Script {
	volley := 0
	return script.NewRoutine(
		script.Forever(func() []script.Step {
			return []script.Step{
				script.Do(func(ctx *script.Context) {
					x, y := ctx.OwnerPos()
					start := motion.Normalize(float64(volley) * 13)
					script.FireRing(ctx, x, y, 24, 130, "bullet_small", nil, start)
					volley++
				}),
				script.Wait(45),
			}
		}),
	)
}

// boss1NetPattern lays slow crossing fans, then snaps a fast aimed knife
// through the gaps.
func boss1NetPattern() script.Script {
	return script.NewRoutine(
		script.Forever(func() []script.Step {
			return []script.Step{
				script.Do(func(ctx *script.Context) {
					x, y := ctx.OwnerPos()
					script.FireFan(ctx, x, y, 7, 90, 90-20, 100, "bullet_orb", nil)
					script.FireFan(ctx, x, y, 7, 90, 90+20, 100, "bullet_orb", nil)
				}),
				script.Wait(30),
				script.Do(func(ctx *script.Context) {
					x, y := ctx.OwnerPos()
					jitter := ctx.RandomRange(-8, 8)
					px, py := ctx.PlayerPos()
					ctx.Fire(x, y, 260, motion.AngleBetween(x, y, px, py)+jitter, "bullet_knife", nil)
				}),
				script.Wait(30),
			}
		}),
	)
}

// boss1TorrentPattern is the survival closer: dual spirals whose bullets
// stall for a beat and then surge outward.
func boss1TorrentPattern() script.Script {
	offset := 0.0
	return script.NewRoutine(
		script.Forever(func() []script.Step {
			return []script.Step{
				script.Do(func(ctx *script.Context) {
					x, y := ctx.OwnerPos()
					surge := &script.FireOpts{
						Motion: motion.NewBuilder(110, 0).
							Wait(20).
							AccelerateTo(40, 30).
							AccelerateTo(190, 60).
							Build(),
					}
					script.FireSpiral(ctx, x, y, 2, 3, 110, offset, "bullet_round", surge)
					offset = motion.Normalize(offset + 17)
				}),
				script.Wait(8),
			}
		}),
	)
}
