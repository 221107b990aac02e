package component

import "github.com/milk9111/danmaku/motion"

// MotionComponent attaches a motion program to a projectile. The program is
// removed with the entity and mutated only by the motion system.
var MotionComponent = NewComponent[motion.Program]()
