package component

import "github.com/jakecoffman/cp"

// Velocity stores linear velocity in px/s.
type Velocity struct {
	Vec cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()
