// Package motion implements instruction-driven projectile movement. A
// Program is an ordered instruction list interpreted one instruction per
// tick, translating polar (speed, angle) state into a velocity vector.
//
// Angle convention: degrees, 0 = +X (right), 90 = +Y (screen down), angles
// increase clockwise, normalized to [-180, 180).
package motion

import (
	"math"

	"github.com/jakecoffman/cp"
)

const degToRad = math.Pi / 180.0

// Normalize wraps an angle in degrees into [-180, 180). Idempotent.
func Normalize(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	if angle >= 180 {
		angle -= 360
	}
	return angle
}

// ShortestArc returns the signed degree difference from one angle to another
// along the shorter rotation direction. The result lies in [-180, 180).
func ShortestArc(from, to float64) float64 {
	return Normalize(to - from)
}

// PolarVector converts (speed, angle) into a velocity vector.
func PolarVector(speed, angle float64) cp.Vector {
	rad := angle * degToRad
	return cp.Vector{X: math.Cos(rad) * speed, Y: math.Sin(rad) * speed}
}

// VectorAngle returns the angle of a vector in degrees, normalized.
func VectorAngle(v cp.Vector) float64 {
	return Normalize(math.Atan2(v.Y, v.X) / degToRad)
}

// AngleBetween returns the angle from (x, y) toward (tx, ty).
func AngleBetween(x, y, tx, ty float64) float64 {
	return Normalize(math.Atan2(ty-y, tx-x) / degToRad)
}
