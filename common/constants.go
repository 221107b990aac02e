package common

const (
	// Playfield size in pixels. The playfield uses screen coordinates:
	// +X right, +Y down, angle 0 = right, 90 = down, clockwise.
	ScreenWidth  = 640
	ScreenHeight = 760

	// TPS is the fixed logical tick rate. All frame counts in scripts and
	// motion programs assume this rate.
	TPS = 60

	// Dt is the fixed timestep in seconds.
	Dt = 1.0 / TPS

	// OffscreenMargin is how far outside the playfield an actor may travel
	// before the lifetime system culls it.
	OffscreenMargin = 64
)
