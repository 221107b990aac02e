package component

// Bullet stores per-projectile combat data.
type Bullet struct {
	Damage int
}

// GrazeState tracks whether an enemy bullet has already been grazed so the
// player can only score one graze per bullet.
type GrazeState struct {
	Grazed bool
}

var (
	BulletComponent     = NewComponent[Bullet]()
	GrazeStateComponent = NewComponent[GrazeState]()
)
