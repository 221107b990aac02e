package component

// Invulnerable suppresses damage while Frames > 0. A zero Frames value with
// Permanent set never expires (survival spell cards).
type Invulnerable struct {
	Frames    int
	Permanent bool
}

var InvulnerableComponent = NewComponent[Invulnerable]()
