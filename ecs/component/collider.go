package component

// Collider stores a circle hitbox. Mask lists the layers this collider
// wants contact reports against.
type Collider struct {
	Radius float64
	Layer  Layer
	Mask   Layer
}

var ColliderComponent = NewComponent[Collider]()
