package component

// Transform stores position in playfield space (+X right, +Y down).
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
