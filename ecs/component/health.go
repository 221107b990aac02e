package component

// Health stores hit points.
type Health struct {
	HP    int
	MaxHP int
}

var HealthComponent = NewComponent[Health]()
