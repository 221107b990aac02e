package component

// TTL destroys the entity when Frames reaches zero.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
