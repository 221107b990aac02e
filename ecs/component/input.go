package component

// InputState mirrors captured input into the ECS for the player controller.
type InputState struct {
	MoveX float64
	MoveY float64
	Focus bool
	Fire  bool
}

var InputStateComponent = NewComponent[InputState]()
