package component

// PlayerScore accumulates score and graze count for the player.
type PlayerScore struct {
	Score int
	Graze int
}

var PlayerScoreComponent = NewComponent[PlayerScore]()
