package component

// Sprite stores render data. Name keys into the sprite palette; bullets and
// enemies without a loaded image render as flat shapes of Width x Height.
type Sprite struct {
	Name   string
	Width  float64
	Height float64
}

var SpriteComponent = NewComponent[Sprite]()
