package component

// Layer is a collision layer bitmask.
type Layer uint32

const (
	LayerPlayer Layer = 1 << iota
	LayerEnemy
	LayerPlayerBullet
	LayerEnemyBullet
)

// ParseLayer maps a prefab identifier to a layer bit. Unknown names map to 0.
func ParseLayer(name string) Layer {
	switch name {
	case "player":
		return LayerPlayer
	case "enemy":
		return LayerEnemy
	case "player_bullet":
		return LayerPlayerBullet
	case "enemy_bullet":
		return LayerEnemyBullet
	}
	return 0
}

// ParseMask folds a list of prefab layer names into a mask.
func ParseMask(names []string) Layer {
	var m Layer
	for _, n := range names {
		m |= ParseLayer(n)
	}
	return m
}
