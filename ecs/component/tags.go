package component

// PlayerTag marks the player actor.
type PlayerTag struct{}

// EnemyTag marks enemy actors, bosses included.
type EnemyTag struct{}

// EnemyKindTag records which registry kind spawned an enemy.
type EnemyKindTag struct {
	Kind string
}

// EnemyBulletTag marks projectiles fired by enemies. The boss phase machine
// clears every actor carrying this tag on a phase transition.
type EnemyBulletTag struct{}

// PlayerBulletTag marks projectiles fired by the player.
type PlayerBulletTag struct{}

var (
	PlayerTagComponent    = NewComponent[PlayerTag]()
	EnemyTagComponent     = NewComponent[EnemyTag]()
	EnemyKindTagComponent = NewComponent[EnemyKindTag]()
	EnemyBulletComponent  = NewComponent[EnemyBulletTag]()
	PlayerBulletComponent = NewComponent[PlayerBulletTag]()
)
