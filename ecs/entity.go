package ecs

import "fmt"

// Entity is an opaque handle packing a slot index with the generation the
// slot had when the entity was created. A handle goes stale once its slot is
// recycled, so a destroyed entity cannot be reached through an old handle.
// The zero Entity is never issued.
type Entity uint64

type entityID uint32
type generation uint32

const generationShift = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<generationShift | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint64(e) >> generationShift)
}

// String renders as slot@generation for log lines.
func (e Entity) String() string {
	return fmt.Sprintf("%d@%d", e.id(), e.generation())
}

// Valid reports whether the handle was ever issued by a world.
func (e Entity) Valid() bool {
	return e != 0
}
