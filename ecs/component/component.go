package component

import (
	"errors"
	"sync/atomic"
)

// Errors returned by the typed world accessors.
var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a component store inside a world. IDs are handed out
// process-wide, so every world agrees on which store holds which type.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind carries a ComponentID together with its value type, letting
// the generic accessors recover *T without callers restating the type.
type ComponentKind[T any] struct {
	id ComponentID
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

// Valid reports whether the kind came from NewComponent. The zero value is
// rejected by every accessor.
func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// ComponentHandle is the package-level registration point for a component
// type: declare one `var XComponent = NewComponent[X]()` per type and pass
// its Kind to the world accessors.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent allocates a fresh component identity for T.
func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: ComponentKind[T]{id: ComponentID(lastComponentID.Add(1))}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
