package ecs

import "github.com/milk9111/danmaku/ecs/component"

// Add attaches a component to a live entity, replacing any existing value.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID()).Set(int(e.id()), value)
	return nil
}

// Get returns the component pointer for a live entity.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !kind.Valid() || !IsAlive(w, e) {
		return nil, false
	}
	v := w.store(kind.ID()).Get(int(e.id()))
	if v == nil {
		return nil, false
	}
	t, ok := v.(*T)
	return t, ok
}

// Has reports whether a live entity carries the component.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

// Remove detaches the component from an entity if present.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !kind.Valid() || !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID()).Remove(int(e.id()))
}

// ForEach visits every live entity carrying the component, in entity creation
// order. Entities created during the walk are not visited until the next tick;
// entities destroyed during the walk are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil || !kind.Valid() {
		return
	}
	n := len(w.order)
	for i := 0; i < n; i++ {
		e := w.order[i]
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity carrying both components, in creation order.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	n := len(w.order)
	for i := 0; i < n; i++ {
		e := w.order[i]
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 visits every live entity carrying all three components, in creation order.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	n := len(w.order)
	for i := 0; i < n; i++ {
		e := w.order[i]
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		c, ok := Get(w, e, kc)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}

// First returns the first live entity (in creation order) carrying the component.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil || !kind.Valid() {
		return 0, false
	}
	for _, e := range w.order {
		if Has(w, e, kind) {
			return e, true
		}
	}
	return 0, false
}

// Count returns the number of live entities carrying the component.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	if w == nil || !kind.Valid() {
		return 0
	}
	n := 0
	for _, e := range w.order {
		if Has(w, e, kind) {
			n++
		}
	}
	return n
}
