package ecs

import "github.com/milk9111/danmaku/ecs/component"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, and system order. Entities are
// enumerated in creation order; DestroyEntity takes effect immediately for
// liveness queries but slot cleanup is deferred to the end of the tick so
// systems never skip or double-visit survivors while iterating.
type World struct {
	nextID  entityID
	gens    []generation
	free    []entityID
	order   []Entity
	pending []Entity

	stores map[component.ComponentID]*SparseSet

	systems []System
	events  EventQueue
	frame   int
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity and appends it to the enumeration order.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.nextID++
		id = w.nextID
		w.gens = append(w.gens, 0)
	}
	e := makeEntity(id, w.gens[id-1])
	w.order = append(w.order, e)
	return e
}

// DestroyEntity marks an entity as dead. Components stay resident until the
// end-of-tick flush; IsAlive and Get report the entity gone immediately.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	w.gens[e.id()-1]++
	w.pending = append(w.pending, e)
	return true
}

// IsAlive reports whether an entity handle is still valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil || e.id() == 0 || int(e.id()) > len(w.gens) {
		return false
	}
	return w.gens[e.id()-1] == e.generation()
}

// Entities returns all live entities in creation order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, len(w.order))
	for _, e := range w.order {
		if IsAlive(w, e) {
			out = append(out, e)
		}
	}
	return out
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update clears last tick's events, runs all systems once in registration
// order, then flushes destroyed entities and advances the frame counter.
// Events pushed during the tick stay readable until the next Update, so
// callers can Drain them after Update returns.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.events.flush()
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.Flush()
	w.frame++
}

// Flush reclaims the slots of destroyed entities.
func (w *World) Flush() {
	if w == nil || len(w.pending) == 0 {
		return
	}
	dead := make(map[Entity]struct{}, len(w.pending))
	for _, e := range w.pending {
		dead[e] = struct{}{}
		for _, store := range w.stores {
			store.Remove(int(e.id()))
		}
		w.free = append(w.free, e.id())
	}
	w.pending = w.pending[:0]

	kept := w.order[:0]
	for _, e := range w.order {
		if _, ok := dead[e]; !ok {
			kept = append(kept, e)
		}
	}
	w.order = kept
}

// Frame returns the global tick counter.
func (w *World) Frame() int {
	if w == nil {
		return 0
	}
	return w.frame
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID) *SparseSet {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
