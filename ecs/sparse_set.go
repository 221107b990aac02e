package ecs

// denseEntry pairs an entity slot with its stored component value.
type denseEntry struct {
	id  int
	val any
}

// SparseSet maps entity slot ids to component values with O(1) insert,
// lookup, and remove. Values are stored as `any`; the typed accessors in
// generics.go recover the concrete pointer type. Removal swaps with the last
// entry, so dense order is unstable; ordered traversal goes through the
// world's entity list.
type SparseSet struct {
	dense  []denseEntry
	sparse []int
}

// index resolves a slot id to its dense position, or -1.
func (s *SparseSet) index(id int) int {
	if s == nil || id <= 0 || id > len(s.sparse) {
		return -1
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx].id != id {
		return -1
	}
	return idx
}

// Has reports whether a value is stored for the slot id.
func (s *SparseSet) Has(id int) bool {
	return s.index(id) >= 0
}

// Get returns the stored value for id, or nil.
func (s *SparseSet) Get(id int) any {
	idx := s.index(id)
	if idx < 0 {
		return nil
	}
	return s.dense[idx].val
}

// Set inserts or replaces the value for id.
func (s *SparseSet) Set(id int, v any) {
	if s == nil || id <= 0 {
		return
	}
	if idx := s.index(id); idx >= 0 {
		s.dense[idx].val = v
		return
	}
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	s.dense = append(s.dense, denseEntry{id: id, val: v})
	s.sparse[id-1] = len(s.dense) - 1
}

// Remove deletes the value for id, reporting whether one was present.
func (s *SparseSet) Remove(id int) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[idx] = moved
	s.sparse[moved.id-1] = idx
	s.dense[last] = denseEntry{}
	s.dense = s.dense[:last]
	s.sparse[id-1] = -1
	return true
}

// Len returns the number of stored values.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}
