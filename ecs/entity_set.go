package ecs

import "iter"

// entitySet is a sparse set of active entities. Ids are small and dense
// because the allocator recycles them, so the sparse index stays compact.
type entitySet struct {
	dense  []Entity
	sparse []int
}

func (s *entitySet) has(e Entity) bool {
	if e >= Entity(len(s.sparse)) {
		return false
	}
	idx := s.sparse[e]
	return idx >= 0 && idx < len(s.dense) && s.dense[idx] == e
}

func (s *entitySet) add(e Entity) {
	if s.has(e) {
		return
	}
	for Entity(len(s.sparse)) <= e {
		s.sparse = append(s.sparse, -1)
	}
	s.dense = append(s.dense, e)
	s.sparse[e] = len(s.dense) - 1
}

func (s *entitySet) remove(e Entity) bool {
	if !s.has(e) {
		return false
	}
	idx := s.sparse[e]
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.sparse[moved] = idx

	s.dense = s.dense[:last]
	s.sparse[e] = -1
	return true
}

func (s *entitySet) len() int {
	return len(s.dense)
}

// all walks the dense list from the back, so removing the entity just
// yielded never causes another entity to be skipped.
func (s *entitySet) all() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i := len(s.dense) - 1; i >= 0; i-- {
			if i >= len(s.dense) {
				continue
			}
			if !yield(s.dense[i]) {
				return
			}
		}
	}
}
