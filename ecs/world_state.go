package ecs

import (
	"fmt"
	"math"
	"reflect"
)

// worldState is one complete universe: the id allocator, the active entity
// set, and every registered component store.
type worldState struct {
	nextID   uint64
	limit    uint64
	reusable []Entity
	active   entitySet
	stores   map[reflect.Type]store
}

func newWorldState() *worldState {
	return &worldState{
		limit:  math.MaxUint64,
		stores: make(map[reflect.Type]store),
	}
}

// create prefers the most recently freed id and only mints a new one from
// the counter when nothing is waiting to be reused.
func (s *worldState) create() Entity {
	var e Entity
	if n := len(s.reusable); n > 0 {
		e = s.reusable[n-1]
		s.reusable = s.reusable[:n-1]
	} else {
		if s.nextID >= s.limit {
			panic(ErrEntityLimit)
		}
		e = Entity(s.nextID)
		s.nextID++
	}
	s.active.add(e)
	return e
}

func (s *worldState) contains(e Entity) bool {
	return s.active.has(e)
}

// remove strips e from every store, including stores that never held it.
// Inactive ids are ignored.
func (s *worldState) remove(e Entity) {
	if !s.active.has(e) {
		return
	}
	// Nothing is touched unless every store can let go of e.
	for _, st := range s.stores {
		if st.blocks(e) {
			panic(fmt.Errorf("%w: %s", ErrStoreBusy, st.componentType()))
		}
	}
	for _, st := range s.stores {
		st.remove(e)
	}
	s.active.remove(e)
	s.reusable = append(s.reusable, e)
}
