package ecs

import (
	"fmt"
	"iter"
	"reflect"
)

// store is the type-erased view of a componentStore. It only exposes what a
// world state needs without knowing the component type.
type store interface {
	remove(e Entity)
	// blocks reports whether removing e would panic because the store is
	// being iterated.
	blocks(e Entity) bool
	len() int
	componentType() reflect.Type
}

// componentStore maps entities to values of one component type. Values are
// boxed so that GetMut can hand out stable pointers.
type componentStore[T any] struct {
	data    map[Entity]*T
	readers int
}

func newComponentStore[T any]() *componentStore[T] {
	return &componentStore[T]{data: make(map[Entity]*T)}
}

func (s *componentStore[T]) insert(e Entity, v T) {
	s.checkIdle()
	s.data[e] = &v
}

func (s *componentStore[T]) lookup(e Entity) (*T, bool) {
	c, ok := s.data[e]
	return c, ok
}

func (s *componentStore[T]) remove(e Entity) {
	if _, ok := s.data[e]; !ok {
		return
	}
	s.checkIdle()
	delete(s.data, e)
}

func (s *componentStore[T]) blocks(e Entity) bool {
	if s.readers == 0 {
		return false
	}
	_, ok := s.data[e]
	return ok
}

func (s *componentStore[T]) len() int {
	return len(s.data)
}

func (s *componentStore[T]) componentType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (s *componentStore[T]) checkIdle() {
	if s.readers > 0 {
		panic(fmt.Errorf("%w: %s", ErrStoreBusy, s.componentType()))
	}
}

func (s *componentStore[T]) values() iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		s.readers++
		defer func() { s.readers-- }()
		for e, c := range s.data {
			if !yield(e, *c) {
				return
			}
		}
	}
}

func (s *componentStore[T]) pointers() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		s.readers++
		defer func() { s.readers-- }()
		for e, c := range s.data {
			if !yield(e, c) {
				return
			}
		}
	}
}
