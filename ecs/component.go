package ecs

import (
	"fmt"
	"iter"
	"reflect"
)

// Register installs an empty store for T in the current world state.
// Registering a type again replaces its store and drops the data it held.
func Register[T any](w *World) {
	s := w.current()
	s.stores[reflect.TypeFor[T]()] = newComponentStore[T]()
}

// Registered reports whether T has a store in the current world state.
func Registered[T any](w *World) bool {
	_, ok := w.current().stores[reflect.TypeFor[T]()]
	return ok
}

// Add sets e's T component, replacing any previous value. T must be
// registered. The entity is not required to be active.
func Add[T any](w *World, e Entity, value T) {
	storeOf[T](w).insert(e, value)
}

// Get returns every (entity, value) pair stored for T, in no particular
// order. It panics right away if T is not registered.
func Get[T any](w *World) iter.Seq2[Entity, T] {
	return storeOf[T](w).values()
}

// GetMut is like Get but yields pointers so components can be changed in
// place. Adding or removing T components while iterating panics.
func GetMut[T any](w *World) iter.Seq2[Entity, *T] {
	return storeOf[T](w).pointers()
}

// Count returns the number of entities holding a T component.
func Count[T any](w *World) int {
	return storeOf[T](w).len()
}

// Lookup returns e's T component.
func Lookup[T any](w *World, e Entity) (T, bool) {
	var zero T
	c, ok := storeOf[T](w).lookup(e)
	if !ok {
		return zero, false
	}
	return *c, true
}

// LookupMut returns a pointer to e's T component.
func LookupMut[T any](w *World, e Entity) (*T, bool) {
	return storeOf[T](w).lookup(e)
}

func storeOf[T any](w *World) *componentStore[T] {
	typ := reflect.TypeFor[T]()
	st, ok := w.current().stores[typ]
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnregisteredComponent, typ))
	}
	cs, ok := st.(*componentStore[T])
	if !ok {
		panic(fmt.Errorf("%w: %s is held by a %s store", ErrUnregisteredComponent, typ, st.componentType()))
	}
	return cs
}
