package ecs

import "iter"

// World is a stack of world states. Only the top of the stack is visible to
// entity and component operations; the states beneath it are kept untouched
// until the stack is popped back down to them.
type World struct {
	stack []*worldState
}

// NewWorld creates a world holding a single empty world state. The returned
// world cannot push or pop states; use New when a StateStack is needed.
func NewWorld() *World {
	return &World{stack: []*worldState{newWorldState()}}
}

// New creates a world together with the StateStack that controls it. The
// stack handle is meant for the driver that keeps the application states and
// the world states in lockstep.
func New() (*World, *StateStack) {
	w := NewWorld()
	return w, &StateStack{world: w}
}

func (w *World) current() *worldState {
	if w == nil || len(w.stack) == 0 {
		panic(ErrNoWorldState)
	}
	return w.stack[len(w.stack)-1]
}

// Create allocates an entity in the current world state.
func (w *World) Create() Entity {
	return w.current().create()
}

// Contains reports whether e is active in the current world state.
func (w *World) Contains(e Entity) bool {
	return w.current().contains(e)
}

// Remove deactivates e, recycles its id and drops its components. Removing
// an entity that is not active is a no-op.
func (w *World) Remove(e Entity) {
	w.current().remove(e)
}

// Iter yields the active entities of the current world state in no
// particular order. The sequence can be ranged over more than once and always
// walks whichever state is on top at that time. The yielded entity may be
// removed during iteration.
func (w *World) Iter() iter.Seq[Entity] {
	w.current() // fail at call time on an empty stack
	return func(yield func(Entity) bool) {
		for e := range w.current().active.all() {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of active entities in the current world state.
func (w *World) Len() int {
	return w.current().active.len()
}

// Depth returns the number of world states on the stack.
func (w *World) Depth() int {
	if w == nil {
		return 0
	}
	return len(w.stack)
}
