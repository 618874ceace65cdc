package ecs

import "fmt"

// StateStack saves and restores whole world states. It is handed out only by
// New so that code holding just a *World cannot reshape the stack.
type StateStack struct {
	world *World
}

// World returns the world controlled by this stack.
func (s *StateStack) World() *World {
	return s.world
}

// Push installs a fresh, empty world state on top. The previous state is kept
// as-is underneath.
func (s *StateStack) Push() {
	s.world.stack = append(s.world.stack, newWorldState())
}

// Pop discards the top world state with all of its entities and components.
// The stack must never become empty, so popping the last state panics.
func (s *StateStack) Pop() {
	n := len(s.world.stack)
	if n <= 1 {
		panic(fmt.Errorf("%w (depth %d)", ErrEmptyStack, n))
	}
	s.world.stack[n-1] = nil
	s.world.stack = s.world.stack[:n-1]
}

// Switch replaces the top world state with a fresh one. It fails the same
// way Pop does.
func (s *StateStack) Switch() {
	s.Pop()
	s.Push()
}

// Depth returns the number of world states on the stack.
func (s *StateStack) Depth() int {
	return s.world.Depth()
}
