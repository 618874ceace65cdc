package ecs

import "slices"

// System updates the live world state once per tick.
type System interface {
	Update(w *World)
}

// SystemFunc lets a plain function or method value, such as
// ecs.SystemFunc(p.reap), be scheduled as a System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) {
	f(w)
}

// Scheduler runs systems in the order they were added. It holds no world
// of its own: each Update runs against whichever state is on top of w.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	return new(Scheduler).Add(systems...)
}

// Add appends systems, skipping nils, and returns s for chaining.
func (s *Scheduler) Add(systems ...System) *Scheduler {
	for _, system := range systems {
		if system != nil {
			s.systems = append(s.systems, system)
		}
	}
	return s
}

func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Len returns the number of scheduled systems.
func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}
	return len(s.systems)
}

// Systems returns a copy of the scheduled systems in run order.
func (s *Scheduler) Systems() []System {
	return slices.Clone(s.systems)
}
