package ecs

import "testing"

func TestAddAndGet(t *testing.T) {
	w := NewWorld()
	e := w.Create()
	Register[health](w)
	Add(w, e, health{HP: 6})

	got := collect[health](w)
	if len(got) != 1 {
		t.Fatalf("expected 1 component, got %d", len(got))
	}
	if got[e].HP != 6 {
		t.Fatalf("expected hp 6 for %v, got %+v", e, got[e])
	}

	w.Remove(e)
	if n := len(collect[health](w)); n != 0 {
		t.Fatalf("expected no components after remove, got %d", n)
	}
}

func TestAddOverwrites(t *testing.T) {
	w := NewWorld()
	e := w.Create()
	Register[health](w)
	Add(w, e, health{HP: 1})
	Add(w, e, health{HP: 9})

	if Count[health](w) != 1 {
		t.Fatalf("expected a single component, got %d", Count[health](w))
	}
	if v, ok := Lookup[health](w, e); !ok || v.HP != 9 {
		t.Fatalf("expected hp 9, got %+v ok=%v", v, ok)
	}
}

func TestGetMutChangesAreVisible(t *testing.T) {
	w := NewWorld()
	e := w.Create()
	Register[health](w)
	Add(w, e, health{HP: 6})

	for got, c := range GetMut[health](w) {
		if got != e || c.HP != 6 {
			t.Fatalf("unexpected pair %v %+v", got, *c)
		}
		c.HP++
	}

	if v := collect[health](w)[e]; v.HP != 7 {
		t.Fatalf("expected hp 7 after mutation, got %d", v.HP)
	}
}

func TestGetValuesAreCopies(t *testing.T) {
	w := NewWorld()
	e := w.Create()
	Register[health](w)
	Add(w, e, health{HP: 3})

	for _, c := range Get[health](w) {
		c.HP = 100
	}
	if v, _ := Lookup[health](w, e); v.HP != 3 {
		t.Fatalf("Get must not expose stored values, hp=%d", v.HP)
	}
}

func TestRemoveStripsEveryStore(t *testing.T) {
	w := NewWorld()
	Register[health](w)
	Register[position](w)
	Register[velocity](w)

	a := w.Create()
	b := w.Create()
	Add(w, a, health{HP: 1})
	Add(w, a, position{X: 1})
	Add(w, b, health{HP: 2})

	w.Remove(a)

	if _, ok := Lookup[health](w, a); ok {
		t.Fatalf("health for removed entity still present")
	}
	if _, ok := Lookup[position](w, a); ok {
		t.Fatalf("position for removed entity still present")
	}
	if Count[velocity](w) != 0 {
		t.Fatalf("velocity store should stay empty")
	}
	if v, ok := Lookup[health](w, b); !ok || v.HP != 2 {
		t.Fatalf("unrelated entity lost its component: %+v ok=%v", v, ok)
	}
}

func TestRecycledEntityStartsWithoutComponents(t *testing.T) {
	w := NewWorld()
	Register[health](w)
	e := w.Create()
	Add(w, e, health{HP: 5})
	w.Remove(e)

	again := w.Create()
	if again != e {
		t.Fatalf("expected id %d to be reused, got %d", e, again)
	}
	if _, ok := Lookup[health](w, again); ok {
		t.Fatalf("recycled entity inherited a stale component")
	}
}

func TestAddToInactiveEntity(t *testing.T) {
	w := NewWorld()
	Register[health](w)
	ghost := Entity(42)

	Add(w, ghost, health{HP: 1})

	if w.Contains(ghost) {
		t.Fatalf("Add must not activate entities")
	}
	if v, ok := collect[health](w)[ghost]; !ok || v.HP != 1 {
		t.Fatalf("component on inactive id not stored: %+v ok=%v", v, ok)
	}
}

func TestUnregisteredComponentPanics(t *testing.T) {
	ops := []struct {
		name string
		fn   func(w *World)
	}{
		{"add", func(w *World) { Add(w, w.Create(), health{HP: 6}) }},
		{"get", func(w *World) { Get[health](w) }},
		{"get_mut", func(w *World) { GetMut[health](w) }},
		{"count", func(w *World) { Count[health](w) }},
		{"lookup", func(w *World) { Lookup[health](w, 0) }},
		{"for_each2", func(w *World) { ForEach2(w, func(Entity, *health, *position) {}) }},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			w := NewWorld()
			Register[position](w)
			expectPanic(t, ErrUnregisteredComponent, func() { op.fn(w) })
		})
	}
}

func TestReregisterDropsData(t *testing.T) {
	w := NewWorld()
	e := w.Create()
	Register[health](w)
	Add(w, e, health{HP: 4})

	Register[health](w)

	if !Registered[health](w) {
		t.Fatalf("expected health to stay registered")
	}
	if Count[health](w) != 0 {
		t.Fatalf("expected re-registration to clear the store, got %d", Count[health](w))
	}
}

func TestStoreRejectsWritesDuringIteration(t *testing.T) {
	w := NewWorld()
	Register[health](w)
	Register[position](w)
	a := w.Create()
	b := w.Create()
	Add(w, a, health{HP: 1})
	Add(w, b, health{HP: 2})

	t.Run("add_during_get_mut", func(t *testing.T) {
		expectPanic(t, ErrStoreBusy, func() {
			for range GetMut[health](w) {
				Add(w, w.Create(), health{HP: 3})
			}
		})
	})

	t.Run("remove_during_get", func(t *testing.T) {
		w := NewWorld()
		Register[health](w)
		e := w.Create()
		Add(w, e, health{HP: 1})
		expectPanic(t, ErrStoreBusy, func() {
			for got := range Get[health](w) {
				w.Remove(got)
			}
		})
	})

	t.Run("rejected_remove_keeps_entity_whole", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			w := NewWorld()
			Register[health](w)
			Register[position](w)
			Register[velocity](w)
			e := w.Create()
			Add(w, e, health{HP: 1})
			Add(w, e, position{X: 1})
			Add(w, e, velocity{DX: 1})

			expectPanic(t, ErrStoreBusy, func() {
				for got := range Get[health](w) {
					w.Remove(got)
				}
			})

			if !w.Contains(e) {
				t.Fatalf("run %d: entity deactivated by a rejected remove", i)
			}
			_, hasPos := Lookup[position](w, e)
			_, hasVel := Lookup[velocity](w, e)
			_, hasHP := Lookup[health](w, e)
			if !hasPos || !hasVel || !hasHP {
				t.Fatalf("run %d: components lost: pos=%v vel=%v hp=%v", i, hasPos, hasVel, hasHP)
			}
		}
	})

	t.Run("other_store_is_free", func(t *testing.T) {
		w := NewWorld()
		Register[health](w)
		Register[position](w)
		e := w.Create()
		Add(w, e, health{HP: 1})
		for got := range Get[health](w) {
			Add(w, got, position{X: 2})
		}
		if Count[position](w) != 1 {
			t.Fatalf("expected position to be added, got %d", Count[position](w))
		}
	})

	t.Run("store_released_after_break", func(t *testing.T) {
		w := NewWorld()
		Register[health](w)
		Add(w, w.Create(), health{HP: 1})
		Add(w, w.Create(), health{HP: 2})
		for range Get[health](w) {
			break
		}
		Add(w, w.Create(), health{HP: 3})
		if Count[health](w) != 3 {
			t.Fatalf("expected 3 components, got %d", Count[health](w))
		}
	})
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	Register[position](w)
	Register[velocity](w)

	moving := w.Create()
	still := w.Create()
	floating := w.Create()
	Add(w, moving, position{X: 1, Y: 1})
	Add(w, moving, velocity{DX: 2, DY: 3})
	Add(w, still, position{X: 5})
	Add(w, floating, velocity{DX: 1})

	var visited []Entity
	ForEach2(w, func(e Entity, p *position, v *velocity) {
		visited = append(visited, e)
		p.X += v.DX
		p.Y += v.DY
	})

	if len(visited) != 1 || visited[0] != moving {
		t.Fatalf("expected only %v, got %v", moving, visited)
	}
	if p, _ := Lookup[position](w, moving); p.X != 3 || p.Y != 4 {
		t.Fatalf("expected position (3,4), got %+v", p)
	}
	expectPanic(t, ErrStoreBusy, func() {
		ForEach2(w, func(e Entity, _ *position, _ *velocity) {
			w.Remove(e)
		})
	})
}

func TestScheduler(t *testing.T) {
	w := NewWorld()
	var order []string
	s := NewScheduler(
		SystemFunc(func(*World) { order = append(order, "first") }),
		nil,
		SystemFunc(func(*World) { order = append(order, "second") }),
	)
	s.Add(SystemFunc(func(*World) { order = append(order, "third") }), nil).
		Add(SystemFunc(func(*World) { order = append(order, "fourth") }))

	s.Update(w)

	if s.Len() != 4 || len(s.Systems()) != 4 {
		t.Fatalf("expected nil systems to be skipped, got %d", s.Len())
	}
	copied := s.Systems()
	copied[0] = nil
	if s.Systems()[0] == nil {
		t.Fatalf("Systems must return a copy")
	}

	var empty *Scheduler
	empty.Update(w)
	if empty.Len() != 0 {
		t.Fatalf("nil scheduler should be empty")
	}
	want := []string{"first", "second", "third", "fourth"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}
