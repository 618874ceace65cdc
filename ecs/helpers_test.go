package ecs

import (
	"errors"
	"testing"
)

type health struct {
	HP int
}

type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %T: %v", r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("expected %v, got %v", target, err)
		}
	}()
	fn()
}

func collect[T any](w *World) map[Entity]T {
	out := make(map[Entity]T)
	for e, c := range Get[T](w) {
		out[e] = c
	}
	return out
}
