package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/stackworld/assets"
	"github.com/milk9111/stackworld/config"
	"github.com/milk9111/stackworld/ecs"
	"github.com/milk9111/stackworld/engine"
	"github.com/milk9111/stackworld/script"
	"github.com/milk9111/stackworld/state"
)

func testDemo(t *testing.T) *demo {
	t.Helper()
	reg, err := newRegistry(config.Default(), nil)
	if err != nil {
		t.Fatalf("newRegistry: %v", err)
	}
	return &demo{width: 640, height: 480, registry: reg}
}

func TestRegistryHasBuiltins(t *testing.T) {
	d := testDemo(t)
	for _, name := range []string{"title", "play", "pause", "bonus"} {
		if _, err := d.registry.New(name); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
}

func TestMovementBounces(t *testing.T) {
	w := ecs.NewWorld()
	ecs.Register[Position](w)
	ecs.Register[Velocity](w)

	e := w.Create()
	ecs.Add(w, e, Position{X: 9, Y: 5})
	ecs.Add(w, e, Velocity{DX: 2, DY: -1})

	m := &movement{width: 10, height: 10}
	m.Update(w)

	pos, _ := ecs.Lookup[Position](w, e)
	vel, _ := ecs.Lookup[Velocity](w, e)
	if pos.X != 10 || pos.Y != 4 {
		t.Fatalf("unexpected position %+v", pos)
	}
	if vel.DX != -2 || vel.DY != -1 {
		t.Fatalf("expected horizontal bounce, got %+v", vel)
	}
}

func TestDecayEveryN(t *testing.T) {
	w := ecs.NewWorld()
	ecs.Register[Health](w)
	e := w.Create()
	ecs.Add(w, e, Health{HP: 2})

	d := &decay{every: 3}
	for i := 0; i < 5; i++ {
		d.Update(w)
	}
	if h, _ := ecs.Lookup[Health](w, e); h.HP != 1 {
		t.Fatalf("expected one hit after 5 ticks, got %d", h.HP)
	}
}

func TestPlayEndsInGameOver(t *testing.T) {
	d := testDemo(t)
	p := newPlay(d)
	w := ecs.NewWorld()
	a := assets.NewManager()
	p.Init(nil, w, a)

	if w.Len() != startingDots {
		t.Fatalf("expected %d dots, got %d", startingDots, w.Len())
	}

	tick := state.Event{Kind: state.EventTick}
	var tr state.Trans
	for i := 0; i < startingHP*decayEvery; i++ {
		tr = p.Update(nil, tick, w, a)
		if tr.Kind != state.TransNone {
			break
		}
	}
	if tr.Kind != state.TransSwap {
		t.Fatalf("expected swap to game over, got %v", tr)
	}
	over, ok := tr.Next.(*gameOver)
	if !ok || over.score != startingDots {
		t.Fatalf("unexpected next state %#v", tr.Next)
	}
	if w.Len() != 0 {
		t.Fatalf("expected all dots removed, got %d", w.Len())
	}
}

func TestPlayKeys(t *testing.T) {
	d := testDemo(t)
	cases := []struct {
		key  ebiten.Key
		kind state.TransKind
	}{
		{ebiten.KeyP, state.TransPush},
		{ebiten.KeyB, state.TransPush},
		{ebiten.KeyEscape, state.TransPop},
		{ebiten.KeySpace, state.TransNone},
	}
	for _, tc := range cases {
		t.Run(tc.key.String(), func(t *testing.T) {
			p := newPlay(d)
			w := ecs.NewWorld()
			p.Init(nil, w, assets.NewManager())
			tr := p.Update(nil, state.Event{Kind: state.EventKeyDown, Key: tc.key}, w, nil)
			if tr.Kind != tc.kind {
				t.Fatalf("expected %v, got %v", tc.kind, tr.Kind)
			}
		})
	}

	p := newPlay(d)
	w := ecs.NewWorld()
	p.Init(nil, w, assets.NewManager())
	p.Update(nil, state.Event{Kind: state.EventKeyDown, Key: ebiten.KeySpace}, w, nil)
	if w.Len() != startingDots+3 {
		t.Fatalf("space should spawn 3 more, got %d", w.Len())
	}
}

func TestGameOverPops(t *testing.T) {
	g := newGameOver(3)
	if tr := g.Update(nil, state.Event{Kind: state.EventTick}, nil, nil); tr.Kind != state.TransNone {
		t.Fatalf("tick should not leave game over")
	}
	if tr := g.Update(nil, state.Event{Kind: state.EventKeyDown, Key: ebiten.KeyEnter}, nil, nil); tr.Kind != state.TransPop {
		t.Fatalf("enter should pop, got %v", tr)
	}
}

func TestBonusScript(t *testing.T) {
	d := testDemo(t)
	s, err := d.registry.New("bonus")
	if err != nil {
		t.Fatal(err)
	}
	bonus := s.(*script.State)

	w := ecs.NewWorld()
	bonus.Init(nil, w, nil)
	if n := ecs.Count[script.Tag](w); n != 5 {
		t.Fatalf("expected 5 stars, got %d", n)
	}

	tick := state.Event{Kind: state.EventTick}
	for i := 0; i < 60; i++ {
		if tr := bonus.Update(nil, tick, w, nil); tr.Kind != state.TransNone {
			t.Fatalf("tick %d: unexpected %v", i, tr)
		}
	}
	if n := ecs.Count[script.Tag](w); n != 4 {
		t.Fatalf("expected a star to go after 60 ticks, got %d", n)
	}
	if bonus.Text() == "" {
		t.Fatalf("expected status text")
	}

	tr := bonus.Update(nil, state.Event{Kind: state.EventKeyDown, Key: ebiten.KeyP}, w, nil)
	if _, ok := tr.Next.(*pause); tr.Kind != state.TransPush || !ok {
		t.Fatalf("expected push of pause, got %v", tr)
	}
	if tr := bonus.Update(nil, state.Event{Kind: state.EventKeyDown, Key: ebiten.KeyEscape}, w, nil); tr.Kind != state.TransPop {
		t.Fatalf("expected pop, got %v", tr)
	}
}

func TestStartStateSitsOnTitle(t *testing.T) {
	for _, start := range []string{"title", "play", "bonus"} {
		t.Run(start, func(t *testing.T) {
			reg, err := newRegistry(config.Default(), nil)
			if err != nil {
				t.Fatalf("newRegistry: %v", err)
			}
			root, pushed, err := startStates(reg, start)
			if err != nil {
				t.Fatalf("startStates: %v", err)
			}
			g := engine.New(config.Default(), root, engine.WithPushed(pushed...))
			g.Start()

			want := 2
			if start == "title" {
				want = 1
			}
			if g.Depth() != want || g.World().Depth() != want {
				t.Fatalf("expected depth %d, got %d states and %d world states", want, g.Depth(), g.World().Depth())
			}

			g.Dispatch(state.Event{Kind: state.EventKeyDown, Key: ebiten.KeyEscape})
			if g.Depth() != 1 || g.World().Depth() != 1 {
				t.Fatalf("escape should leave only the title, got depth %d", g.Depth())
			}
			if _, ok := g.Top().(*title); !ok {
				t.Fatalf("expected title on top, got %T", g.Top())
			}
		})
	}

	reg, err := newRegistry(config.Default(), nil)
	if err != nil {
		t.Fatalf("newRegistry: %v", err)
	}
	if _, _, err := startStates(reg, "nowhere"); err == nil {
		t.Fatalf("expected an error for an unknown start state")
	}
}
