package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/milk9111/stackworld/assets"
	"github.com/milk9111/stackworld/ecs"
	"github.com/milk9111/stackworld/state"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Health struct {
	HP int
}

const (
	startingDots = 12
	startingHP   = 5
	decayEvery   = 30
)

type play struct {
	state.Base
	demo   *demo
	sched  *ecs.Scheduler
	rng    *rand.Rand
	assets *assets.Manager
	log    *zap.Logger
	score  int
}

func newPlay(d *demo) *play {
	return &play{demo: d, rng: rand.New(rand.NewPCG(1, 2))}
}

func (p *play) Init(ctx *state.Context, w *ecs.World, a *assets.Manager) {
	p.assets = a
	p.log = ctx.Logger()

	ecs.Register[Position](w)
	ecs.Register[Velocity](w)
	ecs.Register[Health](w)

	p.sched = ecs.NewScheduler(
		&movement{width: float64(p.demo.width), height: float64(p.demo.height)},
		&decay{every: decayEvery},
		ecs.SystemFunc(p.reap),
	)
	p.spawn(w, startingDots)
}

func (p *play) spawn(w *ecs.World, n int) {
	for i := 0; i < n; i++ {
		e := w.Create()
		ecs.Add(w, e, Position{X: p.rng.Float64() * float64(p.demo.width), Y: p.rng.Float64() * float64(p.demo.height)})
		ecs.Add(w, e, Velocity{DX: p.rng.Float64()*4 - 2, DY: p.rng.Float64()*4 - 2})
		ecs.Add(w, e, Health{HP: startingHP})
	}
}

func (p *play) Update(ctx *state.Context, ev state.Event, w *ecs.World, a *assets.Manager) state.Trans {
	switch {
	case ev.Kind == state.EventTick:
		p.sched.Update(w)
		if ecs.Count[Health](w) == 0 {
			return state.Swap(newGameOver(p.score))
		}
	case ev.IsKeyDown(ebiten.KeyP):
		return state.Push(newPause(p.demo))
	case ev.IsKeyDown(ebiten.KeyB):
		return p.demo.push(ctx, "bonus")
	case ev.IsKeyDown(ebiten.KeySpace):
		p.spawn(w, 3)
	case ev.IsKeyDown(ebiten.KeyEscape):
		return state.Pop()
	}
	return state.None()
}

func (p *play) Exit(ctx *state.Context, w *ecs.World, a *assets.Manager) {
	ctx.Logger().Debug("play finished", zap.Int("score", p.score), zap.Int("alive", w.Len()))
}

func (p *play) Draw(screen *ebiten.Image, w *ecs.World, a *assets.Manager) {
	if a.HasTexture(dotTexture) {
		tex := a.LoadTexture(dotTexture)
		for _, pos := range ecs.Get[Position](w) {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(pos.X, pos.Y)
			screen.DrawImage(tex, op)
		}
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("score: %d   dots: %d\nSpace: more  P: pause  B: bonus  Esc: title", p.score, w.Len()))
}

// reap removes entities whose health ran out. Removal waits until the
// iteration is done since stores reject changes while they are read.
func (p *play) reap(w *ecs.World) {
	var dead []ecs.Entity
	for e, h := range ecs.Get[Health](w) {
		if h.HP <= 0 {
			dead = append(dead, e)
		}
	}
	for _, e := range dead {
		w.Remove(e)
		p.score++
	}
	if len(dead) > 0 {
		p.playSound("hit")
	}
}

func (p *play) playSound(name string) {
	if p.assets == nil || !p.assets.HasSound(name) {
		return
	}
	player, err := p.assets.GetSound(name).Player(audioContext())
	if err != nil {
		p.log.Warn("sound", zap.String("name", name), zap.Error(err))
		return
	}
	player.Play()
}

// movement moves every entity with a velocity and bounces it off the edges.
type movement struct {
	width, height float64
}

func (m *movement) Update(w *ecs.World) {
	ecs.ForEach2(w, func(e ecs.Entity, pos *Position, vel *Velocity) {
		pos.X += vel.DX
		pos.Y += vel.DY
		if pos.X < 0 || pos.X > m.width {
			vel.DX = -vel.DX
			pos.X = clamp(pos.X, 0, m.width)
		}
		if pos.Y < 0 || pos.Y > m.height {
			vel.DY = -vel.DY
			pos.Y = clamp(pos.Y, 0, m.height)
		}
	})
}

// decay takes one hit point from everything every n ticks.
type decay struct {
	every int
	ticks int
}

func (d *decay) Update(w *ecs.World) {
	d.ticks++
	if d.every <= 0 || d.ticks%d.every != 0 {
		return
	}
	for _, h := range ecs.GetMut[Health](w) {
		h.HP--
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
