package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/stackworld/assets"
	"github.com/milk9111/stackworld/ecs"
	"github.com/milk9111/stackworld/state"
)

const dotTexture = "dot"

// title is the root state. It never pops itself; the window closes instead.
type title struct {
	state.Base
	demo   *demo
	visits int
}

func newTitle(d *demo) *title {
	return &title{demo: d}
}

func (t *title) Init(ctx *state.Context, w *ecs.World, a *assets.Manager) {
	if !a.HasTexture(dotTexture) {
		img := ebiten.NewImage(4, 4)
		img.Fill(color.White)
		a.AddTexture(dotTexture, img)
	}
}

func (t *title) Update(ctx *state.Context, ev state.Event, w *ecs.World, a *assets.Manager) state.Trans {
	switch {
	case ev.IsKeyDown(ebiten.KeyEnter):
		t.visits++
		return state.Push(newPlay(t.demo))
	case ev.IsKeyDown(ebiten.KeyB):
		t.visits++
		return t.demo.push(ctx, "bonus")
	case ev.IsKeyDown(ebiten.KeyQ):
		ctx.Window.Close()
	}
	return state.None()
}

func (t *title) Draw(screen *ebiten.Image, w *ecs.World, a *assets.Manager) {
	msg := "STACK DEMO\n\nEnter: play\nB: bonus round\nQ: quit"
	if t.visits > 0 {
		msg += fmt.Sprintf("\n\nrounds played: %d", t.visits)
	}
	ebitenutil.DebugPrint(screen, msg)
}

// gameOver replaces a finished play state; popping it returns to the title.
type gameOver struct {
	state.Base
	score int
}

func newGameOver(score int) *gameOver {
	return &gameOver{score: score}
}

func (g *gameOver) Update(ctx *state.Context, ev state.Event, w *ecs.World, a *assets.Manager) state.Trans {
	if ev.IsKeyDown(ebiten.KeyEnter) || ev.IsKeyDown(ebiten.KeyEscape) {
		return state.Pop()
	}
	return state.None()
}

func (g *gameOver) Draw(screen *ebiten.Image, w *ecs.World, a *assets.Manager) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("GAME OVER\n\nscore: %d\n\nEnter: back to title", g.score))
}
