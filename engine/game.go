// Package engine drives a stack of application states with ebiten. Every
// state owns one world state: pushing an application state pushes a fresh
// world state, popping one discards it, so the two stacks always have the
// same depth.
package engine

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/stackworld/assets"
	"github.com/milk9111/stackworld/config"
	"github.com/milk9111/stackworld/ecs"
	"github.com/milk9111/stackworld/state"
)

var ErrEmptyStack = errors.New("engine: state stack is empty")

type Game struct {
	states []state.State
	world  *ecs.World
	stack  *ecs.StateStack
	assets *assets.Manager
	ctx    *state.Context
	queue  state.Queue

	cfg     config.Config
	log     *zap.Logger
	watcher *assets.Watcher
	pushed  []state.State

	gamepads   map[ebiten.GamepadID]struct{}
	outsideW   int
	outsideH   int
	tick       uint64
	started    bool
	terminated bool
}

type Option func(*Game)

func WithLogger(log *zap.Logger) Option {
	return func(g *Game) {
		if log != nil {
			g.log = log
		}
	}
}

// WithAssets shares an already loaded asset manager with the states.
func WithAssets(a *assets.Manager) Option {
	return func(g *Game) {
		if a != nil {
			g.assets = a
		}
	}
}

// WithWatcher feeds file changes from w into the asset manager once per tick.
// The game closes the watcher in Close.
func WithWatcher(w *assets.Watcher) Option {
	return func(g *Game) {
		g.watcher = w
	}
}

// WithPushed pushes states on top of the initial state, in order, right after
// the initial state's Init. Each one gets its own world state as if it had
// been pushed by a transition.
func WithPushed(states ...state.State) Option {
	return func(g *Game) {
		g.pushed = append(g.pushed, states...)
	}
}

// New builds a game whose only state is initial. Init is not called until
// Start or the first Update.
func New(cfg config.Config, initial state.State, opts ...Option) *Game {
	if initial == nil {
		panic(fmt.Errorf("%w: initial", state.ErrNilState))
	}

	world, stack := ecs.New()
	g := &Game{
		states:   []state.State{initial},
		world:    world,
		stack:    stack,
		assets:   assets.NewManager(),
		cfg:      cfg,
		log:      zap.NewNop(),
		gamepads: make(map[ebiten.GamepadID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	w := cfg.Window
	g.ctx = &state.Context{
		Window: state.NewWindow(w.Title, w.Width, w.Height, w.Fullscreen),
		Log:    g.log,
	}
	return g
}

// Start runs Init on the initial state and then pushes the states given with
// WithPushed. Calling it again does nothing.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	g.log.Debug("start", zap.String("state", stateName(g.current())))
	g.current().Init(g.ctx, g.world, g.assets)

	pushed := g.pushed
	g.pushed = nil
	for _, s := range pushed {
		g.apply(state.Push(s))
	}
}

func (g *Game) Update() error {
	if g.terminated {
		return ebiten.Termination
	}
	g.Start()

	if g.ctx.Window.CloseRequested() {
		return g.terminate("window close requested")
	}
	if g.cfg.Window.ExitOnEsc && escapePressed() {
		return g.terminate("escape pressed")
	}

	g.reloadAssets()

	g.tick++
	g.ctx.Tick = g.tick
	g.collectInput()
	g.queue.Push(state.Event{Kind: state.EventTick, Tick: g.tick})

	for _, ev := range g.queue.Drain() {
		g.Dispatch(ev)
	}
	return nil
}

func (g *Game) terminate(reason string) error {
	g.terminated = true
	g.log.Info("terminating", zap.String("reason", reason), zap.Uint64("tick", g.tick))
	return ebiten.Termination
}

// Dispatch hands ev to the current state and applies the transition it
// returns to both stacks.
func (g *Game) Dispatch(ev state.Event) {
	g.Start()
	if ev.Tick == 0 {
		ev.Tick = g.tick
	}
	tr := g.current().Update(g.ctx, ev, g.world, g.assets)
	g.apply(tr)
}

func (g *Game) apply(tr state.Trans) {
	switch tr.Kind {
	case state.TransNone:
		return
	case state.TransPop:
		n := len(g.states)
		if n <= 1 {
			panic(fmt.Errorf("%w: cannot pop with %d state(s)", ErrEmptyStack, n))
		}
		g.current().Exit(g.ctx, g.world, g.assets)
		g.stack.Pop()
		g.states[n-1] = nil
		g.states = g.states[:n-1]
	case state.TransPush:
		if tr.Next == nil {
			panic(fmt.Errorf("%w: push", state.ErrNilState))
		}
		g.stack.Push()
		g.states = append(g.states, tr.Next)
		tr.Next.Init(g.ctx, g.world, g.assets)
	case state.TransSwap:
		if tr.Next == nil {
			panic(fmt.Errorf("%w: swap", state.ErrNilState))
		}
		n := len(g.states)
		if n <= 1 {
			panic(fmt.Errorf("%w: cannot swap with %d state(s)", ErrEmptyStack, n))
		}
		g.current().Exit(g.ctx, g.world, g.assets)
		g.stack.Switch()
		g.states[n-1] = tr.Next
		tr.Next.Init(g.ctx, g.world, g.assets)
	default:
		panic(fmt.Errorf("engine: unknown transition %v", tr.Kind))
	}

	g.log.Debug("transition",
		zap.Stringer("kind", tr.Kind),
		zap.String("top", stateName(g.current())),
		zap.Int("depth", len(g.states)),
		zap.Uint64("tick", g.tick),
	)
}

func (g *Game) current() state.State {
	if len(g.states) == 0 {
		panic(ErrEmptyStack)
	}
	return g.states[len(g.states)-1]
}

func (g *Game) Draw(screen *ebiten.Image) {
	if len(g.states) == 0 {
		return
	}
	if d, ok := g.current().(state.Drawer); ok {
		d.Draw(screen, g.world, g.assets)
	}
}

// Layout keeps the logical screen at the configured size. A change in the
// outside size is queued as a resize event for the next tick.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH {
		g.outsideW, g.outsideH = outsideWidth, outsideHeight
		g.ctx.Window.Resize(outsideWidth, outsideHeight)
		g.queue.Push(state.Event{Kind: state.EventResize, Width: outsideWidth, Height: outsideHeight})
	}
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close stops the asset watcher. The states are left as they are.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) World() *ecs.World {
	return g.world
}

func (g *Game) Assets() *assets.Manager {
	return g.assets
}

func (g *Game) Context() *state.Context {
	return g.ctx
}

// Top returns the state that receives events.
func (g *Game) Top() state.State {
	return g.current()
}

// Depth returns the number of application states on the stack.
func (g *Game) Depth() int {
	return len(g.states)
}

func (g *Game) reloadAssets() {
	if g.watcher == nil {
		return
	}
	paths, errs := g.watcher.Poll()
	for _, err := range errs {
		g.log.Warn("asset watcher", zap.Error(err))
	}
	for _, p := range paths {
		name, err := g.assets.Reload(p)
		if err != nil {
			g.log.Warn("asset reload failed", zap.String("path", p), zap.Error(err))
			continue
		}
		if name != "" {
			g.log.Info("asset reloaded", zap.String("name", name), zap.String("path", p))
		}
	}
}

func stateName(s state.State) string {
	return fmt.Sprintf("%T", s)
}
