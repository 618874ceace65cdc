// Package state defines the application-state contract driven by the engine.
// A State receives the live world and the asset manager on every callback and
// answers each Update with a Trans describing how both the application-state
// stack and the world-state stack should change.
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/stackworld/assets"
	"github.com/milk9111/stackworld/ecs"
)

// State is one unit of application logic. Init runs when the state becomes
// the top of the stack through Push or Swap, Exit when it leaves through Pop
// or Swap. Update is called once per event while the state is on top.
type State interface {
	Init(ctx *Context, w *ecs.World, a *assets.Manager)
	Update(ctx *Context, ev Event, w *ecs.World, a *assets.Manager) Trans
	Exit(ctx *Context, w *ecs.World, a *assets.Manager)
}

// Base supplies no-op Init and Exit. Embed it so only Update has to be written.
type Base struct{}

func (Base) Init(*Context, *ecs.World, *assets.Manager) {}

func (Base) Exit(*Context, *ecs.World, *assets.Manager) {}

// Drawer is implemented by states that render the live world. Draw runs only
// for the top state and must not change the world.
type Drawer interface {
	Draw(screen *ebiten.Image, w *ecs.World, a *assets.Manager)
}
