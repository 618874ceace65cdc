package engine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/stackworld/config"
	"github.com/milk9111/stackworld/state"
)

// Run applies the window settings and blocks in the ebiten loop until the
// window closes or a state asks for it.
func Run(cfg config.Config, initial state.State, opts ...Option) error {
	g := New(cfg, initial, opts...)
	defer g.Close()

	cfg.Window.Apply()
	return ebiten.RunGameWithOptions(g, cfg.Window.RunOptions())
}
