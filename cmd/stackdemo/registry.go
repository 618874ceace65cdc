package main

import (
	"embed"
	"io/fs"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/milk9111/stackworld/config"
	"github.com/milk9111/stackworld/script"
	"github.com/milk9111/stackworld/state"
)

//go:embed scripts/*.tengo
var scriptFS embed.FS

// demo holds what the built-in states share.
type demo struct {
	width, height int
	registry      *script.Registry
}

// newRegistry registers the built-in states, the embedded scripts and then
// the script files in extra, which may replace either.
func newRegistry(cfg config.Config, extra []string) (*script.Registry, error) {
	reg := script.NewRegistry()
	d := &demo{width: cfg.Window.Width, height: cfg.Window.Height, registry: reg}

	reg.Register("title", func() state.State { return newTitle(d) })
	reg.Register("play", func() state.State { return newPlay(d) })
	reg.Register("pause", func() state.State { return newPause(d) })

	entries, err := fs.ReadDir(scriptFS, "scripts")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		src, err := scriptFS.ReadFile(path.Join("scripts", entry.Name()))
		if err != nil {
			return nil, err
		}
		if err := reg.RegisterScript(strings.TrimSuffix(entry.Name(), ".tengo"), src); err != nil {
			return nil, err
		}
	}

	for _, p := range extra {
		if _, err := reg.RegisterFile(p); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// push builds the state registered as name, or keeps the current state when
// there is none.
func (d *demo) push(ctx *state.Context, name string) state.Trans {
	next, err := d.registry.New(name)
	if err != nil {
		ctx.Logger().Error("push failed", zap.Error(err))
		return state.None()
	}
	return state.Push(next)
}
