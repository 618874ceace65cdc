// Package script runs application states written in tengo. A script defines
// any of
//
//	init := func(engine, state) { ... }
//	update := func(engine, state, event) { ... }
//	exit := func(engine, state) { ... }
//
// where update is required. state is a map kept for the lifetime of the
// state, engine exposes the world and the transitions, and update may return
// "pop", "push:<name>" or "swap:<name>" to change states.
package script

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/stackworld/state"
)

// Factory builds a fresh state each time a script asks for it by name.
type Factory func() state.State

// Registry maps the names scripts use in push and swap to state factories.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// RegisterScript compiles src once and registers a factory that hands out an
// independent copy of it for every push or swap.
func (r *Registry) RegisterScript(name string, src []byte) error {
	s, err := Load(name, src, r)
	if err != nil {
		return err
	}
	r.Register(name, func() state.State { return s.Clone() })
	return nil
}

// RegisterFile registers the script at path under its base name without the
// extension.
func (r *Registry) RegisterFile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("script: read %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return name, r.RegisterScript(name, src)
}

// New builds the state registered under name.
func (r *Registry) New(name string) (state.State, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("script: no state registered as %q", name)
	}
	s := f()
	if s == nil {
		return nil, fmt.Errorf("script: factory for %q returned nil", name)
	}
	return s, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
