package script

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/milk9111/stackworld/assets"
	"github.com/milk9111/stackworld/ecs"
	"github.com/milk9111/stackworld/state"
)

// Tag is the component scripts attach to the entities they spawn.
type Tag struct {
	Name string
}

// modules lists the tengo stdlib modules scripts may import.
var modules = []string{"math", "text", "times", "rand", "fmt", "json", "base64", "hex", "enum"}

var phaseDecl = regexp.MustCompile(`(?m)^\s*(init|update|exit)\s*:=\s*func\b`)

// State is a state.State whose callbacks run a tengo script.
type State struct {
	name     string
	compiled *tengo.Compiled
	phases   map[string]bool
	registry *Registry

	data    *tengo.Map
	pending string
	text    string
}

// Load compiles src into a state named name. Transitions the script requests
// by name are resolved through reg.
func Load(name string, src []byte, reg *Registry) (*State, error) {
	phases := map[string]bool{}
	for _, m := range phaseDecl.FindAllStringSubmatch(string(src), -1) {
		phases[m[1]] = true
	}
	if !phases["update"] {
		return nil, fmt.Errorf("script: %s: no update function", name)
	}

	full := string(src) + "\n" + dispatchSource(phases)
	s := tengo.NewScript([]byte(full))
	for _, global := range []string{"__phase", "__result"} {
		_ = s.Add(global, "")
	}
	_ = s.Add("__engine", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	_ = s.Add("__event", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(modules...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: %s: %w", name, err)
	}
	if reg == nil {
		reg = NewRegistry()
	}

	return &State{
		name:     name,
		compiled: compiled,
		phases:   phases,
		registry: reg,
		data:     &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func dispatchSource(phases map[string]bool) string {
	var b strings.Builder
	b.WriteString("if __phase == \"update\" {\n\t__result = update(__engine, __state, __event)\n}")
	if phases["init"] {
		b.WriteString(" else if __phase == \"init\" {\n\tinit(__engine, __state)\n}")
	}
	if phases["exit"] {
		b.WriteString(" else if __phase == \"exit\" {\n\texit(__engine, __state)\n}")
	}
	b.WriteString("\n")
	return b.String()
}

// Clone returns a copy with the same compiled code and empty state data.
func (s *State) Clone() *State {
	return &State{
		name:     s.name,
		compiled: s.compiled.Clone(),
		phases:   s.phases,
		registry: s.registry,
		data:     &tengo.Map{Value: map[string]tengo.Object{}},
	}
}

func (s *State) Name() string {
	return s.name
}

// Text is the last string the script passed to engine.text.
func (s *State) Text() string {
	return s.text
}

// Data returns the script's state map converted to Go values.
func (s *State) Data() map[string]any {
	out := make(map[string]any, len(s.data.Value))
	for k, v := range s.data.Value {
		out[k] = tengo.ToInterface(v)
	}
	return out
}

func (s *State) Init(ctx *state.Context, w *ecs.World, a *assets.Manager) {
	if !ecs.Registered[Tag](w) {
		ecs.Register[Tag](w)
	}
	if !s.phases["init"] {
		return
	}
	if err := s.run("init", ctx, w, a, nil); err != nil {
		s.logger(ctx).Error("script init failed", zap.Error(err))
	}
}

func (s *State) Update(ctx *state.Context, ev state.Event, w *ecs.World, a *assets.Manager) state.Trans {
	s.pending = ""
	if err := s.run("update", ctx, w, a, eventObject(ev)); err != nil {
		s.logger(ctx).Error("script update failed", zap.Error(err))
		return state.None()
	}

	request := s.pending
	if result := s.compiled.Get("__result"); !result.IsUndefined() {
		if r := strings.TrimSpace(objectAsString(result.Object())); r != "" {
			request = r
		}
	}

	tr, err := s.transition(request)
	if err != nil {
		s.logger(ctx).Error("script transition failed", zap.String("request", request), zap.Error(err))
		return state.None()
	}
	return tr
}

func (s *State) Exit(ctx *state.Context, w *ecs.World, a *assets.Manager) {
	if !s.phases["exit"] {
		return
	}
	if err := s.run("exit", ctx, w, a, nil); err != nil {
		s.logger(ctx).Error("script exit failed", zap.Error(err))
	}
}

func (s *State) Draw(screen *ebiten.Image, w *ecs.World, a *assets.Manager) {
	if s.text != "" {
		ebitenutil.DebugPrint(screen, s.text)
	}
}

func (s *State) run(phase string, ctx *state.Context, w *ecs.World, a *assets.Manager, event tengo.Object) error {
	if event == nil {
		event = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := s.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := s.compiled.Set("__result", ""); err != nil {
		return err
	}
	if err := s.compiled.Set("__engine", s.engineObject(ctx, w, a)); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", s.data); err != nil {
		return err
	}
	if err := s.compiled.Set("__event", event); err != nil {
		return err
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("script: %s %s: %w", s.name, phase, err)
	}
	return nil
}

// transition turns "pop", "push:name" or "swap:name" into a Trans. An empty
// request or "none" keeps the current state.
func (s *State) transition(request string) (state.Trans, error) {
	kind, name, _ := strings.Cut(request, ":")
	switch kind {
	case "", "none":
		return state.None(), nil
	case "pop":
		return state.Pop(), nil
	case "push", "swap":
		next, err := s.registry.New(strings.TrimSpace(name))
		if err != nil {
			return state.None(), err
		}
		if kind == "push" {
			return state.Push(next), nil
		}
		return state.Swap(next), nil
	default:
		return state.None(), fmt.Errorf("script: unknown transition %q", request)
	}
}

func (s *State) logger(ctx *state.Context) *zap.Logger {
	return ctx.Logger().With(zap.String("script", s.name))
}
