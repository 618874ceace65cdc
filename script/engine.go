package script

import (
	"strings"

	"github.com/d5/tengo/v2"
	"go.uber.org/zap"

	"github.com/milk9111/stackworld/assets"
	"github.com/milk9111/stackworld/ecs"
	"github.com/milk9111/stackworld/state"
)

func (s *State) engineObject(ctx *state.Context, w *ecs.World, a *assets.Manager) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	fn := func(name string, f tengo.CallableFunc) {
		values[name] = &tengo.UserFunction{Name: name, Value: f}
	}

	fn("spawn", func(args ...tengo.Object) (tengo.Object, error) {
		e := w.Create()
		if len(args) > 0 {
			if tag := strings.TrimSpace(objectAsString(args[0])); tag != "" {
				ecs.Add(w, e, Tag{Name: tag})
			}
		}
		return &tengo.Int{Value: int64(e)}, nil
	})

	fn("despawn", func(args ...tengo.Object) (tengo.Object, error) {
		e, ok := entityArg(args)
		if !ok || !w.Contains(e) {
			return tengo.FalseValue, nil
		}
		w.Remove(e)
		return tengo.TrueValue, nil
	})

	fn("alive", func(args ...tengo.Object) (tengo.Object, error) {
		e, ok := entityArg(args)
		return boolObject(ok && w.Contains(e)), nil
	})

	fn("count", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(w.Len())}, nil
	})

	fn("tagged", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return &tengo.Int{Value: 0}, nil
		}
		name := objectAsString(args[0])
		n := 0
		for _, tag := range ecs.Get[Tag](w) {
			if tag.Name == name {
				n++
			}
		}
		return &tengo.Int{Value: int64(n)}, nil
	})

	fn("tick", func(args ...tengo.Object) (tengo.Object, error) {
		var t uint64
		if ctx != nil {
			t = ctx.Tick
		}
		return &tengo.Int{Value: int64(t)}, nil
	})

	fn("pop", func(args ...tengo.Object) (tengo.Object, error) {
		s.pending = "pop"
		return tengo.TrueValue, nil
	})

	for _, kind := range []string{"push", "swap"} {
		fn(kind, func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return tengo.FalseValue, nil
			}
			name := strings.TrimSpace(objectAsString(args[0]))
			if name == "" {
				return tengo.FalseValue, nil
			}
			s.pending = kind + ":" + name
			return tengo.TrueValue, nil
		})
	}

	fn("text", func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, objectAsString(arg))
		}
		s.text = strings.Join(parts, " ")
		return tengo.UndefinedValue, nil
	})

	fn("log", func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, objectAsString(arg))
		}
		s.logger(ctx).Info(strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	})

	fn("has_texture", func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(a != nil && len(args) > 0 && a.HasTexture(objectAsString(args[0]))), nil
	})

	fn("has_sound", func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(a != nil && len(args) > 0 && a.HasSound(objectAsString(args[0]))), nil
	})

	fn("set_title", func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || ctx.Window == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		ctx.Window.SetTitle(objectAsString(args[0]))
		return tengo.TrueValue, nil
	})

	fn("close", func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || ctx.Window == nil {
			return tengo.FalseValue, nil
		}
		ctx.Window.Close()
		s.logger(ctx).Debug("close requested", zap.Uint64("tick", ctx.Tick))
		return tengo.TrueValue, nil
	})

	return &tengo.ImmutableMap{Value: values}
}

func eventObject(ev state.Event) *tengo.ImmutableMap {
	values := map[string]tengo.Object{
		"kind": &tengo.String{Value: ev.Kind.String()},
		"tick": &tengo.Int{Value: int64(ev.Tick)},
	}
	switch ev.Kind {
	case state.EventKeyDown, state.EventKeyUp:
		values["key"] = &tengo.String{Value: ev.Key.String()}
	case state.EventResize:
		values["width"] = &tengo.Int{Value: int64(ev.Width)}
		values["height"] = &tengo.Int{Value: int64(ev.Height)}
	case state.EventGamepadConnected, state.EventGamepadDisconnected:
		values["gamepad"] = &tengo.Int{Value: int64(ev.Gamepad)}
	}
	return &tengo.ImmutableMap{Value: values}
}

func entityArg(args []tengo.Object) (ecs.Entity, bool) {
	if len(args) < 1 {
		return 0, false
	}
	id, ok := tengo.ToInt64(args[0])
	if !ok || id < 0 {
		return 0, false
	}
	return ecs.Entity(id), true
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Undefined:
		return ""
	default:
		return strings.Trim(v.String(), "\"")
	}
}
