package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/stackworld/state"
)

func escapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// collectInput queues this tick's key and gamepad changes.
func (g *Game) collectInput() {
	var keys []ebiten.Key
	keys = inpututil.AppendJustPressedKeys(keys)
	for _, k := range keys {
		g.queue.Push(state.Event{Kind: state.EventKeyDown, Tick: g.tick, Key: k})
	}
	keys = inpututil.AppendJustReleasedKeys(keys[:0])
	for _, k := range keys {
		g.queue.Push(state.Event{Kind: state.EventKeyUp, Tick: g.tick, Key: k})
	}

	if !g.cfg.Window.Controllers {
		return
	}

	for id := range g.gamepads {
		if inpututil.IsGamepadJustDisconnected(id) {
			delete(g.gamepads, id)
			g.queue.Push(state.Event{Kind: state.EventGamepadDisconnected, Tick: g.tick, Gamepad: id})
		}
	}
	for _, id := range inpututil.AppendJustConnectedGamepadIDs(nil) {
		g.gamepads[id] = struct{}{}
		g.queue.Push(state.Event{Kind: state.EventGamepadConnected, Tick: g.tick, Gamepad: id})
	}
}
