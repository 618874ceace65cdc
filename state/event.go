package state

import "github.com/hajimehoshi/ebiten/v2"

// EventKind identifies what produced an Event.
type EventKind int

const (
	EventTick EventKind = iota
	EventKeyDown
	EventKeyUp
	EventResize
	EventGamepadConnected
	EventGamepadDisconnected
)

var eventKindNames = map[EventKind]string{
	EventTick:                "tick",
	EventKeyDown:             "key_down",
	EventKeyUp:               "key_up",
	EventResize:              "resize",
	EventGamepadConnected:    "gamepad_connected",
	EventGamepadDisconnected: "gamepad_disconnected",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one input or timing occurrence handed to State.Update. The engine
// fills only the fields that apply to Kind.
type Event struct {
	Kind    EventKind
	Tick    uint64
	Key     ebiten.Key
	Gamepad ebiten.GamepadID
	Width   int
	Height  int
}

// IsKeyDown reports whether ev is the press of key.
func (ev Event) IsKeyDown(key ebiten.Key) bool {
	return ev.Kind == EventKeyDown && ev.Key == key
}

// Queue is a FIFO of events collected during a tick.
type Queue struct {
	items []Event
}

// Push adds an event.
func (q *Queue) Push(ev Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, ev)
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
