package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Window is the handle states use to talk to the game window. Setters are
// forwarded to ebiten; Close only records the request and the engine ends
// the loop at the start of the next tick.
type Window struct {
	title          string
	width, height  int
	fullscreen     bool
	closeRequested bool
}

func NewWindow(title string, width, height int, fullscreen bool) *Window {
	return &Window{title: title, width: width, height: height, fullscreen: fullscreen}
}

func (w *Window) Title() string {
	return w.title
}

func (w *Window) SetTitle(title string) {
	w.title = title
	ebiten.SetWindowTitle(title)
}

// Size returns the last known outside size of the window.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// Resize records a new outside size. The engine calls it from Layout.
func (w *Window) Resize(width, height int) {
	w.width, w.height = width, height
}

func (w *Window) Fullscreen() bool {
	return w.fullscreen
}

func (w *Window) SetFullscreen(fullscreen bool) {
	w.fullscreen = fullscreen
	ebiten.SetFullscreen(fullscreen)
}

// Close asks the engine to stop the game loop.
func (w *Window) Close() {
	w.closeRequested = true
}

func (w *Window) CloseRequested() bool {
	return w.closeRequested
}

// Context is passed to every State callback.
type Context struct {
	Window *Window
	Log    *zap.Logger
	Tick   uint64
}

// Logger returns ctx.Log, or a no-op logger when none is set.
func (ctx *Context) Logger() *zap.Logger {
	if ctx == nil || ctx.Log == nil {
		return zap.NewNop()
	}
	return ctx.Log
}
