package config

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Apply pushes the window settings to ebiten. It must run before
// ebiten.RunGame for the window to open with them.
func (w WindowConfig) Apply() {
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetFullscreen(w.Fullscreen)
	ebiten.SetVsyncEnabled(w.VSync)
	ebiten.SetWindowResizingMode(w.ResizingMode())
	ebiten.SetWindowDecorated(w.Decorated)
	ebiten.SetTPS(w.TPS)
}

func (w WindowConfig) ResizingMode() ebiten.WindowResizingModeType {
	if w.Resizable {
		return ebiten.WindowResizingModeEnabled
	}
	return ebiten.WindowResizingModeDisabled
}

func (w WindowConfig) GraphicsLibrary() ebiten.GraphicsLibrary {
	switch strings.ToLower(w.Graphics) {
	case "opengl":
		return ebiten.GraphicsLibraryOpenGL
	case "directx":
		return ebiten.GraphicsLibraryDirectX
	case "metal":
		return ebiten.GraphicsLibraryMetal
	default:
		return ebiten.GraphicsLibraryAuto
	}
}

// RunOptions returns the options for ebiten.RunGameWithOptions.
func (w WindowConfig) RunOptions() *ebiten.RunGameOptions {
	return &ebiten.RunGameOptions{
		GraphicsLibrary: w.GraphicsLibrary(),
		InitUnfocused:   w.InitUnfocused,
	}
}
