// Package assets keeps decoded textures and raw sounds under string names.
// Lookups of unknown names panic: a missing asset is a programming error in
// the state that asked for it.
package assets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrTextureNotFound = errors.New("assets: no texture with the given name was found")
	ErrSoundNotFound   = errors.New("assets: no sound with the given name was found")
)

type sourceKind int

const (
	sourceTexture sourceKind = iota
	sourceSound
)

// source remembers which asset a file on disk was loaded into, so a watcher
// event for that file can be turned back into a reload.
type source struct {
	name string
	kind sourceKind
}

// Manager maps names to textures and sounds.
type Manager struct {
	textures map[string]*ebiten.Image
	sounds   map[string]*Sound
	sources  map[string]source
	roots    []string
}

func NewManager() *Manager {
	return &Manager{
		textures: make(map[string]*ebiten.Image),
		sounds:   make(map[string]*Sound),
		sources:  make(map[string]source),
	}
}

// AddTexture stores tex under name, replacing any previous texture.
func (m *Manager) AddTexture(name string, tex *ebiten.Image) {
	m.textures[name] = tex
}

// LoadTexture returns the texture stored under name.
func (m *Manager) LoadTexture(name string) *ebiten.Image {
	tex, ok := m.textures[name]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrTextureNotFound, name))
	}
	return tex
}

func (m *Manager) HasTexture(name string) bool {
	_, ok := m.textures[name]
	return ok
}

// AddSound stores s under name, replacing any previous sound.
func (m *Manager) AddSound(name string, s *Sound) {
	m.sounds[name] = s
}

// GetSound returns the sound stored under name.
func (m *Manager) GetSound(name string) *Sound {
	s, ok := m.sounds[name]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrSoundNotFound, name))
	}
	return s
}

func (m *Manager) HasSound(name string) bool {
	_, ok := m.sounds[name]
	return ok
}

// TextureNames returns the registered texture names, sorted.
func (m *Manager) TextureNames() []string {
	return sortedKeys(m.textures)
}

// SoundNames returns the registered sound names, sorted.
func (m *Manager) SoundNames() []string {
	return sortedKeys(m.sounds)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
