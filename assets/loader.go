package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var textureExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".tif":  true,
	".tiff": true,
}

var soundExts = map[string]bool{
	".wav": true,
	".mp3": true,
	".ogg": true,
}

func isTextureFile(p string) bool {
	return textureExts[strings.ToLower(filepath.Ext(p))]
}

func isSoundFile(p string) bool {
	return soundExts[strings.ToLower(filepath.Ext(p))]
}

func isAssetFile(p string) bool {
	return isTextureFile(p) || isSoundFile(p)
}

// AssetName turns an asset-relative path into the name it is registered
// under: forward slashes, no extension. "sprites/Player.png" becomes
// "sprites/Player".
func AssetName(rel string) string {
	s := filepath.ToSlash(rel)
	s = strings.TrimPrefix(s, "./")
	return strings.TrimSuffix(s, path.Ext(s))
}

func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// LoadTextureFS decodes the image at p in fsys and stores it under name.
func (m *Manager) LoadTextureFS(fsys fs.FS, name, p string) error {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return fmt.Errorf("assets: read %s: %w", p, err)
	}
	img, err := decodeImage(data)
	if err != nil {
		return fmt.Errorf("assets: decode %s: %w", p, err)
	}
	m.AddTexture(name, ebiten.NewImageFromImage(img))
	return nil
}

// LoadTextureFile decodes the image file at p and stores it under name. The
// file is remembered so Reload can pick up later edits.
func (m *Manager) LoadTextureFile(name, p string) error {
	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("assets: read %s: %w", p, err)
	}
	img, err := decodeImage(data)
	if err != nil {
		return fmt.Errorf("assets: decode %s: %w", p, err)
	}
	m.AddTexture(name, ebiten.NewImageFromImage(img))
	m.sources[filepath.Clean(p)] = source{name: name, kind: sourceTexture}
	return nil
}

// LoadSoundFS stores the raw bytes of the sound at p in fsys under name.
func (m *Manager) LoadSoundFS(fsys fs.FS, name, p string) error {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return fmt.Errorf("assets: read %s: %w", p, err)
	}
	m.AddSound(name, &Sound{Name: name, Path: p, Data: data})
	return nil
}

// LoadSoundFile stores the raw bytes of the sound file at p under name.
func (m *Manager) LoadSoundFile(name, p string) error {
	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("assets: read %s: %w", p, err)
	}
	m.AddSound(name, &Sound{Name: name, Path: p, Data: data})
	m.sources[filepath.Clean(p)] = source{name: name, kind: sourceSound}
	return nil
}

// LoadDir loads every texture and sound below dir, naming each by its path
// relative to dir (see AssetName). Other files are ignored. It returns the
// number of assets loaded.
func (m *Manager) LoadDir(dir string) (int, error) {
	root := filepath.Clean(dir)
	count := 0
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isAssetFile(p) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if err := m.loadPath(AssetName(rel), p); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}
	m.roots = append(m.roots, root)
	return count, nil
}

func (m *Manager) loadPath(name, p string) error {
	if isTextureFile(p) {
		return m.LoadTextureFile(name, p)
	}
	return m.LoadSoundFile(name, p)
}

// Reload re-reads the file at p if it was loaded from disk before, or if it
// is a new asset file inside a directory passed to LoadDir. It returns the
// asset name, or "" when p is not an asset this manager tracks.
func (m *Manager) Reload(p string) (string, error) {
	clean := filepath.Clean(p)
	if src, ok := m.sources[clean]; ok {
		if src.kind == sourceTexture {
			return src.name, m.LoadTextureFile(src.name, clean)
		}
		return src.name, m.LoadSoundFile(src.name, clean)
	}
	if !isAssetFile(clean) {
		return "", nil
	}
	for _, root := range m.roots {
		rel, err := filepath.Rel(root, clean)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		name := AssetName(rel)
		return name, m.loadPath(name, clean)
	}
	return "", nil
}
