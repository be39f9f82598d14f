package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
)

// Spritesheet slices an image into equal frames, row-major from the top-left.
type Spritesheet struct {
	Path        string
	FrameWidth  int
	FrameHeight int
}

type frameKey struct {
	sheet string
	name  string
	index int
}

// Registry holds every preloaded asset by key. Decoded pixels are uploaded
// to the GPU lazily, on the first lookup that needs an *ebiten.Image.
type Registry struct {
	fsys fs.FS

	sources  map[string]image.Image // decoded files by path
	images   map[string]string      // key -> path
	sheets   map[string]Spritesheet
	atlases  map[string]*Atlas
	tilemaps map[string]*tiled.Map
	sounds   map[string][]byte

	textures map[string]*ebiten.Image
	frames   map[frameKey]*ebiten.Image
}

func newRegistry(fsys fs.FS) *Registry {
	return &Registry{
		fsys:     fsys,
		sources:  make(map[string]image.Image),
		images:   make(map[string]string),
		sheets:   make(map[string]Spritesheet),
		atlases:  make(map[string]*Atlas),
		tilemaps: make(map[string]*tiled.Map),
		sounds:   make(map[string][]byte),
		textures: make(map[string]*ebiten.Image),
		frames:   make(map[frameKey]*ebiten.Image),
	}
}

// Preload reads the manifest at manifestPath and loads every entry it lists.
// The first failure aborts loading and is returned wrapped with its key.
func Preload(fsys fs.FS, manifestPath string) (*Registry, error) {
	f, err := fsys.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("load manifest %q: %w", manifestPath, err)
	}
	m, err := ParseManifest(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("load manifest %q: %w", manifestPath, err)
	}

	r := newRegistry(fsys)
	base := path.Dir(manifestPath)
	rel := func(p string) string { return path.Join(base, p) }

	for _, e := range m.Images {
		p := rel(e.Path)
		if err := r.decode(p); err != nil {
			return nil, fmt.Errorf("load %s %q: %w", e.Key, p, err)
		}
		r.images[e.Key] = p
	}

	for _, e := range m.Spritesheets {
		p := rel(e.Path)
		if err := r.decode(p); err != nil {
			return nil, fmt.Errorf("load %s %q: %w", e.Key, p, err)
		}
		r.sheets[e.Key] = Spritesheet{Path: p, FrameWidth: e.FrameWidth, FrameHeight: e.FrameHeight}
	}

	for _, e := range m.Atlases {
		if err := r.loadAtlas(e.Key, rel(e.Data), rel(e.Path)); err != nil {
			return nil, err
		}
	}
	for _, e := range m.MultiAtlases {
		if err := r.loadAtlas(e.Key, rel(e.Data), ""); err != nil {
			return nil, err
		}
	}

	for _, e := range m.Tilemaps {
		p := rel(e.Path)
		tm, err := tiled.LoadFile(p, tiled.WithFileSystem(fsys))
		if err != nil {
			return nil, fmt.Errorf("load %s %q: %w", e.Key, p, err)
		}
		r.tilemaps[e.Key] = tm
	}

	for _, e := range m.Audio {
		p := rel(e.Path)
		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("load %s %q: %w", e.Key, p, err)
		}
		r.sounds[e.Key] = b
	}

	return r, nil
}

func (r *Registry) decode(p string) error {
	if _, ok := r.sources[p]; ok {
		return nil
	}
	b, err := fs.ReadFile(r.fsys, p)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return err
	}
	r.sources[p] = img
	return nil
}

// loadAtlas parses the data file and decodes every page it references.
// imagePath overrides the page named inside a single-page atlas.
func (r *Registry) loadAtlas(key, dataPath, imagePath string) error {
	b, err := fs.ReadFile(r.fsys, dataPath)
	if err != nil {
		return fmt.Errorf("load %s %q: %w", key, dataPath, err)
	}

	override := ""
	if imagePath != "" {
		override = path.Base(imagePath)
	}
	a, err := ParseAtlas(b, override)
	if err != nil {
		return fmt.Errorf("load %s %q: %w", key, dataPath, err)
	}

	dir := path.Dir(dataPath)
	for name, fr := range a.Frames {
		fr.Page = path.Join(dir, fr.Page)
		a.Frames[name] = fr
	}
	for i, p := range a.Pages {
		a.Pages[i] = path.Join(dir, p)
		if err := r.decode(a.Pages[i]); err != nil {
			return fmt.Errorf("load %s %q: %w", key, a.Pages[i], err)
		}
		bounds := r.sources[a.Pages[i]].Bounds()
		for _, fr := range a.Frames {
			if fr.Page == a.Pages[i] && !fr.Rect.In(bounds) {
				return fmt.Errorf("load %s %q: frame %q outside page", key, dataPath, fr.Name)
			}
		}
	}

	r.atlases[key] = a
	return nil
}

// FS returns the filesystem the registry was loaded from.
func (r *Registry) FS() fs.FS {
	return r.fsys
}

func (r *Registry) texture(p string) *ebiten.Image {
	if t, ok := r.textures[p]; ok {
		return t
	}
	t := ebiten.NewImageFromImage(r.sources[p])
	r.textures[p] = t
	return t
}

// Image returns the whole image loaded under key.
func (r *Registry) Image(key string) (*ebiten.Image, error) {
	p, ok := r.images[key]
	if !ok {
		return nil, fmt.Errorf("image %q: %w", key, ErrUnknownKey)
	}
	return r.texture(p), nil
}

// FrameRect returns the source rectangle of frame index in sheet.
func (r *Registry) FrameRect(sheet string, index int) (image.Rectangle, error) {
	s, ok := r.sheets[sheet]
	if !ok {
		return image.Rectangle{}, fmt.Errorf("spritesheet %q: %w", sheet, ErrUnknownKey)
	}
	b := r.sources[s.Path].Bounds()
	cols := b.Dx() / s.FrameWidth
	rows := b.Dy() / s.FrameHeight
	if index < 0 || index >= cols*rows {
		return image.Rectangle{}, fmt.Errorf("spritesheet %q frame %d: %w", sheet, index, ErrUnknownFrame)
	}
	x := b.Min.X + (index%cols)*s.FrameWidth
	y := b.Min.Y + (index/cols)*s.FrameHeight
	return image.Rect(x, y, x+s.FrameWidth, y+s.FrameHeight), nil
}

// Frame returns frame index of a spritesheet.
func (r *Registry) Frame(sheet string, index int) (*ebiten.Image, error) {
	k := frameKey{sheet: sheet, index: index}
	if img, ok := r.frames[k]; ok {
		return img, nil
	}
	rect, err := r.FrameRect(sheet, index)
	if err != nil {
		return nil, err
	}
	img := r.texture(r.sheets[sheet].Path).SubImage(rect).(*ebiten.Image)
	r.frames[k] = img
	return img, nil
}

// Atlas returns the frame table loaded under key.
func (r *Registry) Atlas(key string) (*Atlas, error) {
	a, ok := r.atlases[key]
	if !ok {
		return nil, fmt.Errorf("atlas %q: %w", key, ErrUnknownKey)
	}
	return a, nil
}

// AtlasFrameInfo returns where a named frame lives.
func (r *Registry) AtlasFrameInfo(atlas, name string) (AtlasFrame, error) {
	a, err := r.Atlas(atlas)
	if err != nil {
		return AtlasFrame{}, err
	}
	fr, ok := a.Frames[name]
	if !ok {
		return AtlasFrame{}, fmt.Errorf("atlas %q frame %q: %w", atlas, name, ErrUnknownFrame)
	}
	return fr, nil
}

// AtlasFrame returns the named frame of an atlas or multiatlas.
func (r *Registry) AtlasFrame(atlas, name string) (*ebiten.Image, error) {
	k := frameKey{sheet: atlas, name: name}
	if img, ok := r.frames[k]; ok {
		return img, nil
	}
	fr, err := r.AtlasFrameInfo(atlas, name)
	if err != nil {
		return nil, err
	}
	img := r.texture(fr.Page).SubImage(fr.Rect).(*ebiten.Image)
	r.frames[k] = img
	return img, nil
}

// Tilemap returns the parsed map loaded under key.
func (r *Registry) Tilemap(key string) (*tiled.Map, error) {
	m, ok := r.tilemaps[key]
	if !ok {
		return nil, fmt.Errorf("tilemap %q: %w", key, ErrUnknownKey)
	}
	return m, nil
}

// Sound returns the encoded bytes of the sound loaded under key.
func (r *Registry) Sound(key string) ([]byte, error) {
	b, ok := r.sounds[key]
	if !ok {
		return nil, fmt.Errorf("sound %q: %w", key, ErrUnknownKey)
	}
	return b, nil
}

// MustImage is Image that panics, for draw paths where a miss is a bug.
func (r *Registry) MustImage(key string) *ebiten.Image {
	img, err := r.Image(key)
	if err != nil {
		panic(err)
	}
	return img
}

// MustFrame is Frame that panics.
func (r *Registry) MustFrame(sheet string, index int) *ebiten.Image {
	img, err := r.Frame(sheet, index)
	if err != nil {
		panic(err)
	}
	return img
}

// MustAtlasFrame is AtlasFrame that panics.
func (r *Registry) MustAtlasFrame(atlas, name string) *ebiten.Image {
	img, err := r.AtlasFrame(atlas, name)
	if err != nil {
		panic(err)
	}
	return img
}
