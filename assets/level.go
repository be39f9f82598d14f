package assets

import (
	"fmt"
	"io/fs"

	"github.com/automoto/coinhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// LevelTile is one collidable tile cell.
type LevelTile struct {
	X, Y, Width, Height float64
	Role                config.LayerRole
	Layer               string
}

// CoinSpawn is the top-left corner and size of a coin object.
type CoinSpawn struct {
	X, Y, Width, Height float64
}

type Level struct {
	Name       string
	Width      int // pixels
	Height     int
	TileWidth  int
	TileHeight int
	Tiles      []LevelTile
	Coins      []CoinSpawn
	Layers     []string // tile layers to draw, in draw order
}

// ParseLevel extracts the collidable tiles of every layer the feature set
// names, and coins when enabled. A tile collides when its tileset entry has
// the configured boolean property set.
func ParseLevel(name string, m *tiled.Map, features config.SceneFeatures) (*Level, error) {
	level := &Level{
		Name:       name,
		Width:      m.Width * m.TileWidth,
		Height:     m.Height * m.TileHeight,
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
	}

	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)

	for _, spec := range features.Layers {
		layer := findLayer(m, spec.Name)
		if layer == nil {
			return nil, fmt.Errorf("level %s: layer %q: %w", name, spec.Name, ErrUnknownKey)
		}
		level.Layers = append(level.Layers, spec.Name)

		if spec.Role == config.LayerDecor {
			continue
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				tile := layer.Tiles[y*m.Width+x]
				if tile == nil || tile.IsNil() || !tileCollides(tile) {
					continue
				}
				level.Tiles = append(level.Tiles, LevelTile{
					X:      float64(x) * tileW,
					Y:      float64(y) * tileH,
					Width:  tileW,
					Height: tileH,
					Role:   spec.Role,
					Layer:  spec.Name,
				})
			}
		}
	}

	if features.Coins {
		for _, og := range m.ObjectGroups {
			if og.Name != config.Levels.CoinGroup {
				continue
			}
			for _, o := range og.Objects {
				if o.Name != config.Levels.CoinName {
					continue
				}
				w, h := o.Width, o.Height
				if w == 0 || h == 0 {
					w, h = tileW, tileH
				}
				y := o.Y
				// tile objects are anchored bottom-left
				if o.GID != 0 {
					y -= h
				}
				level.Coins = append(level.Coins, CoinSpawn{X: o.X, Y: y, Width: w, Height: h})
			}
		}
	}

	return level, nil
}

func findLayer(m *tiled.Map, name string) *tiled.Layer {
	for _, l := range m.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

func tileCollides(tile *tiled.LayerTile) bool {
	if tile.Tileset == nil {
		return false
	}
	ts, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return false
	}
	return ts.Properties.GetBool(config.Levels.CollidesProperty)
}

// RenderLevel draws the named tile layers, in order, into one image the size
// of the map.
func RenderLevel(m *tiled.Map, fsys fs.FS, layers []string) (*ebiten.Image, error) {
	renderer, err := render.NewRendererWithFileSystem(m, fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	bg := ebiten.NewImage(m.Width*m.TileWidth, m.Height*m.TileHeight)
	for _, name := range layers {
		idx := -1
		for i, l := range m.Layers {
			if l.Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("render layer %q: %w", name, ErrUnknownKey)
		}
		opacity := m.Layers[idx].Opacity
		if opacity <= 0 {
			continue
		}

		if err := renderer.RenderLayer(idx); err != nil {
			return nil, fmt.Errorf("render layer %q: %w", name, err)
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(opacity))
		bg.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}
	return bg, nil
}
