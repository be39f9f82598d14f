package assets

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ManifestEntry is one keyed file reference.
type ManifestEntry struct {
	Key  string `yaml:"key"`
	Path string `yaml:"path"`
	Data string `yaml:"data,omitempty"`

	FrameWidth  int `yaml:"frame_width,omitempty"`
	FrameHeight int `yaml:"frame_height,omitempty"`
}

// Manifest lists every asset to preload, grouped by kind.
type Manifest struct {
	Images       []ManifestEntry `yaml:"images"`
	Spritesheets []ManifestEntry `yaml:"spritesheets"`
	Atlases      []ManifestEntry `yaml:"atlases"`
	MultiAtlases []ManifestEntry `yaml:"multiatlases"`
	Tilemaps     []ManifestEntry `yaml:"tilemaps"`
	Audio        []ManifestEntry `yaml:"audio"`
}

// ParseManifest decodes and validates a manifest. Keys must be unique per kind.
func ParseManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	groups := []struct {
		kind    string
		entries []ManifestEntry
	}{
		{"image", m.Images},
		{"spritesheet", m.Spritesheets},
		{"atlas", m.Atlases},
		{"multiatlas", m.MultiAtlases},
		{"tilemap", m.Tilemaps},
		{"audio", m.Audio},
	}
	for _, g := range groups {
		seen := make(map[string]bool, len(g.entries))
		for _, e := range g.entries {
			if e.Key == "" {
				return nil, fmt.Errorf("manifest: %s entry without key", g.kind)
			}
			if seen[e.Key] {
				return nil, fmt.Errorf("manifest: duplicate %s key %q", g.kind, e.Key)
			}
			seen[e.Key] = true

			switch g.kind {
			case "multiatlas":
				if e.Data == "" {
					return nil, fmt.Errorf("manifest: %s %q has no data file", g.kind, e.Key)
				}
			case "atlas":
				if e.Path == "" || e.Data == "" {
					return nil, fmt.Errorf("manifest: %s %q needs path and data", g.kind, e.Key)
				}
			case "spritesheet":
				if e.FrameWidth <= 0 || e.FrameHeight <= 0 {
					return nil, fmt.Errorf("manifest: %s %q needs a frame size", g.kind, e.Key)
				}
				fallthrough
			default:
				if e.Path == "" {
					return nil, fmt.Errorf("manifest: %s %q has no path", g.kind, e.Key)
				}
			}
		}
	}

	return &m, nil
}
