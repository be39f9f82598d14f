package assets

import (
	"embed"
	"errors"
	"io/fs"
)

//go:embed all:data
var dataFS embed.FS

// ManifestPath is the manifest location inside FS().
const ManifestPath = "manifest.yaml"

var (
	// ErrUnknownKey is returned when a registry lookup names no loaded asset.
	ErrUnknownKey = errors.New("unknown asset key")
	// ErrUnknownFrame is returned when a sheet or atlas has no such frame.
	ErrUnknownFrame = errors.New("unknown frame")
)

// FS returns the embedded asset tree rooted at the data directory.
func FS() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// MustPreload loads the embedded manifest and panics on failure.
func MustPreload() *Registry {
	r, err := Preload(FS(), ManifestPath)
	if err != nil {
		panic(err)
	}
	return r
}
