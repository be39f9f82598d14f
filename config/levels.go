package config

import (
	"fmt"
	"strings"
)

// Variant selects one of the gameplay scene presets
type Variant int

const (
	VariantFull Variant = iota
	VariantBasic
	variantCount
)

func (v Variant) String() string {
	switch v {
	case VariantFull:
		return "full"
	case VariantBasic:
		return "basic"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// Next cycles through the known variants
func (v Variant) Next() Variant {
	return (v + 1) % variantCount
}

// ParseVariant accepts the names produced by Variant.String.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "a":
		return VariantFull, nil
	case "basic", "b":
		return VariantBasic, nil
	}
	return VariantFull, fmt.Errorf("unknown level variant %q", s)
}

// LayerRole decides which resolv tag a layer's collidable tiles receive
type LayerRole int

const (
	LayerDecor LayerRole = iota
	LayerSolid
	LayerKillable
	LayerWater
)

// LayerSpec names a tile layer of the map and its role
type LayerSpec struct {
	Name string
	Role LayerRole
}

// SceneFeatures is the feature set a gameplay scene is built from
type SceneFeatures struct {
	Label           string
	Layers          []LayerSpec
	Coins           bool
	Lives           bool
	MovingPlatforms bool
	WalkingVFX      bool
}

// HasRole reports whether any configured layer has the given role
func (f SceneFeatures) HasRole(role LayerRole) bool {
	for _, l := range f.Layers {
		if l.Role == role {
			return true
		}
	}
	return false
}

// LevelsConfig contains tilemap and preset configuration
type LevelsConfig struct {
	TilemapKey       string
	CollidesProperty string

	CoinGroup string
	CoinName  string
	CoinSheet string
	CoinFrame int

	Variants map[Variant]SceneFeatures
}

var Levels LevelsConfig

// Features returns the preset for v, falling back to the full level.
func Features(v Variant) SceneFeatures {
	if f, ok := Levels.Variants[v]; ok {
		return f
	}
	return Levels.Variants[VariantFull]
}

func init() {
	Levels = LevelsConfig{
		TilemapKey:       "platformer-level-1",
		CollidesProperty: "collides",
		CoinGroup:        "Objects",
		CoinName:         "coin",
		CoinSheet:        "tilemap_sheet",
		CoinFrame:        151,
		Variants: map[Variant]SceneFeatures{
			VariantFull: {
				Label: "Full",
				Layers: []LayerSpec{
					{Name: "BG", Role: LayerDecor},
					{Name: "Ground-n-Platforms", Role: LayerSolid},
					{Name: "Killables", Role: LayerKillable},
					{Name: "Overlays", Role: LayerDecor},
					{Name: "Water", Role: LayerWater},
					{Name: "Flag", Role: LayerDecor},
				},
				Coins:           true,
				Lives:           true,
				MovingPlatforms: true,
				WalkingVFX:      true,
			},
			VariantBasic: {
				Label: "Basic",
				Layers: []LayerSpec{
					{Name: "BG", Role: LayerDecor},
					{Name: "Ground-n-Platforms", Role: LayerSolid},
				},
				WalkingVFX: true,
			},
		},
	}
}
