package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/coinhop/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume float64 `json:"sfxVolume"`
	Variant   string  `json:"variant"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when persistence is
// unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.ItemKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return DecodeSettings(data)
}

// DecodeSettings parses stored settings, replacing an unknown variant with
// the default one.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	settings := SavedSettings{SFXVolume: cfg.Audio.DefaultSFXVol}
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	if _, err := cfg.ParseVariant(settings.Variant); err != nil {
		settings.Variant = cfg.VariantFull.String()
	}
	if settings.SFXVolume < 0 || settings.SFXVolume > 1 {
		settings.SFXVolume = cfg.Audio.DefaultSFXVol
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.ItemKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings applies loaded settings to the global audio state and
// returns the saved variant.
func ApplySavedSettings(saved *SavedSettings) (cfg.Variant, bool) {
	if saved == nil {
		return cfg.VariantFull, false
	}
	SetSFXVolume(saved.SFXVolume)
	v, err := cfg.ParseVariant(saved.Variant)
	if err != nil {
		return cfg.VariantFull, false
	}
	return v, true
}
