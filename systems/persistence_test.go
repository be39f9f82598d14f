package systems

import (
	"testing"

	cfg "github.com/automoto/coinhop/config"
)

func TestDecodeSettings(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantVolume  float64
		wantVariant string
		wantErr     bool
	}{
		{"saved", `{"sfxVolume":0.25,"variant":"basic"}`, 0.25, "basic", false},
		{"missing volume", `{"variant":"full"}`, cfg.Audio.DefaultSFXVol, "full", false},
		{"unknown variant", `{"sfxVolume":0.5,"variant":"c"}`, 0.5, "full", false},
		{"volume out of range", `{"sfxVolume":3,"variant":"basic"}`, cfg.Audio.DefaultSFXVol, "basic", false},
		{"muted", `{"sfxVolume":0,"variant":"basic"}`, 0, "basic", false},
		{"corrupt", `{"sfxVolume":`, 0, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSettings([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodeSettings(%s) = %+v, want error", tt.data, got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.SFXVolume != tt.wantVolume || got.Variant != tt.wantVariant {
				t.Errorf("DecodeSettings(%s) = %+v", tt.data, got)
			}
		})
	}
}

func TestApplySavedSettings(t *testing.T) {
	defer SetSFXVolume(GetSFXVolume())

	if v, ok := ApplySavedSettings(nil); ok || v != cfg.VariantFull {
		t.Errorf("nil settings = %v, %v", v, ok)
	}

	v, ok := ApplySavedSettings(&SavedSettings{SFXVolume: 0.75, Variant: "basic"})
	if !ok || v != cfg.VariantBasic {
		t.Errorf("variant = %v, %v, want basic", v, ok)
	}
	if GetSFXVolume() != 0.75 {
		t.Errorf("volume = %v, want 0.75", GetSFXVolume())
	}
}

func TestPersistenceDisabledIsNoop(t *testing.T) {
	saved := gdataManager
	gdataManager = nil
	defer func() { gdataManager = saved }()

	if s, err := LoadSettings(); s != nil || err != nil {
		t.Errorf("LoadSettings = %v, %v", s, err)
	}
	if err := SaveSettings(&SavedSettings{}); err != nil {
		t.Errorf("SaveSettings = %v", err)
	}
}
