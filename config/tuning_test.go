package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func saveTuning(t *testing.T) {
	t.Helper()
	player, physics, platforms := Player, Physics, Platforms
	platforms.Spawns = append([]PlatformSpec(nil), Platforms.Spawns...)
	t.Cleanup(func() {
		Player, Physics, Platforms = player, physics, platforms
	})
}

func TestLoadTuningOverridesOnlyGivenKeys(t *testing.T) {
	saveTuning(t)

	doc := `
player:
  acceleration: 320
  starting_lives: 5
physics:
  gravity: 1200
platforms:
  patrol_speed: 60
`
	if err := LoadTuning(strings.NewReader(doc)); err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}

	if Player.Acceleration != 320 {
		t.Errorf("acceleration = %v, want 320", Player.Acceleration)
	}
	if Player.StartingLives != 5 {
		t.Errorf("starting lives = %v, want 5", Player.StartingLives)
	}
	if Player.Drag != 1000 {
		t.Errorf("drag changed to %v", Player.Drag)
	}
	if Physics.Gravity != 1200 {
		t.Errorf("gravity = %v, want 1200", Physics.Gravity)
	}
	if Platforms.PatrolSpeed != 60 || len(Platforms.Spawns) != 3 {
		t.Errorf("platforms = %+v", Platforms)
	}
}

func TestLoadTuningRejectsUnknownKeys(t *testing.T) {
	saveTuning(t)

	err := LoadTuning(strings.NewReader("player:\n  acceleraton: 1\n"))
	if err == nil {
		t.Fatal("expected error for misspelled key")
	}
	if Player.Acceleration != 200 {
		t.Errorf("acceleration = %v after failed load", Player.Acceleration)
	}
}

func TestLoadTuningRejectsInvertedPatrol(t *testing.T) {
	saveTuning(t)

	doc := "platforms:\n  spawns:\n    - {x: 10, y: 10, min_x: 50, max_x: 20}\n"
	if err := LoadTuning(strings.NewReader(doc)); err == nil {
		t.Fatal("expected error for min_x > max_x")
	}
	if len(Platforms.Spawns) != 3 {
		t.Errorf("spawns replaced after failed load: %+v", Platforms.Spawns)
	}
}

func TestLoadTuningEmptyIsNoop(t *testing.T) {
	saveTuning(t)

	if err := LoadTuning(strings.NewReader("")); err != nil {
		t.Fatalf("LoadTuning(empty): %v", err)
	}
	if Player.JumpVelocity != -500 {
		t.Errorf("jump velocity = %v", Player.JumpVelocity)
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{in: "full", want: VariantFull},
		{in: " Basic ", want: VariantBasic},
		{in: "b", want: VariantBasic},
		{in: "hard", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseVariant(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseVariant(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVariantNextCycles(t *testing.T) {
	if VariantFull.Next() != VariantBasic || VariantBasic.Next() != VariantFull {
		t.Error("variants do not cycle")
	}
}

func TestFeaturesPresets(t *testing.T) {
	full := Features(VariantFull)
	if !full.Coins || !full.Lives || !full.MovingPlatforms {
		t.Errorf("full preset missing features: %+v", full)
	}
	if !full.HasRole(LayerKillable) || !full.HasRole(LayerWater) {
		t.Error("full preset should carry hazard layers")
	}

	basic := Features(VariantBasic)
	if basic.Coins || basic.Lives || basic.MovingPlatforms {
		t.Errorf("basic preset has extra features: %+v", basic)
	}
	if len(basic.Layers) != 2 || basic.HasRole(LayerWater) {
		t.Errorf("basic layers = %+v", basic.Layers)
	}
}

func TestTuningWatcherAppliesLastWriteOfABurst(t *testing.T) {
	saveTuning(t)
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	write := func(doc string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("player:\n  acceleration: 100\n")

	w, err := WatchTuning(path)
	if err != nil {
		t.Fatalf("WatchTuning: %v", err)
	}
	defer w.Close()

	// truncate then write, saved twice in quick succession
	write("")
	write("player:\n  acceleration: 111\n")
	time.Sleep(tuningSettle / 4)
	write("player:\n  acceleration: 222\n")

	deadline := time.Now().Add(5 * time.Second)
	for {
		applied, err := w.Poll()
		if err != nil {
			t.Fatalf("Poll: %v", err)
		}
		if applied {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("no reload reported")
		}
		time.Sleep(10 * time.Millisecond)
	}
	if Player.Acceleration != 222 {
		t.Errorf("acceleration = %v, want the last write", Player.Acceleration)
	}
}
