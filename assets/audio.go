package assets

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader decodes preloaded sound bytes into PCM once per key and hands
// out fresh players.
type AudioLoader struct {
	sfxCache map[string][]byte
	context  *audio.Context
	registry *Registry
}

// NewAudioLoader creates a new audio loader reading from the registry
func NewAudioLoader(ctx *audio.Context, registry *Registry) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
		registry: registry,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(key string) error {
	if _, ok := l.sfxCache[key]; ok {
		return nil
	}

	data, err := l.registry.Sound(key)
	if err != nil {
		return err
	}

	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode wav %s: %w", key, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("read decoded audio %s: %w", key, err)
	}

	l.sfxCache[key] = decoded
	return nil
}

// LoadSFX returns a new player for the sound each time, so overlapping
// plays do not cut each other off.
func (l *AudioLoader) LoadSFX(key string) (*audio.Player, error) {
	if err := l.PreloadSFX(key); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[key]), nil
}
