/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"seekplay/pkg/params"

	logging "github.com/ipfs/go-log/v2"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Audio    string   `json:"audio"`
	LogLevel string   `json:"log_level"`
	Playback Playback `json:"playback"`
	Icons    Icons    `json:"icons"`
}

type Playback struct {
	SampleRate int `json:"sample_rate"`
	BufferMS   int `json:"buffer_ms"`

	// Base-2 gain exponent handed to effects.Volume. 0 leaves the signal
	// untouched, -1 halves it.
	Volume float64 `json:"volume"`
}

// Icons are optional image files replacing the built-in glyphs.
type Icons struct {
	Play  string `json:"play"`
	Pause string `json:"pause"`
}

const (
	EnvAudio    = "SEEKPLAY_AUDIO"
	EnvLogLevel = "SEEKPLAY_LOG_LEVEL"
	EnvVolume   = "SEEKPLAY_VOLUME"
)

func Default() Config {
	return Config{
		LogLevel: "info",
		Playback: Playback{
			SampleRate: params.SampleRate,
			BufferMS:   params.BufferMillis,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvAudio); v != "" {
		c.Audio = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvVolume); v != "" {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvVolume, v)
		}
		c.Playback.Volume = vol
	}
	return nil
}

func (c Config) Validate() error {
	if c.Playback.SampleRate < 8000 || c.Playback.SampleRate > 192000 {
		return fmt.Errorf("%w: sample_rate %d", ErrInvalid, c.Playback.SampleRate)
	}
	if c.Playback.BufferMS < 10 || c.Playback.BufferMS > 1000 {
		return fmt.Errorf("%w: buffer_ms %d", ErrInvalid, c.Playback.BufferMS)
	}
	if c.Playback.Volume < -16 || c.Playback.Volume > 4 {
		return fmt.Errorf("%w: volume %v", ErrInvalid, c.Playback.Volume)
	}
	if _, err := logging.LevelFromString(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

func (c Config) Buffer() time.Duration {
	return time.Duration(c.Playback.BufferMS) * time.Millisecond
}
