/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

// Package player keeps a continuous playback timeline on top of an engine
// whose position clock only knows about the last Play.
package player

import (
	"time"

	"seekplay/internal/engine"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("seekplay/player")

// Prober reports the total length of a media file.
type Prober func(path string) (time.Duration, error)

type Tracker struct {
	engine engine.Engine
	probe  Prober

	paused   bool
	duration float64 // seconds
	offset   int     // ms added to the raw engine position
	lastRaw  int     // last raw position seen, -1 when idle
}

func New(e engine.Engine, probe Prober) *Tracker {
	return &Tracker{engine: e, probe: probe, lastRaw: engine.NotPlaying}
}

// Load probes the file before handing it to the engine, so a failure leaves
// the previous session untouched.
func (t *Tracker) Load(path string) error {
	dur, err := t.probe(path)
	if err != nil {
		return &UnreadableMediaError{Path: path, Err: err}
	}
	if err := t.engine.Load(path); err != nil {
		return &UnreadableMediaError{Path: path, Err: err}
	}

	t.offset = 0
	t.paused = false
	t.lastRaw = engine.NotPlaying
	t.duration = dur.Seconds()
	log.Infow("session", "path", path, "duration", dur)
	return nil
}

func (t *Tracker) Play() {
	t.paused = false
	t.offset = 0
	t.lastRaw = engine.NotPlaying
	t.engine.Play()
}

func (t *Tracker) Stop() {
	t.paused = false
	t.offset = 0
	t.lastRaw = engine.NotPlaying
	t.engine.Stop()
}

func (t *Tracker) Pause() {
	t.paused = true
	t.engine.Pause()
}

func (t *Tracker) Unpause() {
	t.paused = false
	t.engine.Unpause()
}

// Seek jumps to seconds, starting playback first when idle.
func (t *Tracker) Seek(seconds float64) {
	if !t.IsPlaying() {
		t.Play()
	}
	t.offset += int((seconds - t.Position()) * 1000)
	t.engine.Seek(seconds)
	log.Debugw("seek", "target", seconds, "offset", t.offset)
}

// Position returns the elapsed time in seconds. A raw value below the last
// one seen is treated as a transient clock reset and the previous reading
// is reused for that poll.
func (t *Tracker) Position() float64 {
	raw := t.engine.Position()
	if raw == engine.NotPlaying {
		t.lastRaw = engine.NotPlaying
		return 0
	}
	if raw < t.lastRaw {
		return float64(t.offset+t.lastRaw) / 1000
	}
	t.lastRaw = raw
	return float64(t.offset+raw) / 1000
}

func (t *Tracker) IsPlaying() bool { return t.engine.Position() != engine.NotPlaying }

func (t *Tracker) IsPaused() bool { return t.paused }

// PlayingState is true when audio is actually coming out.
func (t *Tracker) PlayingState() bool {
	if !t.IsPlaying() {
		return false
	}
	return !t.paused
}

// Duration is the probed total length in seconds.
func (t *Tracker) Duration() float64 { return t.duration }
