/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

// Package engine defines the playback engine contract.
//
// Position reports milliseconds of audio played since the last Play. A Seek
// moves the read head but leaves that clock running, so callers that want a
// timeline position have to keep their own offset.
package engine

// NotPlaying is returned by Position when no stream is playing.
const NotPlaying = -1

type Engine interface {
	Load(path string) error
	Play()
	Pause()
	Unpause()
	Stop()
	Seek(seconds float64)
	Position() int
	Close() error
}
