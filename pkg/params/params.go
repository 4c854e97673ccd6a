/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package params

const (
	// === IDENTITY & VERSIONING ===
	AppName      = "seekplay"
	VersionMajor = 1
	VersionMinor = 0

	// === WINDOW ===
	WindowWidth  = 900
	WindowHeight = 500
	WindowTitle  = "Audio Player - drag to seek"
	TicksPerSec  = 60

	// === PANEL (centered in window) ===
	PanelWidth  = 800
	PanelHeight = 160

	// === ENGINE ===
	SampleRate   = 48000
	BufferMillis = 100
	ResampleQ    = 4

	// Default file when nothing is given on the command line or prompt
	DefaultAudio = "test.ogg"
)
