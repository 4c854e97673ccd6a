/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package ui

type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	KeyDown
)

type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
)

type Key int

const (
	KeyNone Key = iota
	KeySpace
)

type Event struct {
	Kind   EventKind
	Button Button
	Key    Key
	X, Y   int
}

// PointerSample is the mouse state polled once per frame.
type PointerSample struct {
	X, Y         int
	LeftPressed  bool // went down this frame
	LeftReleased bool // went up this frame
}

// Sampler turns per-frame pointer polls into discrete events.
type Sampler struct {
	x, y int
	seen bool
}

// Events emits a move when the cursor changed position, then a press and
// a release if they happened this frame.
func (s *Sampler) Events(p PointerSample) []Event {
	var evs []Event
	if s.seen && (p.X != s.x || p.Y != s.y) {
		evs = append(evs, Event{Kind: PointerMove, X: p.X, Y: p.Y})
	}
	s.x, s.y, s.seen = p.X, p.Y, true

	if p.LeftPressed {
		evs = append(evs, Event{Kind: PointerDown, Button: ButtonLeft, X: p.X, Y: p.Y})
	}
	if p.LeftReleased {
		evs = append(evs, Event{Kind: PointerUp, Button: ButtonLeft, X: p.X, Y: p.Y})
	}
	return evs
}
