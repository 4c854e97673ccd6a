/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package ui

// Toggler is the part of a playback session the play button drives.
type Toggler interface {
	IsPlaying() bool
	IsPaused() bool
	PlayingState() bool
	Play()
	Pause()
	Unpause()
}

type PlayButton struct {
	session Toggler
	rect    Rect
}

func NewPlayButton(s Toggler, r Rect) *PlayButton {
	return &PlayButton{session: s, rect: r}
}

// Toggle starts, resumes or pauses playback depending on the session state.
func (b *PlayButton) Toggle() {
	switch {
	case !b.session.IsPlaying():
		b.session.Play()
	case b.session.IsPaused():
		b.session.Unpause()
	default:
		b.session.Pause()
	}
}

func (b *PlayButton) HandleEvent(ev Event) {
	if ev.Kind == PointerDown && ev.Button == ButtonLeft && b.rect.Contains(ev.X, ev.Y) {
		b.Toggle()
	}
}

func (b *PlayButton) Draw(c Canvas) {
	kind := IconPlay
	if b.session.PlayingState() {
		kind = IconPause
	}
	c.Icon(kind, b.rect)
}
