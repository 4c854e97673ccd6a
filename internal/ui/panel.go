/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package ui

// Session is everything the panel widgets need from playback.
type Session interface {
	Transport
	Toggler
}

// Panel is the rounded control strip holding the button and progress bar.
type Panel struct {
	rect     Rect
	button   *PlayButton
	progress *ProgressBar
}

func NewPanel(s Session, r Rect) *Panel {
	size := r.H / 2
	padding := int(float64(size) * 0.7)

	btn := Rect{X: r.X + padding, W: size, H: size}.WithCenterY(r.CenterY())

	bar := Rect{X: btn.Right() + padding, Y: r.Y, H: r.H}
	bar.W = r.Right() - int(float64(padding)*1.2) - bar.X

	return &Panel{
		rect:     r,
		button:   NewPlayButton(s, btn),
		progress: NewProgressBar(s, bar),
	}
}

func (p *Panel) Button() *PlayButton { return p.button }
func (p *Panel) ProgressBar() *ProgressBar { return p.progress }

func (p *Panel) HandleEvent(ev Event) {
	if ev.Kind == KeyDown {
		if ev.Key == KeySpace {
			p.button.Toggle()
		}
		return
	}
	p.button.HandleEvent(ev)
	p.progress.HandleEvent(ev)
}

func (p *Panel) HandleEvents(evs []Event) {
	for _, ev := range evs {
		p.HandleEvent(ev)
	}
}

func (p *Panel) Draw(c Canvas) {
	c.FillRect(p.rect, p.rect.H/3, UIBackground)
	p.button.Draw(c)
	p.progress.Draw(c)
}
