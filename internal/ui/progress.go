/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package ui

// Transport is the part of a playback session the progress bar needs.
type Transport interface {
	Position() float64
	Duration() float64
	Seek(seconds float64)
}

type dragState struct {
	active     bool
	pending    float64
	hasPending bool
}

// ProgressBar shows elapsed/total time and seeks on drag release.
type ProgressBar struct {
	transport Transport
	rect      Rect
	line      Rect
	fontSize  int
	drag      dragState
}

func NewProgressBar(t Transport, r Rect) *ProgressBar {
	line := Rect{X: r.X, W: r.W, H: r.H / 15}.WithCenterY(r.CenterY())
	return &ProgressBar{
		transport: t,
		rect:      r,
		line:      line,
		fontSize:  r.H / 5,
	}
}

func (p *ProgressBar) headRadius() int { return int(float64(p.rect.H) * 0.15) }

// hitRect is taller than the drawn line so the head is easy to grab.
func (p *ProgressBar) hitRect() Rect {
	return Rect{X: p.rect.X, W: p.rect.W, H: int(float64(p.rect.H) * 0.3)}.WithCenterY(p.rect.CenterY())
}

func (p *ProgressBar) Dragging() bool { return p.drag.active }

func (p *ProgressBar) playbackFraction() float64 {
	d := p.transport.Duration()
	if d <= 0 {
		return 0
	}
	return p.transport.Position() / d
}

// Fraction is the drag target while dragging, else the playback fraction.
func (p *ProgressBar) Fraction() float64 {
	if p.drag.active && p.drag.hasPending {
		return p.drag.pending
	}
	return p.playbackFraction()
}

// Seconds is the time shown in the elapsed label.
func (p *ProgressBar) Seconds() float64 {
	if p.drag.active && p.drag.hasPending {
		return float64(int(p.drag.pending * p.transport.Duration()))
	}
	return p.transport.Position()
}

// MapPointerX maps x over the bar, inset by the head radius on both ends,
// to a fraction in [0, 1].
func (p *ProgressBar) MapPointerX(x int) float64 {
	inset := float64(p.rect.H) * 0.15
	span := float64(p.rect.W) - float64(p.rect.H)*0.3
	if span <= 0 {
		return 0
	}
	f := (float64(x-p.rect.X) - inset) / span
	return clamp01(f)
}

func (p *ProgressBar) HandleEvent(ev Event) {
	switch ev.Kind {
	case PointerDown:
		if ev.Button == ButtonLeft && p.hitRect().Contains(ev.X, ev.Y) {
			p.drag = dragState{active: true, pending: p.playbackFraction(), hasPending: true}
		}
	case PointerMove:
		if p.drag.active {
			p.drag.pending = p.MapPointerX(ev.X)
			p.drag.hasPending = true
		}
	case PointerUp:
		if ev.Button == ButtonLeft && p.drag.active {
			f := p.MapPointerX(ev.X)
			p.drag = dragState{}
			p.transport.Seek(f * p.transport.Duration())
		}
	}
}

func (p *ProgressBar) Draw(c Canvas) {
	border := p.line.H / 2
	r := p.headRadius()
	headX := p.line.X + int(float64(p.line.W-r*2)*clamp01(p.Fraction())) + r

	fg := p.line
	fg.W = max(headX-p.line.X, p.line.H)

	c.FillRect(p.line, border, ProgressBG)
	c.FillRect(fg, border, ProgressFG)
	c.FillCircle(headX, fg.CenterY(), r, ProgressHead)

	elapsed := FormatClock(p.Seconds())
	total := FormatClock(p.transport.Duration())
	textY := p.line.Bottom() + (p.rect.Bottom()-p.line.Bottom()-p.fontSize)/2
	c.Text(elapsed, p.line.X, textY, p.fontSize, TextColor)
	c.Text(total, p.line.Right()-c.TextWidth(total, p.fontSize), textY, p.fontSize, TextColor)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
