/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

// Package ui holds the player widgets. Widgets take input as Events and
// draw onto a Canvas, so they run without a window.
package ui

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Right() int   { return r.X + r.W }
func (r Rect) Bottom() int  { return r.Y + r.H }
func (r Rect) CenterX() int { return r.X + r.W/2 }
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Contains reports whether the point lies inside r, right and bottom edges
// excluded.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// WithCenterY moves r vertically so its center sits on cy.
func (r Rect) WithCenterY(cy int) Rect {
	r.Y = cy - r.H/2
	return r
}

// Centered returns a w x h rect centered in an outerW x outerH area.
func Centered(w, h, outerW, outerH int) Rect {
	return Rect{X: (outerW - w) / 2, Y: (outerH - h) / 2, W: w, H: h}
}
