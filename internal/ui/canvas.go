/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package ui

import "image/color"

type IconKind int

const (
	IconPlay IconKind = iota
	IconPause
)

// Canvas is the drawing surface widgets render onto.
type Canvas interface {
	FillRect(r Rect, radius int, c color.Color)
	FillCircle(cx, cy, radius int, c color.Color)
	// Text draws s with its top-left corner at x, y.
	Text(s string, x, y, size int, c color.Color)
	TextWidth(s string, size int) int
	Icon(kind IconKind, r Rect)
}

var (
	Background   = color.RGBA{255, 255, 255, 255}
	UIBackground = color.RGBA{242, 242, 242, 255}
	ProgressBG   = color.RGBA{189, 203, 225, 255}
	ProgressFG   = color.RGBA{84, 143, 255, 255}
	ProgressHead = color.RGBA{255, 255, 255, 255}
	TextColor    = color.RGBA{23, 23, 23, 255}
)
