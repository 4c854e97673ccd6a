/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package window

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"seekplay/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// canvas implements ui.Canvas on an ebiten image.
type canvas struct {
	dst   *ebiten.Image
	font  *text.GoTextFaceSource
	faces map[int]*text.GoTextFace
	icons map[ui.IconKind]*ebiten.Image
}

func newCanvas(play, pause image.Image) (*canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &canvas{
		font:  src,
		faces: make(map[int]*text.GoTextFace),
		icons: map[ui.IconKind]*ebiten.Image{
			ui.IconPlay:  ebiten.NewImageFromImage(play),
			ui.IconPause: ebiten.NewImageFromImage(pause),
		},
	}, nil
}

func (c *canvas) face(size int) *text.GoTextFace {
	f, ok := c.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: c.font, Size: float64(size)}
		c.faces[size] = f
	}
	return f
}

// FillRect draws a rounded rect as two crossing bars plus corner discs.
func (c *canvas) FillRect(r ui.Rect, radius int, clr color.Color) {
	radius = min(radius, r.W/2, r.H/2)
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	if radius <= 0 {
		vector.DrawFilledRect(c.dst, x, y, w, h, clr, false)
		return
	}

	rad := float32(radius)
	vector.DrawFilledRect(c.dst, x+rad, y, w-2*rad, h, clr, false)
	vector.DrawFilledRect(c.dst, x, y+rad, w, h-2*rad, clr, false)
	for _, p := range [4][2]float32{
		{x + rad, y + rad},
		{x + w - rad, y + rad},
		{x + rad, y + h - rad},
		{x + w - rad, y + h - rad},
	} {
		vector.DrawFilledCircle(c.dst, p[0], p[1], rad, clr, true)
	}
}

func (c *canvas) FillCircle(cx, cy, radius int, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(radius), clr, true)
}

func (c *canvas) Text(s string, x, y, size int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.dst, s, c.face(size), op)
}

func (c *canvas) TextWidth(s string, size int) int {
	w, _ := text.Measure(s, c.face(size), 0)
	return int(math.Ceil(w))
}

func (c *canvas) Icon(kind ui.IconKind, r ui.Rect) {
	img := c.icons[kind]
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	c.dst.DrawImage(img, op)
}
