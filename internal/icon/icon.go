/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

// Package icon prepares the play and pause button images.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Load decodes a PNG or JPEG, crops it square from the center and scales
// it to size x size.
func Load(r io.Reader, size int) (*image.RGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// smallest side makes the square
	side := w
	if h < w {
		side = h
	}
	x0 := bounds.Min.X + (w-side)/2
	y0 := bounds.Min.Y + (h-side)/2

	square := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(square, square.Bounds(), src, image.Pt(x0, y0), draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), square, square.Bounds(), draw.Src, nil)
	return dst, nil
}

func LoadFile(path string, size int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Load(f, size)
	if err != nil {
		return nil, fmt.Errorf("icon %s: %w", path, err)
	}
	return img, nil
}

// kappa places the cubic control points of a quarter circle.
const kappa = 0.5522848

// badge paints a disc in bg filling the square, then the path traced by
// glyph in fg. glyph gets the rasterizer and the side length.
func badge(size int, bg, fg color.Color, glyph func(z *vector.Rasterizer, s float32)) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float32(size)

	z := vector.NewRasterizer(size, size)
	disc(z, s/2, s/2, s/2)
	z.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{})

	z.Reset(size, size)
	glyph(z, s)
	z.Draw(img, img.Bounds(), image.NewUniform(fg), image.Point{})
	return img
}

func disc(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

func bar(z *vector.Rasterizer, x0, y0, x1, y1 float32) {
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
}

// Play draws a right-pointing triangle.
func Play(size int, bg, fg color.Color) *image.RGBA {
	return badge(size, bg, fg, func(z *vector.Rasterizer, s float32) {
		z.MoveTo(0.38*s, 0.28*s)
		z.LineTo(0.74*s, 0.5*s)
		z.LineTo(0.38*s, 0.72*s)
		z.ClosePath()
	})
}

// Pause draws two vertical bars.
func Pause(size int, bg, fg color.Color) *image.RGBA {
	return badge(size, bg, fg, func(z *vector.Rasterizer, s float32) {
		bar(z, 0.34*s, 0.28*s, 0.45*s, 0.72*s)
		bar(z, 0.55*s, 0.28*s, 0.66*s, 0.72*s)
	})
}
