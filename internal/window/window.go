/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

// Package window runs the player panel inside an ebiten window.
package window

import (
	"errors"
	"image"

	"seekplay/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("seekplay/window")

type Options struct {
	Width, Height int
	Title         string
	TPS           int
	PlayIcon      image.Image
	PauseIcon     image.Image
}

type game struct {
	panel   *ui.Panel
	canvas  *canvas
	sampler ui.Sampler
	width   int
	height  int
}

// Run opens a fixed-size window and blocks until it is closed.
func Run(panel *ui.Panel, opts Options) error {
	if opts.PlayIcon == nil || opts.PauseIcon == nil {
		return errors.New("window: play and pause icons are required")
	}
	c, err := newCanvas(opts.PlayIcon, opts.PauseIcon)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(opts.TPS)

	g := &game{panel: panel, canvas: c, width: opts.Width, height: opts.Height}
	log.Debugw("window open", "width", opts.Width, "height", opts.Height, "tps", opts.TPS)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	log.Debug("window closed")
	return nil
}

func (g *game) Update() error {
	x, y := ebiten.CursorPosition()
	evs := g.sampler.Events(ui.PointerSample{
		X:            x,
		Y:            y,
		LeftPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		LeftReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	})
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		evs = append(evs, ui.Event{Kind: ui.KeyDown, Key: ui.KeySpace})
	}
	g.panel.HandleEvents(evs)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.Background)
	g.canvas.dst = screen
	g.panel.Draw(g.canvas)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
