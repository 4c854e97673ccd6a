/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"seekplay/internal/config"
	"seekplay/internal/decode"
	"seekplay/internal/device"
	"seekplay/internal/icon"
	"seekplay/internal/player"
	"seekplay/internal/ui"
	"seekplay/internal/window"
	"seekplay/pkg/params"

	logging "github.com/ipfs/go-log/v2"
)

const (
	usage_text = "Usage: seekplay [-config file.json] [-volume n] [-loglevel level] <audio file>"
	icon_res   = 160
)

var log = logging.Logger("seekplay")

func main() {
	if err := run(); err != nil {
		log.Errorw("startup failed", "err", err)
		fmt.Fprintf(os.Stderr, "[FAIL] %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "JSON config file")
	volume := flag.Float64("volume", 0, "gain exponent, base 2 (0 = unchanged)")
	logLevel := flag.String("loglevel", "", "debug, info, warn or error")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "%s version %d.%d\n%s\n", params.AppName, params.VersionMajor, params.VersionMinor, usage_text)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "volume":
			cfg.Playback.Volume = *volume
		case "loglevel":
			cfg.LogLevel = *logLevel
		}
	})
	if flag.NArg() > 0 {
		cfg.Audio = flag.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, _ := logging.LevelFromString(cfg.LogLevel)
	logging.SetAllLoggers(lvl)

	if cfg.Audio == "" {
		if cfg.Audio, err = askAudioPath(params.DefaultAudio); err != nil {
			return err
		}
	}

	eng, err := device.NewSpeaker(device.Options{
		SampleRate: cfg.Playback.SampleRate,
		Buffer:     cfg.Buffer(),
		Volume:     cfg.Playback.Volume,
	})
	if err != nil {
		return err
	}
	defer eng.Close()

	tracker := player.New(eng, decode.Probe)
	if err := tracker.Load(cfg.Audio); err != nil {
		return err
	}

	playIcon, pauseIcon, err := loadIcons(cfg.Icons)
	if err != nil {
		return err
	}

	panel := ui.NewPanel(tracker, ui.Centered(params.PanelWidth, params.PanelHeight, params.WindowWidth, params.WindowHeight))
	log.Infow("ready", "audio", cfg.Audio, "duration", tracker.Duration())

	return window.Run(panel, window.Options{
		Width:     params.WindowWidth,
		Height:    params.WindowHeight,
		Title:     params.WindowTitle,
		TPS:       params.TicksPerSec,
		PlayIcon:  playIcon,
		PauseIcon: pauseIcon,
	})
}

// loadIcons returns the configured icon files, falling back to the
// built-in glyphs.
func loadIcons(c config.Icons) (image.Image, image.Image, error) {
	var play, pause image.Image = icon.Play(icon_res, ui.ProgressFG, ui.ProgressHead), icon.Pause(icon_res, ui.ProgressFG, ui.ProgressHead)

	if c.Play != "" {
		img, err := icon.LoadFile(c.Play, icon_res)
		if err != nil {
			return nil, nil, err
		}
		play = img
	}
	if c.Pause != "" {
		img, err := icon.LoadFile(c.Pause, icon_res)
		if err != nil {
			return nil, nil, err
		}
		pause = img
	}
	return play, pause, nil
}
