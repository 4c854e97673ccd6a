/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package decode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gowav "github.com/go-audio/wav"
)

// Probe reports the total play time of the file at path. It opens its own
// handle and never touches a stream handed out by Open.
func Probe(path string) (time.Duration, error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		return probeWav(path)
	}

	s, format, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	return format.SampleRate.D(s.Len()), nil
}

// probeWav reads the duration from the RIFF header without decoding PCM.
func probeWav(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	d := gowav.NewDecoder(f)
	if !d.IsValidFile() {
		return 0, fmt.Errorf("probe %s: invalid wav header", filepath.Base(path))
	}
	dur, err := d.Duration()
	if err != nil {
		return 0, fmt.Errorf("probe %s: %w", filepath.Base(path), err)
	}
	return dur, nil
}
