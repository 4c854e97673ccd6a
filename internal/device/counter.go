/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package device

import (
	"time"

	"github.com/faiface/beep"
)

// counter tallies the samples pulled through it.
type counter struct {
	Streamer beep.Streamer
	n        int
}

func (c *counter) Stream(samples [][2]float64) (int, bool) {
	n, ok := c.Streamer.Stream(samples)
	c.n += n
	return n, ok
}

func (c *counter) Err() error { return c.Streamer.Err() }

func millis(rate beep.SampleRate, n int) int {
	return int(rate.D(n) / time.Millisecond)
}

// samplePos converts seconds to a sample index inside [0, length].
func samplePos(rate beep.SampleRate, seconds float64, length int) int {
	p := rate.N(time.Duration(seconds * float64(time.Second)))
	if p < 0 {
		return 0
	}
	if p > length {
		return length
	}
	return p
}
