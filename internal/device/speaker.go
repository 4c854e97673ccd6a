/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

// Package device plays decoded tracks through the beep speaker.
package device

import (
	"fmt"
	"sync/atomic"
	"time"

	"seekplay/internal/decode"
	"seekplay/internal/engine"
	"seekplay/pkg/params"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("seekplay/device")

type Options struct {
	SampleRate int
	Buffer     time.Duration
	Volume     float64
}

// output is the mixer the speaker feeds. The lock is the one the mixer
// holds while pulling samples.
type output interface {
	Lock()
	Unlock()
	Clear()
	Play(beep.Streamer)
	Close()
}

type beepOutput struct{}

func (beepOutput) Lock()                { speaker.Lock() }
func (beepOutput) Unlock()              { speaker.Unlock() }
func (beepOutput) Clear()               { speaker.Clear() }
func (beepOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (beepOutput) Close()               { speaker.Close() }

type track struct {
	path   string
	stream beep.StreamSeekCloser
	format beep.Format
}

// chain holds the live handles of the streamer currently on the output.
type chain struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
	count  *counter
}

// Speaker plays one track at a time. All methods are meant to be called
// from a single goroutine; the output lock guards the state shared with
// the mixer.
type Speaker struct {
	out    output
	rate   beep.SampleRate
	volume float64

	cur   *track
	chain chain

	playing atomic.Bool
	gen     atomic.Uint64
}

var _ engine.Engine = (*Speaker)(nil)

func NewSpeaker(opts Options) (*Speaker, error) {
	sr := beep.SampleRate(opts.SampleRate)
	if err := speaker.Init(sr, sr.N(opts.Buffer)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	log.Debugw("speaker ready", "rate", opts.SampleRate, "buffer", opts.Buffer)
	return newSpeaker(beepOutput{}, sr, opts.Volume), nil
}

func newSpeaker(out output, rate beep.SampleRate, volume float64) *Speaker {
	return &Speaker{out: out, rate: rate, volume: volume}
}

// Load replaces the current track. The previous stream is stopped and
// closed only once the new one decoded.
func (s *Speaker) Load(path string) error {
	stream, format, err := decode.Open(path)
	if err != nil {
		return err
	}
	s.use(&track{path: path, stream: stream, format: format})
	log.Infow("loaded", "path", path, "length", format.SampleRate.D(stream.Len()))
	return nil
}

func (s *Speaker) use(t *track) {
	s.release()
	s.cur = t
}

func (s *Speaker) release() {
	s.Stop()
	if s.cur != nil {
		if err := s.cur.stream.Close(); err != nil {
			log.Warnw("close stream", "path", s.cur.path, "err", err)
		}
		s.cur = nil
	}
}

func (s *Speaker) source() beep.Streamer {
	if s.cur.format.SampleRate == s.rate {
		return s.cur.stream
	}
	return beep.Resample(params.ResampleQ, s.cur.format.SampleRate, s.rate, s.cur.stream)
}

// build wires ctrl, volume and counter over the current track and returns
// the streamer for the mixer. Its end callback only clears the playing
// flag while gen is still the newest generation.
func (s *Speaker) build(gen uint64) (chain, beep.Streamer) {
	count := &counter{Streamer: s.source()}
	vol := &effects.Volume{Streamer: count, Base: 2, Volume: s.volume}
	c := chain{
		ctrl:   &beep.Ctrl{Streamer: vol},
		volume: vol,
		count:  count,
	}
	return c, beep.Seq(c.ctrl, beep.Callback(func() {
		// runs on the mixer with the output lock held
		if s.gen.Load() == gen {
			s.playing.Store(false)
		}
	}))
}

// Play starts the track from the beginning and restarts the position clock.
func (s *Speaker) Play() {
	if s.cur == nil {
		return
	}
	gen := s.gen.Add(1)
	s.out.Clear()

	s.out.Lock()
	if err := s.cur.stream.Seek(0); err != nil {
		log.Errorw("rewind", "path", s.cur.path, "err", err)
	}
	c, stream := s.build(gen)
	s.chain = c
	s.out.Unlock()

	s.playing.Store(true)
	s.out.Play(stream)
	log.Debugw("play", "path", s.cur.path)
}

func (s *Speaker) setPaused(paused bool) {
	s.out.Lock()
	if s.chain.ctrl != nil {
		s.chain.ctrl.Paused = paused
	}
	s.out.Unlock()
}

func (s *Speaker) Pause() { s.setPaused(true) }
func (s *Speaker) Unpause() { s.setPaused(false) }

func (s *Speaker) Stop() {
	s.gen.Add(1)
	s.out.Clear()
	s.playing.Store(false)

	s.out.Lock()
	s.chain = chain{}
	s.out.Unlock()
}

// Seek moves the read head. The position clock keeps counting from where
// it was.
func (s *Speaker) Seek(seconds float64) {
	if s.cur == nil || !s.playing.Load() {
		return
	}

	s.out.Lock()
	defer s.out.Unlock()

	p := samplePos(s.cur.format.SampleRate, seconds, s.cur.stream.Len())
	if err := s.cur.stream.Seek(p); err != nil {
		log.Errorw("seek", "path", s.cur.path, "target", seconds, "err", err)
		return
	}
	// a fresh resampler drops history from before the jump
	if s.chain.count != nil && s.cur.format.SampleRate != s.rate {
		s.chain.count.Streamer = s.source()
	}
}

func (s *Speaker) Position() int {
	if !s.playing.Load() {
		return engine.NotPlaying
	}
	s.out.Lock()
	defer s.out.Unlock()
	if s.chain.count == nil {
		return engine.NotPlaying
	}
	return millis(s.rate, s.chain.count.n)
}

// Close releases the track and shuts the output down.
func (s *Speaker) Close() error {
	s.release()
	s.out.Close()
	return nil
}
