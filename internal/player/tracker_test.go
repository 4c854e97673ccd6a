/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package player

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"seekplay/internal/engine"
)

// fakeEngine reports milliseconds since the last Play and ignores seeks in
// that clock, like the speaker engine.
type fakeEngine struct {
	loadErr error
	loads   []string
	raw     int
	paused  bool
	seeks   []float64
	stale   []int // raw values returned once before the real clock
}

func newFakeEngine() *fakeEngine { return &fakeEngine{raw: engine.NotPlaying} }

func (f *fakeEngine) Load(path string) error {
	f.loads = append(f.loads, path)
	if f.loadErr != nil {
		return f.loadErr
	}
	f.raw = engine.NotPlaying
	return nil
}

func (f *fakeEngine) Close() error { return nil }
func (f *fakeEngine) Play() { f.raw = 0; f.paused = false }
func (f *fakeEngine) Pause() { f.paused = true }
func (f *fakeEngine) Unpause() { f.paused = false }
func (f *fakeEngine) Stop() { f.raw = engine.NotPlaying }
func (f *fakeEngine) Seek(s float64) { f.seeks = append(f.seeks, s) }

func (f *fakeEngine) Position() int {
	if len(f.stale) > 0 && f.raw != engine.NotPlaying {
		v := f.stale[0]
		f.stale = f.stale[1:]
		return v
	}
	return f.raw
}

func (f *fakeEngine) advance(ms int) {
	if f.raw != engine.NotPlaying && !f.paused {
		f.raw += ms
	}
}

func probeOf(d time.Duration) Prober {
	return func(string) (time.Duration, error) { return d, nil }
}

func loaded(t *testing.T) (*Tracker, *fakeEngine) {
	t.Helper()
	fe := newFakeEngine()
	tr := New(fe, probeOf(200*time.Second))
	if err := tr.Load("song.ogg"); err != nil {
		t.Fatal(err)
	}
	return tr, fe
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestLoadErrors(t *testing.T) {
	fe := newFakeEngine()
	fe.loadErr = errors.New("bad header")
	err := New(fe, probeOf(time.Second)).Load("x.ogg")
	if !errors.Is(err, ErrUnreadableMedia) {
		t.Fatalf("engine failure: err = %v", err)
	}
	var ume *UnreadableMediaError
	if !errors.As(err, &ume) || ume.Path != "x.ogg" {
		t.Errorf("err = %#v", err)
	}

	probeErr := func(string) (time.Duration, error) { return 0, errors.New("no length") }
	err = New(newFakeEngine(), probeErr).Load("y.ogg")
	if !errors.Is(err, ErrUnreadableMedia) {
		t.Fatalf("probe failure: err = %v", err)
	}
}

func TestFailedProbeKeepsSession(t *testing.T) {
	fe := newFakeEngine()
	lengths := map[string]time.Duration{"a.ogg": 90 * time.Second}
	tr := New(fe, func(path string) (time.Duration, error) {
		if d, ok := lengths[path]; ok {
			return d, nil
		}
		return 0, errors.New("no length")
	})
	if err := tr.Load("a.ogg"); err != nil {
		t.Fatal(err)
	}
	tr.Seek(30)
	fe.advance(500)

	if err := tr.Load("b.ogg"); !errors.Is(err, ErrUnreadableMedia) {
		t.Fatalf("err = %v", err)
	}
	if len(fe.loads) != 1 {
		t.Errorf("engine loads = %v, want only a.ogg", fe.loads)
	}
	if tr.Duration() != 90 {
		t.Errorf("duration = %v, want 90", tr.Duration())
	}
	if got := tr.Position(); !near(got, 30.5) {
		t.Errorf("position = %v, want 30.5", got)
	}
}

func TestLoadRecordsDuration(t *testing.T) {
	tr, _ := loaded(t)
	if tr.Duration() != 200 {
		t.Errorf("duration = %v", tr.Duration())
	}
	if tr.offset != 0 || tr.IsPlaying() {
		t.Errorf("fresh session: offset=%d playing=%v", tr.offset, tr.IsPlaying())
	}
}

func TestPositionIdle(t *testing.T) {
	tr, _ := loaded(t)
	if got := tr.Position(); got != 0 {
		t.Errorf("idle position = %v", got)
	}
	if tr.lastRaw != engine.NotPlaying {
		t.Errorf("lastRaw = %d", tr.lastRaw)
	}
}

func TestSeekStartsPlayback(t *testing.T) {
	tr, fe := loaded(t)
	tr.Seek(42)
	if !tr.IsPlaying() {
		t.Fatal("seek did not start playback")
	}
	if got := tr.Position(); !near(got, 42) {
		t.Errorf("position = %v, want 42", got)
	}
	if len(fe.seeks) != 1 || fe.seeks[0] != 42 {
		t.Errorf("seeks = %v", fe.seeks)
	}
}

func TestSeekKeepsTimelineContinuous(t *testing.T) {
	tr, fe := loaded(t)
	tr.Play()
	fe.advance(10000)
	if got := tr.Position(); !near(got, 10) {
		t.Fatalf("position = %v, want 10", got)
	}

	tr.Seek(30)
	if got := tr.Position(); !near(got, 30) {
		t.Errorf("after forward seek = %v, want 30", got)
	}
	fe.advance(500)
	if got := tr.Position(); !near(got, 30.5) {
		t.Errorf("after playing on = %v, want 30.5", got)
	}

	tr.Seek(5)
	if got := tr.Position(); !near(got, 5) {
		t.Errorf("after backward seek = %v, want 5", got)
	}
	fe.advance(250)
	if got := tr.Position(); !near(got, 5.25) {
		t.Errorf("after playing on = %v, want 5.25", got)
	}
}

func TestStaleReadingReusesLastValue(t *testing.T) {
	tr, fe := loaded(t)
	tr.Play()
	fe.advance(2000)
	tr.Position()

	fe.stale = []int{1500}
	if got := tr.Position(); !near(got, 2) {
		t.Errorf("stale poll = %v, want 2", got)
	}
	fe.advance(100)
	if got := tr.Position(); !near(got, 2.1) {
		t.Errorf("next poll = %v, want 2.1", got)
	}
}

func TestPauseKeepsOffset(t *testing.T) {
	tr, fe := loaded(t)
	tr.Play()
	fe.advance(3000)
	tr.Seek(60)
	before := tr.offset

	tr.Pause()
	if !tr.IsPaused() || !fe.paused {
		t.Fatal("pause not forwarded")
	}
	fe.advance(1000)
	tr.Unpause()
	if tr.IsPaused() || fe.paused {
		t.Fatal("unpause not forwarded")
	}
	if tr.offset != before {
		t.Errorf("offset changed %d -> %d", before, tr.offset)
	}
	if got := tr.Position(); !near(got, 60) {
		t.Errorf("position = %v, want 60", got)
	}
}

func TestPlayingState(t *testing.T) {
	tr, _ := loaded(t)
	if tr.PlayingState() {
		t.Error("idle reports playing")
	}
	tr.Play()
	if !tr.PlayingState() {
		t.Error("playing reports idle")
	}
	tr.Pause()
	if tr.PlayingState() {
		t.Error("paused reports playing")
	}
	tr.Stop()
	if tr.PlayingState() || tr.IsPaused() {
		t.Error("stopped session still active")
	}
}

func TestPlayResetsOffset(t *testing.T) {
	tr, fe := loaded(t)
	tr.Play()
	fe.advance(1000)
	tr.Seek(90)
	tr.Play()
	if tr.offset != 0 {
		t.Errorf("offset = %d after play", tr.offset)
	}
	if got := tr.Position(); got != 0 {
		t.Errorf("position = %v after play", got)
	}
}

func TestPositionMonotonicWithoutSeeks(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 50; run++ {
		tr, fe := loaded(t)
		tr.Seek(rng.Float64() * 100)
		prev := tr.Position()

		for step := 0; step < 200; step++ {
			switch rng.Intn(6) {
			case 0:
				tr.Pause()
			case 1:
				tr.Unpause()
			case 2:
				fe.stale = append(fe.stale, rng.Intn(fe.raw+1))
			default:
				fe.advance(rng.Intn(40))
			}
			got := tr.Position()
			if got < prev {
				t.Fatalf("run %d step %d: position went back %v -> %v", run, step, prev, got)
			}
			prev = got
		}
	}
}

func TestSeekThenReadWithinDrift(t *testing.T) {
	tr, fe := loaded(t)
	tr.Play()
	fe.advance(12345)
	for _, f := range []float64{0.2, 0.8, 0.333, 0} {
		tr.Seek(f * tr.Duration())
		fe.advance(16)
		got := tr.Position() / tr.Duration()
		if math.Abs(got-f) > 0.017/tr.Duration()+0.001/tr.Duration() {
			t.Errorf("fraction after seek to %v = %v", f, got)
		}
	}
}
