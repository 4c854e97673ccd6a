/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package decode

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/faiface/beep"
	"github.com/hraban/opus"
)

// libopusfile always hands out 48 kHz PCM
const opusRate = 48000

// maxFrame is 120ms @ 48kHz, the largest Opus packet duration.
const maxFrame = 5760

type pcmReader interface {
	Read(pcm []int16) (int, error)
}

// opusFrames converts interleaved int16 PCM into stereo beep frames.
type opusFrames struct {
	src      pcmReader
	channels int
	pcm      []int16
	buffer   [][2]float64
	done     bool
	err      error
}

func newOpusFrames(src pcmReader, channels int) *opusFrames {
	return &opusFrames{
		src:      src,
		channels: channels,
		pcm:      make([]int16, maxFrame*channels),
	}
}

func (o *opusFrames) Stream(samples [][2]float64) (int, bool) {
	filled := 0

	for filled < len(samples) {
		if len(o.buffer) == 0 {
			if o.done {
				return filled, filled > 0
			}
			n, err := o.src.Read(o.pcm)
			if err != nil {
				if err != io.EOF {
					o.err = err
				}
				o.done = true
				continue
			}

			for i := 0; i < n; i++ {
				left := float64(o.pcm[i*o.channels]) / 32768.0
				right := left
				if o.channels > 1 {
					right = float64(o.pcm[i*o.channels+1]) / 32768.0
				}
				o.buffer = append(o.buffer, [2]float64{left, right})
			}
		}

		n := copy(samples[filled:], o.buffer)
		o.buffer = o.buffer[n:]
		filled += n
	}

	return filled, true
}

func (o *opusFrames) Err() error { return o.err }

// bufferStream exposes an in-memory beep.Buffer as a StreamSeekCloser.
// Close releases the source the buffer was decoded from.
type bufferStream struct {
	beep.StreamSeeker
	src io.Closer
}

func (b bufferStream) Close() error { return b.src.Close() }

// opusChannels reads the channel count from the OpusHead id header.
func opusChannels(r io.ReadSeeker) (int, error) {
	head, err := readHead(r)
	if err != nil {
		return 0, err
	}
	idx := bytes.Index(head, []byte("OpusHead"))
	if idx < 0 || idx+9 >= len(head) {
		return 0, fmt.Errorf("missing OpusHead: %w", ErrUnsupportedFormat)
	}
	ch := int(head[idx+9])
	if ch < 1 {
		return 0, fmt.Errorf("opus channel count %d: %w", ch, ErrUnsupportedFormat)
	}
	return ch, nil
}

// decodeOpus decodes the whole stream up front; opus.Stream cannot seek.
// The file stays with the returned stream, as it does for the other
// decoders.
func decodeOpus(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	channels, err := opusChannels(f)
	if err != nil {
		return nil, beep.Format{}, err
	}

	s, err := opus.NewStream(f)
	if err != nil {
		return nil, beep.Format{}, err
	}
	defer s.Close()

	format := beep.Format{SampleRate: opusRate, NumChannels: 2, Precision: 2}
	frames := newOpusFrames(s, channels)
	buf := beep.NewBuffer(format)
	buf.Append(frames)
	if err := frames.Err(); err != nil {
		return nil, beep.Format{}, err
	}

	return bufferStream{StreamSeeker: buf.Streamer(0, buf.Len()), src: f}, format, nil
}
