/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

// Package decode opens audio files as seekable beep streams.
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("seekplay/decode")

var ErrUnsupportedFormat = errors.New("unsupported audio format")

type oggCodec int

const (
	oggUnknown oggCodec = iota
	oggVorbis
	oggOpus
)

// headSize covers the first Ogg page, which carries the codec id header.
const headSize = 512

// Open decodes the file at path. The returned streamer owns the file and
// must be closed by the caller.
func Open(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	s, format, err := decodeFile(f, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	log.Debugw("opened", "path", path, "rate", int(format.SampleRate), "channels", format.NumChannels, "samples", s.Len())
	return s, format, nil
}

func decodeFile(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	case ".opus":
		return decodeOpus(f)
	case ".ogg", ".oga":
		codec, err := sniffOgg(f)
		if err != nil {
			return nil, beep.Format{}, err
		}
		switch codec {
		case oggVorbis:
			return vorbis.Decode(f)
		case oggOpus:
			return decodeOpus(f)
		}
	}
	return nil, beep.Format{}, ErrUnsupportedFormat
}

// readHead returns the first bytes of r and rewinds it.
func readHead(r io.ReadSeeker) ([]byte, error) {
	head := make([]byte, headSize)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return head[:n], nil
}

func sniffOgg(r io.ReadSeeker) (oggCodec, error) {
	head, err := readHead(r)
	if err != nil {
		return oggUnknown, err
	}
	if !bytes.HasPrefix(head, []byte("OggS")) {
		return oggUnknown, ErrUnsupportedFormat
	}
	switch {
	case bytes.Contains(head, []byte("OpusHead")):
		return oggOpus, nil
	case bytes.Contains(head, []byte("\x01vorbis")):
		return oggVorbis, nil
	}
	return oggUnknown, ErrUnsupportedFormat
}
