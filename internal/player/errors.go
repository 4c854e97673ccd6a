/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package player

import (
	"errors"
	"fmt"
)

var ErrUnreadableMedia = errors.New("unreadable media")

// UnreadableMediaError is returned by Load when the file cannot be decoded
// or its duration cannot be probed.
type UnreadableMediaError struct {
	Path string
	Err  error
}

func (e *UnreadableMediaError) Error() string {
	return fmt.Sprintf("unreadable media %s: %v", e.Path, e.Err)
}

func (e *UnreadableMediaError) Unwrap() error { return e.Err }

func (e *UnreadableMediaError) Is(target error) bool { return target == ErrUnreadableMedia }
