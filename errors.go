// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/turbolz

package turbolz

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrNilReader      = errors.New("reader is nil")
	ErrNilWriter      = errors.New("writer is nil")
	ErrClosed         = errors.New("write after close")
	ErrHeaderTooShort = errors.New("not enough data for header")
	ErrBadMagic       = errors.New("bad header magic")
	ErrUnknownType    = errors.New("unknown compression type")
	ErrSizeMismatch   = errors.New("decoded size does not match header")
	ErrInputTooLarge  = errors.New("input does not fit 32-bit size field")
	ErrNegativeSize   = errors.New("size must be non-negative")
)
