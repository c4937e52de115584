// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/memlz

package memlz

import "errors"

// Sentinel errors for decompression and frame introspection.
var (
	// ErrEmptyInput is returned when the compressed input is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrHeaderTooShort is returned when the input holds fewer bytes than the frame header occupies.
	ErrHeaderTooShort = errors.New("header too short")
	// ErrInputOverrun is returned when the decoder would read past the compressed window.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when the decoder would write past the destination window,
	// or the provided destination is smaller than the declared decompressed length.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrUnknownBlockKind is returned when a block tag is none of 'A', 'B', 'C', 'D'.
	ErrUnknownBlockKind = errors.New("unknown block kind")
	// ErrFrameTooLarge is returned when a declared length is inconsistent: the compressed
	// length exceeds MaxCompressedLen of the decompressed length, or a length does not fit int.
	ErrFrameTooLarge = errors.New("declared frame length out of bounds")
	// ErrNoProgress is returned when the decoder detects a block stream that fails to
	// advance (malformed input that would otherwise loop or underflow).
	ErrNoProgress = errors.New("no decode progress")
)
