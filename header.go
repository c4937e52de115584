// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/memlz

package memlz

import "math"

// HeaderLen is the number of leading bytes that always suffice to parse both
// frame header fields with CompressedLen and DecompressedLen. It is also the
// minimum size of any emitted frame; shorter frames are padded up to it.
const HeaderLen = 18

// MaxCompressedLen returns the largest frame size that compressing n input
// bytes can produce. Certain inputs grow: the bound is roughly n plus one
// byte per 16 input bytes plus a fixed header allowance.
func MaxCompressedLen(n int) int {
	return 68*n/64 + 100
}

// DecompressedLen parses the frame header and returns the declared
// decompressed length. Only the first HeaderLen bytes of the frame are
// needed. Returns ErrHeaderTooShort if src holds fewer bytes than the first
// field occupies, ErrFrameTooLarge if the value does not fit int.
func DecompressedLen(src []byte) (int, error) {
	v, _, err := headerField(src, 0)
	if err != nil {
		return 0, err
	}

	return v, nil
}

// CompressedLen parses the frame header and returns the declared compressed
// length, including the header itself and any tail padding. Only the first
// HeaderLen bytes of the frame are needed.
func CompressedLen(src []byte) (int, error) {
	_, width, err := headerField(src, 0)
	if err != nil {
		return 0, err
	}

	v, _, err := headerField(src, width)
	if err != nil {
		return 0, err
	}

	return v, nil
}

// headerField reads the varint field starting at src[off] and returns its
// value and width.
func headerField(src []byte, off int) (int, int, error) {
	if len(src) == 0 {
		return 0, 0, ErrEmptyInput
	}

	if off >= len(src) {
		return 0, 0, ErrHeaderTooShort
	}

	width := varintLen(src[off])
	if off+width > len(src) {
		return 0, 0, ErrHeaderTooShort
	}

	v := readVarint(src[off:])
	if v > math.MaxInt {
		return 0, 0, ErrFrameTooLarge
	}

	return int(v), width, nil
}
