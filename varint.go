// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/memlz

package memlz

import "encoding/binary"

// Variable-width integers used by frame headers and side blocks. The top two
// bits of the first byte select the total width: 00 = 1 byte (value in the
// low six bits), 01 = 3, 10 = 5, 11 = 9. The wider forms keep the value
// entirely in the trailing little-endian bytes.

// varintFit returns the smallest width that can hold v.
func varintFit(v uint64) int {
	switch {
	case v < 64:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// varintLen returns the total width encoded in the first byte.
func varintLen(first byte) int {
	switch first >> 6 {
	case 0:
		return 1
	case 1:
		return 3
	case 2:
		return 5
	default:
		return 9
	}
}

// putVarint writes v into dst using exactly width bytes. width must be one of
// 1, 3, 5, 9 and at least varintFit(v); header fields deliberately use a
// wider form than the value needs so that both fields share one width.
func putVarint(dst []byte, v uint64, width int) {
	switch width {
	case 1:
		dst[0] = byte(v)
	case 3:
		dst[0] = 0b01000000
		binary.LittleEndian.PutUint16(dst[1:], uint16(v))
	case 5:
		dst[0] = 0b10000000
		binary.LittleEndian.PutUint32(dst[1:], uint32(v))
	default:
		dst[0] = 0b11000000
		binary.LittleEndian.PutUint64(dst[1:], v)
	}
}

// readVarint decodes the value starting at src[0]. The caller must have
// verified that varintLen(src[0]) bytes are present.
func readVarint(src []byte) uint64 {
	switch src[0] >> 6 {
	case 0:
		return uint64(src[0] & 0b00111111)
	case 1:
		return uint64(binary.LittleEndian.Uint16(src[1:]))
	case 2:
		return uint64(binary.LittleEndian.Uint32(src[1:]))
	default:
		return binary.LittleEndian.Uint64(src[1:])
	}
}
