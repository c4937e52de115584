// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/memlz

package memlz

import "encoding/binary"

// The wire format is fixed little-endian regardless of host; all word access
// goes through these helpers.

func load16(src []byte) uint16 {
	return binary.LittleEndian.Uint16(src)
}

func load32(src []byte) uint32 {
	return binary.LittleEndian.Uint32(src)
}

func load64(src []byte) uint64 {
	return binary.LittleEndian.Uint64(src)
}

func store16(dst []byte, v uint16) {
	binary.LittleEndian.PutUint16(dst, v)
}

func store32(dst []byte, v uint32) {
	binary.LittleEndian.PutUint32(dst, v)
}

func store64(dst []byte, v uint64) {
	binary.LittleEndian.PutUint64(dst, v)
}

// hash32 maps a four-byte word to its 16-bit table slot (Fibonacci hashing).
func hash32(v uint32) uint16 {
	return uint16((uint64(v) * 2654435761) >> 16)
}

// hash64 maps an eight-byte word to its 16-bit table slot.
func hash64(v uint64) uint16 {
	return uint16((v * 11400714819323198485) >> 48)
}
