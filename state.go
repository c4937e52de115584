// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/memlz

package memlz

// State is the per-stream session shared by one encoder/decoder pair.
// It holds one word cache per word width plus the width-selector counters,
// roughly 768 KiB in total. A State must not be shared between concurrent
// sessions; separate sessions on separate goroutines are independent.
//
// The zero value is equivalent to a freshly reset session. Reset is the only
// legitimate way to reuse a State across independent frame sequences. Both caches are
// updated only when a literal word is emitted or consumed, symmetrically, so
// encoder and decoder stay identical after each frame as long as frames are
// processed in order from a matching reset boundary.
type State struct {
	hash64 [1 << 16]uint64
	hash32 [1 << 16]uint32

	// Running totals across frames since the last reset.
	totalInput  uint64
	totalOutput uint64

	// Width-selector machinery: round counter, current word width (4 or 8)
	// and the compressed-size accumulators for the two probe phases.
	probeMod int
	wordLen  int
	cs4      uint64
	cs8      uint64
}

// Reset clears both word caches and all counters and selects the eight-byte
// word width, returning the session to its zero state. Call it between
// independent streams.
func (s *State) Reset() {
	clear(s.hash64[:])
	clear(s.hash32[:])
	s.totalInput = 0
	s.totalOutput = 0
	s.probeMod = 0
	s.wordLen = 8
	s.cs4 = 0
	s.cs8 = 0
}
