// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/memlz

package memlz

// Compress compresses src into a single frame without persistent session
// state. dst is a scratch buffer: it is reused when it has room for
// MaxCompressedLen(len(src)) bytes, otherwise a new slice is allocated.
// The encoded frame is returned as a sub-slice of the buffer used.
func Compress(dst, src []byte) []byte {
	s := acquireState()
	defer releaseState(s)

	return StreamCompress(dst, src, s)
}

// StreamCompress compresses src into one frame through the given session.
// The session must be freshly Reset (or a zero value) before the first frame,
// and the peer must decode frames in the same order from a matching Reset.
// Each call frames the full input; there is no flush.
//
// dst follows the same scratch-buffer contract as Compress.
func StreamCompress(dst, src []byte, s *State) []byte {
	if s.wordLen == 0 {
		// Zero-value session: identical to a fresh Reset apart from the
		// unset word width.
		s.wordLen = 8
	}

	if n := MaxCompressedLen(len(src)); len(dst) < n {
		dst = make([]byte, n)
	}

	return dst[:encodeFrame(dst, src, s)]
}

// encodeFrame writes one complete frame for src into dst and returns its
// length. dst must hold at least MaxCompressedLen(len(src)) bytes.
func encodeFrame(dst, src []byte, s *State) int {
	// Both header fields share one width, sized for the larger of the two
	// possible values, and are backfilled once the block stream is done.
	fieldWidth := varintFit(uint64(MaxCompressedLen(len(src))))
	headerLen := headerFields * fieldWidth

	var (
		sp      int // input bytes consumed
		missing = len(src)
		d       = headerLen
		flags   uint16
	)

	for {
		// Width-selector tick: measure one probe phase at each word width
		// over recent output and keep the cheaper width until the next
		// restart. RLE and raw blocks land in the measurement too, which
		// skews it slightly.
		s.probeMod++
		outSoFar := s.totalOutput + uint64(d)
		switch s.probeMod {
		case probeSwitchTo4:
			s.cs8 = outSoFar - s.cs8
			s.cs4 = outSoFar
			s.wordLen = 4
		case probeCompare:
			s.cs4 = outSoFar - s.cs4
			if s.cs8 < s.cs4 {
				s.wordLen = 8
			}
		case probeRestart:
			s.wordLen = 8
			s.probeMod = 0
			s.cs8 = outSoFar
			s.cs4 = 0
		}

		// RLE fast path: longest prefix of equal eight-byte words.
		if words := missing / rleWordLen; words > 1 {
			pattern := load64(src[sp:])
			e := 1
			for e < words && load64(src[sp+e*rleWordLen:]) == pattern {
				e++
			}

			if e >= minRLEBytes/rleWordLen {
				dst[d] = kindRLE
				d++
				w := varintFit(uint64(e))
				putVarint(dst[d:], uint64(e), w)
				store64(dst[d+w:], pattern)
				d += w + rleWordLen
				sp += e * rleWordLen
				missing -= e * rleWordLen
				continue
			}
		}

		// NORMAL block. The kind byte goes out before the remaining-input
		// check, so every block stream ends with one stray kind byte ahead
		// of the tail; the decoder consumes it the same way.
		if s.wordLen == 8 {
			dst[d] = kindNormal64
		} else {
			dst[d] = kindNormal32
		}
		d++

		if missing < wordsPerRound*s.wordLen {
			break
		}

		flagsAt := d
		d += 2
		flags = 0

		if s.wordLen == 8 {
			for range wordsPerRound {
				word := load64(src[sp:])
				h := hash64(word)
				flags <<= 1
				if s.hash64[h] == word {
					flags |= 1
					store16(dst[d:], h)
					d += 2
				} else {
					s.hash64[h] = word
					store64(dst[d:], word)
					d += 8
				}
				sp += 8
			}
		} else {
			for range wordsPerRound {
				word := load32(src[sp:])
				h := hash32(word)
				flags <<= 1
				if s.hash32[h] == word {
					flags |= 1
					store16(dst[d:], h)
					d += 2
				} else {
					s.hash32[h] = word
					store32(dst[d:], word)
					d += 4
				}
				sp += 4
			}
		}

		store16(dst[flagsAt:], flags)
		missing -= wordsPerRound * s.wordLen

		// Incompressible side channel: a block with no hash hits on
		// warmed-up input is a sign of random data, so ship the next span
		// raw instead of feeding it through the hash path.
		if flags == 0 && uint64(sp)+s.totalInput >= incompressibleMin && missing >= incompressibleLen {
			dst[d] = kindUncompressed
			d++
			w := varintFit(incompressibleLen)
			putVarint(dst[d:], incompressibleLen, w)
			d += w
			copy(dst[d:], src[sp:sp+incompressibleLen])
			d += incompressibleLen
			sp += incompressibleLen
			missing -= incompressibleLen
		}
	}

	// Partial block: up to fifteen single-word slots, flags left-justified
	// by shifting out the unused slots.
	if missing >= s.wordLen {
		flagsAt := d
		d += 2
		flags = 0
		flagsLeft := wordsPerRound

		for missing >= s.wordLen {
			if s.wordLen == 8 {
				word := load64(src[sp:])
				h := hash64(word)
				flags <<= 1
				if s.hash64[h] == word {
					flags |= 1
					store16(dst[d:], h)
					d += 2
				} else {
					s.hash64[h] = word
					store64(dst[d:], word)
					d += 8
				}
			} else {
				word := load32(src[sp:])
				h := hash32(word)
				flags <<= 1
				if s.hash32[h] == word {
					flags |= 1
					store16(dst[d:], h)
					d += 2
				} else {
					s.hash32[h] = word
					store32(dst[d:], word)
					d += 4
				}
			}

			sp += s.wordLen
			flagsLeft--
			missing -= s.wordLen
		}

		flags <<= flagsLeft
		store16(dst[flagsAt:], flags)
	}

	// Sub-word tail goes out verbatim; the decoder derives its length from
	// the header.
	copy(dst[d:], src[sp:])
	d += missing

	for d < HeaderLen {
		dst[d] = framePad
		d++
	}

	putVarint(dst, uint64(len(src)), fieldWidth)
	putVarint(dst[fieldWidth:], uint64(d), fieldWidth)

	s.totalInput += uint64(len(src))
	s.totalOutput += uint64(d)

	return d
}
