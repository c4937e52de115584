// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/memlz

package memlz

// Decompress decodes a single frame from src without persistent session
// state. A nil dst allocates a buffer of the declared decompressed size; a
// provided dst must hold at least that many bytes or the call fails with
// ErrOutputOverrun. On success the decoded bytes are returned as dst[:n].
//
// No partial output is valid after a failing call.
func Decompress(dst, src []byte) ([]byte, error) {
	s := acquireState()
	defer releaseState(s)

	return StreamDecompress(dst, src, s)
}

// StreamDecompress decodes one frame from src through the given session.
// Frames must arrive in encode order from a matching Reset boundary;
// out-of-order frames decode memory-safely but produce garbage.
//
// dst follows the same contract as Decompress. Every source read is bounds
// checked against the frame's compressed window and every write against the
// declared decompressed window; malformed input fails with a sentinel error
// and never touches memory outside the two buffers.
func StreamDecompress(dst, src []byte, s *State) ([]byte, error) {
	decompressedLen, err := DecompressedLen(src)
	if err != nil {
		return nil, err
	}

	compressedLen, err := CompressedLen(src)
	if err != nil {
		return nil, err
	}

	if compressedLen > MaxCompressedLen(decompressedLen) {
		return nil, ErrFrameTooLarge
	}

	if compressedLen > len(src) {
		return nil, ErrInputOverrun
	}

	if dst == nil {
		dst = make([]byte, decompressedLen)
	} else if len(dst) < decompressedLen {
		return nil, ErrOutputOverrun
	}

	if err := decodeFrame(dst[:decompressedLen], src[:compressedLen], s); err != nil {
		return nil, err
	}

	return dst[:decompressedLen], nil
}

// decodeFrame decodes the block stream of one frame. dst and src are exactly
// the decompressed and compressed windows.
func decodeFrame(dst, src []byte, s *State) error {
	if len(src) == 0 {
		return ErrInputOverrun
	}

	var (
		sp = headerFields * varintLen(src[0])
		dp int

		// missing mirrors the reference decoder's unsigned countdown: block
		// underflow wraps it upwards and is caught by the progress check.
		missing     = uint64(len(dst))
		lastMissing uint64
		wordLen     int
	)

	for {
		if lastMissing != 0 && missing > lastMissing+minAdvance {
			return ErrNoProgress
		}
		lastMissing = missing

		if sp >= len(src) {
			return ErrInputOverrun
		}
		kind := src[sp]
		sp++

		switch kind {
		case kindUncompressed:
			u, err := blockVarint(src, &sp)
			if err != nil {
				return err
			}

			for n := uint64(0); n < u/8; n++ {
				if sp+8 > len(src) {
					return ErrInputOverrun
				}
				if dp+8 > len(dst) {
					return ErrOutputOverrun
				}
				copy(dst[dp:dp+8], src[sp:sp+8])
				sp += 8
				dp += 8
			}
			missing -= u
			continue

		case kindRLE:
			z, err := blockVarint(src, &sp)
			if err != nil {
				return err
			}

			if sp+rleWordLen > len(src) {
				return ErrInputOverrun
			}
			pattern := load64(src[sp:])
			sp += rleWordLen

			for n := uint64(0); n < z; n++ {
				if dp+rleWordLen > len(dst) {
					return ErrOutputOverrun
				}
				store64(dst[dp:], pattern)
				dp += rleWordLen
				missing -= rleWordLen
			}
			continue

		case kindNormal64:
			wordLen = 8
		case kindNormal32:
			wordLen = 4
		default:
			return ErrUnknownBlockKind
		}

		// The encoder writes the kind byte before checking the remaining
		// input, so a kind byte with too little left marks the tail.
		if missing < uint64(wordsPerRound*wordLen) {
			break
		}

		if sp+2 > len(src) {
			return ErrInputOverrun
		}
		flags := load16(src[sp:])
		sp += 2

		if wordLen == 8 {
			if dp+wordsPerRound*8 > len(dst) {
				return ErrOutputOverrun
			}

			for bit := wordsPerRound - 1; bit >= 0; bit-- {
				var word uint64
				if flags&(1<<bit) != 0 {
					if sp+2 > len(src) {
						return ErrInputOverrun
					}
					word = s.hash64[load16(src[sp:])]
					sp += 2
				} else {
					if sp+8 > len(src) {
						return ErrInputOverrun
					}
					word = load64(src[sp:])
					sp += 8
					s.hash64[hash64(word)] = word
				}
				store64(dst[dp:], word)
				dp += 8
			}
			missing -= wordsPerRound * 8
		} else {
			if dp+wordsPerRound*4 > len(dst) {
				return ErrOutputOverrun
			}

			for bit := wordsPerRound - 1; bit >= 0; bit-- {
				var word uint32
				if flags&(1<<bit) != 0 {
					if sp+2 > len(src) {
						return ErrInputOverrun
					}
					word = s.hash32[load16(src[sp:])]
					sp += 2
				} else {
					if sp+4 > len(src) {
						return ErrInputOverrun
					}
					word = load32(src[sp:])
					sp += 4
					s.hash32[hash32(word)] = word
				}
				store32(dst[dp:], word)
				dp += 4
			}
			missing -= wordsPerRound * 4
		}
	}

	// Partial block tail: one flags word, at most fifteen single-word slots.
	if missing >= uint64(wordLen) {
		if sp+2 > len(src) {
			return ErrInputOverrun
		}
		flags := load16(src[sp:])
		sp += 2

		for bit := wordsPerRound - 1; missing >= uint64(wordLen); bit-- {
			if wordLen == 8 {
				if dp+8 > len(dst) {
					return ErrOutputOverrun
				}

				var word uint64
				if flags&(1<<bit) != 0 {
					if sp+2 > len(src) {
						return ErrInputOverrun
					}
					word = s.hash64[load16(src[sp:])]
					sp += 2
				} else {
					if sp+8 > len(src) {
						return ErrInputOverrun
					}
					word = load64(src[sp:])
					sp += 8
					s.hash64[hash64(word)] = word
				}
				store64(dst[dp:], word)
				dp += 8
			} else {
				if dp+4 > len(dst) {
					return ErrOutputOverrun
				}

				var word uint32
				if flags&(1<<bit) != 0 {
					if sp+2 > len(src) {
						return ErrInputOverrun
					}
					word = s.hash32[load16(src[sp:])]
					sp += 2
				} else {
					if sp+4 > len(src) {
						return ErrInputOverrun
					}
					word = load32(src[sp:])
					sp += 4
					s.hash32[hash32(word)] = word
				}
				store32(dst[dp:], word)
				dp += 4
			}

			missing -= uint64(wordLen)
		}
	}

	// Sub-word byte tail.
	for missing > 0 {
		if sp >= len(src) {
			return ErrInputOverrun
		}
		if dp >= len(dst) {
			return ErrOutputOverrun
		}
		dst[dp] = src[sp]
		dp++
		sp++
		missing--
	}

	s.totalInput += uint64(len(src))
	s.totalOutput += uint64(len(dst))

	return nil
}

// blockVarint reads one bounds-checked varint from a block body at src[*sp]
// and advances *sp.
func blockVarint(src []byte, sp *int) (uint64, error) {
	if *sp >= len(src) {
		return 0, ErrInputOverrun
	}

	width := varintLen(src[*sp])
	if *sp+width > len(src) {
		return 0, ErrInputOverrun
	}

	v := readVarint(src[*sp:])
	*sp += width

	return v, nil
}
