// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/memlz

package memlz

// Frame format constants: block tags, round geometry and side-channel thresholds.

// Block kind tags. One leading byte identifies each block in the stream.
const (
	kindNormal32     = 'A' // 16 four-byte words behind a 16-bit flags word
	kindNormal64     = 'B' // 16 eight-byte words behind a 16-bit flags word
	kindUncompressed = 'C' // raw span of incompressible bytes
	kindRLE          = 'D' // run of a repeated eight-byte pattern
)

// framePad fills frames up to the minimum frame size.
const framePad = 'M'

// Round geometry. A NORMAL block covers wordsPerRound words; the header
// carries headerFields varints of equal width.
const (
	wordsPerRound = 16
	headerFields  = 2
)

// RLE and incompressible side-channel thresholds, in bytes of input.
const (
	rleWordLen        = 8              // RLE always matches eight-byte words
	minRLEBytes       = 4 * rleWordLen // shortest run worth an RLE block
	incompressibleLen = 8 * rleWordLen // raw span emitted after an all-literal block
	incompressibleMin = 4 * 128        // cumulative input required before raw spans
)

// Width-selector geometry. probeMod ticks once per round (~128 input bytes);
// the selector probes wordlen 8 for probeLen/128 rounds, then wordlen 4 for
// 2*probeLen/128 rounds, and restarts after (blockLen+probeLen)/128 rounds.
const (
	probeLen = 16 * 1024
	blockLen = 256 * 1024

	probeSwitchTo4 = probeLen / 128
	probeCompare   = 3 * probeLen / 128
	probeRestart   = (blockLen + probeLen) / 128
)

// minAdvance bounds how far the decoder's missing counter may move backwards
// between iterations: min(64, incompressibleLen, minRLEBytes). A larger value
// would falsely reject valid short blocks.
const minAdvance = 32
