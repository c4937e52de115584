// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/memlz

/*
Package memlz implements a dictionary-free word-hash compression codec
optimized for encode/decode throughput over compression ratio. Input is
packed into self-describing frames; each frame carries its decompressed and
compressed lengths in the header and a stream of tagged blocks (word-hash,
run-length, or raw) behind it. Suitable for inline compression of in-memory
buffers and network packets.

# Compress

Stateless, one frame per call. dst is a scratch buffer: it is reused when it
has room for MaxCompressedLen(len(src)) bytes, otherwise a new slice is
allocated. The encoded frame is returned as a sub-slice:

	frame := memlz.Compress(nil, data)

For streams, reset a State once and feed packets through it in order. The
hash tables persist across frames, so later frames compress against words
seen earlier:

	var s memlz.State
	s.Reset()
	for _, packet := range packets {
		frame := memlz.StreamCompress(buf, packet, &s)
		// transmit frame
	}

# Decompress

The frame header is self-describing: HeaderLen bytes are enough to recover
both lengths with CompressedLen and DecompressedLen. Decompress with a nil
dst to allocate, or pass a buffer of at least the declared size:

	out, err := memlz.Decompress(nil, frame)

Streaming decode must consume frames in encode order through a State that
was reset together with the encoder's:

	var s memlz.State
	s.Reset()
	for {
		frame, err := memlz.ReadFrame(conn, buf)
		if err != nil {
			break
		}
		out, err := memlz.StreamDecompress(dst, frame, &s)
		// ...
	}

Malformed frames fail with sentinel errors (ErrInputOverrun,
ErrOutputOverrun, ErrUnknownBlockKind, ...); the decoder bounds-checks every
access and never reads or writes outside the provided buffers.
*/
package memlz
