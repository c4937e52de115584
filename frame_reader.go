// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/memlz

package memlz

import "io"

// ReadFrame reads exactly one compressed frame from r: the HeaderLen-byte
// prefix first, then the remainder per the header's compressed length. buf
// is reused when it has enough capacity, otherwise a larger slice is
// allocated; the frame is returned as a sub-slice.
//
// A clean end of stream at a frame boundary surfaces as io.EOF; a stream cut
// mid-frame as io.ErrUnexpectedEOF.
func ReadFrame(r io.Reader, buf []byte) ([]byte, error) {
	if cap(buf) < HeaderLen {
		buf = make([]byte, HeaderLen)
	} else {
		buf = buf[:HeaderLen]
	}

	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}

	frameLen, err := CompressedLen(buf)
	if err != nil {
		return nil, err
	}

	if frameLen < HeaderLen {
		return nil, ErrHeaderTooShort
	}

	if cap(buf) < frameLen {
		grown := make([]byte, frameLen)
		copy(grown, buf)
		buf = grown
	} else {
		buf = buf[:frameLen]
	}

	if _, err := io.ReadFull(r, buf[HeaderLen:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}

		return nil, err
	}

	return buf, nil
}
