package memlz

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxCompressedLen(t *testing.T) {
	assert.Equal(t, 100, MaxCompressedLen(0))
	assert.Equal(t, 168, MaxCompressedLen(64))
	assert.Equal(t, 68*1024/64+100, MaxCompressedLen(1024))

	// The bound must stay above the input for every size.
	for _, n := range []int{0, 1, 63, 64, 1000, 1 << 20} {
		assert.Greater(t, MaxCompressedLen(n), n)
	}
}

func TestHeaderIntrospection(t *testing.T) {
	data := bytes.Repeat([]byte("header introspection "), 300)
	frame := Compress(nil, data)

	dLen, err := DecompressedLen(frame[:HeaderLen])
	require.NoError(t, err)
	assert.Equal(t, len(data), dLen)

	cLen, err := CompressedLen(frame[:HeaderLen])
	require.NoError(t, err)
	assert.Equal(t, len(frame), cLen)
}

func TestHeaderIntrospection_Errors(t *testing.T) {
	_, err := DecompressedLen(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = CompressedLen([]byte{0x80, 0x01})
	assert.ErrorIs(t, err, ErrHeaderTooShort)

	// First field fits, second field announced wider than the input.
	_, err = CompressedLen([]byte{0x05, 0xC0, 0x01})
	assert.ErrorIs(t, err, ErrHeaderTooShort)
}

func TestReadFrame_BackToBack(t *testing.T) {
	first := bytes.Repeat([]byte("first packet "), 100)
	second := bytes.Repeat([]byte("second packet "), 200)

	var enc State
	enc.Reset()
	var stream []byte
	stream = append(stream, StreamCompress(nil, first, &enc)...)
	stream = append(stream, StreamCompress(nil, second, &enc)...)

	r := bytes.NewReader(stream)
	buf := make([]byte, 64)

	var dec State
	dec.Reset()

	f1, err := ReadFrame(r, buf)
	require.NoError(t, err)
	out1, err := StreamDecompress(nil, f1, &dec)
	require.NoError(t, err)
	assert.Equal(t, first, out1)

	f2, err := ReadFrame(r, f1)
	require.NoError(t, err)
	out2, err := StreamDecompress(nil, f2, &dec)
	require.NoError(t, err)
	assert.Equal(t, second, out2)

	_, err = ReadFrame(r, f2)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadFrame_TruncatedStream(t *testing.T) {
	frame := Compress(nil, bytes.Repeat([]byte("cut mid frame "), 50))

	_, err := ReadFrame(bytes.NewReader(frame[:len(frame)-3]), nil)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = ReadFrame(bytes.NewReader(frame[:HeaderLen-5]), nil)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
