package main

import (
	"bytes"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/memlz"
)

// Tests that both codec commands are registered with their aliases.
func TestCommandsRegistered(t *testing.T) {
	app := newApp()
	app.Writer = io.Discard

	names := make(map[string]bool)
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
		for _, alias := range cmd.Aliases {
			names[alias] = true
		}
	}

	assert.True(t, names["c"], "compress command not registered")
	assert.True(t, names["compress"], "compress alias not registered")
	assert.True(t, names["d"], "decompress command not registered")
	assert.True(t, names["decompress"], "decompress alias not registered")

	require.NoError(t, app.Run([]string{"memlz", "c", "--help"}))
	require.NoError(t, app.Run([]string{"memlz", "d", "--help"}))
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain")
	packed := filepath.Join(dir, "packed")
	restored := filepath.Join(dir, "restored")

	data := bytes.Repeat([]byte("file round trip through the cli "), 4096)
	require.NoError(t, os.WriteFile(plain, data, 0o644))

	app := newApp()
	app.Writer = io.Discard

	require.NoError(t, app.Run([]string{"memlz", "c", plain, packed}))
	require.NoError(t, app.Run([]string{"memlz", "d", packed, restored}))

	frame, err := os.ReadFile(packed)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(frame), memlz.HeaderLen)
	assert.LessOrEqual(t, len(frame), memlz.MaxCompressedLen(len(data)))

	out, err := os.ReadFile(restored)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestStreamPipes(t *testing.T) {
	var data []byte
	rng := rand.New(rand.NewSource(11))
	for range 3 {
		data = append(data, bytes.Repeat([]byte("pipe payload "), 40000)...)
		span := make([]byte, 256<<10)
		rng.Read(span)
		data = append(data, span...)
	}

	var compressed bytes.Buffer
	require.NoError(t, streamCompress(bytes.NewReader(data), &compressed))

	var restored bytes.Buffer
	require.NoError(t, streamDecompress(bytes.NewReader(compressed.Bytes()), &restored))

	assert.Equal(t, data, restored.Bytes())
}

func TestStreamDecompress_TruncatedInput(t *testing.T) {
	var compressed bytes.Buffer
	require.NoError(t, streamCompress(bytes.NewReader(bytes.Repeat([]byte("abc"), 50000)), &compressed))

	cut := compressed.Bytes()[:compressed.Len()-7]
	err := streamDecompress(bytes.NewReader(cut), io.Discard)
	assert.Error(t, err)
}
