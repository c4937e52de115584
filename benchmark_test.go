package memlz

import (
	"bytes"
	"math/rand"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	random := make([]byte, 256<<10)
	rand.New(rand.NewSource(1)).Read(random)

	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("memlz benchmark text payload "), 145),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"zero-run-256k":   make([]byte, 256<<10),
		"random-256k":     random,
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
	}
}

func BenchmarkCompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		b.Run(inputName, func(b *testing.B) {
			var s State
			dst := make([]byte, MaxCompressedLen(len(inputData)))

			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				s.Reset()
				StreamCompress(dst, inputData, &s)
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		frame := Compress(nil, inputData)

		b.Run(inputName, func(b *testing.B) {
			var s State
			dst := make([]byte, len(inputData))

			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				s.Reset()
				if _, err := StreamDecompress(dst, frame, &s); err != nil {
					b.Fatalf("StreamDecompress failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	cmp := make([]byte, MaxCompressedLen(len(inputData)))
	out := make([]byte, len(inputData))

	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		frame := Compress(cmp, inputData)
		if _, err := Decompress(out, frame); err != nil {
			b.Fatalf("Decompress failed: %v", err)
		}
	}
}
