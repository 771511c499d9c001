package lzw

import (
	"bytes"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("lzw benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"random-256k":     randomBytes(256*1024, 11),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
	}
}

func BenchmarkEncode(b *testing.B) {
	for name, data := range benchmarkInputSets() {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Encode(data)
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for name, data := range benchmarkInputSets() {
		codes := Encode(data)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Decode(codes); err != nil {
					b.Fatalf("Decode failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkCompressPacked(b *testing.B) {
	data := bytes.Repeat([]byte("RoundTripData"), 16384)
	opts := &CompressOptions{Format: FormatPacked}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Compress(data, opts); err != nil {
			b.Fatalf("Compress failed: %v", err)
		}
	}
}
