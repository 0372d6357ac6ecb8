/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package zstdcodec

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(11))

	for _, n := range []int{0, 1, 100, 65536} {
		src := make([]byte, n)
		r.Read(src)

		for _, level := range []int{1, 3, 9} {
			dst := make([]byte, CompressBound(n))

			written, err := Compress(dst, src, level)
			if err != nil {
				t.Fatalf("level=%d n=%d: Compress: %v", level, n, err)
			}

			compressed := dst[:written]

			size, err := GetFrameContentSize(compressed)
			if err != nil {
				t.Fatalf("level=%d n=%d: GetFrameContentSize: %v", level, n, err)
			}

			if size != uint64(n) {
				t.Fatalf("level=%d n=%d: frame content size = %d, want %d", level, n, size, n)
			}

			out := make([]byte, size)
			read, err := Decompress(out, compressed)
			if err != nil {
				t.Fatalf("level=%d n=%d: Decompress: %v", level, n, err)
			}

			if !bytes.Equal(out[:read], src) {
				t.Fatalf("level=%d n=%d: round-trip mismatch", level, n)
			}
		}
	}
}

func TestGetFrameContentSizeRejectsGarbage(t *testing.T) {
	if _, err := GetFrameContentSize([]byte{0, 1, 2, 3}); err == nil {
		t.Fatal("GetFrameContentSize accepted non-zstd input")
	}
}

func TestMaxDecompressedFrameSizeCap(t *testing.T) {
	src := make([]byte, 1024)
	dst := make([]byte, CompressBound(len(src)))

	written, err := Compress(dst, src, 3)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	old := MaxDecompressedFrameSize
	MaxDecompressedFrameSize = 100
	defer func() { MaxDecompressedFrameSize = old }()

	if _, err := GetFrameContentSize(dst[:written]); err == nil {
		t.Fatal("GetFrameContentSize ignored MaxDecompressedFrameSize cap")
	}
}

func TestDecompressUndersizedDestinationErrors(t *testing.T) {
	src := []byte("hello, streaming nanopore sample world")
	dst := make([]byte, CompressBound(len(src)))

	written, err := Compress(dst, src, 3)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	small := make([]byte, len(src)-1)
	if _, err := Decompress(small, dst[:written]); err == nil {
		t.Fatal("Decompress accepted a destination too small for the frame")
	}
}
