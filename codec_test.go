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

package vbz

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// packWidth renders vals (sign-extended where negative) into a raw
// little-endian byte buffer of the given integer width, the shape
// Compress/Decompress expect for IntegerSize != 0.
func packWidth(vals []int32, width uint32) []byte {
	buf := make([]byte, len(vals)*int(width))

	for i, v := range vals {
		off := i * int(width)

		switch width {
		case 1:
			buf[off] = byte(v)
		case 2:
			binary.LittleEndian.PutUint16(buf[off:off+2], uint16(v))
		case 4:
			binary.LittleEndian.PutUint32(buf[off:off+4], uint32(v))
		}
	}

	return buf
}

func allOptionCombinations() []Options {
	var out []Options

	for _, zz := range []bool{false, true} {
		for _, width := range []uint32{1, 2, 4} {
			for _, level := range []uint32{0, 3, 9} {
				for _, version := range []uint32{VersionLegacy, Version1} {
					out = append(out, Options{
						PerformDeltaZigZag:   zz,
						IntegerSize:          width,
						ZstdCompressionLevel: level,
						VBZVersion:           version,
					})
				}
			}
		}
	}

	return out
}

func TestCompressDecompressRoundTripAllOptions(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for _, opts := range allOptionCombinations() {
		opts := opts

		t.Run("", func(t *testing.T) {
			n := 257
			vals := make([]int32, n)

			lo, hi := int32(-128), int32(127)
			switch opts.IntegerSize {
			case 2:
				lo, hi = -32768, 32767
			case 4:
				lo, hi = -1<<30, 1<<30
			}

			for i := range vals {
				vals[i] = lo + int32(r.Int63n(int64(hi)-int64(lo)+1))
			}

			src := packWidth(vals, opts.IntegerSize)

			maxSize := MaxCompressedSize(uint32(len(src)), opts)
			require.False(t, IsError(maxSize))

			dst := make([]byte, maxSize)
			written := CompressSized(src, dst, opts)
			require.Falsef(t, IsError(written), "CompressSized returned error %s", ErrorString(written))
			require.LessOrEqual(t, written, maxSize)

			compressed := dst[:written]

			originalSize := DecompressedSize(compressed, opts)
			require.False(t, IsError(originalSize))
			assert.Equal(t, uint32(len(src)), originalSize)

			out := make([]byte, originalSize)
			n2 := DecompressSized(compressed, out, opts)
			require.Falsef(t, IsError(n2), "DecompressSized returned error %s", ErrorString(n2))
			assert.Equal(t, src, out)
		})
	}
}

func TestCompressEmptyInput(t *testing.T) {
	opts := Options{PerformDeltaZigZag: true, IntegerSize: 2, ZstdCompressionLevel: 3}

	maxSize := MaxCompressedSize(0, opts)
	require.False(t, IsError(maxSize))

	dst := make([]byte, maxSize)
	written := CompressSized(nil, dst, opts)
	require.False(t, IsError(written))

	out := make([]byte, 0)
	n := DecompressSized(dst[:written], out, opts)
	require.False(t, IsError(n))
	assert.Equal(t, uint32(0), n)
}

func TestCompressOddLengthInputWithWidthTwoErrors(t *testing.T) {
	opts := Options{IntegerSize: 2}
	src := []byte{1, 2, 3} // not a multiple of 2

	dst := make([]byte, MaxCompressedSize(uint32(len(src)), opts))
	result := Compress(src, dst, opts)

	assert.Equal(t, InputSizeError, result)
}

func TestCompressZeroCapDestinationErrors(t *testing.T) {
	opts := Options{IntegerSize: 2, ZstdCompressionLevel: 3}
	src := packWidth([]int32{1, 2, 3, 4}, 2)

	result := Compress(src, nil, opts)
	assert.Equal(t, DestinationSizeError, result)
}

func TestCompressZeroCapDestinationErrorsWithStreamVByteOff(t *testing.T) {
	opts := Options{IntegerSize: 0, ZstdCompressionLevel: 3}
	src := []byte("some bytes that are not a declared-width integer stream")

	result := Compress(src, nil, opts)
	assert.Equal(t, DestinationSizeError, result)
}

func TestDecompressTruncatedStreamVByteErrors(t *testing.T) {
	opts := Options{IntegerSize: 2, PerformDeltaZigZag: true}
	vals := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	src := packWidth(vals, 2)

	maxSize := MaxCompressedSize(uint32(len(src)), opts)
	compressed := make([]byte, maxSize)
	n := Compress(src, compressed, opts)
	require.False(t, IsError(n))
	compressed = compressed[:n]

	dst := make([]byte, len(src))

	for cut := 0; cut < len(compressed); cut++ {
		result := Decompress(compressed[:cut], dst, opts)
		assert.True(t, IsError(result), "cut=%d unexpectedly succeeded", cut)
	}
}

func TestInvalidIntegerSizeRejected(t *testing.T) {
	opts := Options{IntegerSize: 3}
	assert.Equal(t, IntegerSizeError, Compress(nil, nil, opts))
	assert.Equal(t, IntegerSizeError, Decompress(nil, nil, opts))
	assert.Equal(t, IntegerSizeError, MaxCompressedSize(0, opts))
}

func TestInvalidVersionRejected(t *testing.T) {
	opts := Options{IntegerSize: 1, VBZVersion: 2}
	assert.Equal(t, VersionError, Compress(nil, nil, opts))
}

func TestMaxCompressedSizeNeverExceeded(t *testing.T) {
	r := rand.New(rand.NewSource(99))

	for _, opts := range allOptionCombinations() {
		vals := make([]int32, 33)
		for i := range vals {
			vals[i] = r.Int31n(200) - 100
		}

		src := packWidth(vals, opts.IntegerSize)
		maxSize := MaxCompressedSize(uint32(len(src)), opts)
		require.False(t, IsError(maxSize))

		dst := make([]byte, maxSize)
		written := CompressSized(src, dst, opts)
		require.False(t, IsError(written))
		assert.LessOrEqual(t, written, maxSize)
	}
}
