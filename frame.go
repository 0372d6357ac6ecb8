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

import "encoding/binary"

// frameHeaderSize is the width of the sized-frame header: a single
// little-endian uint32 holding the original (pre-compression) byte
// length.
const frameHeaderSize = 4

// CompressSized writes a self-describing VBZ frame: a 4-byte
// little-endian original_size header followed by the plain Compress
// output. Must be read back with DecompressSized.
func CompressSized(src []byte, dst []byte, opts Options) uint32 {
	if len(dst) < frameHeaderSize {
		return DestinationSizeError
	}

	binary.LittleEndian.PutUint32(dst[:frameHeaderSize], uint32(len(src)))

	n := Compress(src, dst[frameHeaderSize:], opts)
	if IsError(n) {
		return n
	}

	return n + frameHeaderSize
}

// DecompressSized reverses CompressSized: src is a full sized frame
// (header + body), and dst receives the decompressed bytes. dst must be
// at least DecompressedSize(src, opts) bytes.
func DecompressSized(src []byte, dst []byte, opts Options) uint32 {
	originalSize := DecompressedSize(src, opts)
	if IsError(originalSize) {
		return originalSize
	}

	if uint32(len(dst)) < originalSize {
		return DestinationSizeError
	}

	return Decompress(src[frameHeaderSize:], dst[:originalSize], opts)
}

// DecompressedSize reads the original_size field out of a sized frame's
// header without decompressing the body.
func DecompressedSize(src []byte, opts Options) uint32 {
	if len(src) < frameHeaderSize {
		return InputSizeError
	}

	return binary.LittleEndian.Uint32(src[:frameHeaderSize])
}
