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

	"github.com/nanoporetech/vbz-go/streamvbyte"
)

// useV1 reports whether the StreamVByte v1 (half-byte lane) codec
// applies for the given version and declared integer width. v1 payloads
// only ever use the half-byte lanes for 1-byte integers; 2- and 4-byte
// widths fall back to the v0 codec even under version 1, because
// empirical measurement showed v1's denser key noise degrades
// downstream Zstd ratios for wider integers. This asymmetry is on-disk
// format lore, not a simplification: it must be preserved so v1 streams
// written by any compatible implementation stay readable.
func useV1(version, width uint32) bool {
	return version == Version1 && width == 1
}

// maxStreamVByteSize returns the worst-case StreamVByte output size for
// srcSize raw bytes of integers of the given width and version, or an
// error sentinel if srcSize is not a multiple of width.
func maxStreamVByteSize(version, width uint32, srcSize int) (int, uint32) {
	if width == 0 || srcSize%int(width) != 0 {
		return 0, InputSizeError
	}

	n := srcSize / int(width)

	if useV1(version, width) {
		return streamvbyte.MaxEncodedLenV1(n), 0
	}

	return streamvbyte.MaxEncodedLenV0(n), 0
}

// readSigned reads the width-byte little-endian integer at element i of
// src as a sign-extended int32.
func readSigned(src []byte, i int, width uint32) int32 {
	off := i * int(width)

	switch width {
	case 1:
		return int32(int8(src[off]))
	case 2:
		return int32(int16(binary.LittleEndian.Uint16(src[off : off+2])))
	default: // 4
		return int32(binary.LittleEndian.Uint32(src[off : off+4]))
	}
}

// readUnsigned reads the width-byte little-endian integer at element i
// of src as a zero-extended uint32.
func readUnsigned(src []byte, i int, width uint32) uint32 {
	off := i * int(width)

	switch width {
	case 1:
		return uint32(src[off])
	case 2:
		return uint32(binary.LittleEndian.Uint16(src[off : off+2]))
	default: // 4
		return binary.LittleEndian.Uint32(src[off : off+4])
	}
}

// writeSigned narrows v and writes it little-endian at element i of dst.
func writeSigned(dst []byte, i int, width uint32, v int32) {
	off := i * int(width)

	switch width {
	case 1:
		dst[off] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(dst[off:off+2], uint16(v))
	default: // 4
		binary.LittleEndian.PutUint32(dst[off:off+4], uint32(v))
	}
}

// writeUnsigned narrows v and writes it little-endian at element i of
// dst.
func writeUnsigned(dst []byte, i int, width uint32, v uint32) {
	off := i * int(width)

	switch width {
	case 1:
		dst[off] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(dst[off:off+2], uint16(v))
	default: // 4
		binary.LittleEndian.PutUint32(dst[off:off+4], v)
	}
}

// encodeStreamVByte widens src (width-byte integers, possibly with the
// delta + zig-zag transform applied) into a uint32 stream and packs it
// with the version-appropriate StreamVByte codec into dst. Returns the
// number of bytes written, or an error sentinel.
func encodeStreamVByte(opts Options, src []byte, dst []byte) (int, uint32) {
	width := opts.IntegerSize

	if width == 0 || len(src)%int(width) != 0 {
		return 0, InputSizeError
	}

	n := len(src) / int(width)
	residues := make([]uint32, n)

	if opts.PerformDeltaZigZag {
		signed := make([]int32, n)

		for i := 0; i < n; i++ {
			signed[i] = readSigned(src, i, width)
		}

		deltaZigZagEncode(signed, residues)
	} else {
		for i := 0; i < n; i++ {
			residues[i] = readUnsigned(src, i, width)
		}
	}

	var written int

	if useV1(opts.VBZVersion, width) {
		written = streamvbyte.EncodeV1(residues, dst)
	} else {
		written = streamvbyte.EncodeV0(residues, dst)
	}

	return written, 0
}

// decodeStreamVByte is the inverse of encodeStreamVByte: it unpacks src
// into len(dst)/width integers of the declared width, reversing the
// delta + zig-zag transform if the options call for it. dst's length
// must already be an exact multiple of width; len(dst) is also the
// exact expected decompressed size.
func decodeStreamVByte(opts Options, src []byte, dst []byte) (int, uint32) {
	width := opts.IntegerSize

	if width == 0 || len(dst)%int(width) != 0 {
		return 0, DestinationSizeError
	}

	n := len(dst) / int(width)
	residues := make([]uint32, n)

	var err error
	if useV1(opts.VBZVersion, width) {
		err = streamvbyte.DecodeV1(src, residues)
	} else {
		err = streamvbyte.DecodeV0(src, residues)
	}

	if err != nil {
		return 0, StreamVByteStreamError
	}

	if opts.PerformDeltaZigZag {
		signed := make([]int32, n)
		deltaZigZagDecode(residues, signed)

		for i := 0; i < n; i++ {
			writeSigned(dst, i, width, signed[i])
		}
	} else {
		for i := 0; i < n; i++ {
			writeUnsigned(dst, i, width, residues[i])
		}
	}

	return len(dst), 0
}
