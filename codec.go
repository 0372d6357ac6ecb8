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

import "github.com/nanoporetech/vbz-go/zstdcodec"

// validateOptions checks the two fields of Options whose legality does
// not depend on the call being made (everything but buffer sizes),
// returning the corresponding error sentinel, or 0 if opts is valid.
func validateOptions(opts Options) uint32 {
	switch opts.IntegerSize {
	case 0, 1, 2, 4:
	default:
		return IntegerSizeError
	}

	switch opts.VBZVersion {
	case VersionLegacy, Version1:
	default:
		return VersionError
	}

	return 0
}

// MaxCompressedSize returns an upper bound on the output of
// CompressSized for an input of srcSize bytes under opts, suitable for
// sizing a destination buffer. Returns an error sentinel if opts is
// invalid.
func MaxCompressedSize(srcSize uint32, opts Options) uint32 {
	if e := validateOptions(opts); e != 0 {
		return e
	}

	size := int(srcSize)

	if opts.IntegerSize != 0 {
		svbSize, e := maxStreamVByteSize(opts.VBZVersion, opts.IntegerSize, size)
		if e != 0 {
			return e
		}

		size = svbSize
	}

	if opts.ZstdCompressionLevel != 0 {
		size = zstdcodec.CompressBound(size)
	}

	return uint32(size) + frameHeaderSize
}

// Compress writes the VBZ-compressed form of src into dst under opts,
// without the sized-frame header (use CompressSized for a
// self-describing payload). Returns the number of bytes written to dst,
// or an error sentinel.
func Compress(src []byte, dst []byte, opts Options) uint32 {
	if e := validateOptions(opts); e != 0 {
		return e
	}

	if opts.IntegerSize == 0 && opts.ZstdCompressionLevel == 0 {
		if len(dst) < len(src) {
			return DestinationSizeError
		}

		copy(dst, src)
		return uint32(len(src))
	}

	current := src

	if opts.IntegerSize != 0 {
		svbMax, e := maxStreamVByteSize(opts.VBZVersion, opts.IntegerSize, len(src))
		if e != 0 {
			return e
		}

		svbDst := dst
		if opts.ZstdCompressionLevel != 0 {
			svbDst = make([]byte, svbMax)
		} else if svbMax > len(dst) {
			return DestinationSizeError
		}

		n, e := encodeStreamVByte(opts, current, svbDst)
		if e != 0 {
			return e
		}

		current = svbDst[:n]
	}

	if opts.ZstdCompressionLevel == 0 {
		return uint32(len(current))
	}

	if zstdcodec.CompressBound(len(current)) > len(dst) {
		return DestinationSizeError
	}

	n, err := zstdcodec.Compress(dst, current, int(opts.ZstdCompressionLevel))
	if err != nil {
		return ZstdError
	}

	return uint32(n)
}

// Decompress reverses Compress: src is the plain (non-sized) compressed
// form, dst must be exactly the original source length, and opts must
// match what was passed to Compress. Returns the number of bytes
// written to dst (equal to len(dst) on success), or an error sentinel.
func Decompress(src []byte, dst []byte, opts Options) uint32 {
	if e := validateOptions(opts); e != 0 {
		return e
	}

	if opts.IntegerSize == 0 && opts.ZstdCompressionLevel == 0 {
		if len(dst) < len(src) {
			return DestinationSizeError
		}

		copy(dst, src)
		return uint32(len(src))
	}

	current := src

	if opts.ZstdCompressionLevel != 0 {
		contentSize, err := zstdcodec.GetFrameContentSize(src)
		if err != nil {
			return ZstdError
		}

		zstdDst := dst
		if opts.IntegerSize != 0 {
			zstdDst = make([]byte, contentSize)
		} else if uint64(len(dst)) < contentSize {
			return DestinationSizeError
		}

		n, err := zstdcodec.Decompress(zstdDst, src)
		if err != nil {
			return ZstdError
		}

		current = zstdDst[:n]
	}

	if opts.IntegerSize == 0 {
		return uint32(len(current))
	}

	n, e := decodeStreamVByte(opts, current, dst)
	if e != 0 {
		return e
	}

	return uint32(n)
}
