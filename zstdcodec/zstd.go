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

// Package zstdcodec is a thin wrapper around klauspost/compress/zstd,
// the pure-Go Zstandard implementation, giving the VBZ codec the same
// narrow surface the reference implementation takes from the C zstd
// library: one-shot compress, one-shot decompress, a compress-bound
// estimate and a frame-content-size probe.
package zstdcodec

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ErrZstd wraps any failure reported by the underlying library or
// detected while probing a frame header, so callers can test with
// errors.Is without caring which of the two produced it.
var ErrZstd = errors.New("zstdcodec: zstd failure")

// MaxDecompressedFrameSize caps the decompressed size this package will
// report from GetFrameContentSize, so a caller that sizes its buffer from
// that probe never allocates past it; Decompress itself does not consult
// it. Zero (the default) means unlimited. A fuzzing harness that wants to
// bound memory use against adversarial frames can set this; production
// callers generally leave it at zero, since the cap is a local policy
// affordance, not part of the wire format.
var MaxDecompressedFrameSize uint64

var (
	encOnce sync.Once
	enc     *zstd.Encoder
	encErr  error

	decOnce sync.Once
	dec     *zstd.Decoder
	decErr  error
)

// frameOptions make every frame carry its content size in the header
// (single-segment frames, and a real frame even for empty input), so
// GetFrameContentSize can always read it back.
var frameOptions = []zstd.EOption{zstd.WithSingleSegment(true), zstd.WithZeroFrames(true)}

func encoder() (*zstd.Encoder, error) {
	encOnce.Do(func() {
		enc, encErr = zstd.NewWriter(nil, frameOptions...)
	})

	return enc, encErr
}

func decoder() (*zstd.Decoder, error) {
	decOnce.Do(func() {
		dec, decErr = zstd.NewReader(nil)
	})

	return dec, decErr
}

// CompressBound returns an upper bound on the size of a Zstd frame
// compressing srcSize bytes.
func CompressBound(srcSize int) int {
	// Matches the bound used by the reference ZSTD_compressBound: a
	// small fixed overhead plus ~0.4% of the input, which covers
	// klauspost's frame + block header overhead for any level.
	return srcSize + (srcSize >> 8) + 64
}

// Compress encodes src at the given level into dst, returning the
// number of bytes written or ErrZstd on failure (including dst being
// too small).
func Compress(dst, src []byte, level int) (int, error) {
	e, err := encoderAtLevel(level)
	if err != nil {
		return 0, errors.Join(ErrZstd, err)
	}

	out := e.EncodeAll(src, dst[:0])

	if len(out) > len(dst) {
		return 0, ErrZstd
	}

	if len(out) > 0 && &out[0] != &dst[0] {
		copy(dst, out)
	}

	return len(out), nil
}

// encoderAtLevel returns a shared encoder for the common case (the
// reference Zstd default level), or a fresh one for any other level —
// klauspost's Encoder is configured once at construction, unlike the C
// library's per-call level argument.
func encoderAtLevel(level int) (*zstd.Encoder, error) {
	const defaultLevel = 3

	if level == defaultLevel {
		return encoder()
	}

	opts := append([]zstd.EOption{zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level))}, frameOptions...)
	e, err := zstd.NewWriter(nil, opts...)
	if err != nil {
		return nil, err
	}

	return e, nil
}

// Decompress decodes src into dst, returning the number of bytes
// written or ErrZstd on failure (including dst being too small for the
// decoded content).
func Decompress(dst, src []byte) (int, error) {
	d, err := decoder()
	if err != nil {
		return 0, errors.Join(ErrZstd, err)
	}

	out, err := d.DecodeAll(src, dst[:0])
	if err != nil {
		return 0, errors.Join(ErrZstd, err)
	}

	if len(out) > len(dst) {
		return 0, ErrZstd
	}

	if len(out) > 0 && &out[0] != &dst[0] {
		copy(dst, out)
	}

	return len(out), nil
}

// GetFrameContentSize reads the decompressed content size out of a Zstd
// frame header, the same probe the reference implementation performs
// with ZSTD_getFrameContentSize before allocating a decompression
// buffer. klauspost/compress/zstd does not expose this as a standalone
// accessor, so it is parsed directly per the frame format (RFC 8478
// §3.1.1); the actual decode still goes through the library's Decoder.
func GetFrameContentSize(src []byte) (uint64, error) {
	size, ok := parseFrameContentSize(src)
	if !ok {
		return 0, ErrZstd
	}

	if MaxDecompressedFrameSize != 0 && size > MaxDecompressedFrameSize {
		return 0, ErrZstd
	}

	return size, nil
}

const zstdMagic = 0xFD2FB528

func parseFrameContentSize(src []byte) (uint64, bool) {
	if len(src) < 5 || binary.LittleEndian.Uint32(src[0:4]) != zstdMagic {
		return 0, false
	}

	fhd := src[4]
	contentSizeFlag := fhd >> 6
	singleSegment := fhd&(1<<5) != 0
	dictIDFlag := fhd & 0x3

	pos := 5
	if !singleSegment {
		pos++ // Window_Descriptor
	}

	switch dictIDFlag {
	case 1:
		pos++
	case 2:
		pos += 2
	case 3:
		pos += 4
	}

	var fcsBytes int

	switch contentSizeFlag {
	case 0:
		if singleSegment {
			fcsBytes = 1
		} else {
			return 0, false // content size not present
		}
	case 1:
		fcsBytes = 2
	case 2:
		fcsBytes = 4
	case 3:
		fcsBytes = 8
	}

	if len(src) < pos+fcsBytes {
		return 0, false
	}

	switch fcsBytes {
	case 1:
		return uint64(src[pos]), true
	case 2:
		return uint64(binary.LittleEndian.Uint16(src[pos:pos+2])) + 256, true
	case 4:
		return uint64(binary.LittleEndian.Uint32(src[pos : pos+4])), true
	default:
		return binary.LittleEndian.Uint64(src[pos : pos+8]), true
	}
}
