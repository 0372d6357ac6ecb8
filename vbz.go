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

// Package vbz implements the VBZ lossless codec for sequences of small
// signed or unsigned integers, most notably the 16-bit sample streams
// produced by nanopore DNA sequencers.
//
// The codec chains three optional transforms: a delta + zig-zag map, a
// variable-byte packer (StreamVByte, in two wire-incompatible versions),
// and a Zstandard entropy pass. Every call is a synchronous leaf: there
// is no internal concurrency, no persistent state, and no cross-call
// caching. The same Options value must be supplied at compression and
// decompression time; it is never stored inside the compressed payload
// itself (see CompressSized for the one piece of metadata that is).
package vbz

const (
	// VersionLegacy is the original StreamVByte encoding: every integer
	// width uses the four-way 1/2/3/4-byte lane codec.
	VersionLegacy = uint32(0)

	// Version1 uses the half-byte lane codec for 1-byte integers and
	// falls back to the legacy codec for 2- and 4-byte integers (see
	// useV1 in dispatch.go for why).
	Version1 = uint32(1)

	// DefaultVersion is the version a caller with no prior on-disk
	// format to match should use. It matches the reference
	// implementation's default, which is the legacy (v0) format.
	DefaultVersion = VersionLegacy
)

// Options is the single configuration record carried alongside every VBZ
// payload. It is never stored in the compressed bytes; callers must
// transmit it out-of-band and supply the identical value to both
// Compress and Decompress.
type Options struct {
	// PerformDeltaZigZag applies the delta + zig-zag transform (§4.1)
	// before StreamVByte packing. Good for smoothly varying signed
	// samples, since it turns small magnitude changes into small
	// unsigned residues regardless of sign.
	PerformDeltaZigZag bool

	// IntegerSize is the declared byte width of each input integer.
	// Must be one of 0, 1, 2, 4. Zero disables the StreamVByte stage
	// entirely: the bytes pass through the pipeline in their current
	// form (still eligible for the Zstd stage). The zig-zag transform
	// runs only as part of the StreamVByte stage, so
	// PerformDeltaZigZag is ignored when IntegerSize is 0.
	IntegerSize uint32

	// ZstdCompressionLevel is the level passed to the Zstd encoder.
	// Zero disables the Zstd stage.
	ZstdCompressionLevel uint32

	// VBZVersion selects the StreamVByte wire format. Must be
	// VersionLegacy or Version1. This is format lore baked into every
	// compressed payload: a change here makes previously written
	// payloads unreadable.
	VBZVersion uint32
}

// FilterParams returns the four option fields in the order an HDF5
// filter-plugin host expects them: {version, integer size, zig-zag flag,
// zstd level}. VBZ itself does not depend on this ordering; it exists so
// a host integration (out of scope for this module) has a ready
// conversion.
func (o Options) FilterParams() [4]uint32 {
	zigzag := uint32(0)
	if o.PerformDeltaZigZag {
		zigzag = 1
	}

	return [4]uint32{o.VBZVersion, o.IntegerSize, zigzag, o.ZstdCompressionLevel}
}

// OptionsFromFilterParams reverses FilterParams.
func OptionsFromFilterParams(params [4]uint32) Options {
	return Options{
		VBZVersion:           params[0],
		IntegerSize:          params[1],
		PerformDeltaZigZag:   params[2] != 0,
		ZstdCompressionLevel: params[3],
	}
}
