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

package streamvbyte

// MaxEncodedLenV0 returns the worst-case number of bytes needed to
// encode n uint32 values with the v0 codec: one key byte per four
// integers plus up to four data bytes per integer.
func MaxEncodedLenV0(n int) int {
	return keyLen(n) + 4*n
}

// lenV0 returns the number of little-endian bytes needed to hold v: the
// classic StreamVByte scheme, where even a zero value still costs one
// byte. The 2-bit key code is one less than this (0..3 meaning 1..4
// bytes) — there is no zero-byte lane in v0, unlike v1.
func lenV0(v uint32) byte {
	switch {
	case v < 1<<8:
		return 1
	case v < 1<<16:
		return 2
	case v < 1<<24:
		return 3
	default:
		return 4
	}
}

// EncodeV0 packs src into dst using the v0 codec and returns the number
// of bytes written. dst must be at least MaxEncodedLenV0(len(src)) long.
func EncodeV0(src []uint32, dst []byte) int {
	n := len(src)
	kl := keyLen(n)
	keys := dst[:kl]

	for i := range keys {
		keys[i] = 0
	}

	dataIdx := kl

	for i, v := range src {
		nbytes := lenV0(v)
		setCode(keys, i, nbytes-1)

		for b := byte(0); b < nbytes; b++ {
			dst[dataIdx] = byte(v >> (8 * b))
			dataIdx++
		}
	}

	return dataIdx
}

// DecodeV0 unpacks src, which must hold exactly the bytes produced by
// EncodeV0 for len(dst) integers, into dst. It first validates that the
// key-declared lane widths plus the key region exactly account for
// len(src), returning ErrStreamTooSmall if not (this catches truncation
// or corruption without reading past the input).
func DecodeV0(src []byte, dst []uint32) error {
	n := len(dst)
	kl := keyLen(n)

	if len(src) < kl {
		return ErrStreamTooSmall
	}

	keys := src[:kl]
	total := kl

	for i := 0; i < n; i++ {
		total += int(getCode(keys, i)) + 1
	}

	if total != len(src) {
		return ErrStreamTooSmall
	}

	dataIdx := kl

	for i := range dst {
		nbytes := getCode(keys, i) + 1
		var v uint32

		for b := byte(0); b < nbytes; b++ {
			v |= uint32(src[dataIdx]) << (8 * b)
			dataIdx++
		}

		dst[i] = v
	}

	return nil
}
