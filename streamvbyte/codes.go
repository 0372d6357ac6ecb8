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

// Package streamvbyte implements the two StreamVByte variable-byte
// integer packers used by the VBZ codec: v0 (four-way 1/2/3/4-byte
// lanes) and v1 (four-way 0/half/1/2-byte lanes, nibble-packed).
//
// Both packers share the same key region layout: a 2-bit code per
// integer, four codes per key byte, little-endian within the byte
// (integer i occupies bits [2*(i%4), 2*(i%4)+2) of byte i/4).
package streamvbyte

import "errors"

// ErrStreamTooSmall is returned when a decode's source buffer does not
// carry exactly the number of bytes its own keys declare.
var ErrStreamTooSmall = errors.New("streamvbyte: compressed stream length does not match key-declared size")

// keyLen returns the number of key bytes needed for n integers.
func keyLen(n int) int {
	return (n + 3) / 4
}

// getCode extracts the 2-bit code for integer i out of the key region.
func getCode(keys []byte, i int) byte {
	b := keys[i/4]
	shift := uint(2 * (i % 4))
	return (b >> shift) & 0x3
}

// setCode ORs a 2-bit code for integer i into the key region. Keys must
// be zero-initialized before the first call for a given byte.
func setCode(keys []byte, i int, code byte) {
	shift := uint(2 * (i % 4))
	keys[i/4] |= code << shift
}
