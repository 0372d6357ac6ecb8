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

// MaxEncodedLenV1 returns the worst-case number of bytes needed to
// encode n uint32 values with the v1 codec. v1's lanes are never wider
// than v0's (0/half/1/2 bytes vs 1/2/3/4 bytes), so v0's bound is a
// safe, if loose, upper bound and is what the reference implementation
// reuses for both codecs.
func MaxEncodedLenV1(n int) int {
	return MaxEncodedLenV0(n)
}

// codeV1 returns the lane code in {0,1,2,3} for v, meaning {0, half,
// one, two} bytes respectively.
func codeV1(v uint32) byte {
	switch {
	case v == 0:
		return 0
	case v < 1<<4:
		return 1
	case v < 1<<8:
		return 2
	default:
		return 3
	}
}

// nibbleCursor tracks the write/read position into the v1 data region:
// a byte index p and a nibble phase s (0 = low nibble next, 1 = high
// nibble next). See the package doc on EncodeV1 for the exact advance
// rule, which is on-disk format and must be matched bit for bit by any
// compatible implementation.
type nibbleCursor struct {
	p int
	s int
}

// alignForFullByte advances past a pending low nibble before a 1- or
// 2-byte lane: those lanes always start on a byte boundary, leaving any
// pending high nibble as zero padding.
func (c *nibbleCursor) alignForFullByte() {
	if c.s == 1 {
		c.s = 0
		c.p++
	}
}

func (c *nibbleCursor) finish() int {
	if c.s == 1 {
		c.p++
	}

	return c.p
}

// EncodeV1 packs src into dst using the v1 codec (half-byte lanes for
// width-1 integers) and returns the number of bytes written. dst must be
// at least MaxEncodedLenV1(len(src)) long.
//
// Lane codes {0,1,2,3} mean {0, half, one, two} bytes. Half-byte lanes
// pack low nibble first, then high nibble, into successive bytes. A
// 1- or 2-byte lane always starts on a byte boundary: if the nibble
// cursor is mid-byte when one is written, the pointer advances first,
// leaving the skipped high nibble as zero padding. If the stream ends
// mid-byte, the pointer advances once more so the data region length is
// whole bytes.
func EncodeV1(src []uint32, dst []byte) int {
	n := len(src)
	kl := keyLen(n)
	keys := dst[:kl]

	for i := range keys {
		keys[i] = 0
	}

	data := dst[kl:]
	cur := nibbleCursor{}

	for i, v := range src {
		code := codeV1(v)
		setCode(keys, i, code)

		switch code {
		case 0:
			// nothing to write
		case 1:
			if cur.s == 0 {
				data[cur.p] = 0
			}

			data[cur.p] |= byte(v&0xF) << (4 * cur.s)

			if cur.s == 0 {
				cur.s = 1
			} else {
				cur.s = 0
				cur.p++
			}
		case 2:
			cur.alignForFullByte()
			data[cur.p] = byte(v)
			cur.p++
		case 3:
			cur.alignForFullByte()
			data[cur.p] = byte(v)
			data[cur.p+1] = byte(v >> 8)
			cur.p += 2
		}
	}

	return kl + cur.finish()
}

// DecodeV1 is the inverse of EncodeV1. src must hold exactly the bytes
// produced by EncodeV1 for len(dst) integers.
func DecodeV1(src []byte, dst []uint32) error {
	n := len(dst)
	kl := keyLen(n)

	if len(src) < kl {
		return ErrStreamTooSmall
	}

	keys := src[:kl]
	data := src[kl:]
	cur := nibbleCursor{}

	for i := range dst {
		code := getCode(keys, i)

		switch code {
		case 0:
			dst[i] = 0
		case 1:
			if cur.p >= len(data) {
				return ErrStreamTooSmall
			}

			v := uint32(data[cur.p]>>(4*cur.s)) & 0xF

			if cur.s == 0 {
				cur.s = 1
			} else {
				cur.s = 0
				cur.p++
			}

			dst[i] = v
		case 2:
			cur.alignForFullByte()

			if cur.p >= len(data) {
				return ErrStreamTooSmall
			}

			dst[i] = uint32(data[cur.p])
			cur.p++
		case 3:
			cur.alignForFullByte()

			if cur.p+1 >= len(data) {
				return ErrStreamTooSmall
			}

			dst[i] = uint32(data[cur.p]) | uint32(data[cur.p+1])<<8
			cur.p += 2
		}
	}

	if kl+cur.finish() != len(src) {
		return ErrStreamTooSmall
	}

	return nil
}
