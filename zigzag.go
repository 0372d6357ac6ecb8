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

// deltaZigZagEncode replaces each value with zigzag(x[i] - prev), prev
// starting at 0 and tracking the raw (not zig-zagged) previous value.
// Operates on 32-bit widened values regardless of the caller's declared
// integer width: narrower values must already be sign-extended in by
// the caller, and are truncated back out after the inverse transform.
func deltaZigZagEncode(src []int32, dst []uint32) {
	prev := int32(0)

	for i, x := range src {
		dst[i] = zigzag(x - prev)
		prev = x
	}
}

// deltaZigZagDecode is the inverse of deltaZigZagEncode.
func deltaZigZagDecode(src []uint32, dst []int32) {
	prev := int32(0)

	for i, r := range src {
		prev += unzigzag(r)
		dst[i] = prev
	}
}

// zigzag maps a signed 32-bit integer to an unsigned one: 0 -> 0,
// -1 -> 1, 1 -> 2, -2 -> 3, ... small magnitudes of either sign land
// close to zero in unsigned space.
func zigzag(n int32) uint32 {
	return uint32((n << 1) ^ (n >> 31))
}

// unzigzag is the inverse of zigzag.
func unzigzag(r uint32) int32 {
	return int32(r>>1) ^ -int32(r&1)
}
