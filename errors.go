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

// Sized returns from the codec are either a valid byte count or one of
// these sentinels reinterpreted as a negative int32. The concrete values
// are part of the wire/ABI contract: callers that check a specific
// sentinel value must keep seeing it.
const (
	ZstdError              = uint32(0xFFFFFFFF) // -1
	InputSizeError         = uint32(0xFFFFFFFE) // -2
	IntegerSizeError       = uint32(0xFFFFFFFD) // -3
	DestinationSizeError   = uint32(0xFFFFFFFC) // -4
	StreamVByteStreamError = uint32(0xFFFFFFFB) // -5
	VersionError           = uint32(0xFFFFFFFA) // -6
	OutOfMemoryError       = uint32(0xFFFFFFF9) // -7
)

// FirstError is the numerically smallest (as uint32) of the error
// sentinels above, so IsError recognizes every one of them. The
// reference C header instead pins FirstError to VersionError, which
// silently excludes OutOfMemoryError from is_error's range; that is an
// off-by-one in the reference, not a format requirement (the sentinel
// values themselves are format-critical, their ordering is not), so this
// reimplementation corrects it.
const FirstError = OutOfMemoryError

// IsError reports whether a sized return value from the codec denotes a
// failure rather than a byte count.
func IsError(result uint32) bool {
	return result >= FirstError
}

var errorStrings = map[uint32]string{
	ZstdError:              "VBZ_ZSTD_ERROR",
	InputSizeError:         "VBZ_INPUT_SIZE_ERROR",
	IntegerSizeError:       "VBZ_INTEGER_SIZE_ERROR",
	DestinationSizeError:   "VBZ_DESTINATION_SIZE_ERROR",
	StreamVByteStreamError: "VBZ_STREAMVBYTE_STREAM_ERROR",
	VersionError:           "VBZ_VERSION_ERROR",
	OutOfMemoryError:       "VBZ_OUT_OF_MEMORY_ERROR",
}

// ErrorString returns a stable, human-readable token for a known error
// code, or "VBZ_UNKNOWN_ERROR" for anything else (including a value that
// is not actually an error).
func ErrorString(code uint32) string {
	if s, found := errorStrings[code]; found {
		return s
	}

	return "VBZ_UNKNOWN_ERROR"
}
