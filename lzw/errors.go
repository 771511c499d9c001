package lzw

import (
	"errors"
	"fmt"
)

// Sentinel errors for decoding and code stream parsing.
var (
	// ErrDecodeCorruption is returned when a code cannot be resolved under the
	// dictionary growth rule. Use errors.As with *CorruptionError for details.
	ErrDecodeCorruption = errors.New("corrupt code stream")
	// ErrTruncatedStream is returned when serialized codes end mid-code.
	ErrTruncatedStream = errors.New("truncated code stream")
	// ErrTrailingData is returned when a packed stream holds more than zero padding after its last code.
	ErrTrailingData = errors.New("trailing data after code stream")
	// ErrCodeOutOfRange is returned when a code does not fit the width it must be written with.
	ErrCodeOutOfRange = errors.New("code out of range")
	// ErrUnknownFormat is returned for an unrecognized Format.
	ErrUnknownFormat = errors.New("unknown code format")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrOutputTooLarge is returned when decoded output would exceed MaxOutputSize bytes.
	ErrOutputTooLarge = errors.New("output exceeds MaxOutputSize")
)

// CorruptionError reports the first code of a stream that could not be
// resolved.
type CorruptionError struct {
	Index    int    // position of the code in the sequence
	Code     uint16 // offending code
	NextCode int    // code the decoder would have assigned next
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("%v: code %d at index %d (next code %d)", ErrDecodeCorruption, e.Code, e.Index, e.NextCode)
}

func (e *CorruptionError) Unwrap() error {
	return ErrDecodeCorruption
}
