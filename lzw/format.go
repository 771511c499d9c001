package lzw

import (
	"encoding/binary"
	"fmt"
)

// Format selects how a code sequence is serialized to bytes.
type Format int

const (
	// FormatFixed16 stores every code as a 2-byte big-endian integer,
	// whatever the current code width.
	FormatFixed16 Format = iota
	// FormatPacked stores a 32-bit code count followed by every code in
	// exactly as many bits as the dictionary width at the time it was
	// emitted.
	FormatPacked
)

func (f Format) String() string {
	switch f {
	case FormatFixed16:
		return "fixed"
	case FormatPacked:
		return "packed"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "fixed" or "packed" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "fixed", "fixed16":
		return FormatFixed16, nil
	case "packed":
		return FormatPacked, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Marshal serializes codes in format f.
func (f Format) Marshal(codes []uint16) ([]byte, error) {
	switch f {
	case FormatFixed16:
		return MarshalFixed(codes), nil
	case FormatPacked:
		return MarshalPacked(codes)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// Unmarshal parses codes serialized in format f.
func (f Format) Unmarshal(data []byte) ([]uint16, error) {
	switch f {
	case FormatFixed16:
		return UnmarshalFixed(data)
	case FormatPacked:
		return UnmarshalPacked(data)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// MaxEncodedSize bounds the serialized size of the codes Encode produces
// for n input bytes. Every code covers at least one byte.
func (f Format) MaxEncodedSize(n int) int {
	if f == FormatPacked {
		return countBits/8 + (n*MaxWidth+7)/8
	}
	return 2 * n
}

// MarshalFixed writes each code as a 2-byte big-endian integer.
func MarshalFixed(codes []uint16) []byte {
	out := make([]byte, 0, 2*len(codes))
	for _, code := range codes {
		out = binary.BigEndian.AppendUint16(out, code)
	}

	return out
}

// UnmarshalFixed is the inverse of MarshalFixed.
func UnmarshalFixed(data []byte) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of 2-byte codes", ErrTruncatedStream, len(data))
	}

	codes := make([]uint16, len(data)/2)
	for i := range codes {
		codes[i] = binary.BigEndian.Uint16(data[2*i:])
	}

	return codes, nil
}
