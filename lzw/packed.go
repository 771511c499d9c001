package lzw

import (
	"bytes"
	"fmt"
	"math"

	"github.com/icza/bitio"
)

// countBits is the size of the code count header of FormatPacked.
const countBits = 32

// MarshalPacked writes codes in FormatPacked. The width of each code is
// derived from the same growth rule the encoder applies: every emitted
// code except the last one admits exactly one dictionary entry.
func MarshalPacked(codes []uint16) ([]byte, error) {
	if uint64(len(codes)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d codes do not fit the count header", ErrCodeOutOfRange, len(codes))
	}

	var buf bytes.Buffer
	buf.Grow(4 + len(codes)*MaxWidth/8 + 1)

	w := bitio.NewWriter(&buf)
	if err := w.WriteBits(uint64(len(codes)), countBits); err != nil {
		return nil, err
	}

	d := newDictionary()
	for i, code := range codes {
		if int(code) >= d.capacity {
			return nil, fmt.Errorf("%w: code %d at index %d exceeds %d bits", ErrCodeOutOfRange, code, i, d.width)
		}

		// #nosec G115 -- width is between InitialWidth and MaxWidth.
		if err := w.WriteBits(uint64(code), uint8(d.width)); err != nil {
			return nil, err
		}
		d.admit()
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalPacked is the inverse of MarshalPacked.
func UnmarshalPacked(data []byte) ([]uint16, error) {
	r := bitio.NewReader(bytes.NewReader(data))

	count, err := r.ReadBits(countBits)
	if err != nil {
		return nil, fmt.Errorf("%w: missing code count: %v", ErrTruncatedStream, err)
	}

	// Each code takes at least InitialWidth bits; reject counts the data
	// cannot possibly hold before allocating for them.
	if avail := uint64(len(data)-countBits/8) * 8; count*InitialWidth > avail {
		return nil, fmt.Errorf("%w: %d codes announced, %d bytes present", ErrTruncatedStream, count, len(data))
	}

	codes := make([]uint16, count)
	d := newDictionary()
	bits := uint64(countBits)
	for i := range codes {
		// #nosec G115 -- width is between InitialWidth and MaxWidth.
		v, err := r.ReadBits(uint8(d.width))
		if err != nil {
			return nil, fmt.Errorf("%w: code %d of %d: %v", ErrTruncatedStream, i, count, err)
		}

		codes[i] = uint16(v)
		bits += uint64(d.width)
		d.admit()
	}

	// Only the zero padding of the final byte may follow the last code.
	if want := (bits + 7) / 8; uint64(len(data)) != want {
		return nil, fmt.Errorf("%w: %d bytes after the last code", ErrTrailingData, uint64(len(data))-want)
	}
	if pad := uint8((8 - bits%8) % 8); pad > 0 {
		if v, err := r.ReadBits(pad); err != nil || v != 0 {
			return nil, fmt.Errorf("%w: non-zero padding", ErrTrailingData)
		}
	}

	return codes, nil
}
