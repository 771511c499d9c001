package main

import (
	"fmt"

	"github.com/branila/lzwcast/lzw"
)

// Handles LZW compression of frames and files
type LZWCodec struct {
	format       lzw.Format
	maxFrameSize int
}

// Creates a new LZW codec using the given code layout.
// maxFrameSize bounds decoded frames (0 = unbounded).
func NewLZWCodec(format lzw.Format, maxFrameSize int) *LZWCodec {
	return &LZWCodec{
		format:       format,
		maxFrameSize: maxFrameSize,
	}
}

func (c *LZWCodec) Format() lzw.Format {
	return c.format
}

// Compresses one frame
func (c *LZWCodec) Encode(input []byte) ([]byte, error) {
	out, err := lzw.Compress(input, &lzw.CompressOptions{Format: c.format})
	if err != nil {
		return nil, fmt.Errorf("failed to compress: %w", err)
	}

	return out, nil
}

// Decompresses one frame
func (c *LZWCodec) Decode(input []byte) ([]byte, error) {
	out, err := lzw.Decompress(input, &lzw.DecompressOptions{
		Format:        c.format,
		MaxOutputSize: c.maxFrameSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}

	return out, nil
}

// Splits data into chunks of at most size bytes and compresses each one
// independently
func (c *LZWCodec) EncodeChunks(data []byte, size int) ([][]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid chunk size %d", size)
	}

	frames := make([][]byte, 0, len(data)/size+1)
	for start := 0; start < len(data); start += size {
		frame, err := c.Encode(data[start:min(start+size, len(data))])
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", len(frames), err)
		}
		frames = append(frames, frame)
	}

	return frames, nil
}
