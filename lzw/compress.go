package lzw

import "io"

// Compress encodes src and serializes the codes. opts may be nil.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	return opts.Format.Marshal(Encode(src))
}

// Decompress parses data and decodes the codes back to the original bytes.
// opts may be nil.
func Decompress(data []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	codes, err := opts.Format.Unmarshal(data)
	if err != nil {
		return nil, err
	}

	return decode(codes, opts.MaxOutputSize)
}

// DecompressFromReader reads the full stream then calls Decompress.
// If opts.MaxInputSize > 0 and more bytes are available, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if opts.MaxInputSize > 0 {
		r = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}
