package lzw

// CompressOptions configures Compress.
type CompressOptions struct {
	// Format selects the serialized code layout (default FormatFixed16).
	Format Format
}

// DefaultCompressOptions returns options producing the fixed 2-byte layout.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Format: FormatFixed16}
}

// DecompressOptions configures Decompress and DecompressFromReader.
type DecompressOptions struct {
	// Format must match the one used by Compress.
	Format Format
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
	// MaxOutputSize limits the decoded size (0 = no limit).
	MaxOutputSize int
}

// DefaultDecompressOptions returns options for the fixed 2-byte layout with no limits.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{Format: FormatFixed16}
}
