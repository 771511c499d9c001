/*
Package lzw implements an LZW codec whose dictionary starts with the 256
single-byte entries and grows from 9-bit to 12-bit codes.

Encoder and decoder each build their own dictionary from scratch and keep
it in lockstep by applying the same admission rule: one new entry per
emitted code until code 4095 is assigned, after which the dictionary is
frozen for the rest of the call. There is no clear code and no reset.

# Codes

	codes := lzw.Encode(data)
	data, err := lzw.Decode(codes)

Decode returns an error wrapping ErrDecodeCorruption (a *CorruptionError)
for streams the encoder cannot have produced.

# Bytes

Codes are serialized either as fixed 2-byte big-endian integers (the
default, FormatFixed16) or packed at the current code width (FormatPacked):

	out, err := lzw.Compress(data, nil)
	out, err := lzw.Compress(data, &lzw.CompressOptions{Format: lzw.FormatPacked})
	data, err := lzw.Decompress(out, &lzw.DecompressOptions{Format: lzw.FormatPacked})
*/
package lzw
