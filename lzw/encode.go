package lzw

// Encode compresses src into a sequence of dictionary codes, each in
// [0, MaxCode]. An empty src yields an empty sequence.
//
// Every call builds its own dictionary, so Encode is safe for concurrent use.
func Encode(src []byte) []uint16 {
	out := make([]uint16, 0, len(src)/2+1)
	if len(src) == 0 {
		return out
	}

	table := newEncodeTable()

	// buffer is the code of the longest match so far. Single bytes are
	// their own code, so the first byte needs no lookup.
	buffer := uint16(src[0])
	for _, b := range src[1:] {
		if code, ok := table.lookup(buffer, b); ok {
			buffer = code
			continue
		}

		out = append(out, buffer)
		table.add(buffer, b)
		buffer = uint16(b)
	}

	return append(out, buffer)
}
