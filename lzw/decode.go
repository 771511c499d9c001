package lzw

// Decode reconstructs the bytes encoded by Encode. An empty sequence
// decodes to an empty slice.
//
// A code that is neither in the dictionary nor the self-referential code
// fails the call with a *CorruptionError; no partial output is returned.
func Decode(codes []uint16) ([]byte, error) {
	return decode(codes, 0)
}

// decode is Decode with an optional bound on the output size
// (limit <= 0 means unbounded).
func decode(codes []uint16, limit int) ([]byte, error) {
	if len(codes) == 0 {
		return []byte{}, nil
	}

	table := newDecodeTable()

	first := codes[0]
	if first >= firstCode {
		return nil, &CorruptionError{Index: 0, Code: first, NextCode: table.nextCode}
	}

	prefix, _ := table.lookup(first)
	out := make([]byte, 0, len(codes)*2)
	out = append(out, prefix...)

	for i, code := range codes[1:] {
		entry, err := resolve(table, prefix, code)
		if err != nil {
			err.Index = i + 1
			return nil, err
		}

		if limit > 0 && len(out)+len(entry) > limit {
			return nil, ErrOutputTooLarge
		}
		out = append(out, entry...)

		// Mirror of the encoder's admission for the previous code. The
		// three-index slice forces a copy so entries never share a tail.
		table.add(append(prefix[:len(prefix):len(prefix)], entry[0]))
		prefix = entry
	}

	return out, nil
}

// resolve maps code to its byte sequence given the previously decoded
// entry.
func resolve(table *decodeTable, prefix []byte, code uint16) ([]byte, *CorruptionError) {
	if entry, ok := table.lookup(code); ok {
		return entry, nil
	}

	// Self-referential code: the encoder emitted the entry it had just
	// added, which is always prefix followed by its own first byte. Only
	// nextCode can be referenced this way, and only while the dictionary
	// still admits entries.
	if int(code) == table.nextCode && table.state() == StateGrowing {
		return append(prefix[:len(prefix):len(prefix)], prefix[0]), nil
	}

	return nil, &CorruptionError{Code: code, NextCode: table.nextCode}
}
