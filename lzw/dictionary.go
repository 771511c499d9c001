package lzw

// Code width and dictionary bounds shared by the encoder and the decoder.
const (
	InitialWidth = 9
	MaxWidth     = 12
	MaxEntries   = 1 << MaxWidth
	MaxCode      = MaxEntries - 1

	// firstCode is the code assigned to the first multi-byte entry.
	firstCode = 256
)

// State is the growth state of a dictionary.
type State int

const (
	// StateGrowing means new entries are still admitted.
	StateGrowing State = iota
	// StateFrozen means the dictionary holds MaxEntries entries and is
	// read-only for the rest of the call.
	StateFrozen
)

func (s State) String() string {
	switch s {
	case StateGrowing:
		return "growing"
	case StateFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// dictionary tracks the code-width state both directions apply to decide
// whether a new entry is admitted. The entries themselves live in
// encodeTable and decodeTable.
type dictionary struct {
	width    int
	nextCode int
	capacity int
}

func newDictionary() dictionary {
	return dictionary{
		width:    InitialWidth,
		nextCode: firstCode,
		capacity: 1 << InitialWidth,
	}
}

// tryAdd reserves nextCode for a new entry. It reports false once the
// current capacity is reached.
func (d *dictionary) tryAdd() bool {
	if d.nextCode >= d.capacity {
		return false
	}

	d.nextCode++
	return true
}

// maybeGrow widens the code once nextCode has reached the capacity of the
// current width.
func (d *dictionary) maybeGrow() {
	if d.nextCode >= d.capacity && d.width < MaxWidth {
		d.width++
		d.capacity = 1 << d.width
	}
}

// admit runs tryAdd followed by maybeGrow when the entry was admitted.
func (d *dictionary) admit() bool {
	if !d.tryAdd() {
		return false
	}

	d.maybeGrow()
	return true
}

func (d *dictionary) state() State {
	if d.width == MaxWidth && d.nextCode >= MaxEntries {
		return StateFrozen
	}

	return StateGrowing
}

// pairKey identifies a multi-byte sequence by the code of its prefix and
// its last byte. Every sequence in the table is reachable this way, so the
// pair is a one-to-one stand-in for the sequence itself.
type pairKey struct {
	prefix uint16
	last   byte
}

// encodeTable is the sequence-to-code direction of the dictionary.
type encodeTable struct {
	dictionary
	codes map[pairKey]uint16
}

func newEncodeTable() *encodeTable {
	return &encodeTable{
		dictionary: newDictionary(),
		codes:      make(map[pairKey]uint16, MaxEntries-firstCode),
	}
}

// lookup returns the code of the sequence prefix||b.
func (t *encodeTable) lookup(prefix uint16, b byte) (uint16, bool) {
	code, ok := t.codes[pairKey{prefix: prefix, last: b}]
	return code, ok
}

// add registers prefix||b at nextCode if the dictionary admits it.
func (t *encodeTable) add(prefix uint16, b byte) bool {
	code := t.nextCode
	if !t.admit() {
		return false
	}

	// #nosec G115 -- admitted codes are below MaxEntries.
	t.codes[pairKey{prefix: prefix, last: b}] = uint16(code)
	return true
}

// decodeTable is the code-to-sequence direction of the dictionary.
type decodeTable struct {
	dictionary
	entries [][]byte
}

func newDecodeTable() *decodeTable {
	entries := make([][]byte, firstCode, MaxEntries)
	for i := range firstCode {
		entries[i] = []byte{byte(i)}
	}

	return &decodeTable{
		dictionary: newDictionary(),
		entries:    entries,
	}
}

func (t *decodeTable) lookup(code uint16) ([]byte, bool) {
	if int(code) >= len(t.entries) {
		return nil, false
	}

	return t.entries[code], true
}

// add registers seq at nextCode if the dictionary admits it.
func (t *decodeTable) add(seq []byte) bool {
	if !t.admit() {
		return false
	}

	t.entries = append(t.entries, seq)
	return true
}
