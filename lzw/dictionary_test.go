package lzw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDictionary(t *testing.T) {
	t.Run("GrowthIsMonotonic", func(t *testing.T) {
		d := newDictionary()
		require.Equal(t, InitialWidth, d.width)
		require.Equal(t, firstCode, d.nextCode)
		require.Equal(t, StateGrowing, d.state())

		prevWidth, prevNext := d.width, d.nextCode
		admitted := 0
		for range 2 * MaxEntries {
			if d.admit() {
				admitted++
			}

			require.GreaterOrEqual(t, d.width, prevWidth)
			require.GreaterOrEqual(t, d.nextCode, prevNext)
			require.LessOrEqual(t, d.width, MaxWidth)
			require.LessOrEqual(t, d.nextCode, MaxEntries)
			prevWidth, prevNext = d.width, d.nextCode
		}

		require.Equal(t, MaxEntries-firstCode, admitted)
		require.Equal(t, StateFrozen, d.state())
	})

	t.Run("WidthThresholds", func(t *testing.T) {
		tests := []struct {
			nextCode int
			width    int
		}{
			{nextCode: 256, width: 9},
			{nextCode: 511, width: 9},
			{nextCode: 512, width: 10},
			{nextCode: 1023, width: 10},
			{nextCode: 1024, width: 11},
			{nextCode: 2048, width: 12},
			{nextCode: 4096, width: 12},
		}

		d := newDictionary()
		for _, tt := range tests {
			for d.nextCode < tt.nextCode {
				require.True(t, d.admit(), "admission refused at nextCode %d", d.nextCode)
			}
			require.Equal(t, tt.width, d.width, "width at nextCode %d", tt.nextCode)
		}
	})

	t.Run("FrozenRefusesEntries", func(t *testing.T) {
		d := newDictionary()
		for d.admit() {
		}

		require.Equal(t, MaxEntries, d.nextCode)
		require.Equal(t, MaxWidth, d.width)
		require.False(t, d.tryAdd())
		d.maybeGrow()
		require.Equal(t, MaxWidth, d.width)
	})
}

func TestTables_StayInLockstep(t *testing.T) {
	enc := newEncodeTable()
	dec := newDecodeTable()

	for i := range 5000 {
		b := byte(i)
		require.Equal(t, enc.add(uint16(b), b), dec.add([]byte{b, b}), "step %d", i)
		require.Equal(t, enc.dictionary, dec.dictionary, "step %d", i)
	}

	require.Len(t, dec.entries, MaxEntries)
}

func TestState_String(t *testing.T) {
	require.Equal(t, "growing", StateGrowing.String())
	require.Equal(t, "frozen", StateFrozen.String())
	require.Equal(t, "unknown", State(9).String())
}
