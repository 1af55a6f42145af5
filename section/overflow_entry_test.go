package section

import (
	"testing"

	"github.com/bitpack-io/bitpack/endian"
	"github.com/stretchr/testify/require"
)

func TestOverflowEntry_RoundTrip(t *testing.T) {
	engines := map[string]endian.EndianEngine{
		"little endian": endian.GetLittleEndianEngine(),
		"big endian":    endian.GetBigEndianEngine(),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			entry := OverflowEntry{Index: 1234, Value: 0xCAFEBABE12345678}

			data := entry.Bytes(engine)
			require.Len(t, data, OverflowEntrySize)

			parsed := ParseOverflowEntry(data, engine)
			require.Equal(t, entry, parsed)
		})
	}
}

func TestOverflowEntry_TableAccessors(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	entries := []OverflowEntry{
		{Index: 2, Value: 1024},
		{Index: 17, Value: 1 << 40},
		{Index: 500, Value: 0xFFFFFFFFFFFFFFFF},
	}

	table := make([]byte, 0, len(entries)*OverflowEntrySize)
	for _, e := range entries {
		table = append(table, e.Bytes(engine)...)
	}

	for i, e := range entries {
		require.Equal(t, e.Index, OverflowEntryIndex(table, i, engine))
		require.Equal(t, e.Value, OverflowEntryValue(table, i, engine))
	}
}
