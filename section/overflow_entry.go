package section

import "github.com/bitpack-io/bitpack/endian"

// OverflowEntry records one value that did not fit in the main field width.
// It is a fixed size of 12 bytes on disk.
//
// Entries are stored sorted by Index in strictly increasing order, which is
// what the single forward pass during packing naturally produces. Random
// access binary-searches the table on Index.
type OverflowEntry struct {
	// Index is the position of the value in the original sequence.
	//
	// Offset: 0, Size: 4 bytes
	Index uint32

	// Value is the untruncated value after the optional zigzag transform.
	//
	// Offset: 4, Size: 8 bytes
	Value uint64
}

// Bytes returns the overflow entry as a byte slice using the specified
// endian engine.
func (e OverflowEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [OverflowEntrySize]byte // stack allocation, it's faster than heap allocation
	engine.PutUint32(b[0:4], e.Index)
	engine.PutUint64(b[4:12], e.Value)

	return b[:]
}

// ParseOverflowEntry parses a single 12-byte overflow entry.
//
// The data slice must be at least OverflowEntrySize bytes; the codecs
// guarantee this through the header's payload accounting.
func ParseOverflowEntry(data []byte, engine endian.EndianEngine) OverflowEntry {
	return OverflowEntry{
		Index: engine.Uint32(data[0:4]),
		Value: engine.Uint64(data[4:12]),
	}
}

// OverflowEntryIndex reads only the Index field of the entry at entryPos in
// a serialized overflow table. It avoids decoding the value during binary
// search.
func OverflowEntryIndex(table []byte, entryPos int, engine endian.EndianEngine) uint32 {
	off := entryPos * OverflowEntrySize
	return engine.Uint32(table[off : off+4])
}

// OverflowEntryValue reads only the Value field of the entry at entryPos in
// a serialized overflow table.
func OverflowEntryValue(table []byte, entryPos int, engine endian.EndianEngine) uint64 {
	off := entryPos * OverflowEntrySize
	return engine.Uint64(table[off+4 : off+12])
}
