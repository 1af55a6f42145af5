package section

import "math"

const (
	// Bit masks for the Options field
	ZigZagMask      = 0x0001 // Mask for zigzag transform bit (bit 0)
	EndiannessMask  = 0x0002 // Mask for endianness bit (bit 1)
	ReservedMask    = 0x000C // Mask for reserved bits (bits 2-3), must be zero
	MagicNumberMask = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicPackedV1Opt is the version 1 magic number for the packed
	// buffer format, stored in bits 4-15 of the Options field.
	MagicPackedV1Opt = 0xEC10
)

// offsets and section sizes in the packed buffer
const (
	HeaderSize        = 32             // fixed header size in bytes
	PayloadOffset     = HeaderSize     // byte offset where the main payload starts
	OverflowEntrySize = 12             // fixed overflow table entry size in bytes
	MaxValueCount     = math.MaxUint32 // maximum number of values in one buffer
)
