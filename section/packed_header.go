package section

import (
	"github.com/bitpack-io/bitpack/errs"
	"github.com/bitpack-io/bitpack/format"
)

// PackedHeader is the fixed-size header section at the start of every
// packed buffer. Byte offsets refer to the serialized layout.
type PackedHeader struct {
	// ValueCount is the number of logical values stored in the buffer.
	ValueCount uint32 // byte offset 4-7
	// BitWidth is the main field width k in bits.
	BitWidth uint8 // byte offset 8
	// OverflowCount is the number of overflow table entries.
	// Always 0 for the cross and aligned schemes.
	OverflowCount uint32 // byte offset 12-15
	// OverflowOffset is the byte offset of the overflow table from the
	// start of the buffer, in the uncompressed layout. 0 when the buffer
	// has no overflow table.
	OverflowOffset uint32 // byte offset 16-19
	// PayloadSize is the byte length of the uncompressed body, i.e. the
	// main payload plus the overflow table.
	PayloadSize uint32 // byte offset 20-23
	// Checksum is the xxHash64 digest of the uncompressed body.
	Checksum uint64 // byte offset 24-31

	// Flag is a packed field for the magic number, scheme, compression
	// and option bits.
	Flag PackedFlag // byte offset 0-3, bytes 9-11 are reserved
}

// NewPackedHeader creates a PackedHeader for the given scheme and bit
// width. Counts, offsets and the checksum are set when packing finishes.
func NewPackedHeader(scheme format.SchemeType, bitWidth uint8) *PackedHeader {
	return &PackedHeader{
		BitWidth: bitWidth,
		Flag:     NewPackedFlag(scheme),
	}
}

// Parse parses the header from a byte slice.
//
// Only the header bytes are examined; a corrupted magic number is reported
// before any payload byte is touched.
func (h *PackedHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The Options field is always little-endian; it determines the
	// endianness of everything that follows.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Scheme = format.SchemeType(data[2])
	h.Flag.Compression = format.CompressionType(data[3])

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()

	h.ValueCount = engine.Uint32(data[4:8])
	h.BitWidth = data[8]
	h.OverflowCount = engine.Uint32(data[12:16])
	h.OverflowOffset = engine.Uint32(data[16:20])
	h.PayloadSize = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return nil
}

// Bytes serializes the PackedHeader into a 32-byte slice.
func (h *PackedHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = byte(h.Flag.Scheme)
	b[3] = byte(h.Flag.Compression)
	engine.PutUint32(b[4:8], h.ValueCount)
	b[8] = h.BitWidth
	// bytes 9-11 reserved, left zero
	engine.PutUint32(b[12:16], h.OverflowCount)
	engine.PutUint32(b[16:20], h.OverflowOffset)
	engine.PutUint32(b[20:24], h.PayloadSize)
	engine.PutUint64(b[24:32], h.Checksum)

	return b
}

// ParsePackedHeader parses a PackedHeader from a byte slice.
func ParsePackedHeader(data []byte) (PackedHeader, error) {
	h := PackedHeader{}
	if err := h.Parse(data); err != nil {
		return PackedHeader{}, err
	}

	return h, nil
}
