package section

import (
	"github.com/bitpack-io/bitpack/endian"
	"github.com/bitpack-io/bitpack/errs"
	"github.com/bitpack-io/bitpack/format"
)

// PackedFlag represents the packed flag fields in the buffer header.
type PackedFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the zigzag flag, 0 means values were packed as-is, 1 means
	// the zigzag sign transform was applied before packing.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 2-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the buffer format:
	//   - 0xEC10 (0b1110_1100_0001_0000): packed buffer format v1
	Options uint16

	// Scheme is the packing scheme that produced the buffer.
	Scheme format.SchemeType

	// Compression is the compression applied to the buffer body.
	Compression format.CompressionType
}

var validCompressions = map[format.CompressionType]struct{}{
	format.CompressionNone: {},
	format.CompressionZstd: {},
	format.CompressionS2:   {},
	format.CompressionLZ4:  {},
}

// NewPackedFlag creates a PackedFlag for the given scheme with default
// settings: little-endian, no zigzag, no compression.
func NewPackedFlag(scheme format.SchemeType) PackedFlag {
	flag := PackedFlag{
		Options:     MagicPackedV1Opt,
		Scheme:      scheme,
		Compression: format.CompressionNone,
	}
	flag.WithLittleEndian()

	return flag
}

// HasZigZag returns whether the zigzag sign transform was applied.
func (f PackedFlag) HasZigZag() bool {
	return (f.Options & ZigZagMask) != 0
}

// WithZigZag marks the buffer as zigzag-transformed.
func (f *PackedFlag) WithZigZag() {
	f.Options |= ZigZagMask
}

// WithoutZigZag clears the zigzag flag.
func (f *PackedFlag) WithoutZigZag() {
	f.Options &^= ZigZagMask
}

// IsLittleEndian returns whether the buffer fields are little-endian.
func (f PackedFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the buffer fields are big-endian.
func (f PackedFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *PackedFlag) WithLittleEndian() {
	f.Options &^= uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *PackedFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f PackedFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f PackedFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicPackedV1Opt
}

// IsValidCompression checks if the compression type is valid.
func (f PackedFlag) IsValidCompression() bool {
	_, ok := validCompressions[f.Compression]
	return ok
}

// Validate checks if the flag fields contain valid values.
func (f PackedFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if (f.Options & ReservedMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.Scheme.IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.IsValidCompression() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f PackedFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
