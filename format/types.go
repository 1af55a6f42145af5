package format

import "fmt"

type (
	SchemeType      uint8
	CompressionType uint8
)

const (
	// SchemeCross packs k-bit fields back to back; a field may straddle
	// machine-word boundaries.
	SchemeCross SchemeType = 0
	// SchemeAligned packs k-bit fields into fixed 32-bit words; a field
	// never straddles a word boundary.
	SchemeAligned SchemeType = 1
	// SchemeOverflow packs k-bit fields like SchemeCross but reserves the
	// all-ones pattern as a marker for values stored in a side table.
	SchemeOverflow SchemeType = 2

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (s SchemeType) String() string {
	switch s {
	case SchemeCross:
		return "Cross"
	case SchemeAligned:
		return "Aligned"
	case SchemeOverflow:
		return "Overflow"
	default:
		return "Unknown"
	}
}

// IsValid reports whether s is one of the three defined packing schemes.
func (s SchemeType) IsValid() bool {
	return s <= SchemeOverflow
}

// ParseScheme resolves a scheme name ("cross", "aligned" or "overflow")
// to its SchemeType.
func ParseScheme(name string) (SchemeType, error) {
	switch name {
	case "cross":
		return SchemeCross, nil
	case "aligned":
		return SchemeAligned, nil
	case "overflow":
		return SchemeOverflow, nil
	default:
		return 0, fmt.Errorf("unknown scheme name: %q", name)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
