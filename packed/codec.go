package packed

import (
	"fmt"

	"github.com/bitpack-io/bitpack/compress"
	"github.com/bitpack-io/bitpack/encoding"
	"github.com/bitpack-io/bitpack/errs"
	"github.com/bitpack-io/bitpack/format"
	"github.com/bitpack-io/bitpack/internal/hash"
	"github.com/bitpack-io/bitpack/internal/options"
	"github.com/bitpack-io/bitpack/section"
)

const (
	// WordBits is the alignment word width used by the aligned scheme.
	// A field never crosses a multiple-of-WordBits bit boundary.
	WordBits = 32
	// WordBytes is WordBits expressed in bytes.
	WordBytes = WordBits / 8

	// MinBitWidth is the smallest supported main field width.
	MinBitWidth = 1
	// MaxBitWidth is the largest main field width for the cross and
	// overflow schemes. 63 keeps every token strictly below 2^64 so the
	// sentinel and range arithmetic stay in uint64.
	MaxBitWidth = 63
	// MaxAlignedBitWidth is the largest main field width for the aligned
	// scheme; wider fields could not fit a single value per word.
	MaxAlignedBitWidth = WordBits
)

// Codec is the uniform contract implemented by the three packing schemes.
//
// Implementations are stateless apart from their construction-time
// configuration and are safe for concurrent use.
type Codec interface {
	// Compress packs the values into a new self-describing buffer.
	//
	// The returned buffer is freshly allocated, owned by the caller and
	// immutable from the library's point of view.
	Compress(values []int64) ([]byte, error)

	// Decompress decodes all values from the buffer in original order
	// into a freshly allocated slice.
	Decompress(buf []byte) ([]int64, error)

	// Get returns the value at the given index without decoding the
	// whole sequence.
	Get(buf []byte, index int) (int64, error)
}

// codecConfig is the construction-time configuration shared by the three
// scheme codecs.
type codecConfig struct {
	bitWidth    int
	zigzag      bool
	bigEndian   bool
	compression format.CompressionType
}

// Option configures a codec created by New.
type Option = options.Option[*codecConfig]

// WithZigZag enables the zigzag sign transform, allowing negative values
// to be packed into small bit widths.
func WithZigZag() Option {
	return options.NoError(func(cfg *codecConfig) {
		cfg.zigzag = true
	})
}

// WithCompression selects the compression applied to the buffer body after
// packing. The default is format.CompressionNone, which keeps random
// access O(1).
func WithCompression(typ format.CompressionType) Option {
	return options.New(func(cfg *codecConfig) error {
		if _, err := compress.GetCodec(typ); err != nil {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, typ)
		}
		cfg.compression = typ

		return nil
	})
}

// WithLittleEndian selects little-endian header and overflow table fields.
// This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(cfg *codecConfig) {
		cfg.bigEndian = false
	})
}

// WithBigEndian selects big-endian header and overflow table fields.
func WithBigEndian() Option {
	return options.NoError(func(cfg *codecConfig) {
		cfg.bigEndian = true
	})
}

// New creates a codec for the given scheme and main field bit width.
//
// Supported bit widths are [1, 63] for the cross and overflow schemes and
// [1, 32] for the aligned scheme. Returns errs.ErrInvalidScheme or
// errs.ErrInvalidBitWidth on bad parameters.
func New(scheme format.SchemeType, bitWidth int, opts ...Option) (Codec, error) {
	cfg := codecConfig{compression: format.CompressionNone}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	cfg.bitWidth = bitWidth

	switch scheme {
	case format.SchemeCross:
		if bitWidth < MinBitWidth || bitWidth > MaxBitWidth {
			return nil, fmt.Errorf("%w: cross scheme supports %d..%d bits, got %d",
				errs.ErrInvalidBitWidth, MinBitWidth, MaxBitWidth, bitWidth)
		}

		return &crossCodec{codecBase{cfg: cfg, scheme: scheme}}, nil
	case format.SchemeAligned:
		if bitWidth < MinBitWidth || bitWidth > MaxAlignedBitWidth {
			return nil, fmt.Errorf("%w: aligned scheme supports %d..%d bits, got %d",
				errs.ErrInvalidBitWidth, MinBitWidth, MaxAlignedBitWidth, bitWidth)
		}

		return &alignedCodec{codecBase{cfg: cfg, scheme: scheme}}, nil
	case format.SchemeOverflow:
		if bitWidth < MinBitWidth || bitWidth > MaxBitWidth {
			return nil, fmt.Errorf("%w: overflow scheme supports %d..%d bits, got %d",
				errs.ErrInvalidBitWidth, MinBitWidth, MaxBitWidth, bitWidth)
		}

		return &overflowCodec{codecBase{cfg: cfg, scheme: scheme}}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidScheme, scheme)
	}
}

// codecBase carries the shared configuration and the header-driven decode
// paths common to all schemes.
type codecBase struct {
	cfg    codecConfig
	scheme format.SchemeType
}

// newHeader creates a header pre-populated from the codec configuration.
func (c *codecBase) newHeader() *section.PackedHeader {
	h := section.NewPackedHeader(c.scheme, uint8(c.cfg.bitWidth)) //nolint:gosec
	if c.cfg.zigzag {
		h.Flag.WithZigZag()
	}
	if c.cfg.bigEndian {
		h.Flag.WithBigEndian()
	}
	h.Flag.Compression = c.cfg.compression

	return h
}

// transform applies the configured sign transform before packing.
func (c *codecBase) transform(v int64) uint64 {
	if c.cfg.zigzag {
		return encoding.ZigZagEncode(v)
	}

	return uint64(v) //nolint:gosec
}

// Decompress decodes all values from the buffer. Decoding is driven by the
// buffer header, so any valid buffer is accepted regardless of the codec's
// own configuration.
func (c *codecBase) Decompress(buf []byte) ([]int64, error) {
	return Decompress(buf)
}

// Get returns the value at the given index from the buffer.
func (c *codecBase) Get(buf []byte, index int) (int64, error) {
	return Get(buf, index)
}

// restoreToken reverses the sign transform recorded in the buffer flag.
func restoreToken(token uint64, zigzag bool) int64 {
	if zigzag {
		return encoding.ZigZagDecode(token)
	}

	return int64(token) //nolint:gosec
}

// maxToken returns the largest token representable in width bits.
func maxToken(width int) uint64 {
	return 1<<width - 1
}

// crossPayloadSize returns the main payload size in bytes for n values of
// width bits packed contiguously.
func crossPayloadSize(n, width int) int {
	return (n*width + 7) / 8
}

// alignedPayloadSize returns the payload size in bytes for n values of
// width bits packed into 32-bit words without spanning.
func alignedPayloadSize(n, width int) int {
	perWord := WordBits / width
	words := (n + perWord - 1) / perWord

	return words * WordBytes
}

// sealBuffer finalizes the header against the body, applies the configured
// body compression and assembles the final buffer.
func sealBuffer(h *section.PackedHeader, body []byte) ([]byte, error) {
	if uint64(len(body)) > section.MaxValueCount { //nolint:gosec
		return nil, fmt.Errorf("%w: body of %d bytes exceeds format limits", errs.ErrTooManyValues, len(body))
	}

	h.PayloadSize = uint32(len(body)) //nolint:gosec
	h.Checksum = hash.Checksum(body)

	stored := body
	if h.Flag.Compression != format.CompressionNone {
		codec, err := compress.GetCodec(h.Flag.Compression)
		if err != nil {
			return nil, err
		}

		stored, err = codec.Compress(body)
		if err != nil {
			return nil, fmt.Errorf("compress body: %w", err)
		}
	}

	buf := make([]byte, 0, section.HeaderSize+len(stored))
	buf = append(buf, h.Bytes()...)
	buf = append(buf, stored...)

	return buf, nil
}

// openBuffer parses and validates the header, inflates the body if it is
// compressed, and slices the body to the header's payload accounting.
//
// The checksum covers the whole body and verifying it costs O(body), so it
// is checked on the Decompress path only; Get stays proportional to a
// single field.
func openBuffer(buf []byte, verifyChecksum bool) (section.PackedHeader, []byte, error) {
	h, err := section.ParsePackedHeader(buf)
	if err != nil {
		return section.PackedHeader{}, nil, err
	}

	if err := validateLayout(&h); err != nil {
		return section.PackedHeader{}, nil, err
	}

	body := buf[section.HeaderSize:]
	if h.Flag.Compression != format.CompressionNone {
		codec, err := compress.GetCodec(h.Flag.Compression)
		if err != nil {
			return section.PackedHeader{}, nil, errs.ErrInvalidHeaderFlags
		}

		body, err = codec.Decompress(body)
		if err != nil {
			return section.PackedHeader{}, nil, fmt.Errorf("decompress body: %w", err)
		}
	}

	if len(body) < int(h.PayloadSize) {
		return section.PackedHeader{}, nil, errs.ErrInvalidPayloadSize
	}
	body = body[:h.PayloadSize]

	if verifyChecksum && hash.Checksum(body) != h.Checksum {
		return section.PackedHeader{}, nil, errs.ErrChecksumMismatch
	}

	return h, body, nil
}

// validateLayout cross-checks the header's size accounting against what
// the scheme, count and bit width imply.
func validateLayout(h *section.PackedHeader) error {
	width := int(h.BitWidth)
	n := int(h.ValueCount)

	switch h.Flag.Scheme {
	case format.SchemeCross, format.SchemeOverflow:
		if width < MinBitWidth || width > MaxBitWidth {
			return errs.ErrInvalidHeaderFlags
		}
	case format.SchemeAligned:
		if width < MinBitWidth || width > MaxAlignedBitWidth {
			return errs.ErrInvalidHeaderFlags
		}
	}

	switch h.Flag.Scheme {
	case format.SchemeCross:
		if h.OverflowCount != 0 || h.OverflowOffset != 0 {
			return errs.ErrInvalidHeaderFlags
		}
		if int(h.PayloadSize) != crossPayloadSize(n, width) {
			return errs.ErrInvalidPayloadSize
		}
	case format.SchemeAligned:
		if h.OverflowCount != 0 || h.OverflowOffset != 0 {
			return errs.ErrInvalidHeaderFlags
		}
		if int(h.PayloadSize) != alignedPayloadSize(n, width) {
			return errs.ErrInvalidPayloadSize
		}
	case format.SchemeOverflow:
		mainSize := crossPayloadSize(n, width)
		if int(h.OverflowOffset) != section.HeaderSize+mainSize {
			return errs.ErrInvalidPayloadSize
		}
		if int(h.PayloadSize) != mainSize+int(h.OverflowCount)*section.OverflowEntrySize {
			return errs.ErrInvalidPayloadSize
		}
	}

	return nil
}

// Decompress decodes every value from a packed buffer in original order.
//
// The buffer header drives decoding; the body checksum is verified before
// any value is produced.
func Decompress(buf []byte) ([]int64, error) {
	h, body, err := openBuffer(buf, true)
	if err != nil {
		return nil, err
	}

	switch h.Flag.Scheme {
	case format.SchemeCross:
		return decompressCross(&h, body), nil
	case format.SchemeAligned:
		return decompressAligned(&h, body), nil
	case format.SchemeOverflow:
		return decompressOverflow(&h, body)
	default:
		// Unreachable: the flag was validated during parsing.
		return nil, errs.ErrInvalidHeaderFlags
	}
}

// Get returns the value at the given index from a packed buffer without
// decoding the whole sequence.
//
// For uncompressed buffers this reads only the header and the bytes the
// field spans: O(1) for the cross and aligned schemes, O(log overflow
// count) for overflow values. Compressed buffers require inflating the
// body first.
func Get(buf []byte, index int) (int64, error) {
	h, body, err := openBuffer(buf, false)
	if err != nil {
		return 0, err
	}

	if index < 0 || uint64(index) >= uint64(h.ValueCount) { //nolint:gosec
		return 0, fmt.Errorf("%w: index %d, count %d", errs.ErrIndexOutOfRange, index, h.ValueCount)
	}

	switch h.Flag.Scheme {
	case format.SchemeCross:
		return getCross(&h, body, index), nil
	case format.SchemeAligned:
		return getAligned(&h, body, index), nil
	case format.SchemeOverflow:
		return getOverflow(&h, body, index)
	default:
		// Unreachable: the flag was validated during parsing.
		return 0, errs.ErrInvalidHeaderFlags
	}
}
