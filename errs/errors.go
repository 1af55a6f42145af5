// Package errs defines the sentinel errors returned by the bitpack library.
//
// Errors are plain sentinels so callers can match them with errors.Is.
// Header-shape errors additionally wrap ErrMalformedHeader, allowing a
// single errors.Is(err, errs.ErrMalformedHeader) check to catch every
// corrupt-or-foreign-buffer condition.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidScheme is returned by the codec factory for an
	// unrecognized packing scheme.
	ErrInvalidScheme = errors.New("invalid packing scheme")

	// ErrInvalidBitWidth is returned by the codec factory when the bit
	// width is outside the supported range for the chosen scheme.
	ErrInvalidBitWidth = errors.New("invalid bit width")

	// ErrInvalidCompressionType is returned when an unsupported
	// compression type is selected or found in a header.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrValueOutOfRange is returned by Compress when a value does not fit
	// in the configured bit width after the optional zigzag transform.
	// The overflow scheme never returns this error.
	ErrValueOutOfRange = errors.New("value out of range for bit width")

	// ErrTooManyValues is returned by Compress when the input length
	// exceeds the capacity of the header's 32-bit value count.
	ErrTooManyValues = errors.New("too many values for a single buffer")

	// ErrIndexOutOfRange is returned by Get for an index outside [0, N).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrMalformedHeader is the base error for buffers whose header is
	// inconsistent with this library's format.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrInvalidHeaderSize indicates the buffer is too short to contain a
	// complete header.
	ErrInvalidHeaderSize = fmt.Errorf("%w: invalid header size", ErrMalformedHeader)

	// ErrInvalidMagicNumber indicates the header magic does not identify
	// a bitpack buffer.
	ErrInvalidMagicNumber = fmt.Errorf("%w: invalid magic number", ErrMalformedHeader)

	// ErrInvalidHeaderFlags indicates the header carries an unknown
	// scheme, compression type or reserved bits set.
	ErrInvalidHeaderFlags = fmt.Errorf("%w: invalid header flags", ErrMalformedHeader)

	// ErrInvalidPayloadSize indicates the header's payload and overflow
	// accounting disagrees with the buffer contents.
	ErrInvalidPayloadSize = fmt.Errorf("%w: invalid payload size", ErrMalformedHeader)

	// ErrChecksumMismatch indicates the body bytes do not match the
	// checksum recorded in the header.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrInvalidOverflowTable indicates the overflow table does not agree
	// with the sentinels in the main payload.
	ErrInvalidOverflowTable = errors.New("invalid overflow table")
)
