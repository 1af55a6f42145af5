// Package bitpack compresses sequences of integers into compact binary
// buffers using fixed-width bit-packing, and decodes either the whole
// sequence or a single element by index without full decompression.
//
// # Packing schemes
//
//   - Cross: k-bit fields packed back to back; a field may straddle word
//     boundaries. Densest layout, O(1) random access.
//   - Aligned: k-bit fields that never cross a 32-bit word boundary,
//     trading padding bits for word-local addressing.
//   - Overflow: cross layout with a reserved all-ones sentinel; values too
//     large for k bits live untruncated in a sorted side table, so any
//     int64 sequence packs regardless of k.
//
// Negative values are supported through the optional zigzag transform.
// Buffers are self-describing (32-byte header with magic, scheme, count,
// bit width, flags and an xxHash64 body checksum) and immutable once
// produced, making decode and random access safe for concurrent use.
//
// # Basic Usage
//
//	codec, err := bitpack.New("cross", 12)
//	if err != nil {
//	    return err
//	}
//
//	buf, err := codec.Compress([]int64{1, 2, 3, 1024, 4, 5, 2048})
//	if err != nil {
//	    return err
//	}
//
//	values, _ := codec.Decompress(buf) // all 7 values, in order
//	v, _ := codec.Get(buf, 3)          // 1024, without decoding the rest
//
// Signed data packs with the zigzag option:
//
//	codec, _ := bitpack.New("cross", 8, packed.WithZigZag())
//
// Outlier-heavy data suits the overflow scheme:
//
//	codec, _ := bitpack.New("overflow", 4)
//	buf, _ = codec.Compress([]int64{1, 2, 1024, 3}) // 1024 goes to the side table
//
// This package provides convenient top-level wrappers around the packed
// package; use the packed package directly for scheme-typed construction
// and options.
package bitpack

import (
	"fmt"

	"github.com/bitpack-io/bitpack/errs"
	"github.com/bitpack-io/bitpack/format"
	"github.com/bitpack-io/bitpack/packed"
)

// New creates a codec for the named packing scheme ("cross", "aligned" or
// "overflow") with the given main field bit width.
//
// Returns errs.ErrInvalidScheme for an unrecognized name and
// errs.ErrInvalidBitWidth when the width is outside the scheme's supported
// range ([1, 63] for cross and overflow, [1, 32] for aligned).
func New(scheme string, bitWidth int, opts ...packed.Option) (packed.Codec, error) {
	schemeType, err := format.ParseScheme(scheme)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidScheme, scheme)
	}

	return packed.New(schemeType, bitWidth, opts...)
}

// Decompress decodes every value from a packed buffer in original order.
//
// The buffer is self-describing, so no codec instance is needed; the body
// checksum is verified before any value is produced.
func Decompress(buf []byte) ([]int64, error) {
	return packed.Decompress(buf)
}

// Get returns the value at the given index from a packed buffer without
// decoding the whole sequence.
func Get(buf []byte, index int) (int64, error) {
	return packed.Get(buf, index)
}
