// Package packed implements the three fixed-width packing schemes behind a
// uniform Codec contract: cross-word packing, word-aligned packing, and
// overflow packing with a side table for outliers.
//
// A codec is an immutable configuration (scheme, bit width, zigzag flag,
// compression, endianness) created by New. Compress produces a
// self-describing buffer: a 32-byte header followed by the packed body.
// Buffers are immutable once produced; Decompress and Get are pure readers
// and are safe to call concurrently against the same buffer.
//
// Decoding is driven entirely by the buffer header, so the package-level
// Decompress and Get work on any valid buffer regardless of which codec
// produced it; the Codec methods delegate to them.
package packed
