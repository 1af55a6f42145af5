// Package compress provides compression and decompression codecs for
// packed buffer bodies.
//
// Compression is an optional at-rest stage applied to the whole body
// (main payload plus overflow table) after bit-packing; the packing
// schemes themselves perform no entropy coding. The compression type is
// recorded in the buffer header, so decoding picks the matching codec
// without any caller configuration.
//
// Supported algorithms:
//   - None: no compression (default; keeps random access O(1))
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// The Zstd codec has two implementations behind build tags: a cgo-backed
// one using gozstd and a pure-Go one using klauspost/compress/zstd.
//
// All codecs are stateless values, safe for concurrent use; internal
// encoder and decoder instances are pooled where the underlying library
// benefits from reuse.
package compress
