// Package encoding provides the bit-level primitives shared by the packing
// schemes: a bit cursor for writing and reading fixed-width fields at
// arbitrary bit positions, sequential writer/reader wrappers around it, and
// the zigzag transform for signed values.
//
// # Bit order
//
// Fields are laid out LSB-first: bit position p lives in byte p/8 at bit
// p%8, counting from the least significant bit. This matches packing values
// into little-endian words from the low end, so a field that starts at a
// 32-bit word boundary occupies the low bits of that word. The aligned
// scheme relies on this property for word-local addressing.
//
// # Contract
//
// PutBits and GetBits are total for any width in [0, 64] and any bit
// position inside the allocated buffer. Positions outside the buffer are a
// caller contract violation and panic via the runtime bounds check; the
// packing schemes size their buffers up front and never violate this by
// construction.
package encoding
