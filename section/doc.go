// Package section defines the fixed binary sections of a packed buffer:
// the 32-byte header with its packed flag field, and the overflow table
// entries used by the overflow scheme.
//
// Every buffer starts with the header, followed immediately by the main
// payload. Overflow buffers additionally carry a table of (index, value)
// pairs at the byte offset recorded in the header. All multi-byte fields
// use the endianness declared in the header flag; the flag's Options field
// itself is always little-endian so it can be read before the byte order
// is known.
package section
