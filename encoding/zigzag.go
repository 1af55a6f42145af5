package encoding

// ZigZagEncode maps a signed integer to an unsigned one so small-magnitude
// values of either sign pack into few bits: 0, -1, 1, -2, ... become
// 0, 1, 2, 3, ...
//
// The branchless form (v << 1) ^ (v >> 63) relies on arithmetic right shift
// to smear the sign bit.
func ZigZagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63)) //nolint:gosec
}

// ZigZagDecode reverses ZigZagEncode using branchless bit operations.
func ZigZagDecode(u uint64) int64 {
	return int64((u >> 1) ^ -(u & 1)) //nolint:gosec
}
