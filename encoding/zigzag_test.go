package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZigZagEncode_KnownValues(t *testing.T) {
	tests := []struct {
		signed   int64
		unsigned uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{-128, 255},
		{127, 254},
		{math.MaxInt64, math.MaxUint64 - 1},
		{math.MinInt64, math.MaxUint64},
	}

	for _, tt := range tests {
		require.Equal(t, tt.unsigned, ZigZagEncode(tt.signed), "encode %d", tt.signed)
		require.Equal(t, tt.signed, ZigZagDecode(tt.unsigned), "decode %d", tt.unsigned)
	}
}

func TestZigZag_Bijective(t *testing.T) {
	values := []int64{0, 1, -1, 42, -42, 1 << 20, -(1 << 20), math.MaxInt64, math.MinInt64}
	for _, v := range values {
		require.Equal(t, v, ZigZagDecode(ZigZagEncode(v)))
	}
}

func TestZigZag_SmallMagnitudesStaySmall(t *testing.T) {
	// Values in [-2^(k-1), 2^(k-1)-1] must encode into k bits.
	const k = 8
	for v := int64(-128); v <= 127; v++ {
		require.Less(t, ZigZagEncode(v), uint64(1)<<k, "value %d", v)
	}
}
