package packed

import (
	"testing"

	"github.com/bitpack-io/bitpack/errs"
	"github.com/bitpack-io/bitpack/format"
	"github.com/bitpack-io/bitpack/section"
	"github.com/stretchr/testify/require"
)

func TestAligned_RoundTrip(t *testing.T) {
	codec, err := New(format.SchemeAligned, 10)
	require.NoError(t, err)

	values := []int64{0, 1, 511, 1023, 42}

	buf, err := codec.Compress(values)
	require.NoError(t, err)

	decoded, err := codec.Decompress(buf)
	require.NoError(t, err)
	require.Equal(t, values, decoded)

	for i, want := range values {
		got, err := codec.Get(buf, i)
		require.NoError(t, err)
		require.Equal(t, want, got, "index %d", i)
	}
}

func TestAligned_PayloadSizeLaw(t *testing.T) {
	// k=10, W=32 gives perWord=3: 5 values need 2 words of 4 bytes.
	codec, err := New(format.SchemeAligned, 10)
	require.NoError(t, err)

	buf, err := codec.Compress(make([]int64, 5))
	require.NoError(t, err)
	require.Len(t, buf, section.HeaderSize+8)

	tests := []struct {
		n, width, wantBytes int
	}{
		{0, 10, 0},
		{3, 10, 4},  // exactly one word
		{4, 10, 8},  // spills to second word
		{1, 32, 4},  // one value per word
		{5, 32, 20}, // five full words
		{32, 1, 4},  // 32 single-bit slots per word
		{33, 1, 8},
		{7, 12, 16}, // perWord=2, 4 words
	}

	for _, tt := range tests {
		codec, err := New(format.SchemeAligned, tt.width)
		require.NoError(t, err)

		buf, err := codec.Compress(make([]int64, tt.n))
		require.NoError(t, err)
		require.Len(t, buf, section.HeaderSize+tt.wantBytes, "n=%d k=%d", tt.n, tt.width)
	}
}

func TestAligned_AlignmentLaw(t *testing.T) {
	// No field's bit range may cross a multiple-of-32 boundary.
	for _, width := range []int{1, 3, 5, 7, 10, 12, 16, 20, 31, 32} {
		perWord := WordBits / width
		for i := 0; i < 200; i++ {
			word := i / perWord
			start := word*WordBits + (i%perWord)*width
			end := start + width
			require.LessOrEqual(t, end, (word+1)*WordBits,
				"k=%d value %d crosses word boundary", width, i)
		}
	}
}

func TestAligned_PaddingBitsAreZero(t *testing.T) {
	// k=10, perWord=3: bits 30-31 of every word are padding.
	codec, err := New(format.SchemeAligned, 10)
	require.NoError(t, err)

	values := []int64{1023, 1023, 1023, 1023, 1023, 1023}
	buf, err := codec.Compress(values)
	require.NoError(t, err)

	payload := buf[section.HeaderSize:]
	for w := 0; w < len(payload)/4; w++ {
		word := uint32(payload[w*4]) | uint32(payload[w*4+1])<<8 |
			uint32(payload[w*4+2])<<16 | uint32(payload[w*4+3])<<24
		require.Zero(t, word>>30, "padding bits set in word %d", w)
	}
}

func TestAligned_RejectsOutOfRange(t *testing.T) {
	codec, err := New(format.SchemeAligned, 10)
	require.NoError(t, err)

	_, err = codec.Compress([]int64{1024})
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)

	_, err = codec.Compress([]int64{-5})
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)
}

func TestAligned_ZigZagRoundTrip(t *testing.T) {
	codec, err := New(format.SchemeAligned, 8, WithZigZag())
	require.NoError(t, err)

	values := []int64{-1, 0, 1, -128, 127}

	buf, err := codec.Compress(values)
	require.NoError(t, err)

	decoded, err := codec.Decompress(buf)
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestAligned_FullWordWidth(t *testing.T) {
	codec, err := New(format.SchemeAligned, 32)
	require.NoError(t, err)

	values := []int64{0, 1, 1<<32 - 1}
	buf, err := codec.Compress(values)
	require.NoError(t, err)

	decoded, err := codec.Decompress(buf)
	require.NoError(t, err)
	require.Equal(t, values, decoded)

	v, err := codec.Get(buf, 2)
	require.NoError(t, err)
	require.Equal(t, int64(1<<32-1), v)
}
