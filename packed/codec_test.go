package packed

import (
	"sync"
	"testing"

	"github.com/bitpack-io/bitpack/errs"
	"github.com/bitpack-io/bitpack/format"
	"github.com/bitpack-io/bitpack/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidatesScheme(t *testing.T) {
	_, err := New(format.SchemeType(9), 8)
	require.ErrorIs(t, err, errs.ErrInvalidScheme)
}

func TestNew_ValidatesBitWidth(t *testing.T) {
	tests := []struct {
		name    string
		scheme  format.SchemeType
		width   int
		wantErr bool
	}{
		{"cross zero", format.SchemeCross, 0, true},
		{"cross negative", format.SchemeCross, -3, true},
		{"cross min", format.SchemeCross, 1, false},
		{"cross max", format.SchemeCross, 63, false},
		{"cross too wide", format.SchemeCross, 64, true},
		{"aligned max", format.SchemeAligned, 32, false},
		{"aligned too wide", format.SchemeAligned, 33, true},
		{"overflow max", format.SchemeOverflow, 63, false},
		{"overflow too wide", format.SchemeOverflow, 64, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.scheme, tt.width)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidBitWidth)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestWithCompression_ValidatesType(t *testing.T) {
	_, err := New(format.SchemeCross, 8, WithCompression(format.CompressionType(0x7F)))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestGet_IndexOutOfRange(t *testing.T) {
	for _, scheme := range []format.SchemeType{format.SchemeCross, format.SchemeAligned, format.SchemeOverflow} {
		codec, err := New(scheme, 8)
		require.NoError(t, err)

		buf, err := codec.Compress([]int64{1, 2, 3})
		require.NoError(t, err)

		_, err = codec.Get(buf, 3) // index == count
		require.ErrorIs(t, err, errs.ErrIndexOutOfRange, "scheme %s", scheme)

		_, err = codec.Get(buf, -1)
		require.ErrorIs(t, err, errs.ErrIndexOutOfRange, "scheme %s", scheme)
	}
}

func TestCorruptedMagic_RejectedBeforePayload(t *testing.T) {
	codec, err := New(format.SchemeCross, 12)
	require.NoError(t, err)

	buf, err := codec.Compress([]int64{1, 2, 3})
	require.NoError(t, err)

	corrupted := append([]byte(nil), buf...)
	corrupted[1] ^= 0xFF // magic lives in the high bits of Options

	_, err = Decompress(corrupted)
	require.ErrorIs(t, err, errs.ErrMalformedHeader)

	_, err = Get(corrupted, 0)
	require.ErrorIs(t, err, errs.ErrMalformedHeader)
}

func TestTruncatedBuffer(t *testing.T) {
	codec, err := New(format.SchemeCross, 12)
	require.NoError(t, err)

	buf, err := codec.Compress([]int64{100, 200, 300, 400})
	require.NoError(t, err)

	_, err = Decompress(buf[:10])
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	_, err = Decompress(buf[:len(buf)-2])
	require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)

	_, err = Get(buf[:len(buf)-2], 0)
	require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
}

func TestChecksumMismatch(t *testing.T) {
	codec, err := New(format.SchemeCross, 12)
	require.NoError(t, err)

	buf, err := codec.Compress([]int64{100, 200, 300, 400})
	require.NoError(t, err)

	corrupted := append([]byte(nil), buf...)
	corrupted[section.HeaderSize] ^= 0xFF

	_, err = Decompress(corrupted)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestDecode_IsSelfDescribing(t *testing.T) {
	// A buffer decodes through the package-level functions and through
	// any codec instance, regardless of that codec's configuration.
	producer, err := New(format.SchemeOverflow, 4, WithZigZag())
	require.NoError(t, err)

	values := []int64{-3, 900, 5, -900}
	buf, err := producer.Compress(values)
	require.NoError(t, err)

	decoded, err := Decompress(buf)
	require.NoError(t, err)
	require.Equal(t, values, decoded)

	other, err := New(format.SchemeCross, 20)
	require.NoError(t, err)

	decoded, err = other.Decompress(buf)
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestCompression_RoundTrip(t *testing.T) {
	values := make([]int64, 4096)
	for i := range values {
		values[i] = int64(i % 7) // repetitive, compresses well
	}

	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, scheme := range []format.SchemeType{format.SchemeCross, format.SchemeAligned, format.SchemeOverflow} {
		for _, compression := range compressions {
			t.Run(scheme.String()+"/"+compression.String(), func(t *testing.T) {
				codec, err := New(scheme, 8, WithCompression(compression))
				require.NoError(t, err)

				buf, err := codec.Compress(values)
				require.NoError(t, err)

				h, err := section.ParsePackedHeader(buf)
				require.NoError(t, err)
				require.Equal(t, compression, h.Flag.Compression)

				decoded, err := codec.Decompress(buf)
				require.NoError(t, err)
				require.Equal(t, values, decoded)

				// Random access works on compressed buffers too; only
				// the O(1) guarantee is relaxed.
				v, err := codec.Get(buf, 4095)
				require.NoError(t, err)
				require.Equal(t, values[4095], v)
			})
		}
	}
}

func TestBigEndianBuffer_RoundTrip(t *testing.T) {
	codec, err := New(format.SchemeOverflow, 4, WithBigEndian())
	require.NoError(t, err)

	values := []int64{1, 5000, 2}
	buf, err := codec.Compress(values)
	require.NoError(t, err)

	h, err := section.ParsePackedHeader(buf)
	require.NoError(t, err)
	require.True(t, h.Flag.IsBigEndian())

	decoded, err := Decompress(buf)
	require.NoError(t, err)
	require.Equal(t, values, decoded)

	v, err := Get(buf, 1)
	require.NoError(t, err)
	require.Equal(t, int64(5000), v)
}

func TestConcurrentReaders(t *testing.T) {
	codec, err := New(format.SchemeOverflow, 8)
	require.NoError(t, err)

	values := make([]int64, 1000)
	for i := range values {
		values[i] = int64(i * 31)
	}

	buf, err := codec.Compress(values)
	require.NoError(t, err)

	// Buffers are immutable after Compress, so concurrent Decompress
	// and Get calls against the same buffer must be race-free.
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := g; i < len(values); i += 8 {
				v, err := codec.Get(buf, i)
				assert.NoError(t, err)
				assert.Equal(t, values[i], v)
			}

			decoded, err := codec.Decompress(buf)
			assert.NoError(t, err)
			assert.Equal(t, values, decoded)
		}(g)
	}
	wg.Wait()
}
