package packed

import (
	"fmt"

	"github.com/bitpack-io/bitpack/encoding"
	"github.com/bitpack-io/bitpack/errs"
	"github.com/bitpack-io/bitpack/section"
)

// crossCodec packs every value into exactly k contiguous bits. Value i
// occupies payload bits [i*k, (i+1)*k) and may straddle word boundaries,
// so the payload carries no padding at all.
type crossCodec struct {
	codecBase
}

var _ Codec = (*crossCodec)(nil)

// Compress packs the values back to back. Every value must fit in the
// configured bit width after the optional zigzag transform; the cross
// scheme has no escape mechanism for larger values.
func (c *crossCodec) Compress(values []int64) ([]byte, error) {
	if uint64(len(values)) > section.MaxValueCount {
		return nil, fmt.Errorf("%w: %d values", errs.ErrTooManyValues, len(values))
	}

	width := c.cfg.bitWidth
	limit := maxToken(width)

	h := c.newHeader()
	h.ValueCount = uint32(len(values)) //nolint:gosec

	body := make([]byte, crossPayloadSize(len(values), width))
	w := encoding.NewBitWriter(body)

	for i, v := range values {
		token := c.transform(v)
		if token > limit {
			return nil, fmt.Errorf("%w: value %d at index %d does not fit in %d bits",
				errs.ErrValueOutOfRange, v, i, width)
		}
		w.Write(token, width)
	}

	return sealBuffer(h, body)
}

func decompressCross(h *section.PackedHeader, body []byte) []int64 {
	width := int(h.BitWidth)
	zigzag := h.Flag.HasZigZag()

	out := make([]int64, 0, h.ValueCount)
	r := encoding.NewBitReader(body)
	for i := 0; i < int(h.ValueCount); i++ {
		out = append(out, restoreToken(r.Next(width), zigzag))
	}

	return out
}

func getCross(h *section.PackedHeader, body []byte, index int) int64 {
	width := int(h.BitWidth)
	token := encoding.GetBits(body, index*width, width)

	return restoreToken(token, h.Flag.HasZigZag())
}
