package packed

import (
	"fmt"

	"github.com/bitpack-io/bitpack/encoding"
	"github.com/bitpack-io/bitpack/errs"
	"github.com/bitpack-io/bitpack/section"
)

// alignedCodec packs values into k-bit fields that never straddle a 32-bit
// word boundary. Each word holds floor(32/k) values; the leftover bits of
// a word are zero padding and never read. The payload trades those padding
// bits for word-local addressing.
type alignedCodec struct {
	codecBase
}

var _ Codec = (*alignedCodec)(nil)

// Compress packs the values word by word. The range policy matches the
// cross scheme: every value must fit in the configured bit width after the
// optional zigzag transform.
func (c *alignedCodec) Compress(values []int64) ([]byte, error) {
	if uint64(len(values)) > section.MaxValueCount {
		return nil, fmt.Errorf("%w: %d values", errs.ErrTooManyValues, len(values))
	}

	width := c.cfg.bitWidth
	perWord := WordBits / width
	limit := maxToken(width)

	h := c.newHeader()
	h.ValueCount = uint32(len(values)) //nolint:gosec

	body := make([]byte, alignedPayloadSize(len(values), width))

	for i, v := range values {
		token := c.transform(v)
		if token > limit {
			return nil, fmt.Errorf("%w: value %d at index %d does not fit in %d bits",
				errs.ErrValueOutOfRange, v, i, width)
		}

		word := i / perWord
		slot := i % perWord
		encoding.PutBits(body, word*WordBits+slot*width, token, width)
	}

	return sealBuffer(h, body)
}

func decompressAligned(h *section.PackedHeader, body []byte) []int64 {
	width := int(h.BitWidth)
	perWord := WordBits / width
	zigzag := h.Flag.HasZigZag()

	out := make([]int64, 0, h.ValueCount)
	for i := 0; i < int(h.ValueCount); i++ {
		word := i / perWord
		slot := i % perWord
		token := encoding.GetBits(body, word*WordBits+slot*width, width)
		out = append(out, restoreToken(token, zigzag))
	}

	return out
}

func getAligned(h *section.PackedHeader, body []byte, index int) int64 {
	width := int(h.BitWidth)
	perWord := WordBits / width

	word := index / perWord
	slot := index % perWord
	token := encoding.GetBits(body, word*WordBits+slot*width, width)

	return restoreToken(token, h.Flag.HasZigZag())
}
