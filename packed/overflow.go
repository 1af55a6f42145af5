package packed

import (
	"fmt"
	"sort"

	"github.com/bitpack-io/bitpack/encoding"
	"github.com/bitpack-io/bitpack/errs"
	"github.com/bitpack-io/bitpack/internal/pool"
	"github.com/bitpack-io/bitpack/section"
)

// overflowCodec packs values like the cross scheme but reserves the
// all-ones k-bit pattern as a sentinel. Values that reach the sentinel
// after the optional zigzag transform are stored untruncated in a side
// table of (index, value) entries appended after the main payload, so the
// scheme accepts arbitrarily large values at the cost of extra bytes per
// outlier. The main field natively represents [0, 2^k-2] only.
type overflowCodec struct {
	codecBase
}

var _ Codec = (*overflowCodec)(nil)

// Compress packs the values in a single forward pass. Overflow entries are
// appended in encounter order, which makes their indices unique and
// strictly increasing - the invariant random access relies on for binary
// search.
func (c *overflowCodec) Compress(values []int64) ([]byte, error) {
	if uint64(len(values)) > section.MaxValueCount {
		return nil, fmt.Errorf("%w: %d values", errs.ErrTooManyValues, len(values))
	}

	width := c.cfg.bitWidth
	sentinel := maxToken(width)

	h := c.newHeader()
	h.ValueCount = uint32(len(values)) //nolint:gosec
	engine := h.Flag.GetEndianEngine()

	mainSize := crossPayloadSize(len(values), width)
	tableBuf := pool.GetPackedBuffer()
	defer pool.PutPackedBuffer(tableBuf)

	main := make([]byte, mainSize)
	w := encoding.NewBitWriter(main)

	var overflowCount uint32
	for i, v := range values {
		token := c.transform(v)
		if token < sentinel {
			w.Write(token, width)
			continue
		}

		w.Write(sentinel, width)
		entry := section.OverflowEntry{
			Index: uint32(i), //nolint:gosec
			Value: token,
		}
		_, _ = tableBuf.Write(entry.Bytes(engine))
		overflowCount++
	}

	h.OverflowCount = overflowCount
	h.OverflowOffset = uint32(section.HeaderSize + mainSize) //nolint:gosec

	body := make([]byte, 0, mainSize+tableBuf.Len())
	body = append(body, main...)
	body = append(body, tableBuf.Bytes()...)

	return sealBuffer(h, body)
}

func decompressOverflow(h *section.PackedHeader, body []byte) ([]int64, error) {
	width := int(h.BitWidth)
	sentinel := maxToken(width)
	zigzag := h.Flag.HasZigZag()
	engine := h.Flag.GetEndianEngine()

	mainSize := crossPayloadSize(int(h.ValueCount), width)
	table := body[mainSize:]

	out := make([]int64, 0, h.ValueCount)
	r := encoding.NewBitReader(body)

	// Main fields and overflow entries are both index-ascending, so the
	// table is consumed in order without searching.
	next := 0
	for i := 0; i < int(h.ValueCount); i++ {
		token := r.Next(width)
		if token != sentinel {
			out = append(out, restoreToken(token, zigzag))
			continue
		}

		if next >= int(h.OverflowCount) {
			return nil, fmt.Errorf("%w: missing entry for index %d", errs.ErrInvalidOverflowTable, i)
		}

		entry := section.ParseOverflowEntry(table[next*section.OverflowEntrySize:], engine)
		if int(entry.Index) != i {
			return nil, fmt.Errorf("%w: entry %d has index %d, want %d",
				errs.ErrInvalidOverflowTable, next, entry.Index, i)
		}

		out = append(out, restoreToken(entry.Value, zigzag))
		next++
	}

	if next != int(h.OverflowCount) {
		return nil, fmt.Errorf("%w: %d unclaimed entries", errs.ErrInvalidOverflowTable, int(h.OverflowCount)-next)
	}

	return out, nil
}

func getOverflow(h *section.PackedHeader, body []byte, index int) (int64, error) {
	width := int(h.BitWidth)
	sentinel := maxToken(width)
	zigzag := h.Flag.HasZigZag()

	token := encoding.GetBits(body, index*width, width)
	if token != sentinel {
		return restoreToken(token, zigzag), nil
	}

	engine := h.Flag.GetEndianEngine()
	mainSize := crossPayloadSize(int(h.ValueCount), width)
	table := body[mainSize:]

	count := int(h.OverflowCount)
	pos := sort.Search(count, func(i int) bool {
		return section.OverflowEntryIndex(table, i, engine) >= uint32(index) //nolint:gosec
	})
	if pos >= count || section.OverflowEntryIndex(table, pos, engine) != uint32(index) { //nolint:gosec
		return 0, fmt.Errorf("%w: missing entry for index %d", errs.ErrInvalidOverflowTable, index)
	}

	return restoreToken(section.OverflowEntryValue(table, pos, engine), zigzag), nil
}
