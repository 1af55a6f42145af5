package encoding

// PutBits writes the low width bits of value into buf starting at bit
// position bitPos, advancing across byte boundaries as needed.
//
// Bits are written LSB-first (see the package documentation). PutBits ORs
// into the destination bytes, so the target bit range must be zero; the
// packing schemes guarantee this by writing each field exactly once into a
// zero-filled buffer.
func PutBits(buf []byte, bitPos int, value uint64, width int) {
	if width <= 0 {
		return
	}
	if width < 64 {
		value &= 1<<width - 1
	}

	byteIdx := bitPos >> 3
	bitOff := bitPos & 7

	buf[byteIdx] |= byte(value << bitOff)

	// Remaining bits spill into subsequent bytes, 8 at a time.
	for written := 8 - bitOff; written < width; written += 8 {
		byteIdx++
		buf[byteIdx] |= byte(value >> written)
	}
}

// GetBits returns the width-bit unsigned integer starting at bit position
// bitPos in buf, reading LSB-first across byte boundaries as needed.
//
// It reads only the bytes that the field spans, which keeps random access
// independent of the total payload size.
func GetBits(buf []byte, bitPos int, width int) uint64 {
	if width <= 0 {
		return 0
	}

	byteIdx := bitPos >> 3
	bitOff := bitPos & 7

	cur := uint64(buf[byteIdx] >> bitOff)
	avail := 8 - bitOff

	var value uint64
	got := 0
	for {
		take := width - got
		if take > avail {
			take = avail
		}
		value |= (cur & (1<<take - 1)) << got
		got += take
		if got == width {
			return value
		}

		byteIdx++
		cur = uint64(buf[byteIdx])
		avail = 8
	}
}

// BitWriter writes fixed-width fields sequentially into a pre-sized,
// zero-filled buffer. It is a thin cursor over PutBits used by the packing
// schemes during Compress.
type BitWriter struct {
	buf []byte
	pos int
}

// NewBitWriter creates a BitWriter over buf. The buffer must be zero-filled
// and large enough for every field that will be written.
func NewBitWriter(buf []byte) *BitWriter {
	return &BitWriter{buf: buf}
}

// Write appends the low width bits of value at the current cursor position.
func (w *BitWriter) Write(value uint64, width int) {
	PutBits(w.buf, w.pos, value, width)
	w.pos += width
}

// Pos returns the current cursor position in bits.
func (w *BitWriter) Pos() int {
	return w.pos
}

// BitReader reads fixed-width fields sequentially from a buffer. It is the
// decoding counterpart of BitWriter.
type BitReader struct {
	buf []byte
	pos int
}

// NewBitReader creates a BitReader over buf starting at bit position 0.
func NewBitReader(buf []byte) *BitReader {
	return &BitReader{buf: buf}
}

// Next returns the next width-bit field and advances the cursor.
func (r *BitReader) Next(width int) uint64 {
	v := GetBits(r.buf, r.pos, width)
	r.pos += width

	return v
}

// Seek moves the cursor to an absolute bit position.
func (r *BitReader) Seek(bitPos int) {
	r.pos = bitPos
}

// Pos returns the current cursor position in bits.
func (r *BitReader) Pos() int {
	return r.pos
}
