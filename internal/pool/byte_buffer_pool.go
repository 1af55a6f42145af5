package pool

import "sync"

const (
	// PackedBufferDefaultSize is the initial capacity of buffers handed
	// out by the default pool. Typical packed payloads are well under
	// this size, so most Compress calls allocate nothing.
	PackedBufferDefaultSize = 1024 * 16 // 16KiB

	// PackedBufferMaxThreshold is the largest buffer capacity the pool
	// retains. Larger buffers are dropped to avoid memory bloat.
	PackedBufferMaxThreshold = 1024 * 512 // 512KiB
)

// ByteBuffer is a growable byte slice used as compression scratch space.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// ExtendOrGrow extends the buffer length by n zero bytes, growing the
// capacity if necessary, and returns the extended region.
func (bb *ByteBuffer) ExtendOrGrow(n int) []byte {
	start := len(bb.B)
	if cap(bb.B)-start < n {
		bb.Grow(n)
	}
	bb.B = bb.B[:start+n]

	region := bb.B[start:]
	for i := range region {
		region[i] = 0
	}

	return region
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes
// without reallocating. If the buffer already has sufficient capacity,
// Grow does nothing.
//
// Small buffers grow by PackedBufferDefaultSize to minimize reallocations;
// larger buffers grow by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := PackedBufferDefaultSize
	if cap(bb.B) > 4*PackedBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally and discards buffers whose capacity exceeds
// the configured threshold so a single oversized payload does not pin
// memory for the lifetime of the process.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the
// specified default capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var packedDefaultPool = NewByteBufferPool(PackedBufferDefaultSize, PackedBufferMaxThreshold)

// GetPackedBuffer retrieves a ByteBuffer from the default packed-buffer pool.
func GetPackedBuffer() *ByteBuffer {
	return packedDefaultPool.Get()
}

// PutPackedBuffer returns a ByteBuffer to the default packed-buffer pool.
func PutPackedBuffer(bb *ByteBuffer) {
	packedDefaultPool.Put(bb)
}
