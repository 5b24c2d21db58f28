// Package pool provides a pooled, growable byte buffer used by the encoder
// for its output stream and for the fixed-size UTF-8 staging buffer
// described in spec §4.4.
//
// A sync.Pool-backed buffer amortizes allocation across repeated encode
// calls; each top-level Encode still owns its buffer exclusively for the
// duration of the call, per the concurrency model (spec §5): the staging
// buffer must never be shared across concurrent encodes.
package pool

import (
	"io"
	"sync"
)

// Default and ceiling sizes for the pooled output buffer. A stream of up
// to 16KiB never reallocates past the default size; a buffer grown past
// 128KiB is dropped instead of being returned to the pool.
const (
	OutputBufferDefaultSize  = 1024 * 16  // 16KiB
	OutputBufferMaxThreshold = 1024 * 128 // 128KiB

	// StagingBufferSize is the recommended size of the reusable chunk
	// buffer the UTF-8 emitter streams encoded text through (spec §4.4).
	StagingBufferSize = 65536
)

// ByteBuffer is a growable byte slice wrapper with an amortized growth
// strategy tuned for append-mostly workloads, plus the one non-append
// operation the codec needs: splicing bytes in at an arbitrary offset for
// the string-length back-patch of spec §4.4.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
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

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)
}

// MustWriteByte appends a single byte to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWriteByte(b byte) {
	bb.Grow(1)
	bb.B = append(bb.B, b)
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes
// without reallocating. If the buffer has sufficient capacity, Grow does
// nothing.
//
// The growth strategy:
//   - For small buffers (<4x default), grow by OutputBufferDefaultSize to
//     minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := OutputBufferDefaultSize
	if cap(bb.B) > 4*OutputBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Splice inserts data at offset, shifting any bytes already written at or
// after offset to the right. This is the single non-append operation the
// encoder performs: the string-length back-patch of spec §4.4, used only
// when a string's encoded length does not fit the three reserved bytes.
func (bb *ByteBuffer) Splice(offset int, data []byte) {
	if offset < 0 || offset > len(bb.B) {
		panic("pool: Splice: invalid offset")
	}

	bb.Grow(len(data))
	bb.B = append(bb.B, make([]byte, len(data))...)
	copy(bb.B[offset+len(data):], bb.B[offset:len(bb.B)-len(data)])
	copy(bb.B[offset:offset+len(data)], data)
}

// Write appends the contents of data to the buffer, growing it as needed.
// It implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.MustWrite(data)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w. It implements io.WriterTo.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations across
// repeated Encode calls.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the
// specified default size. Buffers grown past maxThreshold are discarded
// instead of returned to the pool, to avoid retaining oversized buffers.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
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

var (
	outputPool  = NewByteBufferPool(OutputBufferDefaultSize, OutputBufferMaxThreshold)
	stagingPool = NewByteBufferPool(StagingBufferSize, 0)
)

// GetOutputBuffer retrieves a ByteBuffer from the default encoder output pool.
func GetOutputBuffer() *ByteBuffer {
	return outputPool.Get()
}

// PutOutputBuffer returns a ByteBuffer to the default encoder output pool.
func PutOutputBuffer(bb *ByteBuffer) {
	outputPool.Put(bb)
}

// GetStagingBuffer retrieves a fixed-size ByteBuffer from the UTF-8 staging
// pool. The returned buffer must not be shared across concurrent encodes
// (spec §5); each Encode call borrows and returns its own.
func GetStagingBuffer() *ByteBuffer {
	return stagingPool.Get()
}

// PutStagingBuffer returns a ByteBuffer to the UTF-8 staging pool.
func PutStagingBuffer(bb *ByteBuffer) {
	stagingPool.Put(bb)
}
