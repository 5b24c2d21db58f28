// Package length implements the variable-width non-negative integer prefix
// used everywhere spec.md says "length-prefixed": a single width byte W,
// followed by W big-endian bytes of the value, where W is the minimum
// number of bytes needed to hold it (W=0 when the value is 0).
//
// The same codec frames string/array/object/map/set/buffer lengths and the
// absolute stream offset carried by a Recursive back-reference (spec §3,
// §4.1) — it is intentionally the one length representation in the wire
// grammar.
package length

import (
	"fmt"

	"github.com/Offroaders123/buffered-clone/errs"
	"github.com/Offroaders123/buffered-clone/pool"
)

// MaxWidth is the largest width byte this implementation will ever emit or
// accept, giving a representable range of [0, 2^(8*MaxWidth)). spec.md
// requires at least 6 (covering lengths up to ~2^48); a full 8 supports
// the entire non-negative range of a uint64 offset or count.
const MaxWidth = 8

// Width returns the minimum number of big-endian bytes needed to represent l.
func Width(l uint64) int {
	w := 0
	for l > 0 {
		w++
		l >>= 8
	}

	return w
}

// Emit appends a length prefix for l to buf: one width byte, then Width(l)
// big-endian bytes. It returns the total number of bytes appended
// (1 + Width(l)), mirroring spec §4.1's emit(buf, tag, L) contract minus
// the tag byte, which the caller writes itself.
func Emit(buf *pool.ByteBuffer, l uint64) int {
	w := Width(l)
	buf.Grow(1 + w)
	buf.MustWriteByte(byte(w))

	for i := w - 1; i >= 0; i-- {
		buf.MustWriteByte(byte(l >> (8 * i)))
	}

	return 1 + w
}

// EncodeTo writes a length prefix for l into dst starting at offset 0 and
// returns the number of bytes written (1 + Width(l)). dst must have at
// least that much capacity; it is used by the encoder's speculative
// string-length slot (spec §4.4) to size a prefix before deciding whether
// it fits the three reserved bytes.
func EncodeTo(dst []byte, l uint64) int {
	w := Width(l)
	if len(dst) < 1+w {
		panic("length: EncodeTo: dst too small")
	}

	dst[0] = byte(w)
	for i := 0; i < w; i++ {
		dst[1+i] = byte(l >> (8 * (w - 1 - i)))
	}

	return 1 + w
}

// Read parses a length prefix from data starting at pos and returns the
// decoded value and the position immediately after it.
func Read(data []byte, pos int) (uint64, int, error) {
	if pos >= len(data) {
		return 0, pos, fmt.Errorf("%w: offset %d: missing length width byte", errs.ErrMalformedLength, pos)
	}

	w := int(data[pos])
	pos++

	if w > MaxWidth {
		return 0, pos, fmt.Errorf("%w: offset %d: width %d exceeds maximum %d", errs.ErrMalformedLength, pos-1, w, MaxWidth)
	}

	if pos+w > len(data) {
		return 0, pos, fmt.Errorf("%w: offset %d: declared width %d runs past end of stream (have %d bytes)",
			errs.ErrMalformedLength, pos-1, w, len(data)-pos)
	}

	var l uint64
	for i := 0; i < w; i++ {
		l = (l << 8) | uint64(data[pos+i])
	}

	return l, pos + w, nil
}
