package codec

import (
	"fmt"
	"unicode/utf8"

	"github.com/Offroaders123/buffered-clone/errs"
	"github.com/Offroaders123/buffered-clone/length"
	"github.com/Offroaders123/buffered-clone/pool"
	"github.com/Offroaders123/buffered-clone/tag"
)

// emitString implements spec §4.4's speculative length slot for a
// non-empty string payload. The caller guarantees text is non-empty;
// empty strings take the two-byte STRING/TYPED-kind fast path inline in
// the encoder instead of going through this slower, staged path.
//
// staging is the fixed-size chunk buffer text is streamed through before
// landing in buf. Its capacity, not its length, sets the chunk size, so
// callers reuse the same *pool.ByteBuffer across many calls within one
// encode without ever growing it.
func emitString(buf, staging *pool.ByteBuffer, t tag.Tag, text string) {
	l0 := buf.Len()
	buf.MustWrite([]byte{byte(t), 0x01, 0x00}) // tag + assumed width=1 + placeholder length byte

	chunkSize := cap(staging.B)
	if chunkSize == 0 {
		chunkSize = pool.StagingBufferSize
	}
	chunk := staging.B[:chunkSize]

	remaining := []byte(text)
	written := 0
	for len(remaining) > 0 {
		n := copy(chunk, remaining)
		buf.MustWrite(chunk[:n])
		remaining = remaining[n:]
		written += n
	}

	var scratch [1 + length.MaxWidth]byte
	n := length.EncodeTo(scratch[:], uint64(written))

	if n == 2 {
		// Fast path: the assumed one-byte width/length was exactly right.
		copy(buf.B[l0+1:l0+3], scratch[:2])
		return
	}

	// n > 2: the reserved two bytes are too few to hold the real prefix.
	// Insert the shortfall right after the placeholder and then overwrite
	// the now-correctly-sized prefix region in one go.
	extra := n - 2
	buf.Splice(l0+3, make([]byte, extra))
	copy(buf.B[l0+1:l0+1+n], scratch[:n])
}

// readString decodes a length-prefixed UTF-8 payload starting at pos
// (immediately after the tag byte has already been consumed by the
// caller) and returns the text and the position immediately after it.
func readString(data []byte, pos int) (string, int, error) {
	l, next, err := length.Read(data, pos)
	if err != nil {
		return "", pos, err
	}

	end := next + int(l)
	if end < next || end > len(data) {
		return "", pos, fmt.Errorf("%w: offset %d: string payload of %d bytes runs past end of stream", errs.ErrTruncatedStream, next, l)
	}

	raw := data[next:end]
	if !utf8.Valid(raw) {
		return "", pos, fmt.Errorf("%w: offset %d", errs.ErrMalformedString, next)
	}

	return string(raw), end, nil
}
