package codec

import (
	"github.com/Offroaders123/buffered-clone/length"
	"github.com/Offroaders123/buffered-clone/pool"
	"github.com/Offroaders123/buffered-clone/tag"
)

// emitASCII is the fast path of spec §2's "ASCII emitter": a tag whose text
// payload is already known in full and already ASCII (NUMBER, BIGINT, DATE
// decimal/ISO-8601 text). Unlike emitString, the total length is known
// before any byte is written, so there is no speculative slot to back-patch.
func emitASCII(buf *pool.ByteBuffer, t tag.Tag, text string) {
	buf.MustWriteByte(byte(t))
	length.Emit(buf, uint64(len(text)))
	buf.MustWrite([]byte(text))
}
