package length

import (
	"testing"

	"github.com/Offroaders123/buffered-clone/pool"
)

func BenchmarkEmit(b *testing.B) {
	buf := pool.NewByteBuffer(pool.OutputBufferDefaultSize)
	b.ResetTimer()
	for b.Loop() {
		buf.Reset()
		Emit(buf, 123456)
	}
}

func BenchmarkRead(b *testing.B) {
	buf := pool.NewByteBuffer(16)
	Emit(buf, 123456)
	data := buf.Bytes()

	b.ResetTimer()
	for b.Loop() {
		_, _, _ = Read(data, 0)
	}
}
