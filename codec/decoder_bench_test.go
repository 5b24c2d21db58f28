package codec

import "testing"

func BenchmarkDecode_FlatArray(b *testing.B) {
	out, err := Encode([]any{1, 2, 3, "four", true, nil, 6.5})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for b.Loop() {
		_, _ = Decode(out)
	}
}
