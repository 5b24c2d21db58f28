package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_String(t *testing.T) {
	tests := []struct {
		name string
		tg   Tag
		want string
	}{
		{"null", Null, "Null"},
		{"boolean", Boolean, "Boolean"},
		{"number", Number, "Number"},
		{"bigint", BigInt, "BigInt"},
		{"string", String, "String"},
		{"array", Array, "Array"},
		{"object", Object, "Object"},
		{"map", Map, "Map"},
		{"set", Set, "Set"},
		{"buffer", Buffer, "Buffer"},
		{"date", Date, "Date"},
		{"regexp", Regexp, "Regexp"},
		{"error", Error, "Error"},
		{"typed", Typed, "Typed"},
		{"recursive", Recursive, "Recursive"},
		{"unknown", Tag(0xff), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tg.String())
		})
	}
}

func TestTag_IsContainer(t *testing.T) {
	for _, tg := range []Tag{Array, Object, Map, Set} {
		require.True(t, tg.IsContainer(), "%s should be a container", tg)
	}
	for _, tg := range []Tag{Null, Boolean, Number, BigInt, String, Buffer, Date, Regexp, Error, Typed, Recursive} {
		require.False(t, tg.IsContainer(), "%s should not be a container", tg)
	}
}

func TestKnown(t *testing.T) {
	require.True(t, Known(byte(Null)))
	require.True(t, Known(byte(Recursive)))
	require.False(t, Known(0xff))
	require.False(t, Known(0x00))
}
