package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_SetPreservesPositionOnOverwrite(t *testing.T) {
	o := NewObject().Set("a", 1).Set("b", 2).Set("a", 99)

	require.Equal(t, 2, o.Len())
	k0, v0 := o.At(0)
	assert.Equal(t, "a", k0)
	assert.Equal(t, 99, v0)
}

func TestMapValue_AllowsDuplicateKeys(t *testing.T) {
	m := NewMap().Set("k", 1).Set("k", 2)
	require.Equal(t, 2, m.Len())
}

func TestSetValue_Add(t *testing.T) {
	s := NewSet().Add(1).Add(2).Add(2)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.At(2))
}

func TestErrorValue_ImplementsError(t *testing.T) {
	var err error = NewError("TypeError", "bad value")
	assert.Equal(t, "TypeError: bad value", err.Error())
}
