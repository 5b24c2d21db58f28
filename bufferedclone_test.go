package bufferedclone

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Offroaders123/buffered-clone/value"
)

func TestEncodeDecode_RoundTripsFlatValues(t *testing.T) {
	cases := []any{
		nil, true, false, 42, "hello", []any{1, 2, 3},
	}

	for _, v := range cases {
		out, err := Encode(v)
		require.NoError(t, err)

		got, err := Decode(out)
		require.NoError(t, err)

		assert.EqualValues(t, normalizeNumber(v), got)
	}
}

func TestEncodeDecode_CyclicArray(t *testing.T) {
	a := make([]any, 1)
	a[0] = a

	out, err := Encode(a)
	require.NoError(t, err)

	v, err := Decode(out)
	require.NoError(t, err)

	rebuilt := v.([]any)
	inner, ok := rebuilt[0].([]any)
	require.True(t, ok)
	// Same backing array as rebuilt itself: a true cycle, not a deep copy.
	assert.Equal(t, reflect.ValueOf(rebuilt).Pointer(), reflect.ValueOf(inner).Pointer())
}

func TestEncodeDecode_SharedEmptyArray(t *testing.T) {
	shared := []any{}
	root := []any{shared, shared}

	out, err := Encode(root)
	require.NoError(t, err)

	v, err := Decode(out)
	require.NoError(t, err)

	rebuilt := v.([]any)
	require.Len(t, rebuilt, 2)

	first, ok := rebuilt[0].([]any)
	require.True(t, ok)
	second, ok := rebuilt[1].([]any)
	require.True(t, ok)

	assert.Equal(t, reflect.ValueOf(first).Pointer(), reflect.ValueOf(second).Pointer())
}

func TestEncodeDecode_DiamondObject(t *testing.T) {
	shared := value.NewObject().Set("n", 1)
	root := value.NewObject().Set("x", shared).Set("y", shared)

	out, err := Encode(root)
	require.NoError(t, err)

	v, err := Decode(out)
	require.NoError(t, err)

	rebuilt := v.(*value.Object)
	_, x := rebuilt.At(0)
	_, y := rebuilt.At(1)
	assert.Same(t, x, y)
}

func TestEncodeDecode_Date(t *testing.T) {
	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	out, err := Encode(value.NewDate(ts))
	require.NoError(t, err)

	v, err := Decode(out)
	require.NoError(t, err)

	dv := v.(*value.DateValue)
	assert.True(t, ts.Equal(dv.Time))
}

// normalizeNumber mirrors how the Go adapter canonicalizes numbers: every
// Number round-trips through float64 (spec's "Number" is always a
// double), so an int input compares equal to a float64 output only after
// the same conversion.
func normalizeNumber(v any) any {
	if n, ok := v.(int); ok {
		return float64(n)
	}

	if arr, ok := v.([]any); ok {
		out := make([]any, len(arr))
		for i, e := range arr {
			out[i] = normalizeNumber(e)
		}
		return out
	}

	return v
}
