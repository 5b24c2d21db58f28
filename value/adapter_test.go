package value

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoAdapter_Classify(t *testing.T) {
	a := GoAdapter{}

	tests := []struct {
		name string
		v    any
		want Category
	}{
		{"nil", nil, Null},
		{"bool", true, Boolean},
		{"int", 42, Number},
		{"float64", 3.14, Number},
		{"bigint", big.NewInt(7), BigInt},
		{"string", "hi", String},
		{"array", []any{1, 2}, Array},
		{"object", NewObject(), Record},
		{"map", NewMap(), Map},
		{"set", NewSet(), Set},
		{"buffer", NewBytes([]byte{1}), Buffer},
		{"time", time.Now(), Date},
		{"date", NewDate(time.Now()), Date},
		{"regexp", NewRegexp("a+", "g"), Regexp},
		{"error", NewError("TypeError", "bad"), Error},
		{"typed", NewTypedView("Uint8Array", NewBytes(nil)), TypedView},
		{"func", func() {}, NonSerializable},
		{"chan", make(chan int), NonSerializable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Classify(tt.v))
		})
	}
}

func TestGoAdapter_Number_FiniteAndText(t *testing.T) {
	a := GoAdapter{}

	require.True(t, a.IsFiniteNumber(42))
	require.True(t, a.IsFiniteNumber(3.5))
	require.False(t, a.IsFiniteNumber(math.NaN()))
	require.False(t, a.IsFiniteNumber(math.Inf(1)))
	require.False(t, a.IsFiniteNumber(math.Inf(-1)))

	assert.Equal(t, "42", a.NumberText(42))

	v, err := a.ParseNumber("42")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	_, err = a.ParseNumber("not-a-number")
	require.Error(t, err)
}

func TestGoAdapter_BigInt_RoundTrip(t *testing.T) {
	a := GoAdapter{}
	bi := big.NewInt(0).Mul(big.NewInt(math.MaxInt64), big.NewInt(1000))

	text := a.BigIntText(bi)
	parsed, err := a.ParseBigInt(text)
	require.NoError(t, err)
	assert.Equal(t, 0, bi.Cmp(parsed.(*big.Int)))

	_, err = a.ParseBigInt("not-an-int")
	require.Error(t, err)
}

func TestGoAdapter_Date_RoundTrip(t *testing.T) {
	a := GoAdapter{}
	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	text := a.DateISO8601(ts)
	assert.Equal(t, "2020-01-02T03:04:05.000Z", text)

	parsed, err := a.ParseDate(text)
	require.NoError(t, err)
	dv := parsed.(*DateValue)
	assert.True(t, ts.Equal(dv.Time))
}

func TestGoAdapter_Array(t *testing.T) {
	a := GoAdapter{}
	arr := a.NewArray(3)

	a.SetArrayElem(arr, 0, "x")
	a.SetArrayElem(arr, 1, "y")
	a.SetArrayElem(arr, 2, "z")

	require.Equal(t, 3, a.ArrayLen(arr))
	assert.Equal(t, "y", a.ArrayElem(arr, 1))
}

func TestGoAdapter_ObjectPreservesOrder(t *testing.T) {
	a := GoAdapter{}
	obj := a.NewObject()

	a.SetObjectEntry(obj, "b", 2)
	a.SetObjectEntry(obj, "a", 1)

	require.Equal(t, 2, a.ObjectLen(obj))
	k0, v0 := a.ObjectEntry(obj, 0)
	k1, v1 := a.ObjectEntry(obj, 1)
	assert.Equal(t, "b", k0)
	assert.Equal(t, 2, v0)
	assert.Equal(t, "a", k1)
	assert.Equal(t, 1, v1)
}

func TestGoAdapter_MapAndSet(t *testing.T) {
	a := GoAdapter{}

	m := a.NewMap()
	a.SetMapEntry(m, "k", "v")
	require.Equal(t, 1, a.MapLen(m))
	k, v := a.MapEntry(m, 0)
	assert.Equal(t, "k", k)
	assert.Equal(t, "v", v)

	s := a.NewSet()
	a.AddSetElem(s, 1)
	a.AddSetElem(s, 2)
	require.Equal(t, 2, a.SetLen(s))
	assert.Equal(t, 1, a.SetElem(s, 0))
}

func TestGoAdapter_Buffer(t *testing.T) {
	a := GoAdapter{}
	buf := a.NewBuffer([]byte{1, 2, 3})
	assert.Equal(t, []byte{1, 2, 3}, a.BufferBytes(buf))
}

func TestGoAdapter_RegexpAndError(t *testing.T) {
	a := GoAdapter{}
	re := a.NewRegexp("a+", "gi")
	source, flags := a.RegexpParts(re)
	assert.Equal(t, "a+", source)
	assert.Equal(t, "gi", flags)

	e := a.NewErrorValue("RangeError", "out of range")
	name, msg := a.ErrorParts(e)
	assert.Equal(t, "RangeError", name)
	assert.Equal(t, "out of range", msg)
}

func TestGoAdapter_TypedView(t *testing.T) {
	a := GoAdapter{}
	buf := a.NewBuffer([]byte{9, 9})
	tv := a.NewTypedView("Uint8Array", buf)

	kind, b := a.TypedViewParts(tv)
	assert.Equal(t, "Uint8Array", kind)
	assert.Equal(t, []byte{9, 9}, a.BufferBytes(b))
}

func TestGoAdapter_IdentityToken(t *testing.T) {
	a := GoAdapter{}

	_, ok := a.IdentityToken(nil)
	assert.False(t, ok)

	_, ok = a.IdentityToken(42)
	assert.False(t, ok, "bare numbers have no identity in this adapter")

	_, ok = a.IdentityToken("")
	assert.False(t, ok, "empty string is not tracked")

	s := "shared"
	tok1, ok1 := a.IdentityToken(s)
	tok2, ok2 := a.IdentityToken(s)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, tok1, tok2, "same backing string data should produce the same token")

	obj := NewObject()
	tokObj, ok := a.IdentityToken(obj)
	require.True(t, ok)
	tokObj2, _ := a.IdentityToken(obj)
	assert.Equal(t, tokObj, tokObj2)

	other := NewObject()
	tokOther, _ := a.IdentityToken(other)
	assert.NotEqual(t, tokObj, tokOther)

	empty := []any{}
	tokEmpty1, ok := a.IdentityToken(empty)
	require.True(t, ok, "an empty array still has a reference identity")
	tokEmpty2, _ := a.IdentityToken(empty)
	assert.Equal(t, tokEmpty1, tokEmpty2, "same empty array reference should produce the same token")

	otherEmpty := []any{}
	tokOtherEmpty, _ := a.IdentityToken(otherEmpty)
	assert.NotEqual(t, tokEmpty1, tokOtherEmpty, "distinct empty array references must not collide")
}
