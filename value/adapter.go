package value

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/Offroaders123/buffered-clone/errs"
	"github.com/Offroaders123/buffered-clone/internal/identity"
)

// Adapter is the host value adapter required by spec §6.1. codec.Encoder
// and codec.Decoder are written entirely against this interface; they
// never assume a concrete Go representation.
//
// GoAdapter, below, is the default implementation over the types in this
// package (Object, MapValue, SetValue, Bytes, DateValue, RegexpValue,
// ErrorValue, TypedViewValue) plus Go's own bool/string/numeric kinds and
// *big.Int.
type Adapter interface {
	Classify(v any) Category

	IsFiniteNumber(v any) bool
	NumberText(v any) string
	ParseNumber(text string) (any, error)

	BigIntText(v any) string
	ParseBigInt(text string) (any, error)

	BoolValue(v any) bool
	NewBool(b bool) any

	StringText(v any) string
	NewString(text string) any

	ArrayLen(v any) int
	ArrayElem(v any, i int) any
	NewArray(n int) any
	SetArrayElem(arr any, i int, elem any)

	ObjectLen(v any) int
	ObjectEntry(v any, i int) (string, any)
	NewObject() any
	SetObjectEntry(obj any, key string, val any)

	MapLen(v any) int
	MapEntry(v any, i int) (any, any)
	NewMap() any
	SetMapEntry(m any, key, val any)

	SetLen(v any) int
	SetElem(v any, i int) any
	NewSet() any
	AddSetElem(s any, elem any)

	BufferBytes(v any) []byte
	NewBuffer(data []byte) any

	DateISO8601(v any) string
	ParseDate(text string) (any, error)

	RegexpParts(v any) (source, flags string)
	NewRegexp(source, flags string) any

	ErrorParts(v any) (name, message string)
	NewErrorValue(name, message string) any

	TypedViewParts(v any) (kind string, buf any)
	NewTypedView(kind string, buf any) any

	// IdentityToken returns the identity cache key for v and whether v is
	// trackable at all. Values without a stable identity (e.g. a bare Go
	// float64 with no pointer of its own) return ok=false; the encoder
	// then never consults or populates the cache for them.
	IdentityToken(v any) (identity.Token, bool)
}

// GoAdapter is the default Adapter, over plain Go values. nil satisfies
// Null; bool is Boolean; any Go integer/float kind is Number (JS numbers
// are always float64, so NumberText/ParseNumber round-trip through
// float64); *big.Int is BigInt; string is String; []any is Array;
// *Object is Record; *MapValue is Map; *SetValue is Set; *Bytes is
// Buffer; *DateValue/time.Time is Date; *RegexpValue is Regexp;
// *ErrorValue/error is Error; *TypedViewValue is TypedView. Everything
// else (funcs, channels, unsupported pointers) is NonSerializable.
type GoAdapter struct{}

var _ Adapter = GoAdapter{}

func (GoAdapter) Classify(v any) Category {
	switch vv := v.(type) {
	case nil:
		return Null
	case bool:
		return Boolean
	case *big.Int:
		return BigInt
	case string:
		return String
	case []any:
		return Array
	case *Object:
		return Record
	case *MapValue:
		return Map
	case *SetValue:
		return Set
	case *Bytes:
		return Buffer
	case time.Time:
		return Date
	case *DateValue:
		return Date
	case *RegexpValue:
		return Regexp
	case *ErrorValue:
		return Error
	case error:
		_ = vv
		return Error
	case *TypedViewValue:
		return TypedView
	}

	if isNumericKind(v) {
		return Number
	}

	return NonSerializable
}

func isNumericKind(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func (GoAdapter) IsFiniteNumber(v any) bool {
	f, ok := toFloat64(v)
	if !ok {
		return false
	}

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func toFloat64(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func (a GoAdapter) NumberText(v any) string {
	f, _ := toFloat64(v)
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (a GoAdapter) ParseNumber(text string) (any, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", errs.ErrMalformedNumber, text, err)
	}

	return f, nil
}

func (a GoAdapter) BigIntText(v any) string {
	bi, ok := v.(*big.Int)
	if !ok {
		return "0"
	}

	return bi.String()
}

func (a GoAdapter) ParseBigInt(text string) (any, error) {
	bi, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrMalformedBigInt, text)
	}

	return bi, nil
}

func (GoAdapter) BoolValue(v any) bool { b, _ := v.(bool); return b }
func (GoAdapter) NewBool(b bool) any   { return b }

func (GoAdapter) StringText(v any) string { s, _ := v.(string); return s }
func (GoAdapter) NewString(text string) any { return text }

func (GoAdapter) ArrayLen(v any) int {
	arr, _ := v.([]any)
	return len(arr)
}

func (GoAdapter) ArrayElem(v any, i int) any {
	arr, _ := v.([]any)
	return arr[i]
}

func (GoAdapter) NewArray(n int) any {
	return make([]any, n)
}

func (GoAdapter) SetArrayElem(arr any, i int, elem any) {
	a, _ := arr.([]any)
	a[i] = elem
}

func (GoAdapter) ObjectLen(v any) int {
	o, _ := v.(*Object)
	if o == nil {
		return 0
	}

	return o.Len()
}

func (GoAdapter) ObjectEntry(v any, i int) (string, any) {
	o, _ := v.(*Object)
	return o.At(i)
}

func (GoAdapter) NewObject() any { return NewObject() }

func (GoAdapter) SetObjectEntry(obj any, key string, val any) {
	o, _ := obj.(*Object)
	o.Set(key, val)
}

func (GoAdapter) MapLen(v any) int {
	m, _ := v.(*MapValue)
	if m == nil {
		return 0
	}

	return m.Len()
}

func (GoAdapter) MapEntry(v any, i int) (any, any) {
	m, _ := v.(*MapValue)
	return m.At(i)
}

func (GoAdapter) NewMap() any { return NewMap() }

func (GoAdapter) SetMapEntry(m any, key, val any) {
	mv, _ := m.(*MapValue)
	mv.Set(key, val)
}

func (GoAdapter) SetLen(v any) int {
	s, _ := v.(*SetValue)
	if s == nil {
		return 0
	}

	return s.Len()
}

func (GoAdapter) SetElem(v any, i int) any {
	s, _ := v.(*SetValue)
	return s.At(i)
}

func (GoAdapter) NewSet() any { return NewSet() }

func (GoAdapter) AddSetElem(s any, elem any) {
	sv, _ := s.(*SetValue)
	sv.Add(elem)
}

func (GoAdapter) BufferBytes(v any) []byte {
	b, _ := v.(*Bytes)
	if b == nil {
		return nil
	}

	return b.Data
}

func (GoAdapter) NewBuffer(data []byte) any { return NewBytes(data) }

func (GoAdapter) DateISO8601(v any) string {
	switch d := v.(type) {
	case time.Time:
		return d.UTC().Format("2006-01-02T15:04:05.000Z")
	case *DateValue:
		return d.Time.UTC().Format("2006-01-02T15:04:05.000Z")
	default:
		return ""
	}
}

func (GoAdapter) ParseDate(text string) (any, error) {
	t, err := time.Parse("2006-01-02T15:04:05.000Z", text)
	if err != nil {
		// Fall back to full RFC3339 with fractional seconds for inputs
		// from hosts that emit a different (still ISO-8601) precision.
		t, err = time.Parse(time.RFC3339Nano, text)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errs.ErrMalformedDate, text, err)
		}
	}

	return NewDate(t.UTC()), nil
}

func (GoAdapter) RegexpParts(v any) (string, string) {
	r, _ := v.(*RegexpValue)
	if r == nil {
		return "", ""
	}

	return r.Source, r.Flags
}

func (GoAdapter) NewRegexp(source, flags string) any { return NewRegexp(source, flags) }

func (GoAdapter) ErrorParts(v any) (string, string) {
	switch e := v.(type) {
	case *ErrorValue:
		return e.Name, e.Message
	case error:
		return "Error", e.Error()
	default:
		return "Error", ""
	}
}

func (GoAdapter) NewErrorValue(name, message string) any { return NewError(name, message) }

func (GoAdapter) TypedViewParts(v any) (string, any) {
	tv, _ := v.(*TypedViewValue)
	if tv == nil {
		return "", nil
	}

	return tv.Kind, tv.Buffer
}

func (GoAdapter) NewTypedView(kind string, buf any) any {
	b, _ := buf.(*Bytes)
	return NewTypedView(kind, b)
}
