package value

import (
	"math/big"
	"reflect"
	"strconv"
	"time"
	"unsafe"

	"github.com/Offroaders123/buffered-clone/internal/identity"
)

// IdentityToken implements Adapter.IdentityToken for GoAdapter.
//
// Every reference-typed value (Array, Object, Map, Set, Buffer, *DateValue,
// Regexp, *ErrorValue, TypedView) has a stable pointer the token is built
// from. A bare time.Time and an error that is not an *ErrorValue are not
// tracked. A bare Go string is tracked via the address of its backing byte
// array (unsafe.StringData) together with its length: two occurrences of
// the same string header are "the same reference" in Go's data model,
// which is the closest analogue available without asking every caller to
// box their strings, while a shorter prefix sharing that backing array
// gets a token of its own. Bare numeric values (float64, int, ...) carry no identity of
// their own in Go — there is no address to key on — so they are reported
// as not trackable; this is a conscious simplification recorded in
// DESIGN.md rather than an oversight.
func (GoAdapter) IdentityToken(v any) (identity.Token, bool) {
	switch vv := v.(type) {
	case nil, bool:
		return identity.Token{}, false
	case string:
		if len(vv) == 0 {
			return identity.Token{}, false
		}

		addr := uintptr(unsafe.Pointer(unsafe.StringData(vv)))
		return identity.FromString(strconv.FormatUint(uint64(addr), 16) + ":" + strconv.Itoa(len(vv))), true
	case *big.Int:
		return identity.FromAddress(reflect.ValueOf(vv).Pointer()), true
	case []any:
		return identity.FromAddress(reflect.ValueOf(vv).Pointer()), true
	case *Object:
		return identity.FromAddress(reflect.ValueOf(vv).Pointer()), true
	case *MapValue:
		return identity.FromAddress(reflect.ValueOf(vv).Pointer()), true
	case *SetValue:
		return identity.FromAddress(reflect.ValueOf(vv).Pointer()), true
	case *Bytes:
		return identity.FromAddress(reflect.ValueOf(vv).Pointer()), true
	case time.Time:
		return identity.Token{}, false
	case *DateValue:
		return identity.FromAddress(reflect.ValueOf(vv).Pointer()), true
	case *RegexpValue:
		return identity.FromAddress(reflect.ValueOf(vv).Pointer()), true
	case *ErrorValue:
		return identity.FromAddress(reflect.ValueOf(vv).Pointer()), true
	case *TypedViewValue:
		return identity.FromAddress(reflect.ValueOf(vv).Pointer()), true
	}

	if isNumericKind(v) {
		return identity.Token{}, false
	}

	return identity.Token{}, false
}
