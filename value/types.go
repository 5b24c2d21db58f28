package value

import "time"

// Object is a plain record: an ordered sequence of key/value pairs. Order
// is whatever the caller built it in, and is exactly the order the
// default adapter's ObjectEntry reports — spec §4.3's "emit in the
// order the host adapter yields own enumerable keys".
type Object struct {
	keys   []string
	values []any
}

// NewObject creates an empty record.
func NewObject() *Object {
	return &Object{}
}

// Set appends or overwrites key with val, preserving the position of an
// existing key rather than moving it to the end.
func (o *Object) Set(key string, val any) *Object {
	for i, k := range o.keys {
		if k == key {
			o.values[i] = val
			return o
		}
	}

	o.keys = append(o.keys, key)
	o.values = append(o.values, val)

	return o
}

// Len returns the number of entries.
func (o *Object) Len() int { return len(o.keys) }

// At returns the key/value pair at position i.
func (o *Object) At(i int) (string, any) { return o.keys[i], o.values[i] }

// MapValue is a Map-like keyed collection, distinct from Object so the
// encoder can tag it tag.Map instead of tag.Object (spec §3). Entry order
// is insertion order.
type MapValue struct {
	keys   []any
	values []any
}

// NewMap creates an empty map.
func NewMap() *MapValue {
	return &MapValue{}
}

// Set appends key/val. Unlike Object, MapValue does not dedupe by key
// equality — arbitrary value keys may not be comparable with ==, and the
// host's own Map semantics own that decision, not this adapter.
func (m *MapValue) Set(key, val any) *MapValue {
	m.keys = append(m.keys, key)
	m.values = append(m.values, val)

	return m
}

// Len returns the number of entries.
func (m *MapValue) Len() int { return len(m.keys) }

// At returns the key/value pair at position i.
func (m *MapValue) At(i int) (any, any) { return m.keys[i], m.values[i] }

// SetValue is a Set-like collection of elements, in insertion order. Like
// MapValue, it does not check elements for equality: Add appends a
// duplicate rather than ignoring it.
type SetValue struct {
	elems []any
}

// NewSet creates an empty set.
func NewSet() *SetValue {
	return &SetValue{}
}

// Add appends elem.
func (s *SetValue) Add(elem any) *SetValue {
	s.elems = append(s.elems, elem)
	return s
}

// Len returns the number of elements.
func (s *SetValue) Len() int { return len(s.elems) }

// At returns the element at position i.
func (s *SetValue) At(i int) any { return s.elems[i] }

// Bytes is a raw byte buffer (tag.Buffer). It is a named pointer-backed
// type, rather than a bare []byte, so two occurrences of the same *Bytes
// in a graph have the pointer identity the identity cache needs (spec
// §4.2) — a bare []byte header has no address of its own to key on.
type Bytes struct {
	Data []byte
}

// NewBytes wraps data for use as a Buffer value.
func NewBytes(data []byte) *Bytes {
	return &Bytes{Data: data}
}

// DateValue is a point in time (tag.Date).
type DateValue struct {
	Time time.Time
}

// NewDate wraps t for use as a Date value.
func NewDate(t time.Time) *DateValue {
	return &DateValue{Time: t}
}

// RegexpValue is a regular expression's source and flags (tag.Regexp).
// buffered-clone does not compile or execute the pattern — spec §4.3
// encodes the pattern and flags as two strings and leaves reconstruction
// of an executable regex to the host, since flag dialects vary (the
// original source's host used JS regex flags, which have no Go
// equivalent encoding).
type RegexpValue struct {
	Source string
	Flags  string
}

// NewRegexp wraps a pattern/flags pair for use as a Regexp value.
func NewRegexp(source, flags string) *RegexpValue {
	return &RegexpValue{Source: source, Flags: flags}
}

// ErrorValue is a named error (tag.Error): a class name and a message.
// Stack traces are not preserved (spec §4.3).
type ErrorValue struct {
	Name    string
	Message string
}

// NewError wraps a name/message pair for use as an Error value.
func NewError(name, message string) *ErrorValue {
	return &ErrorValue{Name: name, Message: message}
}

func (e *ErrorValue) Error() string { return e.Name + ": " + e.Message }

// TypedViewValue is a typed view over a byte buffer (tag.Typed): a kind
// discriminator such as "Uint8Array" or "DataView", plus the underlying
// buffer. Per spec §4.3 and §9, byte offset and element count within the
// buffer are not preserved by this core codec.
type TypedViewValue struct {
	Kind   string
	Buffer *Bytes
}

// NewTypedView wraps a kind/buffer pair for use as a TypedView value.
func NewTypedView(kind string, buf *Bytes) *TypedViewValue {
	return &TypedViewValue{Kind: kind, Buffer: buf}
}
