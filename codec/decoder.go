package codec

import (
	"fmt"

	"github.com/Offroaders123/buffered-clone/errs"
	"github.com/Offroaders123/buffered-clone/internal/options"
	"github.com/Offroaders123/buffered-clone/length"
	"github.com/Offroaders123/buffered-clone/tag"
)

// Decoder parses one wire stream (spec §4.5) into a host value, threading
// an offset→value table through the whole decode so RECURSIVE payloads
// can resolve to an already-decoded value or to an ancestor container
// still being filled in (spec §4.6).
type Decoder struct {
	opts  *DecodeOptions
	data  []byte
	table map[int]any
	depth int
}

// Decode reconstructs the single value encoded in data.
func Decode(data []byte, opts ...DecodeOption) (any, error) {
	o := newDecodeOptions()
	if err := options.Apply(o, opts...); err != nil {
		return nil, err
	}

	d := &Decoder{opts: o, data: data, table: make(map[int]any)}

	v, _, err := d.decodeAt(0)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// decodeAt reads one complete value starting at pos and returns it along
// with the position immediately following its payload.
func (d *Decoder) decodeAt(pos int) (any, int, error) {
	if pos >= len(d.data) {
		return nil, pos, fmt.Errorf("%w: offset %d: expected a tag byte", errs.ErrTruncatedStream, pos)
	}

	offsetOfTag := pos
	b := d.data[pos]
	if !tag.Known(b) {
		return nil, pos, fmt.Errorf("%w: offset %d: byte 0x%02x", errs.ErrUnknownTag, pos, b)
	}

	t := tag.Tag(b)
	pos++

	if t.IsContainer() {
		d.depth++
		if d.depth > d.opts.MaxDepth {
			return nil, pos, fmt.Errorf("%w: offset %d: exceeds max depth %d", errs.ErrNestingTooDeep, offsetOfTag, d.opts.MaxDepth)
		}
		defer func() { d.depth-- }()
	}

	a := d.opts.Adapter

	switch t {
	case tag.Null:
		return nil, pos, nil

	case tag.Boolean:
		if pos >= len(d.data) {
			return nil, pos, fmt.Errorf("%w: offset %d: missing boolean payload", errs.ErrTruncatedStream, pos)
		}

		raw := d.data[pos]
		if raw != 0 && raw != 1 {
			return nil, pos, fmt.Errorf("%w: offset %d: byte 0x%02x", errs.ErrMalformedBoolean, pos, raw)
		}
		pos++

		v := a.NewBool(raw == 1)
		d.table[offsetOfTag] = v
		return v, pos, nil

	case tag.Number:
		raw, next, err := readBytes(d.data, pos)
		if err != nil {
			return nil, pos, err
		}

		v, err := a.ParseNumber(string(raw))
		if err != nil {
			return nil, pos, fmt.Errorf("offset %d: %w", offsetOfTag, err)
		}

		d.table[offsetOfTag] = v
		return v, next, nil

	case tag.BigInt:
		raw, next, err := readBytes(d.data, pos)
		if err != nil {
			return nil, pos, err
		}

		v, err := a.ParseBigInt(string(raw))
		if err != nil {
			return nil, pos, fmt.Errorf("offset %d: %w", offsetOfTag, err)
		}

		d.table[offsetOfTag] = v
		return v, next, nil

	case tag.String:
		s, next, err := readString(d.data, pos)
		if err != nil {
			return nil, pos, err
		}

		v := a.NewString(s)
		d.table[offsetOfTag] = v
		return v, next, nil

	case tag.Array:
		return d.decodeArray(offsetOfTag, pos)

	case tag.Object:
		return d.decodeObject(offsetOfTag, pos)

	case tag.Map:
		return d.decodeMap(offsetOfTag, pos)

	case tag.Set:
		return d.decodeSet(offsetOfTag, pos)

	case tag.Buffer:
		raw, next, err := readBytes(d.data, pos)
		if err != nil {
			return nil, pos, err
		}

		buf := make([]byte, len(raw))
		copy(buf, raw)

		v := a.NewBuffer(buf)
		d.table[offsetOfTag] = v
		return v, next, nil

	case tag.Date:
		raw, next, err := readBytes(d.data, pos)
		if err != nil {
			return nil, pos, err
		}

		v, err := a.ParseDate(string(raw))
		if err != nil {
			return nil, pos, fmt.Errorf("offset %d: %w", offsetOfTag, err)
		}

		d.table[offsetOfTag] = v
		return v, next, nil

	case tag.Regexp:
		sourceVal, p1, err := d.decodeAt(pos)
		if err != nil {
			return nil, pos, err
		}

		flagsVal, p2, err := d.decodeAt(p1)
		if err != nil {
			return nil, pos, err
		}

		v := a.NewRegexp(a.StringText(sourceVal), a.StringText(flagsVal))
		d.table[offsetOfTag] = v
		return v, p2, nil

	case tag.Error:
		nameVal, p1, err := d.decodeAt(pos)
		if err != nil {
			return nil, pos, err
		}

		msgVal, p2, err := d.decodeAt(p1)
		if err != nil {
			return nil, pos, err
		}

		v := a.NewErrorValue(a.StringText(nameVal), a.StringText(msgVal))
		d.table[offsetOfTag] = v
		return v, p2, nil

	case tag.Typed:
		kindVal, p1, err := d.decodeAt(pos)
		if err != nil {
			return nil, pos, err
		}

		bufVal, p2, err := d.decodeAt(p1)
		if err != nil {
			return nil, pos, err
		}

		v := a.NewTypedView(a.StringText(kindVal), bufVal)
		d.table[offsetOfTag] = v
		return v, p2, nil

	case tag.Recursive:
		off, next, err := length.Read(d.data, pos)
		if err != nil {
			return nil, pos, err
		}

		target, ok := d.table[int(off)]
		if !ok {
			return nil, pos, fmt.Errorf("%w: offset %d: points to %d", errs.ErrUnresolvedBackReference, offsetOfTag, off)
		}

		return target, next, nil

	default:
		return nil, pos, fmt.Errorf("%w: offset %d: byte 0x%02x", errs.ErrUnknownTag, offsetOfTag, b)
	}
}

func (d *Decoder) decodeArray(offsetOfTag, pos int) (any, int, error) {
	n, next, err := length.Read(d.data, pos)
	if err != nil {
		return nil, pos, err
	}

	a := d.opts.Adapter
	arr := a.NewArray(int(n))
	d.table[offsetOfTag] = arr // register before children: spec §4.6
	pos = next

	for i := 0; i < int(n); i++ {
		elem, p, err := d.decodeAt(pos)
		if err != nil {
			return nil, pos, err
		}

		a.SetArrayElem(arr, i, elem)
		pos = p
	}

	return arr, pos, nil
}

func (d *Decoder) decodeObject(offsetOfTag, pos int) (any, int, error) {
	twoK, next, err := length.Read(d.data, pos)
	if err != nil {
		return nil, pos, err
	}

	a := d.opts.Adapter
	if twoK%2 != 0 {
		return nil, pos, fmt.Errorf("%w: offset %d: object pair count %d is odd", errs.ErrMalformedLength, offsetOfTag, twoK)
	}

	obj := a.NewObject()
	d.table[offsetOfTag] = obj
	pos = next

	k := int(twoK) / 2
	for i := 0; i < k; i++ {
		keyVal, p1, err := d.decodeAt(pos)
		if err != nil {
			return nil, pos, err
		}

		valVal, p2, err := d.decodeAt(p1)
		if err != nil {
			return nil, pos, err
		}

		a.SetObjectEntry(obj, a.StringText(keyVal), valVal)
		pos = p2
	}

	return obj, pos, nil
}

func (d *Decoder) decodeMap(offsetOfTag, pos int) (any, int, error) {
	twoK, next, err := length.Read(d.data, pos)
	if err != nil {
		return nil, pos, err
	}

	a := d.opts.Adapter
	if twoK%2 != 0 {
		return nil, pos, fmt.Errorf("%w: offset %d: map pair count %d is odd", errs.ErrMalformedLength, offsetOfTag, twoK)
	}

	m := a.NewMap()
	d.table[offsetOfTag] = m
	pos = next

	k := int(twoK) / 2
	for i := 0; i < k; i++ {
		keyVal, p1, err := d.decodeAt(pos)
		if err != nil {
			return nil, pos, err
		}

		valVal, p2, err := d.decodeAt(p1)
		if err != nil {
			return nil, pos, err
		}

		a.SetMapEntry(m, keyVal, valVal)
		pos = p2
	}

	return m, pos, nil
}

func (d *Decoder) decodeSet(offsetOfTag, pos int) (any, int, error) {
	k, next, err := length.Read(d.data, pos)
	if err != nil {
		return nil, pos, err
	}

	a := d.opts.Adapter
	s := a.NewSet()
	d.table[offsetOfTag] = s
	pos = next

	for i := 0; i < int(k); i++ {
		elem, p, err := d.decodeAt(pos)
		if err != nil {
			return nil, pos, err
		}

		a.AddSetElem(s, elem)
		pos = p
	}

	return s, pos, nil
}

// readBytes reads a length-prefixed raw payload without any text
// validation; NUMBER, BIGINT, DATE and BUFFER payloads all share this
// shape and validate (or don't, for BUFFER) at the call site.
func readBytes(data []byte, pos int) ([]byte, int, error) {
	l, next, err := length.Read(data, pos)
	if err != nil {
		return nil, pos, err
	}

	end := next + int(l)
	if end < next || end > len(data) {
		return nil, pos, fmt.Errorf("%w: offset %d: payload of %d bytes runs past end of stream", errs.ErrTruncatedStream, next, l)
	}

	return data[next:end], end, nil
}
