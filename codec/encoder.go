package codec

import (
	"fmt"

	"github.com/Offroaders123/buffered-clone/errs"
	"github.com/Offroaders123/buffered-clone/internal/identity"
	"github.com/Offroaders123/buffered-clone/internal/options"
	"github.com/Offroaders123/buffered-clone/length"
	"github.com/Offroaders123/buffered-clone/pool"
	"github.com/Offroaders123/buffered-clone/tag"
	"github.com/Offroaders123/buffered-clone/value"
)

// Encoder walks one value graph and writes the wire stream of spec §4.3.
// An Encoder is single-use: Encode constructs a fresh one per call and
// never reuses it across calls.
type Encoder struct {
	opts    *EncodeOptions
	buf     *pool.ByteBuffer
	staging *pool.ByteBuffer
	cache   *identity.Cache // nil under RecursionNone: no back-reference tracking at all

	// visiting guards against unbounded recursion on a cyclic graph when
	// cache is nil: the identity cache normally breaks a cycle by turning
	// the second visit into a RECURSIVE hit, but with no cache there is
	// nothing to hit, so a plain ancestor stack does the job instead.
	visiting map[identity.Token]bool
}

// Encode serializes v into the wire format of spec §3, applying opts.
func Encode(v any, opts ...EncodeOption) ([]byte, error) {
	o := newEncodeOptions()
	if err := options.Apply(o, opts...); err != nil {
		return nil, err
	}

	if o.Adapter.Classify(v) == value.NonSerializable {
		return nil, errs.ErrNonSerializableRoot
	}

	e := &Encoder{opts: o}

	e.buf = pool.GetOutputBuffer()
	defer pool.PutOutputBuffer(e.buf)

	if o.StagingBufferSize == pool.StagingBufferSize {
		e.staging = pool.GetStagingBuffer()
		defer pool.PutStagingBuffer(e.staging)
	} else {
		// A caller-overridden chunk size (tests forcing multi-chunk
		// streaming, mainly) doesn't fit the shared pool's fixed-size buffers.
		e.staging = pool.NewByteBuffer(o.StagingBufferSize)
	}

	if o.Recursion != RecursionNone {
		e.cache = identity.NewCache()
	}

	if err := e.encodeValue(v); err != nil {
		return nil, err
	}

	out := make([]byte, e.buf.Len())
	copy(out, e.buf.Bytes())
	return out, nil
}

// encodeValue dispatches v to its tag and payload writer. v must already
// be known serializable (callers that allow a non-serializable slot —
// array elements, record/map pairs, set elements — check that themselves
// before recursing, since the policy differs per context).
func (e *Encoder) encodeValue(v any) error {
	a := e.opts.Adapter

	switch a.Classify(v) {
	case value.Null:
		e.buf.MustWriteByte(byte(tag.Null))
		return nil

	case value.Boolean:
		e.buf.MustWriteByte(byte(tag.Boolean))
		if a.BoolValue(v) {
			e.buf.MustWriteByte(1)
		} else {
			e.buf.MustWriteByte(0)
		}
		return nil

	case value.Number:
		if !a.IsFiniteNumber(v) {
			// Matches the source behavior of silently coercing NaN/±∞.
			e.buf.MustWriteByte(byte(tag.Null))
			return nil
		}

		return e.encodeTracked(v, true, func() error {
			emitASCII(e.buf, tag.Number, a.NumberText(v))
			return nil
		})

	case value.BigInt:
		return e.encodeTracked(v, true, func() error {
			emitASCII(e.buf, tag.BigInt, a.BigIntText(v))
			return nil
		})

	case value.String:
		text := a.StringText(v)
		if text == "" {
			e.buf.MustWriteByte(byte(tag.String))
			length.Emit(e.buf, 0)
			return nil
		}

		return e.encodeTracked(v, true, func() error {
			emitString(e.buf, e.staging, tag.String, text)
			return nil
		})

	case value.Array:
		return e.encodeTracked(v, false, func() error { return e.encodeArray(v) })

	case value.Record:
		return e.encodeTracked(v, false, func() error { return e.encodeObject(v) })

	case value.Map:
		return e.encodeTracked(v, false, func() error { return e.encodeMap(v) })

	case value.Set:
		return e.encodeTracked(v, false, func() error { return e.encodeSet(v) })

	case value.Buffer:
		return e.encodeTracked(v, false, func() error {
			data := a.BufferBytes(v)
			e.buf.MustWriteByte(byte(tag.Buffer))
			length.Emit(e.buf, uint64(len(data)))
			e.buf.MustWrite(data)
			return nil
		})

	case value.Date:
		return e.encodeTracked(v, false, func() error {
			emitASCII(e.buf, tag.Date, a.DateISO8601(v))
			return nil
		})

	case value.Regexp:
		return e.encodeTracked(v, false, func() error {
			source, flags := a.RegexpParts(v)
			e.buf.MustWriteByte(byte(tag.Regexp))
			if err := e.encodeValue(source); err != nil {
				return err
			}
			return e.encodeValue(flags)
		})

	case value.Error:
		return e.encodeTracked(v, false, func() error {
			name, message := a.ErrorParts(v)
			e.buf.MustWriteByte(byte(tag.Error))
			if err := e.encodeValue(name); err != nil {
				return err
			}
			return e.encodeValue(message)
		})

	case value.TypedView:
		return e.encodeTracked(v, false, func() error {
			kind, buf := a.TypedViewParts(v)
			e.buf.MustWriteByte(byte(tag.Typed))
			if err := e.encodeValue(kind); err != nil {
				return err
			}
			return e.encodeValue(buf)
		})

	default: // value.NonSerializable
		return fmt.Errorf("%w: at offset %d", errs.ErrNonSerializableRoot, e.buf.Len())
	}
}

// encodeTracked implements the identity cache consult/insert protocol of
// spec §4.2 around writeFn, which writes v's tag and payload. isPrimitive
// distinguishes Number/BigInt/String (only tracked under RecursionAll)
// from every other category (tracked under both RecursionAll and
// RecursionSome).
func (e *Encoder) encodeTracked(v any, isPrimitive bool, writeFn func() error) error {
	token, hasToken := e.opts.Adapter.IdentityToken(v)

	if e.cache != nil && hasToken && e.admits(isPrimitive) {
		if seq, hit := e.cache.Lookup(token); hit {
			e.buf.MustWrite(seq)
			return nil
		}

		offset := e.buf.Len()
		e.cache.Insert(token, recursiveSeq(offset))
		return writeFn()
	}

	if e.cache == nil && !isPrimitive && hasToken {
		if e.visiting[token] {
			return fmt.Errorf("%w: at offset %d", errs.ErrCyclicWithoutCache, e.buf.Len())
		}

		if e.visiting == nil {
			e.visiting = make(map[identity.Token]bool)
		}
		e.visiting[token] = true
		defer delete(e.visiting, token)
	}

	return writeFn()
}

func (e *Encoder) admits(isPrimitive bool) bool {
	if isPrimitive {
		return e.opts.Recursion == RecursionAll
	}

	return true
}

func (e *Encoder) encodeArray(v any) error {
	a := e.opts.Adapter
	n := a.ArrayLen(v)

	e.buf.MustWriteByte(byte(tag.Array))
	length.Emit(e.buf, uint64(n))

	for i := 0; i < n; i++ {
		elem := a.ArrayElem(v, i)
		if a.Classify(elem) == value.NonSerializable {
			// Positional context: preserve the slot as NULL (spec §4.3).
			e.buf.MustWriteByte(byte(tag.Null))
			continue
		}

		if err := e.encodeValue(elem); err != nil {
			return err
		}
	}

	return nil
}

func (e *Encoder) encodeObject(v any) error {
	a := e.opts.Adapter
	n := a.ObjectLen(v)

	type pair struct {
		key string
		val any
	}

	pairs := make([]pair, 0, n)
	for i := 0; i < n; i++ {
		k, val := a.ObjectEntry(v, i)
		if a.Classify(val) == value.NonSerializable {
			continue
		}

		pairs = append(pairs, pair{k, val})
	}

	e.buf.MustWriteByte(byte(tag.Object))
	length.Emit(e.buf, uint64(2*len(pairs)))

	for _, p := range pairs {
		if err := e.encodeValue(p.key); err != nil {
			return err
		}
		if err := e.encodeValue(p.val); err != nil {
			return err
		}
	}

	return nil
}

func (e *Encoder) encodeMap(v any) error {
	a := e.opts.Adapter
	n := a.MapLen(v)

	type pair struct{ key, val any }

	pairs := make([]pair, 0, n)
	for i := 0; i < n; i++ {
		k, val := a.MapEntry(v, i)
		if a.Classify(k) == value.NonSerializable || a.Classify(val) == value.NonSerializable {
			continue
		}

		pairs = append(pairs, pair{k, val})
	}

	e.buf.MustWriteByte(byte(tag.Map))
	length.Emit(e.buf, uint64(2*len(pairs)))

	for _, p := range pairs {
		if err := e.encodeValue(p.key); err != nil {
			return err
		}
		if err := e.encodeValue(p.val); err != nil {
			return err
		}
	}

	return nil
}

func (e *Encoder) encodeSet(v any) error {
	a := e.opts.Adapter
	n := a.SetLen(v)

	elems := make([]any, 0, n)
	for i := 0; i < n; i++ {
		elem := a.SetElem(v, i)
		if a.Classify(elem) == value.NonSerializable {
			continue
		}

		elems = append(elems, elem)
	}

	e.buf.MustWriteByte(byte(tag.Set))
	length.Emit(e.buf, uint64(len(elems)))

	for _, elem := range elems {
		if err := e.encodeValue(elem); err != nil {
			return err
		}
	}

	return nil
}

// recursiveSeq precomputes the bytes a RECURSIVE back-reference to offset
// would occupy, for the identity cache to hand back verbatim on a hit.
func recursiveSeq(offset int) []byte {
	var scratch [1 + length.MaxWidth]byte
	n := length.EncodeTo(scratch[:], uint64(offset))

	seq := make([]byte, 1+n)
	seq[0] = byte(tag.Recursive)
	copy(seq[1:], scratch[:n])
	return seq
}
