// Package bufferedclone serializes and deserializes structured value
// graphs — numbers, strings, booleans, null, big integers, arrays, plain
// records, maps, sets, dates, regular expressions, errors, typed byte
// views, and raw byte buffers — into a compact binary stream that
// preserves reference identity, so cyclic and diamond-shaped graphs
// round-trip exactly.
//
// # Basic usage
//
//	out, err := bufferedclone.Encode([]any{1, "two", true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v, err := bufferedclone.Decode(out)
//
// Cyclic graphs round-trip because the encoder tracks value identity and
// the decoder resolves back-references against an offset table:
//
//	a := value.NewObject()
//	a.Set("self", a)
//	out, _ := bufferedclone.Encode(a)
//	v, _ := bufferedclone.Decode(out)
//	rebuilt := v.(*value.Object)
//	_, self := rebuilt.At(0)
//	// self == rebuilt
//
// # Package structure
//
// This package is a thin convenience wrapper around codec.Encode and
// codec.Decode. Use the codec package directly for the Encoder/Decoder
// option types (codec.EncodeOption, codec.DecodeOption, codec.Recursion);
// use the value package directly to build or inspect the concrete Object,
// MapValue, SetValue, Bytes, DateValue, RegexpValue, ErrorValue, and
// TypedViewValue container types, or to implement value.Adapter over a
// different host value representation.
package bufferedclone

import "github.com/Offroaders123/buffered-clone/codec"

// Encode serializes v into the wire format, applying opts.
//
// v, and every value reachable from it, is classified through
// codec.EncodeOptions.Adapter (value.GoAdapter{} by default). A value the
// adapter reports as non-serializable at the root fails with
// errs.ErrNonSerializableRoot; inside an array it is encoded as null;
// inside a record, map, or set it is dropped from the pair or element
// list entirely.
func Encode(v any, opts ...codec.EncodeOption) ([]byte, error) {
	return codec.Encode(v, opts...)
}

// Decode reconstructs the single value encoded in data, applying opts.
//
// data must contain exactly one encoded value; trailing bytes beyond it
// are ignored rather than rejected, matching the wire format's
// self-delimiting framing (concatenating two valid streams does not
// itself produce a second decodable value at the same call).
func Decode(data []byte, opts ...codec.DecodeOption) (any, error) {
	return codec.Decode(data, opts...)
}
