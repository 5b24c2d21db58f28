// Package errs defines the sentinel errors returned by the length, codec,
// and value packages.
//
// Callers should match with errors.Is against these sentinels rather than
// comparing error strings; call sites wrap them with fmt.Errorf("%w: ...")
// to attach the byte offset and other context at which the error was
// detected.
package errs

import "errors"

var (
	// ErrUnknownTag is returned when the byte at the decoder's cursor is
	// not one of the defined tag.Tag values.
	ErrUnknownTag = errors.New("buffered-clone: unknown tag")

	// ErrMalformedLength is returned when a length prefix's declared width
	// would read past the end of the stream.
	ErrMalformedLength = errors.New("buffered-clone: malformed length prefix")

	// ErrMalformedBoolean is returned when a Boolean payload byte is
	// neither 0 nor 1.
	ErrMalformedBoolean = errors.New("buffered-clone: malformed boolean payload")

	// ErrMalformedNumber is returned when a Number payload's ASCII text
	// does not parse as a decimal number.
	ErrMalformedNumber = errors.New("buffered-clone: malformed number payload")

	// ErrMalformedBigInt is returned when a BigInt payload's ASCII text
	// does not parse as a decimal integer.
	ErrMalformedBigInt = errors.New("buffered-clone: malformed bigint payload")

	// ErrMalformedString is returned when a String or Typed-kind payload
	// is not valid UTF-8.
	ErrMalformedString = errors.New("buffered-clone: malformed string payload")

	// ErrMalformedDate is returned when a Date payload's ASCII text does
	// not parse as ISO-8601.
	ErrMalformedDate = errors.New("buffered-clone: malformed date payload")

	// ErrUnresolvedBackReference is returned when a Recursive payload's
	// offset does not appear in the decoder's offset table.
	ErrUnresolvedBackReference = errors.New("buffered-clone: unresolved back-reference")

	// ErrNestingTooDeep is returned when container nesting exceeds the
	// decoder's configured maximum depth.
	ErrNestingTooDeep = errors.New("buffered-clone: container nesting too deep")

	// ErrTruncatedStream is returned when the cursor would advance past
	// end-of-stream while reading any payload.
	ErrTruncatedStream = errors.New("buffered-clone: truncated stream")

	// ErrCyclicWithoutCache is returned by the encoder when recursion
	// admission is "none" and the value graph contains a cycle, since no
	// back-reference can be emitted to break it.
	ErrCyclicWithoutCache = errors.New("buffered-clone: cyclic value with recursion tracking disabled")

	// ErrNonSerializableRoot is returned when the root value passed to
	// Encode has no serializable representation at all.
	ErrNonSerializableRoot = errors.New("buffered-clone: root value is not serializable")
)
