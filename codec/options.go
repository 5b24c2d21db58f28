// Package codec implements the encoder and decoder of spec §4.3–§4.6: the
// value-category dispatch, the identity cache threaded through an encode,
// and the single-pass decoder with its offset→value table.
package codec

import (
	"github.com/Offroaders123/buffered-clone/internal/options"
	"github.com/Offroaders123/buffered-clone/pool"
	"github.com/Offroaders123/buffered-clone/value"
)

// Recursion selects the identity cache's admission policy (spec §4.2).
type Recursion uint8

const (
	// RecursionAll tracks every container and every non-empty primitive
	// (strings, finite numbers, bigints). This is the default.
	RecursionAll Recursion = iota

	// RecursionSome tracks only containers; primitives are never deduped
	// or back-referenced, so two occurrences of the same primitive
	// reference are emitted in full each time.
	RecursionSome

	// RecursionNone disables the identity cache entirely. Encoding a
	// cyclic graph under this policy fails with errs.ErrCyclicWithoutCache
	// instead of recursing forever.
	RecursionNone
)

// DefaultMaxDepth is the decoder's default maximum container nesting
// depth (spec §5).
const DefaultMaxDepth = 10000

// EncodeOptions configures a single Encode call.
type EncodeOptions struct {
	Adapter           value.Adapter
	Recursion         Recursion
	StagingBufferSize int
}

func newEncodeOptions() *EncodeOptions {
	return &EncodeOptions{
		Adapter:           value.GoAdapter{},
		Recursion:         RecursionAll,
		StagingBufferSize: pool.StagingBufferSize,
	}
}

// EncodeOption is a functional option for Encode, in the same style as
// blob.NumericEncoderOption: a type alias over the generic options.Option.
type EncodeOption = options.Option[*EncodeOptions]

// WithAdapter supplies the host value adapter. Defaults to value.GoAdapter{}.
func WithAdapter(a value.Adapter) EncodeOption {
	return options.NoError(func(o *EncodeOptions) { o.Adapter = a })
}

// WithRecursion sets the identity cache's admission policy.
func WithRecursion(r Recursion) EncodeOption {
	return options.NoError(func(o *EncodeOptions) { o.Recursion = r })
}

// WithStagingBufferSize overrides the chunk size the string emitter
// streams UTF-8 bytes through (spec §4.4). Primarily useful for tests
// that want to stream a short string through several chunks. The chunk
// size does not decide the splice path: that depends only on whether the
// string's byte length exceeds 255.
func WithStagingBufferSize(n int) EncodeOption {
	return options.NoError(func(o *EncodeOptions) {
		if n > 0 {
			o.StagingBufferSize = n
		}
	})
}

// DecodeOptions configures a single Decode call.
type DecodeOptions struct {
	Adapter  value.Adapter
	MaxDepth int
}

func newDecodeOptions() *DecodeOptions {
	return &DecodeOptions{
		Adapter:  value.GoAdapter{},
		MaxDepth: DefaultMaxDepth,
	}
}

// DecodeOption is a functional option for Decode.
type DecodeOption = options.Option[*DecodeOptions]

// WithDecodeAdapter supplies the host value adapter used to reconstruct
// values. Defaults to value.GoAdapter{}.
func WithDecodeAdapter(a value.Adapter) DecodeOption {
	return options.NoError(func(o *DecodeOptions) { o.Adapter = a })
}

// WithMaxDepth overrides the maximum container nesting depth the decoder
// accepts before failing with errs.ErrNestingTooDeep.
func WithMaxDepth(n int) DecodeOption {
	return options.NoError(func(o *DecodeOptions) {
		if n > 0 {
			o.MaxDepth = n
		}
	})
}
