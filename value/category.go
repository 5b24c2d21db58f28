// Package value is the host value adapter of spec §6.1: the capability set
// the encoder and decoder are written against, plus one concrete
// implementation over Go's own dynamic value representation so the module
// is runnable and testable standalone.
//
// Nothing in codec imports a concrete Go type directly — it only calls
// Adapter methods and switches on Category. A different host (say, values
// coming out of a scripting VM embedded in a larger program) plugs in by
// implementing Adapter over its own representation; it never needs to
// touch the wire format itself.
package value

// Category is the value classification the encoder dispatches on (spec
// §4.3) and the decoder reconstructs into (spec §4.5). It mirrors the
// closed tag set of spec §3 one-for-one except for Recursive, which is a
// back-reference rather than a value category, plus NonSerializable for
// values with no wire representation at all.
type Category uint8

const (
	Null Category = iota
	Boolean
	Number
	BigInt
	String
	Array
	Record
	Map
	Set
	Buffer
	Date
	Regexp
	Error
	TypedView
	NonSerializable
)

func (c Category) String() string {
	switch c {
	case Null:
		return "Null"
	case Boolean:
		return "Boolean"
	case Number:
		return "Number"
	case BigInt:
		return "BigInt"
	case String:
		return "String"
	case Array:
		return "Array"
	case Record:
		return "Record"
	case Map:
		return "Map"
	case Set:
		return "Set"
	case Buffer:
		return "Buffer"
	case Date:
		return "Date"
	case Regexp:
		return "Regexp"
	case Error:
		return "Error"
	case TypedView:
		return "TypedView"
	case NonSerializable:
		return "NonSerializable"
	default:
		return "Unknown"
	}
}
