package codecs

import (
	"github.com/google/uuid"

	"github.com/vanirdb/vanir-go/pkg/buff"
)

// Kind discriminates codec variants for runtime dispatch by the codec
// registry. The set is open; this package implements scalars and named
// tuples.
type Kind string

const (
	KindScalar     Kind = "scalar"
	KindNamedTuple Kind = "namedtuple"
)

// Codec is the contract every wire codec implements.
//
// Encode appends the wire representation of v, including the codec's own
// length prefix where the format calls for one. Decode consumes a reader
// that has been sliced to exactly the value's payload bytes; a codec that
// leaves bytes unread indicates a framing bug in the caller.
type Codec interface {
	// TypeID returns the protocol type descriptor id this codec serializes.
	TypeID() uuid.UUID

	// TypeName returns a human-readable type name. Not wire-relevant.
	TypeName() string

	// Kind returns the codec's variant tag. Fixed per implementation.
	Kind() Kind

	// Encode appends the wire form of v to w.
	Encode(w *buff.Writer, v any) error

	// Decode reads one value from r.
	Decode(r *buff.Reader) (any, error)
}
