// Package codecs implements the VanirDB binary wire-protocol codecs used by
// the client driver to serialize query arguments and deserialize results.
//
// Every codec serializes one protocol type. Composite codecs hold nested
// sub-codecs and delegate per-field work to them; sub-codecs are opaque
// beyond the Codec interface, so composites never care what concrete type a
// field carries.
//
// # Named Tuple Wire Format
//
// A named tuple is a fixed-arity, ordered collection of named fields. Its
// wire encoding is:
//
//	[Length(4)][Count(4)] then per element [Reserved(4)][ValueLen(4)][Value]
//
// Fields (all integers big-endian):
//   - Length: byte size of everything after the length field itself,
//     i.e. 4 (count) + total element bytes
//   - Count: number of elements; must equal the codec's schema arity
//   - Reserved: always zero
//   - ValueLen: byte size of the element's value, or -1 for a null element
//     (in which case no value bytes follow)
//   - Value: the element encoded by its field's sub-codec
//
// Field names are not on the wire; order is. The schema (ordered field
// names plus one sub-codec per field) is agreed out of band via the server's
// type descriptors.
//
// # Value Mode vs Argument Mode
//
// NamedTupleCodec has two encode entry points with different strictness.
// Encode (value mode) is used when a named tuple appears as a value inside
// another composite: the input must carry exactly the schema's field names
// and no field may be null. EncodeArgs (argument mode) serializes the named
// arguments of a query: keys beyond the schema are rejected, but a missing
// or nil argument is legal and encodes as an explicit wire null (-1).
//
// # Error Handling
//
// Errors split into two layers. Caller-input errors (QueryArgumentError,
// InvalidArgumentError, MissingArgumentError, UnknownArgumentError) mean the
// supplied value does not fit the schema. ProtocolError means the server
// sent bytes that violate the wire contract. Callers that need to
// distinguish them should use errors.As. A failed encode or decode may
// leave its buffer partially written or partially consumed; discard the
// buffer rather than reuse it.
//
// # Thread Safety
//
// Codec instances carry no per-call state and are immutable after
// construction, so one instance may serve concurrent encode/decode calls on
// independent buffers. Thread safety of nested sub-codecs is inherited, not
// enforced.
package codecs
