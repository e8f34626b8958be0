package codecs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/vanirdb/vanir-go/pkg/buff"
)

// emptyTupleBytes is the canonical wire form of a zero-element tuple:
// length=4, count=0. Shared across all zero-arity EncodeArgs calls; callers
// must treat returned wire bytes as read-only.
var emptyTupleBytes = []byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00}

// NamedTupleCodec serializes named tuple values: fixed-arity ordered
// collections of named fields, each field handled by its own sub-codec.
//
// The schema (field names, order, sub-codecs) is fixed at construction and
// never re-validated per call. Instances are built by the codec registry
// from server type descriptors and reused for the lifetime of that type.
type NamedTupleCodec struct {
	id        uuid.UUID
	name      string
	subCodecs []Codec
	names     []string
	nameSet   map[string]struct{}
}

// NewNamedTupleCodec builds a codec for the schema given by the ordered
// sub-codecs and field names. The two slices must have equal length and
// names must be unique. The codec keeps its own copies of both slices.
func NewNamedTupleCodec(id uuid.UUID, name string, subCodecs []Codec, names []string) (*NamedTupleCodec, error) {
	if len(subCodecs) != len(names) {
		return nil, fmt.Errorf("named tuple %q: %d sub-codecs for %d names", name, len(subCodecs), len(names))
	}
	nameSet := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := nameSet[n]; dup {
			return nil, fmt.Errorf("named tuple %q: duplicate field name %q", name, n)
		}
		nameSet[n] = struct{}{}
	}
	c := &NamedTupleCodec{
		id:        id,
		name:      name,
		subCodecs: make([]Codec, len(subCodecs)),
		names:     make([]string, len(names)),
		nameSet:   nameSet,
	}
	copy(c.subCodecs, subCodecs)
	copy(c.names, names)
	return c, nil
}

// TypeID returns the type descriptor id of this named tuple type.
func (c *NamedTupleCodec) TypeID() uuid.UUID { return c.id }

// TypeName returns the human-readable type name. Not wire-relevant.
func (c *NamedTupleCodec) TypeName() string { return c.name }

// Kind returns KindNamedTuple. It never varies per instance.
func (c *NamedTupleCodec) Kind() Kind { return KindNamedTuple }

// SubCodecs returns a copy of the ordered sub-codec list.
func (c *NamedTupleCodec) SubCodecs() []Codec {
	out := make([]Codec, len(c.subCodecs))
	copy(out, c.subCodecs)
	return out
}

// Names returns a copy of the ordered field name list.
func (c *NamedTupleCodec) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Encode serializes v in value mode, used when the named tuple appears as a
// value inside another composite. v must be a map[string]any carrying
// exactly the schema's field names, none of them nil. A field rejected by
// its sub-codec for a caller-input reason is re-reported as an
// InvalidArgumentError naming the field, with the sub-codec's error as the
// cause; all other sub-codec errors propagate unchanged.
func (c *NamedTupleCodec) Encode(w *buff.Writer, v any) error {
	object, ok := v.(map[string]any)
	if !ok {
		return &InvalidArgumentError{Message: fmt.Sprintf("a map of named tuple fields was expected, got %v", v)}
	}

	arity := len(c.subCodecs)
	if len(object) != arity {
		return &QueryArgumentError{Message: fmt.Sprintf(
			"expected %d element%s in named tuple, got %d",
			arity, pluralSuffix(arity), len(object))}
	}

	elems := buff.NewWriter()
	for i, name := range c.names {
		val, present := object[name]
		if !present || val == nil {
			return &MissingArgumentError{Message: fmt.Sprintf("missing element %q in named tuple", name)}
		}
		elems.WriteInt32(0) // reserved
		if err := c.subCodecs[i].Encode(elems, val); err != nil {
			if isArgumentError(err) {
				return &InvalidArgumentError{
					Message: fmt.Sprintf("invalid element %q in named tuple: %s", name, err.Error()),
					Cause:   err,
				}
			}
			return err
		}
	}

	w.WriteInt32(int32(4 + elems.Len()))
	w.WriteInt32(int32(arity))
	w.WriteBytes(elems.Unwrap())
	return nil
}

// EncodeArgs serializes args in argument mode, used for the named arguments
// of a query. A nil mapping is an error; argument names beyond the schema
// are an error; but an argument that is absent or nil is legal and encodes
// as an explicit wire null. Returns a fresh frame, except for the shared
// canonical empty tuple returned by zero-arity schemas.
//
// Only a strict count overflow triggers the unused-argument scan: supplying
// fewer arguments than the schema declares is not rejected here, each
// missing field simply encodes as null. This asymmetry with Encode's strict
// key-set equality is deliberate.
func (c *NamedTupleCodec) EncodeArgs(args map[string]any) ([]byte, error) {
	if args == nil {
		return nil, &MissingArgumentError{Message: "expected named arguments, got nil"}
	}

	arity := len(c.subCodecs)
	if len(args) > arity {
		extra := make([]string, 0, len(args)-arity)
		for k := range args {
			if _, known := c.nameSet[k]; !known {
				extra = append(extra, k)
			}
		}
		// Map iteration order is random; report deterministically.
		sort.Strings(extra)
		return nil, &UnknownArgumentError{Message: fmt.Sprintf(
			`unused named argument%s: "%s"`,
			pluralSuffix(len(extra)), strings.Join(extra, `", "`))}
	}

	if arity == 0 {
		return emptyTupleBytes, nil
	}

	elems := buff.NewWriter()
	for i, name := range c.names {
		elems.WriteInt32(0) // reserved
		val := args[name]
		if val == nil {
			elems.WriteInt32(-1)
			continue
		}
		if err := c.subCodecs[i].Encode(elems, val); err != nil {
			return nil, err
		}
	}

	w := buff.NewWriter()
	w.WriteInt32(int32(4 + elems.Len()))
	w.WriteInt32(int32(arity))
	w.WriteBytes(elems.Unwrap())
	return w.Unwrap(), nil
}

// Decode deserializes one named tuple payload from r into a map keyed by
// the schema's field names. r must be positioned after the outer length
// prefix, which the enclosing message parser consumes when it slices the
// payload. An element count disagreeing with the schema arity is a
// ProtocolError; all nested errors propagate unwrapped.
func (c *NamedTupleCodec) Decode(r *buff.Reader) (any, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	arity := len(c.subCodecs)
	if int(count) != arity {
		return nil, &ProtocolError{Message: fmt.Sprintf(
			"cannot decode named tuple: expected %d elements, got %d", arity, count)}
	}

	result := make(map[string]any, arity)
	var elem buff.Reader
	for i, name := range c.names {
		if err := r.Discard(4); err != nil { // reserved
			return nil, err
		}
		elemLen, err := r.ReadInt32()
		if err != nil {
			return nil, err
		}
		if elemLen == -1 {
			result[name] = nil
			continue
		}
		if err := r.SliceInto(&elem, int(elemLen)); err != nil {
			return nil, err
		}
		val, err := c.subCodecs[i].Decode(&elem)
		if err != nil {
			return nil, err
		}
		if err := elem.Finish(); err != nil {
			return nil, err
		}
		result[name] = val
	}
	return result, nil
}
