package codecs

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/vanirdb/vanir-go/pkg/buff"
)

// Well-known type descriptor ids for the base scalar types. These are fixed
// by the protocol and never vary per connection.
var (
	UUIDTypeID    = uuid.MustParse("00000000-0000-0000-0000-000000000100")
	StrTypeID     = uuid.MustParse("00000000-0000-0000-0000-000000000101")
	BytesTypeID   = uuid.MustParse("00000000-0000-0000-0000-000000000102")
	Int32TypeID   = uuid.MustParse("00000000-0000-0000-0000-000000000104")
	Int64TypeID   = uuid.MustParse("00000000-0000-0000-0000-000000000105")
	Float64TypeID = uuid.MustParse("00000000-0000-0000-0000-000000000107")
	BoolTypeID    = uuid.MustParse("00000000-0000-0000-0000-000000000109")
)

// scalarType carries the identity shared by all scalar codecs.
type scalarType struct {
	id   uuid.UUID
	name string
}

func (t scalarType) TypeID() uuid.UUID { return t.id }
func (t scalarType) TypeName() string  { return t.name }
func (t scalarType) Kind() Kind        { return KindScalar }

// Int32Codec serializes 32-bit signed integers.
type Int32Codec struct{ scalarType }

func NewInt32Codec() *Int32Codec {
	return &Int32Codec{scalarType{Int32TypeID, "int32"}}
}

func (c *Int32Codec) Encode(w *buff.Writer, v any) error {
	var n int64
	switch x := v.(type) {
	case int32:
		n = int64(x)
	case int:
		n = int64(x)
	case int64:
		n = x
	default:
		return &InvalidArgumentError{Message: fmt.Sprintf("an int32 was expected, got %v", v)}
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return &InvalidArgumentError{Message: fmt.Sprintf("value %d out of int32 range", n)}
	}
	w.WriteInt32(4)
	w.WriteInt32(int32(n))
	return nil
}

func (c *Int32Codec) Decode(r *buff.Reader) (any, error) {
	if r.Remaining() != 4 {
		return nil, &ProtocolError{Message: fmt.Sprintf("cannot decode int32: expected 4 bytes, got %d", r.Remaining())}
	}
	return r.ReadInt32()
}

// Int64Codec serializes 64-bit signed integers.
type Int64Codec struct{ scalarType }

func NewInt64Codec() *Int64Codec {
	return &Int64Codec{scalarType{Int64TypeID, "int64"}}
}

func (c *Int64Codec) Encode(w *buff.Writer, v any) error {
	var n int64
	switch x := v.(type) {
	case int64:
		n = x
	case int:
		n = int64(x)
	case int32:
		n = int64(x)
	default:
		return &InvalidArgumentError{Message: fmt.Sprintf("an int64 was expected, got %v", v)}
	}
	w.WriteInt32(8)
	w.WriteUint64(uint64(n))
	return nil
}

func (c *Int64Codec) Decode(r *buff.Reader) (any, error) {
	if r.Remaining() != 8 {
		return nil, &ProtocolError{Message: fmt.Sprintf("cannot decode int64: expected 8 bytes, got %d", r.Remaining())}
	}
	u, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	return int64(u), nil
}

// Float64Codec serializes IEEE-754 double-precision floats.
type Float64Codec struct{ scalarType }

func NewFloat64Codec() *Float64Codec {
	return &Float64Codec{scalarType{Float64TypeID, "float64"}}
}

func (c *Float64Codec) Encode(w *buff.Writer, v any) error {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	default:
		return &InvalidArgumentError{Message: fmt.Sprintf("a float64 was expected, got %v", v)}
	}
	w.WriteInt32(8)
	w.WriteUint64(math.Float64bits(f))
	return nil
}

func (c *Float64Codec) Decode(r *buff.Reader) (any, error) {
	if r.Remaining() != 8 {
		return nil, &ProtocolError{Message: fmt.Sprintf("cannot decode float64: expected 8 bytes, got %d", r.Remaining())}
	}
	u, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	return math.Float64frombits(u), nil
}

// BoolCodec serializes booleans as a single 0 or 1 byte.
type BoolCodec struct{ scalarType }

func NewBoolCodec() *BoolCodec {
	return &BoolCodec{scalarType{BoolTypeID, "bool"}}
}

func (c *BoolCodec) Encode(w *buff.Writer, v any) error {
	b, ok := v.(bool)
	if !ok {
		return &InvalidArgumentError{Message: fmt.Sprintf("a bool was expected, got %v", v)}
	}
	w.WriteInt32(1)
	if b {
		w.WriteBytes([]byte{1})
	} else {
		w.WriteBytes([]byte{0})
	}
	return nil
}

func (c *BoolCodec) Decode(r *buff.Reader) (any, error) {
	if r.Remaining() != 1 {
		return nil, &ProtocolError{Message: fmt.Sprintf("cannot decode bool: expected 1 byte, got %d", r.Remaining())}
	}
	p, err := r.ReadBytes(1)
	if err != nil {
		return nil, err
	}
	switch p[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return nil, &ProtocolError{Message: fmt.Sprintf("cannot decode bool: invalid byte 0x%02x", p[0])}
	}
}

// StrCodec serializes UTF-8 strings.
type StrCodec struct{ scalarType }

func NewStrCodec() *StrCodec {
	return &StrCodec{scalarType{StrTypeID, "str"}}
}

func (c *StrCodec) Encode(w *buff.Writer, v any) error {
	s, ok := v.(string)
	if !ok {
		return &InvalidArgumentError{Message: fmt.Sprintf("a string was expected, got %v", v)}
	}
	w.WriteInt32(int32(len(s)))
	w.WriteBytes([]byte(s))
	return nil
}

func (c *StrCodec) Decode(r *buff.Reader) (any, error) {
	p, err := r.ReadBytes(r.Remaining())
	if err != nil {
		return nil, err
	}
	return string(p), nil
}

// BytesCodec serializes raw byte strings.
type BytesCodec struct{ scalarType }

func NewBytesCodec() *BytesCodec {
	return &BytesCodec{scalarType{BytesTypeID, "bytes"}}
}

func (c *BytesCodec) Encode(w *buff.Writer, v any) error {
	p, ok := v.([]byte)
	if !ok {
		return &InvalidArgumentError{Message: fmt.Sprintf("a byte slice was expected, got %v", v)}
	}
	w.WriteInt32(int32(len(p)))
	w.WriteBytes(p)
	return nil
}

func (c *BytesCodec) Decode(r *buff.Reader) (any, error) {
	p, err := r.ReadBytes(r.Remaining())
	if err != nil {
		return nil, err
	}
	// Copy out so the result does not alias the receive buffer.
	out := make([]byte, len(p))
	copy(out, p)
	return out, nil
}

// UUIDCodec serializes 16-byte UUIDs.
type UUIDCodec struct{ scalarType }

func NewUUIDCodec() *UUIDCodec {
	return &UUIDCodec{scalarType{UUIDTypeID, "uuid"}}
}

func (c *UUIDCodec) Encode(w *buff.Writer, v any) error {
	var id uuid.UUID
	switch x := v.(type) {
	case uuid.UUID:
		id = x
	case string:
		parsed, err := uuid.Parse(x)
		if err != nil {
			return &InvalidArgumentError{Message: fmt.Sprintf("a uuid was expected, got %q", x), Cause: err}
		}
		id = parsed
	default:
		return &InvalidArgumentError{Message: fmt.Sprintf("a uuid was expected, got %v", v)}
	}
	w.WriteInt32(16)
	w.WriteBytes(id[:])
	return nil
}

func (c *UUIDCodec) Decode(r *buff.Reader) (any, error) {
	if r.Remaining() != 16 {
		return nil, &ProtocolError{Message: fmt.Sprintf("cannot decode uuid: expected 16 bytes, got %d", r.Remaining())}
	}
	p, err := r.ReadBytes(16)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromBytes(p)
	if err != nil {
		return nil, &ProtocolError{Message: fmt.Sprintf("cannot decode uuid: %v", err)}
	}
	return id, nil
}
