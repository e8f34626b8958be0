package codecs

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/vanirdb/vanir-go/pkg/buff"
)

// encodeScalar runs one scalar encode and returns the payload bytes after
// peeling the codec's own length prefix, the way a composite parent would.
func encodeScalar(t *testing.T, c Codec, v any) *buff.Reader {
	t.Helper()
	w := buff.NewWriter()
	if err := c.Encode(w, v); err != nil {
		t.Fatalf("Encode(%v) failed: %v", v, err)
	}
	r := buff.NewReader(w.Unwrap())
	n, err := r.ReadInt32()
	if err != nil {
		t.Fatalf("reading scalar length prefix: %v", err)
	}
	if int(n) != r.Remaining() {
		t.Fatalf("scalar length prefix %d disagrees with %d payload bytes", n, r.Remaining())
	}
	var payload buff.Reader
	if err := r.SliceInto(&payload, int(n)); err != nil {
		t.Fatalf("slicing scalar payload: %v", err)
	}
	return &payload
}

func TestScalarCodecs_RoundTrip(t *testing.T) {
	id := uuid.MustParse("3f2504e0-4f89-41d3-9a0c-0305e82c3301")

	testCases := []struct {
		name  string
		codec Codec
		in    any
		want  any
	}{
		{name: "int32", codec: NewInt32Codec(), in: int32(-7), want: int32(-7)},
		{name: "int32 from int", codec: NewInt32Codec(), in: 123, want: int32(123)},
		{name: "int64", codec: NewInt64Codec(), in: int64(1) << 40, want: int64(1) << 40},
		{name: "float64", codec: NewFloat64Codec(), in: math.Pi, want: math.Pi},
		{name: "bool true", codec: NewBoolCodec(), in: true, want: true},
		{name: "bool false", codec: NewBoolCodec(), in: false, want: false},
		{name: "str", codec: NewStrCodec(), in: "heimdall", want: "heimdall"},
		{name: "str empty", codec: NewStrCodec(), in: "", want: ""},
		{name: "bytes", codec: NewBytesCodec(), in: []byte{0, 1, 0xFF}, want: []byte{0, 1, 0xFF}},
		{name: "uuid", codec: NewUUIDCodec(), in: id, want: id},
		{name: "uuid from string", codec: NewUUIDCodec(), in: id.String(), want: id},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload := encodeScalar(t, tc.codec, tc.in)
			got, err := tc.codec.Decode(payload)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("round trip: got %v (%T), want %v (%T)", got, got, tc.want, tc.want)
			}
			if err := payload.Finish(); err != nil {
				t.Errorf("payload not fully consumed: %v", err)
			}
		})
	}
}

func TestScalarCodecs_EncodeTypeChecks(t *testing.T) {
	testCases := []struct {
		name  string
		codec Codec
		in    any
	}{
		{name: "int32 from string", codec: NewInt32Codec(), in: "12"},
		{name: "int32 overflow", codec: NewInt32Codec(), in: int64(math.MaxInt32) + 1},
		{name: "int32 underflow", codec: NewInt32Codec(), in: int64(math.MinInt32) - 1},
		{name: "int64 from float", codec: NewInt64Codec(), in: 1.5},
		{name: "float64 from string", codec: NewFloat64Codec(), in: "1.5"},
		{name: "bool from int", codec: NewBoolCodec(), in: 1},
		{name: "str from bytes", codec: NewStrCodec(), in: []byte("s")},
		{name: "bytes from string", codec: NewBytesCodec(), in: "s"},
		{name: "uuid from int", codec: NewUUIDCodec(), in: 7},
		{name: "uuid from bad string", codec: NewUUIDCodec(), in: "not-a-uuid"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.codec.Encode(buff.NewWriter(), tc.in)
			var invalid *InvalidArgumentError
			if !errors.As(err, &invalid) {
				t.Errorf("got %v, want InvalidArgumentError", err)
			}
		})
	}
}

func TestScalarCodecs_DecodeSizeChecks(t *testing.T) {
	testCases := []struct {
		name    string
		codec   Codec
		payload []byte
	}{
		{name: "int32 short", codec: NewInt32Codec(), payload: []byte{1, 2}},
		{name: "int32 long", codec: NewInt32Codec(), payload: []byte{1, 2, 3, 4, 5}},
		{name: "int64 short", codec: NewInt64Codec(), payload: []byte{1}},
		{name: "float64 short", codec: NewFloat64Codec(), payload: []byte{1, 2, 3}},
		{name: "bool long", codec: NewBoolCodec(), payload: []byte{1, 0}},
		{name: "bool invalid byte", codec: NewBoolCodec(), payload: []byte{2}},
		{name: "uuid short", codec: NewUUIDCodec(), payload: []byte{1, 2, 3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.codec.Decode(buff.NewReader(tc.payload))
			var proto *ProtocolError
			if !errors.As(err, &proto) {
				t.Errorf("got %v, want ProtocolError", err)
			}
		})
	}
}

func TestScalarCodecs_Identity(t *testing.T) {
	testCases := []struct {
		codec Codec
		id    uuid.UUID
		name  string
	}{
		{NewInt32Codec(), Int32TypeID, "int32"},
		{NewInt64Codec(), Int64TypeID, "int64"},
		{NewFloat64Codec(), Float64TypeID, "float64"},
		{NewBoolCodec(), BoolTypeID, "bool"},
		{NewStrCodec(), StrTypeID, "str"},
		{NewBytesCodec(), BytesTypeID, "bytes"},
		{NewUUIDCodec(), UUIDTypeID, "uuid"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.codec.Kind() != KindScalar {
				t.Errorf("Kind() = %q, want %q", tc.codec.Kind(), KindScalar)
			}
			if tc.codec.TypeID() != tc.id {
				t.Errorf("TypeID() = %v, want %v", tc.codec.TypeID(), tc.id)
			}
			if tc.codec.TypeName() != tc.name {
				t.Errorf("TypeName() = %q, want %q", tc.codec.TypeName(), tc.name)
			}
		})
	}
}

func TestBytesCodec_DecodeCopies(t *testing.T) {
	c := NewBytesCodec()
	wire := []byte{0xAA, 0xBB}
	r := buff.NewReader(wire)

	got, err := c.Decode(r)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	wire[0] = 0x00
	if got.([]byte)[0] != 0xAA {
		t.Error("decoded bytes alias the receive buffer")
	}
}
