package cmd

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanirdb/vanir-go/pkg/codecs"
	"github.com/vanirdb/vanir-go/pkg/schema"
)

func pointCodec(t *testing.T) *codecs.NamedTupleCodec {
	t.Helper()
	def := &schema.Definition{
		Name: "default::point",
		Fields: []schema.Field{
			{Name: "x", Type: "int32"},
			{Name: "y", Type: "int32"},
		},
	}
	codec, err := def.Compile()
	require.NoError(t, err)
	return codec
}

func TestEncodeMapping_ValueMode(t *testing.T) {
	codec := pointCodec(t)

	frame, err := encodeMapping(codec, "{x: 1, y: 2}", "value")
	require.NoError(t, err)

	want := "0000001c00000002000000000000000400000001000000000000000400000002"
	assert.Equal(t, want, hex.EncodeToString(frame))
}

func TestEncodeMapping_ArgsMode(t *testing.T) {
	codec := pointCodec(t)

	// Missing y encodes as a wire null in args mode.
	frame, err := encodeMapping(codec, "{x: 7}", "args")
	require.NoError(t, err)

	want := "000000180000000200000000000000040000000700000000ffffffff"
	assert.Equal(t, want, hex.EncodeToString(frame))
}

func TestEncodeMapping_Errors(t *testing.T) {
	codec := pointCodec(t)

	t.Run("value mode missing field", func(t *testing.T) {
		_, err := encodeMapping(codec, "{x: 1}", "value")
		assert.ErrorContains(t, err, "expected 2 elements in named tuple, got 1")
	})

	t.Run("args mode unknown field", func(t *testing.T) {
		_, err := encodeMapping(codec, "{x: 1, y: 2, z: 3}", "args")
		assert.ErrorContains(t, err, `unused named argument: "z"`)
	})

	t.Run("bad mode", func(t *testing.T) {
		_, err := encodeMapping(codec, "{x: 1, y: 2}", "both")
		assert.ErrorContains(t, err, "unknown mode")
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := encodeMapping(codec, "{x: [", "value")
		assert.ErrorContains(t, err, "failed to parse mapping")
	})
}

func TestDecodeFrame(t *testing.T) {
	codec := pointCodec(t)

	out, err := decodeFrame(codec, "0000001c00000002000000000000000400000001000000000000000400000002")
	require.NoError(t, err)
	assert.Equal(t, "x: 1\ny: 2\n", out)
}

func TestDecodeFrame_Errors(t *testing.T) {
	codec := pointCodec(t)

	t.Run("bad hex", func(t *testing.T) {
		_, err := decodeFrame(codec, "zz")
		assert.ErrorContains(t, err, "failed to parse hex frame")
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := decodeFrame(codec, "0000001c00000002")
		assert.ErrorContains(t, err, "disagrees with")
	})

	t.Run("wrong element count", func(t *testing.T) {
		// length=4, count=1 against an arity-2 schema.
		_, err := decodeFrame(codec, "0000000400000001")
		assert.ErrorContains(t, err, "cannot decode named tuple: expected 2 elements, got 1")
	})
}

func TestEncodeDecodeRoundTripThroughCLI(t *testing.T) {
	codec := pointCodec(t)

	frame, err := encodeMapping(codec, "{x: -5, y: 600}", "value")
	require.NoError(t, err)

	out, err := decodeFrame(codec, hex.EncodeToString(frame))
	require.NoError(t, err)
	assert.Equal(t, "x: -5\ny: 600\n", out)
}

func TestInspectCodec(t *testing.T) {
	def := &schema.Definition{
		Name: "default::movie",
		Fields: []schema.Field{
			{Name: "title", Type: "str"},
			{Name: "director", Fields: []schema.Field{
				{Name: "name", Type: "str"},
			}},
		},
	}
	codec, err := def.Compile()
	require.NoError(t, err)

	out := inspectCodec(codec, 0)
	assert.Contains(t, out, "default::movie (kind=namedtuple")
	assert.Contains(t, out, "arity=2")
	assert.Contains(t, out, "title: str (kind=scalar)")
	assert.Contains(t, out, "default::movie.director (kind=namedtuple")
}
