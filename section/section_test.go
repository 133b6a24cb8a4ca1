package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ridewithgps/tracklib/format"
	"github.com/ridewithgps/tracklib/schema"
	"github.com/ridewithgps/tracklib/value"
)

func mustSchema(t *testing.T, fields ...schema.Field) schema.Schema {
	t.Helper()
	s, err := schema.New(fields)
	require.NoError(t, err)
	return s
}

// TestI64ColumnFixture pins against the format's I64 column scenario:
// [0, Null, 40, -40] over schema [("a", I64)].
func TestI64ColumnFixture(t *testing.T) {
	s := mustSchema(t, schema.Field{Name: "a", Type: format.TypeI64})
	rows := []Row{
		{"a": value.I64Value(0)},
		{},
		{"a": value.I64Value(40)},
		{"a": value.I64Value(-40)},
	}

	h, body, err := Standard(s, rows).Build()
	require.NoError(t, err)
	require.Equal(t, 4, h.Rows)
	require.Equal(t, []byte{0b00000001, 0b00000000, 0b00000001, 0b00000001}, body[:4])
	require.Equal(t, []byte{0x58, 0x64, 0x4E, 0x32}, body[4:8])
	require.Equal(t, []byte{0x00, 0x28, 0xB0, 0x7F}, body[8:12])
	require.Equal(t, []byte{0xAB, 0x03, 0xAE, 0x67}, body[12:16])

	got, err := Decode(h, body, nil)
	require.NoError(t, err)
	require.Equal(t, value.I64Value(0), got[0]["a"])
	_, present := got[1]["a"]
	require.False(t, present)
	require.Equal(t, value.I64Value(40), got[2]["a"])
	require.Equal(t, value.I64Value(-40), got[3]["a"])
}

// TestBoolColumnFixture pins against the Bool column scenario: [true, Null,
// false].
func TestBoolColumnFixture(t *testing.T) {
	s := mustSchema(t, schema.Field{Name: "a", Type: format.TypeBool})
	rows := []Row{
		{"a": value.BoolValue(true)},
		{},
		{"a": value.BoolValue(false)},
	}

	h, body, err := Standard(s, rows).Build()
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x00, 0x01}, body[:3])
	require.Equal(t, []byte{0xCF, 0x33, 0x82, 0x4D}, body[3:7])
	require.Equal(t, []byte{0x01, 0x00}, body[7:9])
	require.Equal(t, []byte{0x5E, 0x5A, 0x51, 0x2D}, body[9:13])
}

func TestSchemaTrimmingDropsAllAbsentField(t *testing.T) {
	s := mustSchema(t,
		schema.Field{Name: "kept", Type: format.TypeI64},
		schema.Field{Name: "dropped", Type: format.TypeString},
	)
	rows := []Row{{"kept": value.I64Value(1)}, {"kept": value.I64Value(2)}}

	h, _, err := Standard(s, rows).Build()
	require.NoError(t, err)
	require.Equal(t, 1, h.Schema.Len())
	require.Equal(t, "kept", h.Schema.Fields[0].Name)
}

func TestCoercionDropsOutOfRangeValue(t *testing.T) {
	s := mustSchema(t, schema.Field{Name: "a", Type: format.TypeU64})
	rows := []Row{
		{"a": value.I64Value(-1)}, // negative, cannot coerce to U64
		{"a": value.U64Value(5)},
	}

	var dropped []string
	h, body, err := Standard(s, rows).Build(WithDropLogger(func(field string, row int) {
		dropped = append(dropped, field)
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, dropped)

	got, err := Decode(h, body, nil)
	require.NoError(t, err)
	_, present := got[0]["a"]
	require.False(t, present)
	require.Equal(t, value.U64Value(5), got[1]["a"])
}

func TestEncryptedSectionRoundTrip(t *testing.T) {
	s := mustSchema(t, schema.Field{Name: "a", Type: format.TypeI64})
	rows := []Row{{"a": value.I64Value(1)}, {"a": value.I64Value(2)}}
	key := []byte("01234567890123456789012345678901")
	require.Len(t, key, 32)

	h, body, err := Encrypted(s, rows, key).Build()
	require.NoError(t, err)
	require.Equal(t, format.EncodingEncrypted, h.Encoding)

	got, err := Decode(h, body, key)
	require.NoError(t, err)
	require.Equal(t, value.I64Value(1), got[0]["a"])

	wrongKey := []byte("11111111111111111111111111111111")[:32]
	_, err = Decode(h, body, wrongKey)
	require.Error(t, err)
}

func TestStandardSectionIgnoresKeyArgument(t *testing.T) {
	s := mustSchema(t, schema.Field{Name: "a", Type: format.TypeBool})
	rows := []Row{{"a": value.BoolValue(true)}}

	h, body, err := Standard(s, rows).Build()
	require.NoError(t, err)

	got, err := Decode(h, body, []byte("whatever, not even 32 bytes"))
	require.NoError(t, err)
	require.Equal(t, value.BoolValue(true), got[0]["a"])
}

func TestColumnUnknownNameReturnsNil(t *testing.T) {
	s := mustSchema(t, schema.Field{Name: "a", Type: format.TypeI64})
	rows := []Row{{"a": value.I64Value(1)}}
	h, body, err := Standard(s, rows).Build()
	require.NoError(t, err)

	out, err := Column(h, body, nil, "missing", nil)
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestDecodeProjectedFiltersByNameAndType(t *testing.T) {
	s := mustSchema(t,
		schema.Field{Name: "a", Type: format.TypeI64},
		schema.Field{Name: "b", Type: format.TypeString},
	)
	rows := []Row{
		{"a": value.I64Value(1), "b": value.StringValue("x")},
		{"a": value.I64Value(2)},
	}
	h, body, err := Standard(s, rows).Build()
	require.NoError(t, err)

	proj := mustSchema(t,
		schema.Field{Name: "a", Type: format.TypeI64},   // matches: kept
		schema.Field{Name: "b", Type: format.TypeI64},   // name matches, type doesn't: dropped
		schema.Field{Name: "missing", Type: format.TypeBool}, // name doesn't exist: dropped
	)

	got, err := DecodeProjected(h, body, nil, proj)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, value.I64Value(1), got[0]["a"])
	_, hasB := got[0]["b"]
	require.False(t, hasB)
	_, hasMissing := got[0]["missing"]
	require.False(t, hasMissing)

	require.Equal(t, value.I64Value(2), got[1]["a"])
}

func TestColumnTypeMismatchReturnsEmptySelection(t *testing.T) {
	s := mustSchema(t, schema.Field{Name: "a", Type: format.TypeI64})
	rows := []Row{{"a": value.I64Value(1)}}
	h, body, err := Standard(s, rows).Build()
	require.NoError(t, err)

	wantType := format.TypeString
	out, err := Column(h, body, nil, "a", &wantType)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Nil(t, out[0])
}
