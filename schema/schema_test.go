package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ridewithgps/tracklib/format"
)

func TestNewRejectsBadScale(t *testing.T) {
	_, err := New([]Field{{Name: "v", Type: format.TypeF64, Scale: 255}})
	require.NoError(t, err)

	_, err = New([]Field{{Name: "v", Type: format.TypeF64, Scale: 0}})
	require.NoError(t, err)

	_, err = New([]Field{{Name: "v", Type: format.TypeF64, Scale: 500}})
	require.Error(t, err)
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New([]Field{
		{Name: "a", Type: format.TypeI64},
		{Name: "a", Type: format.TypeBool},
	})
	require.Error(t, err)
}

func TestNewRejectsUnknownType(t *testing.T) {
	_, err := New([]Field{{Name: "a", Type: format.FieldType(0xFE)}})
	require.Error(t, err)
}

func TestIndexOf(t *testing.T) {
	s, err := New([]Field{{Name: "lat", Type: format.TypeF64, Scale: 7}, {Name: "id", Type: format.TypeU64}})
	require.NoError(t, err)
	require.Equal(t, 0, s.IndexOf("lat"))
	require.Equal(t, 1, s.IndexOf("id"))
	require.Equal(t, -1, s.IndexOf("missing"))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s, err := New([]Field{
		{Name: "lat", Type: format.TypeF64, Scale: 7},
		{Name: "note", Type: format.TypeString},
		{Name: "id", Type: format.TypeU64},
	})
	require.NoError(t, err)

	buf := s.Encode(nil)
	got, n, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, s, got)
}

func TestEncodeNameWithSpace(t *testing.T) {
	s, err := New([]Field{{Name: "field name", Type: format.TypeBool}})
	require.NoError(t, err)

	buf := s.Encode(nil)
	got, _, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, "field name", got.Fields[0].Name)
}
