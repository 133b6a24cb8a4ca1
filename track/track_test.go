package track

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ridewithgps/tracklib/format"
	"github.com/ridewithgps/tracklib/metadata"
	"github.com/ridewithgps/tracklib/schema"
	"github.com/ridewithgps/tracklib/section"
	"github.com/ridewithgps/tracklib/value"
)

// TestEmptyTrackFixture pins against the format's empty-track scenario:
// the 24-byte header, then the empty metadata table (00 40 BF), then the
// empty data table (00 40 BF).
func TestEmptyTrackFixture(t *testing.T) {
	data, err := WriteTrack(0, nil, nil)
	require.NoError(t, err)
	require.Len(t, data, FileHeaderSize+3+3)
	require.Equal(t, []byte{0x00, 0x40, 0xBF}, data[FileHeaderSize:FileHeaderSize+3])
	require.Equal(t, []byte{0x00, 0x40, 0xBF}, data[FileHeaderSize+3:])

	r, err := NewReader(data)
	require.NoError(t, err)
	require.Equal(t, FileVersion, r.FileVersion())
	require.Equal(t, 0, r.SectionCount())
	require.Empty(t, r.Metadata())
}

func TestFileHeaderRejectsBadMagic(t *testing.T) {
	data, err := WriteTrack(0, nil, nil)
	require.NoError(t, err)
	data[0] ^= 0xFF

	_, err = NewReader(data)
	require.Error(t, err)
}

func TestFileHeaderDetectsCrcFlip(t *testing.T) {
	data, err := WriteTrack(0, nil, nil)
	require.NoError(t, err)
	data[9] ^= 0x01 // inside the 22-byte CRC-protected header region

	_, err = NewReader(data)
	require.Error(t, err)
}

func TestWriteReadRoundTrip(t *testing.T) {
	sch, err := schema.New([]schema.Field{
		{Name: "lat", Type: format.TypeF64, Scale: 7},
		{Name: "note", Type: format.TypeString},
	})
	require.NoError(t, err)

	rows := []section.Row{
		{"lat": value.F64Value(45.5), "note": value.StringValue("start")},
		{"lat": value.F64Value(45.6)},
	}
	entries := []metadata.Entry{
		metadata.TrackTypeEntry(format.TrackRoute, 7),
		metadata.CreatedAtEntry(1_700_000_000),
	}

	data, err := WriteTrack(3, entries, []section.Section{section.Standard(sch, rows)})
	require.NoError(t, err)

	r, err := NewReader(data)
	require.NoError(t, err)
	require.Equal(t, uint16(3), r.CreatorVersion())
	require.Equal(t, entries, r.Metadata())
	require.Equal(t, 1, r.SectionCount())

	enc, err := r.SectionEncoding(0)
	require.NoError(t, err)
	require.Equal(t, format.EncodingStandard, enc)

	gotRows, err := r.SectionRows(0)
	require.NoError(t, err)
	require.Equal(t, 2, gotRows)

	sectionRows, err := r.SectionData(0, nil)
	require.NoError(t, err)
	require.InDelta(t, 45.5, sectionRows[0]["lat"].F64, 1e-6)
	require.Equal(t, "start", sectionRows[0]["note"].Str)
	_, present := sectionRows[1]["note"]
	require.False(t, present)

	// repeated reads hit the cache and return identical results
	again, err := r.SectionData(0, nil)
	require.NoError(t, err)
	require.Equal(t, sectionRows, again)
}

func TestSectionDataWithProjectionSchema(t *testing.T) {
	sch, err := schema.New([]schema.Field{
		{Name: "lat", Type: format.TypeF64, Scale: 7},
		{Name: "note", Type: format.TypeString},
	})
	require.NoError(t, err)

	rows := []section.Row{
		{"lat": value.F64Value(45.5), "note": value.StringValue("start")},
	}

	data, err := WriteTrack(1, nil, []section.Section{section.Standard(sch, rows)})
	require.NoError(t, err)

	r, err := NewReader(data)
	require.NoError(t, err)

	proj, err := schema.New([]schema.Field{{Name: "lat", Type: format.TypeF64, Scale: 7}})
	require.NoError(t, err)

	got, err := r.SectionData(0, nil, proj)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.InDelta(t, 45.5, got[0]["lat"].F64, 1e-6)
	_, hasNote := got[0]["note"]
	require.False(t, hasNote)

	// unprojected call still returns full rows and isn't poisoned by the
	// projected call above.
	full, err := r.SectionData(0, nil)
	require.NoError(t, err)
	require.Equal(t, "start", full[0]["note"].Str)
}

func TestSectionIndexOutOfRange(t *testing.T) {
	data, err := WriteTrack(0, nil, nil)
	require.NoError(t, err)
	r, err := NewReader(data)
	require.NoError(t, err)

	_, err = r.SectionRows(0)
	require.Error(t, err)
}

func TestEncryptedSectionInFullTrack(t *testing.T) {
	sch, err := schema.New([]schema.Field{{Name: "v", Type: format.TypeU64}})
	require.NoError(t, err)
	rows := []section.Row{{"v": value.U64Value(1)}, {"v": value.U64Value(2)}}
	key := []byte("01234567890123456789012345678901")

	data, err := WriteTrack(0, nil, []section.Section{section.Encrypted(sch, rows, key)})
	require.NoError(t, err)

	r, err := NewReader(data)
	require.NoError(t, err)

	_, err = r.SectionData(0, []byte("the wrong key, at the right size"))
	require.Error(t, err)

	got, err := r.SectionData(0, key)
	require.NoError(t, err)
	require.Equal(t, value.U64Value(1), got[0]["v"])
}
