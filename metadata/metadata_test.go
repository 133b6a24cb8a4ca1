package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ridewithgps/tracklib/format"
	"github.com/ridewithgps/tracklib/internal/crc"
)

func TestEmptyTableFixture(t *testing.T) {
	buf, err := EncodeTable(nil, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x40, 0xBF}, buf)

	entries, n, err := DecodeTable(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Empty(t, entries)
}

func TestTrackTypeAndCreatedAtRoundTrip(t *testing.T) {
	entries := []Entry{
		TrackTypeEntry(format.TrackRoute, 42),
		CreatedAtEntry(1700000000),
	}

	buf, err := EncodeTable(nil, entries)
	require.NoError(t, err)

	got, n, err := DecodeTable(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, entries, got)
}

func TestDecodeRejectsCrcMismatch(t *testing.T) {
	buf, err := EncodeTable(nil, []Entry{TrackTypeEntry(format.TrackTrip, 1)})
	require.NoError(t, err)
	buf[len(buf)-1] ^= 0xFF

	_, _, err = DecodeTable(buf)
	require.Error(t, err)
}

func TestDecodeRejectsBadTrackTypeTag(t *testing.T) {
	buf, err := EncodeTable(nil, []Entry{TrackTypeEntry(format.TrackTrip, 1)})
	require.NoError(t, err)
	// corrupt the track_type tag byte (first byte of the entry body,
	// after the 1-byte count, 1-byte kind, and 2-byte size_le)
	buf[4] = 0xFE
	fixed := reCrc(t, buf)

	_, _, err = DecodeTable(fixed)
	require.Error(t, err)
}

func reCrc(t *testing.T, corrupted []byte) []byte {
	t.Helper()
	// Recompute the trailing CRC over the corrupted body so the failure
	// under test is the track-type validation, not an incidental CRC
	// mismatch masking it.
	body := corrupted[:len(corrupted)-2]
	return crc.Put16(append([]byte{}, body...), body)
}
