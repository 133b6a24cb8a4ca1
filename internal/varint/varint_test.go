package varint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUvarintRoundTrip(t *testing.T) {
	vals := []uint64{0, 1, 127, 128, 300, 1 << 32, ^uint64(0)}
	for _, v := range vals {
		buf := PutUvarint(nil, v)
		got, n, err := Uvarint(buf)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)
		require.Equal(t, v, got)
	}
}

func TestVarintRoundTrip(t *testing.T) {
	vals := []int64{0, 1, -1, 63, -64, 1000, -1000, 1<<62 - 1, -(1 << 62)}
	for _, v := range vals {
		buf := PutVarint(nil, v)
		got, n, err := Varint(buf)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)
		require.Equal(t, v, got)
	}
}

func TestVarintTruncated(t *testing.T) {
	_, _, err := Varint(nil)
	require.Error(t, err)

	_, _, err = Uvarint([]byte{0x80})
	require.Error(t, err)
}

func TestVarintOverflow(t *testing.T) {
	overlong := make([]byte, MaxLen+1)
	for i := range overlong {
		overlong[i] = 0x80
	}
	_, _, err := Varint(overlong)
	require.Error(t, err)
}
