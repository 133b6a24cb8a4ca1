package crc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestChecksum16EmptyTable pins the CRC-16 parameters against the format's
// own empty-metadata/data-table fixture: a single zero byte (the LEB128
// entry/section count of an empty table) CRCs to 0x40, 0xBF little-endian.
func TestChecksum16EmptyTable(t *testing.T) {
	got := Put16(nil, []byte{0x00})
	require.Equal(t, []byte{0x40, 0xBF}, got)
}

// TestChecksum32Fixtures pins the CRC-32 parameters against the format's
// I64 column fixture: presence bitmap [01 00 01 01] and its data bytes.
func TestChecksum32Fixtures(t *testing.T) {
	presence := []byte{0b00000001, 0b00000000, 0b00000001, 0b00000001}
	require.Equal(t, []byte{0x58, 0x64, 0x4E, 0x32}, Put32(nil, presence))

	data := []byte{0x00, 0x28, 0xB0, 0x7F}
	require.Equal(t, []byte{0xAB, 0x03, 0xAE, 0x67}, Put32(nil, data))
}

// TestChecksum32BoolFixture pins against the format's Bool column fixture.
func TestChecksum32BoolFixture(t *testing.T) {
	presence := []byte{0x01, 0x00, 0x01}
	require.Equal(t, []byte{0xCF, 0x33, 0x82, 0x4D}, Put32(nil, presence))

	data := []byte{0x01, 0x00}
	require.Equal(t, []byte{0x5E, 0x5A, 0x51, 0x2D}, Put32(nil, data))
}

func TestChecksumsDetectBitFlip(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	c16 := Checksum16(data)
	c32 := Checksum32(data)

	flipped := append([]byte(nil), data...)
	flipped[0] ^= 0x01

	require.NotEqual(t, c16, Checksum16(flipped))
	require.NotEqual(t, c32, Checksum32(flipped))
}
