// Package crc implements the two CRC parameterizations the RWTF wire format
// relies on for integrity framing: a 16-bit CRC over the file header,
// metadata table, data table, and section headers, and a 32-bit CRC over
// presence bitmaps and column data bodies.
//
// Both checksums are pinned against the byte-exact fixtures the format's
// test suite carries. The 16-bit CRC is a reflected CRC-16 with polynomial
// 0x8005 (table polynomial 0xA001), init 0xFFFF, xorout 0xFFFF. The 32-bit
// CRC is CRC-32 with polynomial 0x04C11DB7, init/xorout 0xFFFFFFFF, computed
// MSB-first with no input/output reflection (the non-reflected variant of
// the classic Ethernet/zip polynomial). Both are stored little-endian on the
// wire. Confirm any change here against the fixtures before trusting it.
package crc

import "encoding/binary"

// table16 is the reflected lookup table for the 16-bit CRC (table
// polynomial 0xA001, the bit-reversal of 0x8005).
var table16 = func() [256]uint16 {
	const poly = 0xA001

	var table [256]uint16
	for i := 0; i < 256; i++ {
		c := uint16(i)
		for j := 0; j < 8; j++ {
			if c&1 != 0 {
				c = (c >> 1) ^ poly
			} else {
				c >>= 1
			}
		}
		table[i] = c
	}

	return table
}()

// table32 is the non-reflected, MSB-first lookup table for the 32-bit CRC
// (polynomial 0x04C11DB7), indexed by the top byte of the running register.
var table32 = func() [256]uint32 {
	const poly = 0x04C11DB7

	var table [256]uint32
	for i := 0; i < 256; i++ {
		c := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if c&0x80000000 != 0 {
				c = (c << 1) ^ poly
			} else {
				c <<= 1
			}
		}
		table[i] = c
	}

	return table
}()

// Checksum16 computes the format's 16-bit CRC over data.
func Checksum16(data []byte) uint16 {
	c := uint16(0xFFFF)
	for _, b := range data {
		c = (c >> 8) ^ table16[byte(c)^b]
	}

	return c ^ 0xFFFF
}

// Put16 appends the little-endian 16-bit CRC of data to dst.
func Put16(dst []byte, data []byte) []byte {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], Checksum16(data))

	return append(dst, buf[:]...)
}

// Checksum32 computes the format's 32-bit CRC over data.
func Checksum32(data []byte) uint32 {
	c := uint32(0xFFFFFFFF)
	for _, b := range data {
		c = (c << 8) ^ table32[byte(c>>24)^b]
	}

	return c ^ 0xFFFFFFFF
}

// Put32 appends the little-endian 32-bit CRC of data to dst.
func Put32(dst []byte, data []byte) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], Checksum32(data))

	return append(dst, buf[:]...)
}
