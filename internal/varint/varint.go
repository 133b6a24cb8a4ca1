// Package varint implements the LEB128 variable-length integer encoding used
// throughout the RWTF wire format for lengths, counts, and delta-coded field
// values.
//
// Unsigned values use plain LEB128 (7 data bits per byte, continuation in the
// MSB). Signed values use signed LEB128: the same byte layout, but the value
// is sign-extended from the last significant group instead of zero-extended.
// Both decoders accept any encoding that fits within 10 bytes (the maximum
// needed to represent a full 64-bit value), including overlong encodings that
// still fit the target width.
package varint

import "github.com/ridewithgps/tracklib/errs"

// MaxLen is the maximum number of bytes a LEB128-encoded 64-bit value can
// occupy.
const MaxLen = 10

// PutUvarint appends the LEB128 encoding of v to dst and returns the result.
func PutUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// Uvarint decodes a LEB128-encoded unsigned integer from the front of data.
// It returns the decoded value and the number of bytes consumed, or
// (0, 0, err) if data is truncated or the encoding overflows 64 bits.
func Uvarint(data []byte) (uint64, int, error) {
	var v uint64
	var shift uint

	for i := 0; i < len(data) && i < MaxLen; i++ {
		b := data[i]
		if shift == 63 && b > 1 {
			return 0, 0, errs.ErrOutOfRange
		}

		v |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return v, i + 1, nil
		}

		shift += 7
	}

	if len(data) < MaxLen {
		return 0, 0, errs.ErrTruncatedInput
	}

	return 0, 0, errs.ErrOutOfRange
}

// PutVarint appends the signed LEB128 encoding of v to dst and returns the
// result. Signed LEB128 sign-extends from the last emitted group, so the
// terminal byte's sign bit (bit 6) must agree with the sign of the remaining
// value.
func PutVarint(dst []byte, v int64) []byte {
	more := true
	for more {
		b := byte(v) & 0x7F
		v >>= 7

		// Sign-extending right shift on a signed value; v now holds the
		// remaining (shifted) bits to encode.
		signBitSet := b&0x40 != 0
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			more = false
		} else {
			b |= 0x80
		}

		dst = append(dst, b)
	}

	return dst
}

// Varint decodes a signed LEB128-encoded integer from the front of data. It
// returns the decoded value and the number of bytes consumed, or
// (0, 0, err) if data is truncated or the encoding overflows 64 bits.
func Varint(data []byte) (int64, int, error) {
	var v int64
	var shift uint

	for i := 0; ; i++ {
		if i >= len(data) {
			return 0, 0, errs.ErrTruncatedInput
		}
		if i >= MaxLen {
			return 0, 0, errs.ErrOutOfRange
		}

		b := data[i]
		v |= int64(b&0x7F) << shift
		shift += 7

		if b&0x80 == 0 {
			// Sign-extend from the terminal group's sign bit.
			if shift < 64 && b&0x40 != 0 {
				v |= -1 << shift
			}

			return v, i + 1, nil
		}
	}
}
