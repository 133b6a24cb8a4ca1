// Package field implements the per-FieldType column codecs of spec §4.2: one
// encoder/decoder pair per wire type, operating on the slice of already
// present (non-null) values for a column.
//
// All numeric columns (I64, U64, and F64's scaled integer representation)
// share the same delta-coding engine: the first value is written as a full
// signed LEB128, and each subsequent value is written as the signed LEB128
// of its wrapping difference from the previous value (spec §4.2). Go's
// built-in signed integer arithmetic already wraps modulo 2^64 on overflow,
// so the engine operates directly on int64 without any special-casing for
// the unsigned (U64) case — U64 values are bit-reinterpreted to/from int64
// at the boundary (see u64.go).
package field

import (
	"github.com/ridewithgps/tracklib/internal/varint"
)

func encodeDeltaI64(dst []byte, vals []int64) []byte {
	var prev int64
	for i, v := range vals {
		toEncode := v
		if i > 0 {
			toEncode = v - prev
		}
		dst = varint.PutVarint(dst, toEncode)
		prev = v
	}

	return dst
}

func decodeDeltaI64(data []byte, n int) ([]int64, int, error) {
	vals := make([]int64, 0, n)
	offset := 0
	var prev int64

	for i := 0; i < n; i++ {
		d, consumed, err := varint.Varint(data[offset:])
		if err != nil {
			return nil, 0, err
		}
		offset += consumed

		v := d
		if i > 0 {
			v = prev + d
		}
		vals = append(vals, v)
		prev = v
	}

	return vals, offset, nil
}
