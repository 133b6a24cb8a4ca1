package field

import (
	"github.com/ridewithgps/tracklib/errs"
	"github.com/ridewithgps/tracklib/internal/varint"
)

// EncodeBoolArray appends, for each present value, a LEB128 array length
// followed by that many bool bytes.
func EncodeBoolArray(dst []byte, vals [][]bool) []byte {
	for _, arr := range vals {
		dst = varint.PutUvarint(dst, uint64(len(arr)))
		for _, b := range arr {
			if b {
				dst = append(dst, 1)
			} else {
				dst = append(dst, 0)
			}
		}
	}

	return dst
}

// DecodeBoolArray decodes n bool arrays from the front of data. It returns
// the values and the number of bytes consumed.
func DecodeBoolArray(data []byte, n int) ([][]bool, int, error) {
	offset := 0
	vals := make([][]bool, n)

	for i := 0; i < n; i++ {
		l, consumed, err := varint.Uvarint(data[offset:])
		if err != nil {
			return nil, 0, err
		}
		offset += consumed

		if uint64(len(data)-offset) < l {
			return nil, 0, errs.ErrTruncatedInput
		}

		arr := make([]bool, l)
		for j := uint64(0); j < l; j++ {
			switch data[offset] {
			case 0x00:
				arr[j] = false
			case 0x01:
				arr[j] = true
			default:
				return nil, 0, errs.ErrBadValue
			}
			offset++
		}
		vals[i] = arr
	}

	return vals, offset, nil
}
