package field

import "github.com/ridewithgps/tracklib/errs"

// EncodeBool appends one byte per present value to dst: 0x00 for false,
// 0x01 for true.
func EncodeBool(dst []byte, vals []bool) []byte {
	for _, v := range vals {
		if v {
			dst = append(dst, 1)
		} else {
			dst = append(dst, 0)
		}
	}

	return dst
}

// DecodeBool decodes n bool values from the front of data. Any byte other
// than 0x00 or 0x01 is a fatal decode error, per spec §4.2.
func DecodeBool(data []byte, n int) ([]bool, int, error) {
	if len(data) < n {
		return nil, 0, errs.ErrTruncatedInput
	}

	vals := make([]bool, n)
	for i := 0; i < n; i++ {
		switch data[i] {
		case 0x00:
			vals[i] = false
		case 0x01:
			vals[i] = true
		default:
			return nil, 0, errs.ErrBadValue
		}
	}

	return vals, n, nil
}
