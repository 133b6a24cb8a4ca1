package field

import (
	"github.com/ridewithgps/tracklib/errs"
	"github.com/ridewithgps/tracklib/internal/varint"
)

// EncodeString appends, for each present value, a LEB128 length followed by
// the raw bytes of the string.
func EncodeString(dst []byte, vals []string) []byte {
	for _, v := range vals {
		dst = varint.PutUvarint(dst, uint64(len(v)))
		dst = append(dst, v...)
	}

	return dst
}

// DecodeString decodes n length-prefixed strings from the front of data. It
// returns the values and the number of bytes consumed.
func DecodeString(data []byte, n int) ([]string, int, error) {
	offset := 0
	vals := make([]string, n)

	for i := 0; i < n; i++ {
		l, consumed, err := varint.Uvarint(data[offset:])
		if err != nil {
			return nil, 0, err
		}
		offset += consumed

		if uint64(len(data)-offset) < l {
			return nil, 0, errs.ErrTruncatedInput
		}
		vals[i] = string(data[offset : offset+int(l)])
		offset += int(l)
	}

	return vals, offset, nil
}
