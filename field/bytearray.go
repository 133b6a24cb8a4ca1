package field

import (
	"github.com/ridewithgps/tracklib/errs"
	"github.com/ridewithgps/tracklib/internal/varint"
)

// EncodeByteArray appends, for each present value, a LEB128 length followed
// by the raw bytes.
func EncodeByteArray(dst []byte, vals [][]byte) []byte {
	for _, v := range vals {
		dst = varint.PutUvarint(dst, uint64(len(v)))
		dst = append(dst, v...)
	}

	return dst
}

// DecodeByteArray decodes n length-prefixed byte sequences from the front
// of data. It returns the values (freshly allocated, independent of data)
// and the number of bytes consumed.
func DecodeByteArray(data []byte, n int) ([][]byte, int, error) {
	offset := 0
	vals := make([][]byte, n)

	for i := 0; i < n; i++ {
		l, consumed, err := varint.Uvarint(data[offset:])
		if err != nil {
			return nil, 0, err
		}
		offset += consumed

		if uint64(len(data)-offset) < l {
			return nil, 0, errs.ErrTruncatedInput
		}
		b := make([]byte, l)
		copy(b, data[offset:offset+int(l)])
		vals[i] = b
		offset += int(l)
	}

	return vals, offset, nil
}
