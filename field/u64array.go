package field

import (
	"github.com/ridewithgps/tracklib/errs"
	"github.com/ridewithgps/tracklib/internal/varint"
)

// EncodeU64Array appends, for each present value, a LEB128 array length
// followed by a delta-coded stream of the array's own elements. Deltas do
// not carry across array boundaries (spec §4.2): each array restarts its own
// delta chain.
func EncodeU64Array(dst []byte, vals [][]uint64) []byte {
	for _, arr := range vals {
		dst = varint.PutUvarint(dst, uint64(len(arr)))

		i64s := make([]int64, len(arr))
		for i, v := range arr {
			i64s[i] = int64(v)
		}
		dst = encodeDeltaI64(dst, i64s)
	}

	return dst
}

// DecodeU64Array decodes n uint64 arrays from the front of data. It returns
// the values and the number of bytes consumed.
func DecodeU64Array(data []byte, n int) ([][]uint64, int, error) {
	offset := 0
	vals := make([][]uint64, n)

	for i := 0; i < n; i++ {
		l, consumed, err := varint.Uvarint(data[offset:])
		if err != nil {
			return nil, 0, err
		}
		offset += consumed

		if offset > len(data) {
			return nil, 0, errs.ErrTruncatedInput
		}

		i64s, consumed2, err := decodeDeltaI64(data[offset:], int(l))
		if err != nil {
			return nil, 0, err
		}
		offset += consumed2

		arr := make([]uint64, len(i64s))
		for j, v := range i64s {
			arr[j] = uint64(v)
		}
		vals[i] = arr
	}

	return vals, offset, nil
}
