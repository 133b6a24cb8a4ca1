package field

// EncodeU64 appends the delta-coded signed LEB128 stream for vals to dst.
// Each uint64 is bit-reinterpreted as an int64 before delta coding, per spec
// §4.2: the wire representation of U64 is identical to I64's, operating on
// the raw 64-bit pattern rather than the unsigned value's magnitude.
func EncodeU64(dst []byte, vals []uint64) []byte {
	i64s := make([]int64, len(vals))
	for i, v := range vals {
		i64s[i] = int64(v)
	}

	return encodeDeltaI64(dst, i64s)
}

// DecodeU64 decodes n delta-coded U64 values from the front of data. It
// returns the values and the number of bytes consumed.
func DecodeU64(data []byte, n int) ([]uint64, int, error) {
	i64s, consumed, err := decodeDeltaI64(data, n)
	if err != nil {
		return nil, 0, err
	}

	vals := make([]uint64, len(i64s))
	for i, v := range i64s {
		vals[i] = uint64(v)
	}

	return vals, consumed, nil
}
