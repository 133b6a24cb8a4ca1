package field

// EncodeI64 appends the delta-coded signed LEB128 stream for vals to dst.
func EncodeI64(dst []byte, vals []int64) []byte {
	return encodeDeltaI64(dst, vals)
}

// DecodeI64 decodes n delta-coded I64 values from the front of data. It
// returns the values and the number of bytes consumed.
func DecodeI64(data []byte, n int) ([]int64, int, error) {
	return decodeDeltaI64(data, n)
}
