package field

import "math"

// maxScaledMagnitude is 2^63; a scaled value outside [-2^63, 2^63) does not
// fit in an int64 and is rejected per spec §4.2.
const maxScaledMagnitude = 9223372036854775808.0

// ScaleToInt converts v to its scaled integer representation q = v * 10^scale
// for F64@scale encoding. It reports false (drop the value) if v is
// non-finite (NaN or +/-Inf) or the scaled magnitude overflows int64, per
// spec §4.2 and the open question in §9 (resolved here as: drop, matching
// the source's behavior).
//
// The conversion truncates toward zero, matching the Go int64(float64)
// conversion rule, rather than rounding to nearest — empirically this is
// what the format's own wire fixtures require (see DESIGN.md).
func ScaleToInt(v float64, scale uint8) (int64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	scaled := v * math.Pow10(int(scale))
	if scaled >= maxScaledMagnitude || scaled < -maxScaledMagnitude {
		return 0, false
	}

	return int64(scaled), true
}

// IntToFloat converts a scaled integer q back to its float64 value at the
// given scale: v = q * 10^-scale.
func IntToFloat(q int64, scale uint8) float64 {
	return float64(q) / math.Pow10(int(scale))
}

// EncodeF64 appends the delta-coded signed LEB128 stream of already-scaled
// integer quantities to dst.
func EncodeF64(dst []byte, scaled []int64) []byte {
	return encodeDeltaI64(dst, scaled)
}

// DecodeF64 decodes n delta-coded F64@scale values from the front of data,
// converting each back to float64. It returns the values and the number of
// bytes consumed.
func DecodeF64(data []byte, n int, scale uint8) ([]float64, int, error) {
	scaled, consumed, err := decodeDeltaI64(data, n)
	if err != nil {
		return nil, 0, err
	}

	vals := make([]float64, len(scaled))
	for i, q := range scaled {
		vals[i] = IntToFloat(q, scale)
	}

	return vals, consumed, nil
}
