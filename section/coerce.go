package section

import (
	"math"

	"github.com/ridewithgps/tracklib/value"
)

// maxU64F is 2^64, the exclusive upper bound a float must stay under to
// coerce losslessly into a uint64.
const maxU64F = 18446744073709551616.0

// maxI64F is 2^63, the exclusive upper bound (in magnitude) a float must
// stay under to coerce losslessly into an int64.
const maxI64F = 9223372036854775808.0

// coercion implements spec §4.3's write-time type coercion table: a row
// value that does not already match its field's declared type is converted
// when it fits the target type (floats going into I64/U64 are truncated
// toward zero first), and silently dropped (as if absent) otherwise.
// Construction-time-only rejections (bad scale, heterogeneous
// arrays) never reach here — Go's static array element types make a
// heterogeneous BoolArray/U64Array structurally impossible to construct in
// the first place, and schema.Validate rejects bad scales before a section
// is ever built.

func coerceI64(v value.Value) (int64, bool) {
	switch v.Kind {
	case value.KindI64:
		return v.I64, true
	case value.KindU64:
		if v.U64 > math.MaxInt64 {
			return 0, false
		}
		return int64(v.U64), true
	case value.KindF64:
		if math.IsNaN(v.F64) || math.IsInf(v.F64, 0) {
			return 0, false
		}
		t := math.Trunc(v.F64)
		if t < -maxI64F || t >= maxI64F {
			return 0, false
		}
		return int64(t), true
	default:
		return 0, false
	}
}

func coerceU64(v value.Value) (uint64, bool) {
	switch v.Kind {
	case value.KindU64:
		return v.U64, true
	case value.KindI64:
		if v.I64 < 0 {
			return 0, false
		}
		return uint64(v.I64), true
	case value.KindF64:
		if math.IsNaN(v.F64) || math.IsInf(v.F64, 0) || v.F64 < 0 {
			return 0, false
		}
		t := math.Trunc(v.F64)
		if t >= maxU64F {
			return 0, false
		}
		return uint64(t), true
	default:
		return 0, false
	}
}

func coerceF64(v value.Value) (float64, bool) {
	switch v.Kind {
	case value.KindF64:
		return v.F64, true
	case value.KindI64:
		return float64(v.I64), true
	case value.KindU64:
		return float64(v.U64), true
	default:
		return 0, false
	}
}

func coerceBool(v value.Value) (bool, bool) {
	if v.Kind == value.KindBool {
		return v.Bool, true
	}
	return false, false
}

// coerceString accepts a String value as-is and also accepts raw Bytes,
// per spec §4.3: UTF-8 validity is not enforced at the codec layer, so a
// String field and a ByteArray field are interchangeable sources of the
// same underlying byte sequence.
func coerceString(v value.Value) (string, bool) {
	switch v.Kind {
	case value.KindString:
		return v.Str, true
	case value.KindBytes:
		return string(v.Bytes), true
	default:
		return "", false
	}
}

func coerceBytes(v value.Value) ([]byte, bool) {
	switch v.Kind {
	case value.KindBytes:
		return v.Bytes, true
	case value.KindString:
		return []byte(v.Str), true
	default:
		return nil, false
	}
}

func coerceBoolArray(v value.Value) ([]bool, bool) {
	if v.Kind == value.KindBoolArray {
		return v.BoolArray, true
	}
	return nil, false
}

func coerceU64Array(v value.Value) ([]uint64, bool) {
	if v.Kind == value.KindU64Array {
		return v.U64Array, true
	}
	return nil, false
}
