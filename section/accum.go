package section

import (
	"github.com/ridewithgps/tracklib/field"
	"github.com/ridewithgps/tracklib/format"
	"github.com/ridewithgps/tracklib/schema"
	"github.com/ridewithgps/tracklib/value"
)

// accum collects one column's worth of coerced values across a single pass
// over the section's rows, in the teacher's single-pass-per-column-encoder
// style (blob.NumericEncoder). presentRows records, in ascending order,
// which row indices contributed a value, which is exactly the information
// the presence bitmap needs.
type accum struct {
	typ   format.FieldType
	scale uint8

	i64     []int64
	u64     []uint64
	f64     []int64 // already scaled
	boolv   []bool
	str     []string
	bytesv  [][]byte
	boolArr [][]bool
	u64Arr  [][]uint64

	presentRows []int
}

func newAccum(f schema.Field) *accum {
	return &accum{typ: f.Type, scale: uint8(f.Scale)}
}

// tryAppend coerces v to the column's declared type and, on success, records
// it as present in row. It reports whether the value was accepted.
func (a *accum) tryAppend(row int, v value.Value) bool {
	var ok bool

	switch a.typ {
	case format.TypeI64:
		var x int64
		if x, ok = coerceI64(v); ok {
			a.i64 = append(a.i64, x)
		}
	case format.TypeU64:
		var x uint64
		if x, ok = coerceU64(v); ok {
			a.u64 = append(a.u64, x)
		}
	case format.TypeF64:
		var f float64
		if f, ok = coerceF64(v); ok {
			var q int64
			if q, ok = field.ScaleToInt(f, a.scale); ok {
				a.f64 = append(a.f64, q)
			}
		}
	case format.TypeBool:
		var b bool
		if b, ok = coerceBool(v); ok {
			a.boolv = append(a.boolv, b)
		}
	case format.TypeString:
		var s string
		if s, ok = coerceString(v); ok {
			a.str = append(a.str, s)
		}
	case format.TypeByteArray:
		var b []byte
		if b, ok = coerceBytes(v); ok {
			a.bytesv = append(a.bytesv, b)
		}
	case format.TypeBoolArray:
		var arr []bool
		if arr, ok = coerceBoolArray(v); ok {
			a.boolArr = append(a.boolArr, arr)
		}
	case format.TypeU64Array:
		var arr []uint64
		if arr, ok = coerceU64Array(v); ok {
			a.u64Arr = append(a.u64Arr, arr)
		}
	}

	if ok {
		a.presentRows = append(a.presentRows, row)
	}

	return ok
}

// count returns the number of accepted values: a column with count 0 is
// dropped from the persisted schema entirely (spec §3's trimming rule).
func (a *accum) count() int { return len(a.presentRows) }

// encode appends this column's encoded byte stream to dst.
func (a *accum) encode(dst []byte) []byte {
	switch a.typ {
	case format.TypeI64:
		return field.EncodeI64(dst, a.i64)
	case format.TypeU64:
		return field.EncodeU64(dst, a.u64)
	case format.TypeF64:
		return field.EncodeF64(dst, a.f64)
	case format.TypeBool:
		return field.EncodeBool(dst, a.boolv)
	case format.TypeString:
		return field.EncodeString(dst, a.str)
	case format.TypeByteArray:
		return field.EncodeByteArray(dst, a.bytesv)
	case format.TypeBoolArray:
		return field.EncodeBoolArray(dst, a.boolArr)
	case format.TypeU64Array:
		return field.EncodeU64Array(dst, a.u64Arr)
	default:
		return dst
	}
}
