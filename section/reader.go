package section

import (
	"encoding/binary"

	"github.com/ridewithgps/tracklib/errs"
	"github.com/ridewithgps/tracklib/field"
	"github.com/ridewithgps/tracklib/format"
	"github.com/ridewithgps/tracklib/internal/bitmap"
	"github.com/ridewithgps/tracklib/internal/crc"
	"github.com/ridewithgps/tracklib/schema"
	"github.com/ridewithgps/tracklib/value"
)

// Decode reverses Build: given a section's Header and its (possibly
// encrypted) body bytes, it verifies the presence-bitmap and per-column
// CRC-32s and returns the section's rows. key is ignored for standard
// sections and must be the 32-byte secret for encrypted ones.
func Decode(h Header, body []byte, key []byte) ([]Row, error) {
	plain, err := plainBody(h, body, key)
	if err != nil {
		return nil, err
	}

	return decodeRows(h.Schema, h.Rows, plain)
}

func plainBody(h Header, body []byte, key []byte) ([]byte, error) {
	switch h.Encoding {
	case format.EncodingStandard:
		return body, nil
	case format.EncodingEncrypted:
		return decryptBody(body, key)
	default:
		return nil, errs.ErrBadSchema
	}
}

func decodeRows(sch schema.Schema, rowCount int, plain []byte) ([]Row, error) {
	fieldCount := sch.Len()
	presenceSize := bitmap.Size(rowCount, fieldCount)
	if len(plain) < presenceSize+4 {
		return nil, errs.ErrTruncatedInput
	}

	presenceBytes := plain[:presenceSize]
	wantCRC := binary.LittleEndian.Uint32(plain[presenceSize : presenceSize+4])
	if crc.Checksum32(presenceBytes) != wantCRC {
		return nil, &errs.CrcMismatchError{Region: errs.RegionPresence}
	}

	bm := bitmap.NewReader(presenceBytes, fieldCount)
	offset := presenceSize + 4

	rows := make([]Row, rowCount)
	for i := range rows {
		rows[i] = make(Row)
	}

	for fi, f := range sch.Fields {
		count := 0
		for r := 0; r < rowCount; r++ {
			if bm.Get(r, fi) {
				count++
			}
		}

		if offset > len(plain) {
			return nil, errs.ErrTruncatedInput
		}
		colStart := offset

		vals, consumed, err := decodeColumn(f, plain[offset:], count)
		if err != nil {
			return nil, err
		}
		offset += consumed

		if offset+4 > len(plain) {
			return nil, errs.ErrTruncatedInput
		}
		wantColCRC := binary.LittleEndian.Uint32(plain[offset : offset+4])
		if crc.Checksum32(plain[colStart:offset]) != wantColCRC {
			return nil, &errs.ColumnCrcMismatchError{Column: fi}
		}
		offset += 4

		vi := 0
		for r := 0; r < rowCount; r++ {
			if bm.Get(r, fi) {
				rows[r][f.Name] = vals[vi]
				vi++
			}
		}
	}

	return rows, nil
}

func decodeColumn(f schema.Field, data []byte, n int) ([]value.Value, int, error) {
	switch f.Type {
	case format.TypeI64:
		xs, c, err := field.DecodeI64(data, n)
		if err != nil {
			return nil, 0, err
		}
		out := make([]value.Value, n)
		for i, x := range xs {
			out[i] = value.I64Value(x)
		}
		return out, c, nil

	case format.TypeU64:
		xs, c, err := field.DecodeU64(data, n)
		if err != nil {
			return nil, 0, err
		}
		out := make([]value.Value, n)
		for i, x := range xs {
			out[i] = value.U64Value(x)
		}
		return out, c, nil

	case format.TypeF64:
		xs, c, err := field.DecodeF64(data, n, uint8(f.Scale))
		if err != nil {
			return nil, 0, err
		}
		out := make([]value.Value, n)
		for i, x := range xs {
			out[i] = value.F64Value(x)
		}
		return out, c, nil

	case format.TypeBool:
		xs, c, err := field.DecodeBool(data, n)
		if err != nil {
			return nil, 0, err
		}
		out := make([]value.Value, n)
		for i, x := range xs {
			out[i] = value.BoolValue(x)
		}
		return out, c, nil

	case format.TypeString:
		xs, c, err := field.DecodeString(data, n)
		if err != nil {
			return nil, 0, err
		}
		out := make([]value.Value, n)
		for i, x := range xs {
			out[i] = value.StringValue(x)
		}
		return out, c, nil

	case format.TypeByteArray:
		xs, c, err := field.DecodeByteArray(data, n)
		if err != nil {
			return nil, 0, err
		}
		out := make([]value.Value, n)
		for i, x := range xs {
			out[i] = value.BytesValue(x)
		}
		return out, c, nil

	case format.TypeBoolArray:
		xs, c, err := field.DecodeBoolArray(data, n)
		if err != nil {
			return nil, 0, err
		}
		out := make([]value.Value, n)
		for i, x := range xs {
			out[i] = value.BoolArrayValue(x)
		}
		return out, c, nil

	case format.TypeU64Array:
		xs, c, err := field.DecodeU64Array(data, n)
		if err != nil {
			return nil, 0, err
		}
		out := make([]value.Value, n)
		for i, x := range xs {
			out[i] = value.U64ArrayValue(x)
		}
		return out, c, nil

	default:
		return nil, 0, errs.ErrBadSchema
	}
}

// DecodeProjected is Decode restricted to the fields named in proj: a row
// key is included only if proj names that field with a type matching the
// section's stored schema. A name proj lists that the section doesn't have
// is simply absent from every row; a name present in both but with
// disagreeing types is dropped from every row rather than erroring, the
// same type-mismatch-to-absent rule Column applies to a single column.
func DecodeProjected(h Header, body []byte, key []byte, proj schema.Schema) ([]Row, error) {
	rows, err := Decode(h, body, key)
	if err != nil {
		return nil, err
	}

	keep := make(map[string]bool, proj.Len())
	for _, pf := range proj.Fields {
		idx := h.Schema.IndexOf(pf.Name)
		if idx < 0 {
			continue
		}
		if h.Schema.Fields[idx].Type == pf.Type {
			keep[pf.Name] = true
		}
	}

	out := make([]Row, len(rows))
	for i, row := range rows {
		pr := make(Row, len(keep))
		for name := range keep {
			if v, ok := row[name]; ok {
				pr[name] = v
			}
		}
		out[i] = pr
	}

	return out, nil
}

// Column projects a single named column out of a section, applying spec
// §4.6's type-mismatch rule: if projType is non-nil and disagrees with the
// column's actual type, every row's slot reads back as absent rather than
// erroring. A name absent from the schema entirely yields a nil slice.
func Column(h Header, body []byte, key []byte, name string, projType *format.FieldType) ([]*value.Value, error) {
	idx := h.Schema.IndexOf(name)
	if idx < 0 {
		return nil, nil
	}

	if projType != nil && *projType != h.Schema.Fields[idx].Type {
		return make([]*value.Value, h.Rows), nil
	}

	rows, err := Decode(h, body, key)
	if err != nil {
		return nil, err
	}

	out := make([]*value.Value, h.Rows)
	for i, row := range rows {
		if v, ok := row[name]; ok {
			vv := v
			out[i] = &vv
		}
	}

	return out, nil
}
