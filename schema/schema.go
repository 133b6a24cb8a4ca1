// Package schema defines the ordered field list that gives a section's
// column streams their names, types, and on-wire order (spec §3, §4.5).
package schema

import (
	"github.com/ridewithgps/tracklib/errs"
	"github.com/ridewithgps/tracklib/format"
	"github.com/ridewithgps/tracklib/internal/hash"
	"github.com/ridewithgps/tracklib/internal/varint"
)

// MaxScale is the largest F64 scale this implementation accepts. spec §8
// requires that scale 500 be rejected at schema construction; a one-byte
// wire field caps the representable range at 255, so any scale above that
// is rejected the same way.
const MaxScale = 255

// Field is a single named, typed column in a Schema. Scale is typed wider
// than the single byte it occupies on the wire so that an out-of-range
// value (spec §8's scale-500 boundary case) is a runtime Validate failure
// rather than a value Go's type system would silently truncate.
type Field struct {
	Name  string
	Type  format.FieldType
	Scale int // meaningful only when Type == format.TypeF64; valid range [0, MaxScale]
}

// Schema is an ordered list of fields. Order is significant: it defines
// column order on the wire (spec §3 Order-I).
type Schema struct {
	Fields []Field
}

// New builds a Schema from fields, validating it per Validate.
func New(fields []Field) (Schema, error) {
	s := Schema{Fields: append([]Field(nil), fields...)}
	if err := s.Validate(); err != nil {
		return Schema{}, err
	}

	return s, nil
}

// Validate checks that every field has a recognized type tag, that F64
// fields carry an in-range scale, and that no two fields share a name.
//
// Duplicate-name detection interns each name through xxHash64 (the same
// fast-lookup idiom the teacher format uses to turn human-readable metric
// names into fixed-size keys) rather than keying a set directly on the raw
// name bytes.
func (s Schema) Validate() error {
	seen := make(map[uint64]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if !f.Type.IsValid() {
			return errs.ErrBadSchema
		}
		if f.Type == format.TypeF64 && (f.Scale < 0 || f.Scale > MaxScale) {
			return errs.ErrBadSchema
		}

		h := hash.ID(f.Name)
		if _, dup := seen[h]; dup {
			return errs.ErrBadSchema
		}
		seen[h] = struct{}{}
	}

	return nil
}

// IndexOf returns the position of the field named name, or -1 if absent.
func (s Schema) IndexOf(name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}

	return -1
}

// Len returns the number of fields in the schema.
func (s Schema) Len() int { return len(s.Fields) }

// Encode appends the wire encoding of the schema (spec §4.5's per-section
// schema block, minus the trailing per-column data sizes which the section
// writer fills in once columns are encoded) to dst.
//
// Wire form:
//
//	u8 schema_version = 0
//	LEB128 field_count
//	for each field:
//	   u8 type_tag
//	   if F64: u8 scale
//	   LEB128 name_len
//	   name bytes
func (s Schema) Encode(dst []byte) []byte {
	dst = append(dst, 0) // schema_version
	dst = varint.PutUvarint(dst, uint64(len(s.Fields)))

	for _, f := range s.Fields {
		dst = append(dst, byte(f.Type))
		if f.Type == format.TypeF64 {
			dst = append(dst, byte(f.Scale))
		}
		dst = varint.PutUvarint(dst, uint64(len(f.Name)))
		dst = append(dst, f.Name...)
	}

	return dst
}

// FieldWireSize returns the number of bytes Field.Name and its header occupy
// on the wire, excluding the trailing column_data_size that the section
// writer appends after this schema block.
func FieldWireSize(f Field) int {
	n := 1 // type_tag
	if f.Type == format.TypeF64 {
		n++
	}

	lenBuf := varint.PutUvarint(nil, uint64(len(f.Name)))
	n += len(lenBuf) + len(f.Name)

	return n
}

// Decode parses a schema block (without the trailing column_data_size
// fields) from the front of data. It returns the parsed Schema and the
// number of bytes consumed.
func Decode(data []byte) (Schema, int, error) {
	if len(data) < 1 {
		return Schema{}, 0, errs.ErrTruncatedInput
	}
	if data[0] != 0 {
		return Schema{}, 0, errs.ErrBadSchema
	}

	offset := 1

	fieldCount, n, err := varint.Uvarint(data[offset:])
	if err != nil {
		return Schema{}, 0, err
	}
	offset += n

	fields := make([]Field, 0, fieldCount)
	for i := uint64(0); i < fieldCount; i++ {
		if offset >= len(data) {
			return Schema{}, 0, errs.ErrTruncatedInput
		}

		typ := format.FieldType(data[offset])
		offset++
		if !typ.IsValid() {
			return Schema{}, 0, errs.ErrBadSchema
		}

		var scale int
		if typ == format.TypeF64 {
			if offset >= len(data) {
				return Schema{}, 0, errs.ErrTruncatedInput
			}
			scale = int(data[offset])
			offset++
		}

		nameLen, n, err := varint.Uvarint(data[offset:])
		if err != nil {
			return Schema{}, 0, err
		}
		offset += n

		if uint64(len(data)-offset) < nameLen {
			return Schema{}, 0, errs.ErrTruncatedInput
		}
		name := string(data[offset : offset+int(nameLen)])
		offset += int(nameLen)

		fields = append(fields, Field{Name: name, Type: typ, Scale: scale})
	}

	s := Schema{Fields: fields}
	if err := s.Validate(); err != nil {
		return Schema{}, 0, err
	}

	return s, offset, nil
}
