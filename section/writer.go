package section

import (
	"github.com/ridewithgps/tracklib/format"
	"github.com/ridewithgps/tracklib/internal/bitmap"
	"github.com/ridewithgps/tracklib/internal/crc"
	"github.com/ridewithgps/tracklib/schema"
)

// DropLogger is an optional hook a caller can install to observe rows whose
// value was coerced away rather than encoded (spec §4.3's silent-drop rule
// makes this unobservable otherwise). Installed via WithDropLogger.
type DropLogger func(fieldName string, row int)

// BuildOption configures a single call to Section.Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	onDrop DropLogger
}

// WithDropLogger installs a callback invoked once per row/field whose value
// failed coercion and was therefore encoded as absent.
func WithDropLogger(f DropLogger) BuildOption {
	return func(c *buildConfig) { c.onDrop = f }
}

// Build encodes s into a Header plus the (possibly encrypted) body bytes
// that follow it in a track's data table. The persisted schema in the
// returned Header is s.Schema trimmed of any field that never accepted a
// value across all rows (spec §3's trimming invariant).
func (s Section) Build(opts ...BuildOption) (Header, []byte, error) {
	if err := s.schema.Validate(); err != nil {
		return Header{}, nil, err
	}

	cfg := buildConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	trimmed, sizes, plainBody, rowCount := s.buildPlain(cfg.onDrop)

	switch s.encoding {
	case format.EncodingStandard:
		return Header{
			Encoding:    s.encoding,
			Rows:        rowCount,
			DataSize:    len(plainBody),
			Schema:      trimmed,
			ColumnSizes: sizes,
		}, plainBody, nil
	default: // encrypted
		sealed, err := encryptBody(plainBody, s.key)
		if err != nil {
			return Header{}, nil, err
		}
		return Header{
			Encoding:    s.encoding,
			Rows:        rowCount,
			DataSize:    len(sealed),
			Schema:      trimmed,
			ColumnSizes: sizes,
		}, sealed, nil
	}
}

// buildPlain runs the coercion/trimming pass and assembles the standard
// (in-the-clear) section body: a presence bitmap and CRC-32, followed by
// each surviving column's encoded bytes and its own CRC-32 (spec §4.3).
func (s Section) buildPlain(onDrop DropLogger) (schema.Schema, []int, []byte, int) {
	fields := s.schema.Fields
	accs := make([]*accum, len(fields))
	for i, f := range fields {
		accs[i] = newAccum(f)
	}

	for r, row := range s.rows {
		for fi, f := range fields {
			v, present := row[f.Name]
			if !present || v.IsNull() {
				continue
			}
			if !accs[fi].tryAppend(r, v) && onDrop != nil {
				onDrop(f.Name, r)
			}
		}
	}

	var trimmedFields []schema.Field
	var kept []*accum
	for i, f := range fields {
		if accs[i].count() > 0 {
			trimmedFields = append(trimmedFields, f)
			kept = append(kept, accs[i])
		}
	}
	trimmed := schema.Schema{Fields: trimmedFields}

	rowCount := len(s.rows)
	bm := bitmap.NewBuilder(rowCount, len(trimmedFields))
	for j, a := range kept {
		for _, r := range a.presentRows {
			bm.Set(r, j)
		}
	}

	presenceBytes := bm.Bytes()
	body := append([]byte{}, presenceBytes...)
	body = crc.Put32(body, presenceBytes)

	sizes := make([]int, len(kept))
	for i, a := range kept {
		start := len(body)
		body = a.encode(body)
		colBytes := body[start:]
		sizes[i] = len(colBytes)
		body = crc.Put32(body, colBytes)
	}

	return trimmed, sizes, body, rowCount
}
