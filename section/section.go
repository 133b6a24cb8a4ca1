// Package section implements spec §4.3/§4.4: the row<->column section
// engine (presence bitmap, per-column CRC framing, schema trimming, type
// coercion) and its standard and encrypted on-wire variants.
//
// The overall shape — a single-pass writer building one typed encoder per
// column, and a reader that decodes a section's byte span on demand — is
// grounded on the teacher's blob.NumericEncoder/blob.NumericDecoder pair;
// the presence-bitmap/coercion/trimming machinery itself has no teacher
// analogue (the teacher's schema is implicit and fixed per blob type) and is
// original to this package.
package section

import (
	"github.com/ridewithgps/tracklib/format"
	"github.com/ridewithgps/tracklib/schema"
	"github.com/ridewithgps/tracklib/value"
)

// Row is a single record: a mapping from field name to value. Absent keys
// and value.Null are indistinguishable on the wire (spec §3).
type Row map[string]value.Value

// Section is a schema-typed columnar block of rows (spec §3).
type Section struct {
	encoding format.SectionEncoding
	schema   schema.Schema
	rows     []Row
	key      []byte // encrypted variant only; used at encode time
}

// Standard builds an in-the-clear section from schema s and rows.
func Standard(s schema.Schema, rows []Row) Section {
	return Section{encoding: format.EncodingStandard, schema: s, rows: rows}
}

// Encrypted builds a section whose body is sealed with XChaCha20-Poly1305
// under key, a 32-byte secret supplied by the caller (spec §4.4). key must
// be exactly 32 bytes; any other length is rejected at Build time with
// ErrDecryptFail, matching the decode-side error for a bad key.
func Encrypted(s schema.Schema, rows []Row, key []byte) Section {
	return Section{encoding: format.EncodingEncrypted, schema: s, rows: rows, key: key}
}

// Encoding reports whether the section is Standard or Encrypted.
func (s Section) Encoding() format.SectionEncoding { return s.encoding }

// Schema returns the section's user-supplied (pre-trim) schema.
func (s Section) Schema() schema.Schema { return s.schema }

// Rows returns the section's row data.
func (s Section) Rows() []Row { return s.rows }
