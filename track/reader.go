package track

import (
	"sync"

	"github.com/ridewithgps/tracklib/errs"
	"github.com/ridewithgps/tracklib/format"
	"github.com/ridewithgps/tracklib/metadata"
	"github.com/ridewithgps/tracklib/schema"
	"github.com/ridewithgps/tracklib/section"
	"github.com/ridewithgps/tracklib/value"
)

// sectionState is one section's Indexed -> Parsed cache cell (spec §4.6).
// Indexed is the zero value (header and body known, rows not yet decoded);
// Parsed is reached, and cached, the first time full rows are requested
// through SectionData without a projection; projected reads and
// SectionColumn decode the section afresh without using the cache. A mutex guards the transition so concurrent callers reading
// independent sections never block each other, matching §5's "interior
// lock around the per-section parse cache" guidance.
type sectionState struct {
	mu     sync.Mutex
	parsed bool
	rows   []section.Row
}

// Reader parses an RWTF file's header, metadata table, and data-table index
// eagerly — every CRC reachable without decoding a single column is
// verified by NewReader — and decodes individual sections on demand.
type Reader struct {
	fileVersion    uint16
	creatorVersion uint16
	entries        []metadata.Entry
	idx            dataTableIndex
	states         []*sectionState
}

// NewReader parses data as a complete RWTF file.
func NewReader(data []byte) (*Reader, error) {
	hdr, err := DecodeFileHeader(data)
	if err != nil {
		return nil, err
	}

	if int(hdr.MetadataOffset) > len(data) {
		return nil, errs.ErrTruncatedInput
	}
	entries, consumed, err := metadata.DecodeTable(data[hdr.MetadataOffset:])
	if err != nil {
		return nil, err
	}
	if int(hdr.MetadataOffset)+consumed != int(hdr.DataOffset) {
		return nil, errs.ErrOffsetMismatch
	}

	if int(hdr.DataOffset) > len(data) {
		return nil, errs.ErrTruncatedInput
	}
	idx, err := decodeDataTable(data[hdr.DataOffset:])
	if err != nil {
		return nil, err
	}

	states := make([]*sectionState, len(idx.headers))
	for i := range states {
		states[i] = &sectionState{}
	}

	return &Reader{
		fileVersion:    hdr.FileVersion,
		creatorVersion: hdr.CreatorVersion,
		entries:        entries,
		idx:            idx,
		states:         states,
	}, nil
}

// FileVersion returns the file's wire format version.
func (r *Reader) FileVersion() uint16 { return r.fileVersion }

// CreatorVersion returns the opaque creator version preserved round-trip.
func (r *Reader) CreatorVersion() uint16 { return r.creatorVersion }

// Metadata returns the track's metadata entries, in file order.
func (r *Reader) Metadata() []metadata.Entry { return r.entries }

// SectionCount returns the number of sections in the track.
func (r *Reader) SectionCount() int { return len(r.idx.headers) }

func (r *Reader) checkIndex(i int) error {
	if i < 0 || i >= len(r.idx.headers) {
		return &errs.SectionIndexError{Index: i, Count: len(r.idx.headers)}
	}
	return nil
}

// SectionEncoding reports whether section i is standard or encrypted.
func (r *Reader) SectionEncoding(i int) (format.SectionEncoding, error) {
	if err := r.checkIndex(i); err != nil {
		return 0, err
	}
	return r.idx.headers[i].Encoding, nil
}

// SectionSchema returns section i's trimmed, persisted schema — not
// necessarily the schema the writer was originally given.
func (r *Reader) SectionSchema(i int) (schema.Schema, error) {
	if err := r.checkIndex(i); err != nil {
		return schema.Schema{}, err
	}
	return r.idx.headers[i].Schema, nil
}

// SectionRows returns the row count of section i.
func (r *Reader) SectionRows(i int) (int, error) {
	if err := r.checkIndex(i); err != nil {
		return 0, err
	}
	return r.idx.headers[i].Rows, nil
}

// parsed decodes section i's rows the first time it is asked for, caching
// the result for subsequent calls. A decode failure is not cached.
func (r *Reader) parsed(i int, key []byte) ([]section.Row, error) {
	if err := r.checkIndex(i); err != nil {
		return nil, err
	}

	st := r.states[i]
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.parsed {
		return st.rows, nil
	}

	rows, err := section.Decode(r.idx.headers[i], r.idx.bodies[i], key)
	if err != nil {
		// A failed decode (e.g. the wrong encrypted-section key) is not
		// cached: a later call with the right key must still succeed.
		return nil, err
	}

	st.rows, st.parsed = rows, true

	return st.rows, nil
}

// SectionData returns every row of section i, decoding and caching it on
// first use. key is required for an encrypted section and ignored for a
// standard one. An optional projection schema restricts the returned rows
// to the named fields whose type agrees with the section's stored schema;
// a name the projection lists that doesn't match (by name or by type) is
// simply absent from every returned row, same as SectionColumn's
// type-mismatch rule. Passing no projection schema returns full rows.
// Projection bypasses the whole-section cache, since it reshapes rows on
// every call rather than reading the cached decode back unchanged.
func (r *Reader) SectionData(i int, key []byte, proj ...schema.Schema) ([]section.Row, error) {
	if len(proj) == 0 {
		return r.parsed(i, key)
	}

	if err := r.checkIndex(i); err != nil {
		return nil, err
	}

	return section.DecodeProjected(r.idx.headers[i], r.idx.bodies[i], key, proj[0])
}

// SectionColumn projects a single named column out of section i. See
// section.Column for the nil/empty-selection rules on an unknown name or a
// type mismatch against projType.
func (r *Reader) SectionColumn(i int, name string, key []byte, projType *format.FieldType) ([]*value.Value, error) {
	if err := r.checkIndex(i); err != nil {
		return nil, err
	}
	return section.Column(r.idx.headers[i], r.idx.bodies[i], key, name, projType)
}
