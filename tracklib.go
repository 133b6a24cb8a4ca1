// Package tracklib provides a self-describing, columnar binary container
// format for time-series track records (e.g. GPS samples) alongside a
// short metadata table describing the track as a whole.
//
// # Core Features
//
//   - Schema-directed row<->column projection with per-field type coercion
//   - Delta+LEB128 coding for numeric columns, length-prefixed coding for
//     strings, byte arrays, and bool/uint64 arrays
//   - A presence bitmap distinguishing absent/null cells from present ones
//   - CRC-16 framing for the file header, metadata table, and data table;
//     CRC-32 framing for each section's presence bitmap and column bodies
//   - An encrypted section variant sealed with XChaCha20-Poly1305
//
// # Basic Usage
//
// Writing a track with one standard section:
//
//	import (
//	    "github.com/ridewithgps/tracklib/format"
//	    "github.com/ridewithgps/tracklib/metadata"
//	    "github.com/ridewithgps/tracklib/schema"
//	    "github.com/ridewithgps/tracklib/section"
//	    "github.com/ridewithgps/tracklib/value"
//	)
//
//	sch, _ := schema.New([]schema.Field{
//	    {Name: "lat", Type: format.TypeF64, Scale: 7},
//	    {Name: "lon", Type: format.TypeF64, Scale: 7},
//	})
//	rows := []section.Row{
//	    {"lat": value.F64Value(45.5231), "lon": value.F64Value(-122.6765)},
//	}
//	entries := []metadata.Entry{metadata.TrackTypeEntry(format.TrackRoute, 42)}
//
//	data, err := WriteTrack(1, entries, []section.Section{section.Standard(sch, rows)})
//
// Reading it back:
//
//	reader, err := NewReader(data)
//	got, err := reader.SectionData(0, nil)
//
// # Package Structure
//
// This package is a thin convenience wrapper around package track (the
// file assembler/disassembler), package section (the row<->column engine),
// package schema, and package metadata. For fine-grained control, use
// those packages directly.
package tracklib

import (
	"github.com/ridewithgps/tracklib/metadata"
	"github.com/ridewithgps/tracklib/section"
	"github.com/ridewithgps/tracklib/track"
)

// WriteTrack assembles metadata entries and sections into a complete RWTF
// file. creatorVersion is opaque and preserved round-trip.
func WriteTrack(creatorVersion uint16, entries []metadata.Entry, sections []section.Section, opts ...track.Option) ([]byte, error) {
	return track.WriteTrack(creatorVersion, entries, sections, opts...)
}

// NewReader parses data as a complete RWTF file, verifying every CRC
// reachable without decoding a column.
func NewReader(data []byte) (*track.Reader, error) {
	return track.NewReader(data)
}

// WithDropLogger installs a hook invoked once per row/field value that a
// section silently drops during write-time coercion.
func WithDropLogger(f section.DropLogger) track.Option {
	return track.WithDropLogger(f)
}
