package track

import (
	"github.com/ridewithgps/tracklib/errs"
	"github.com/ridewithgps/tracklib/metadata"
	"github.com/ridewithgps/tracklib/section"
)

// Option configures a single call to WriteTrack, in the teacher's
// functional-option idiom (blob.NumericEncoderOption).
type Option func(*writeConfig)

type writeConfig struct {
	onDrop section.DropLogger
}

// WithDropLogger installs a hook invoked once per row/field that a section
// silently drops during coercion (spec §4.3, §9).
func WithDropLogger(f section.DropLogger) Option {
	return func(c *writeConfig) { c.onDrop = f }
}

// WriteTrack assembles a complete RWTF file: file header, metadata table,
// and data table, in that order. creatorVersion is opaque to this package
// and is preserved round-trip (spec §4.5).
func WriteTrack(creatorVersion uint16, entries []metadata.Entry, sections []section.Section, opts ...Option) ([]byte, error) {
	cfg := writeConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	var sectionOpts []section.BuildOption
	if cfg.onDrop != nil {
		sectionOpts = append(sectionOpts, section.WithDropLogger(cfg.onDrop))
	}

	headers := make([]section.Header, len(sections))
	bodies := make([][]byte, len(sections))
	for i, s := range sections {
		h, body, err := s.Build(sectionOpts...)
		if err != nil {
			return nil, err
		}
		headers[i] = h
		bodies[i] = body
	}

	metaBuf, err := metadata.EncodeTable(nil, entries)
	if err != nil {
		return nil, err
	}

	dataBuf := encodeDataTable(headers, bodies)

	metadataOffset := FileHeaderSize
	dataOffset := metadataOffset + len(metaBuf)
	if dataOffset > 0xFFFF {
		return nil, errs.ErrOffsetMismatch
	}

	hdr := FileHeader{
		FileVersion:    FileVersion,
		CreatorVersion: creatorVersion,
		MetadataOffset: uint16(metadataOffset),
		DataOffset:     uint16(dataOffset),
	}

	out := hdr.Encode()
	out = append(out, metaBuf...)
	out = append(out, dataBuf...)

	return out, nil
}
