package section

import (
	"github.com/ridewithgps/tracklib/errs"
	"github.com/ridewithgps/tracklib/format"
	"github.com/ridewithgps/tracklib/internal/varint"
	"github.com/ridewithgps/tracklib/schema"
)

// Header is a section's entry in the data table (spec §4.5): its encoding,
// row count, body size, persisted (post-trim) schema, and the per-column
// encoded byte size each field's column occupies within the body. Headers
// for every section in a track are written contiguously, ahead of any
// section body, so a reader can walk the whole data table without decoding
// a single column.
type Header struct {
	Encoding    format.SectionEncoding
	Rows        int
	DataSize    int
	Schema      schema.Schema
	ColumnSizes []int // one per Schema.Fields entry, in order
}

// Encode appends h's wire form to dst.
func (h Header) Encode(dst []byte) []byte {
	dst = append(dst, byte(h.Encoding))
	dst = varint.PutUvarint(dst, uint64(h.Rows))
	dst = varint.PutUvarint(dst, uint64(h.DataSize))
	dst = h.Schema.Encode(dst)
	for _, sz := range h.ColumnSizes {
		dst = varint.PutUvarint(dst, uint64(sz))
	}

	return dst
}

// DecodeHeader parses a single section header from the front of data. It
// returns the header and the number of bytes consumed.
func DecodeHeader(data []byte) (Header, int, error) {
	if len(data) < 1 {
		return Header{}, 0, errs.ErrTruncatedInput
	}

	enc := format.SectionEncoding(data[0])
	if enc != format.EncodingStandard && enc != format.EncodingEncrypted {
		return Header{}, 0, errs.ErrBadSchema
	}
	offset := 1

	rows, n, err := varint.Uvarint(data[offset:])
	if err != nil {
		return Header{}, 0, err
	}
	offset += n

	dataSize, n, err := varint.Uvarint(data[offset:])
	if err != nil {
		return Header{}, 0, err
	}
	offset += n

	sch, n, err := schema.Decode(data[offset:])
	if err != nil {
		return Header{}, 0, err
	}
	offset += n

	sizes := make([]int, sch.Len())
	for i := range sizes {
		sz, n, err := varint.Uvarint(data[offset:])
		if err != nil {
			return Header{}, 0, err
		}
		offset += n
		sizes[i] = int(sz)
	}

	return Header{
		Encoding:    enc,
		Rows:        int(rows),
		DataSize:    int(dataSize),
		Schema:      sch,
		ColumnSizes: sizes,
	}, offset, nil
}
