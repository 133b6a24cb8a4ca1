package track

import (
	"encoding/binary"

	"github.com/ridewithgps/tracklib/errs"
	"github.com/ridewithgps/tracklib/internal/crc"
	"github.com/ridewithgps/tracklib/internal/varint"
	"github.com/ridewithgps/tracklib/section"
)

// encodeDataTable assembles the data table: LEB128 section count, each
// section's header, a CRC-16 over that whole header block, then every
// section's body concatenated (spec §4.5).
func encodeDataTable(headers []section.Header, bodies [][]byte) []byte {
	var headerBlock []byte
	headerBlock = varint.PutUvarint(headerBlock, uint64(len(headers)))
	for _, h := range headers {
		headerBlock = h.Encode(headerBlock)
	}

	out := append([]byte{}, headerBlock...)
	out = crc.Put16(out, headerBlock)

	for _, b := range bodies {
		out = append(out, b...)
	}

	return out
}

// dataTableIndex is the eagerly parsed result of reading a data table:
// every section's header and a view of its body bytes, ready for on-demand
// decode (spec §4.6).
type dataTableIndex struct {
	headers []section.Header
	bodies  [][]byte
}

func decodeDataTable(data []byte) (dataTableIndex, error) {
	count, n, err := varint.Uvarint(data)
	if err != nil {
		return dataTableIndex{}, err
	}
	offset := n

	headers := make([]section.Header, count)
	for i := uint64(0); i < count; i++ {
		h, consumed, err := section.DecodeHeader(data[offset:])
		if err != nil {
			return dataTableIndex{}, err
		}
		headers[i] = h
		offset += consumed
	}

	if offset+2 > len(data) {
		return dataTableIndex{}, errs.ErrTruncatedInput
	}
	wantCRC := binary.LittleEndian.Uint16(data[offset : offset+2])
	if crc.Checksum16(data[:offset]) != wantCRC {
		return dataTableIndex{}, &errs.CrcMismatchError{Region: errs.RegionData}
	}
	offset += 2

	bodies := make([][]byte, count)
	for i, h := range headers {
		if offset+h.DataSize > len(data) {
			return dataTableIndex{}, errs.ErrTruncatedInput
		}
		bodies[i] = data[offset : offset+h.DataSize]
		offset += h.DataSize
	}

	return dataTableIndex{headers: headers, bodies: bodies}, nil
}
