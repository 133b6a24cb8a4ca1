// Package metadata implements the track-level metadata table (spec §4.5):
// a short, length-tagged (TLV) list of known entry kinds describing the
// track as a whole, independent of any section.
//
// Grounded on section.NumericHeader's Parse/Bytes pairing style in the
// teacher (fixed-layout parse-and-serialize, one method each way); the
// metadata table's own framing is heterogeneous (length-tagged entries
// rather than a fixed byte count) since unlike the teacher's single blob
// header, a track's metadata list is open-ended.
package metadata

import (
	"encoding/binary"

	"github.com/ridewithgps/tracklib/errs"
	"github.com/ridewithgps/tracklib/format"
	"github.com/ridewithgps/tracklib/internal/crc"
	"github.com/ridewithgps/tracklib/internal/varint"
)

// Entry is one metadata-table entry: a tagged union selected by Kind. Only
// the fields meaningful to that Kind are populated.
type Entry struct {
	Kind format.MetadataKind

	// TrackType/TrackID are meaningful when Kind == format.MetadataTrackType.
	TrackType format.TrackType
	TrackID   uint32

	// CreatedAt is meaningful when Kind == format.MetadataCreatedAt: Unix
	// seconds since the epoch, UTC.
	CreatedAt int64
}

// TrackTypeEntry builds a track_type metadata entry.
func TrackTypeEntry(t format.TrackType, id uint32) Entry {
	return Entry{Kind: format.MetadataTrackType, TrackType: t, TrackID: id}
}

// CreatedAtEntry builds a created_at metadata entry from a Unix-seconds
// timestamp (UTC).
func CreatedAtEntry(unixSeconds int64) Entry {
	return Entry{Kind: format.MetadataCreatedAt, CreatedAt: unixSeconds}
}

func (e Entry) encodeBody() ([]byte, error) {
	switch e.Kind {
	case format.MetadataTrackType:
		if !e.TrackType.IsValid() {
			return nil, errs.ErrBadMetadata
		}
		buf := make([]byte, 5)
		buf[0] = byte(e.TrackType)
		binary.LittleEndian.PutUint32(buf[1:], e.TrackID)
		return buf, nil

	case format.MetadataCreatedAt:
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, uint64(e.CreatedAt))
		return buf, nil

	default:
		return nil, errs.ErrBadMetadata
	}
}

// EncodeTable appends the wire form of a whole metadata table — LEB128
// entry count, then each entry's kind/size/body, then a CRC-16 over the
// entire table body including the count — to dst.
func EncodeTable(dst []byte, entries []Entry) ([]byte, error) {
	var body []byte
	body = varint.PutUvarint(body, uint64(len(entries)))

	for _, e := range entries {
		b, err := e.encodeBody()
		if err != nil {
			return nil, err
		}
		if len(b) > 0xFFFF {
			return nil, errs.ErrBadMetadata
		}

		body = append(body, byte(e.Kind))
		var sizeBuf [2]byte
		binary.LittleEndian.PutUint16(sizeBuf[:], uint16(len(b)))
		body = append(body, sizeBuf[:]...)
		body = append(body, b...)
	}

	dst = append(dst, body...)
	dst = crc.Put16(dst, body)

	return dst, nil
}

func decodeEntryBody(kind format.MetadataKind, body []byte) (Entry, error) {
	switch kind {
	case format.MetadataTrackType:
		if len(body) != 5 {
			return Entry{}, errs.ErrBadMetadata
		}
		tt := format.TrackType(body[0])
		if !tt.IsValid() {
			return Entry{}, errs.ErrBadMetadata
		}
		return Entry{
			Kind:      kind,
			TrackType: tt,
			TrackID:   binary.LittleEndian.Uint32(body[1:5]),
		}, nil

	case format.MetadataCreatedAt:
		if len(body) != 8 {
			return Entry{}, errs.ErrBadMetadata
		}
		return Entry{
			Kind:      kind,
			CreatedAt: int64(binary.LittleEndian.Uint64(body)),
		}, nil

	default:
		return Entry{}, errs.ErrBadMetadata
	}
}

// DecodeTable parses a metadata table (entry count, entries, trailing
// CRC-16) from the front of data. It returns the entries and the number of
// bytes consumed.
func DecodeTable(data []byte) ([]Entry, int, error) {
	count, n, err := varint.Uvarint(data)
	if err != nil {
		return nil, 0, err
	}
	offset := n

	entries := make([]Entry, 0, count)
	for i := uint64(0); i < count; i++ {
		if offset+3 > len(data) {
			return nil, 0, errs.ErrTruncatedInput
		}
		kind := format.MetadataKind(data[offset])
		size := int(binary.LittleEndian.Uint16(data[offset+1 : offset+3]))
		offset += 3

		if offset+size > len(data) {
			return nil, 0, errs.ErrTruncatedInput
		}
		body := data[offset : offset+size]
		offset += size

		e, err := decodeEntryBody(kind, body)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}

	if offset+2 > len(data) {
		return nil, 0, errs.ErrTruncatedInput
	}
	wantCRC := binary.LittleEndian.Uint16(data[offset : offset+2])
	if crc.Checksum16(data[:offset]) != wantCRC {
		return nil, 0, &errs.CrcMismatchError{Region: errs.RegionMetadata}
	}
	offset += 2

	return entries, offset, nil
}
