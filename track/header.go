// Package track implements spec §4.5: the top-level RWTF file assembler and
// disassembler — magic file header, metadata table, data table (section
// headers + bodies), and the lazy, cached section reader of §4.6.
package track

import (
	"bytes"
	"encoding/binary"

	"github.com/ridewithgps/tracklib/errs"
	"github.com/ridewithgps/tracklib/internal/crc"
)

// FileVersion is the only file_version this implementation writes or
// accepts; the legacy "RWTF v0" format is a distinct, unrelated wire
// format and is out of scope (spec §9).
const FileVersion uint16 = 1

// FileHeaderSize is the total size, in bytes, of the fixed file header
// including its trailing CRC-16: 22 bytes of magic/version/offset fields
// plus the 2-byte CRC that covers them.
const FileHeaderSize = 24

var magic = [8]byte{0x89, 'R', 'W', 'T', 'F', 0x0A, 0x1A, 0x0A}

// FileHeader is the fixed 24-byte region at the start of every RWTF file.
type FileHeader struct {
	FileVersion    uint16
	CreatorVersion uint16
	MetadataOffset uint16
	DataOffset     uint16
}

// Encode returns the 24-byte wire form of h, including its CRC-16.
func (h FileHeader) Encode() []byte {
	buf := make([]byte, 0, FileHeaderSize)
	buf = append(buf, magic[:]...)
	buf = appendU16(buf, h.FileVersion)
	buf = appendU16(buf, 0) // reserved_fv
	buf = appendU16(buf, h.CreatorVersion)
	buf = appendU16(buf, 0) // reserved_cv
	buf = appendU16(buf, h.MetadataOffset)
	buf = appendU16(buf, h.DataOffset)
	buf = appendU16(buf, 0) // reserved_e

	return crc.Put16(buf, buf)
}

func appendU16(dst []byte, v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return append(dst, b[:]...)
}

// DecodeFileHeader parses the fixed file header from the front of data,
// verifying its magic, CRC-16, and file_version.
func DecodeFileHeader(data []byte) (FileHeader, error) {
	if len(data) < FileHeaderSize {
		return FileHeader{}, errs.ErrTruncatedInput
	}
	if !bytes.Equal(data[:8], magic[:]) {
		return FileHeader{}, errs.ErrBadMagic
	}

	wantCRC := binary.LittleEndian.Uint16(data[22:24])
	if crc.Checksum16(data[:22]) != wantCRC {
		return FileHeader{}, &errs.CrcMismatchError{Region: errs.RegionHeader}
	}

	fv := binary.LittleEndian.Uint16(data[8:10])
	if fv != FileVersion {
		return FileHeader{}, errs.ErrBadVersion
	}

	return FileHeader{
		FileVersion:    fv,
		CreatorVersion: binary.LittleEndian.Uint16(data[12:14]),
		MetadataOffset: binary.LittleEndian.Uint16(data[16:18]),
		DataOffset:     binary.LittleEndian.Uint16(data[18:20]),
	}, nil
}
