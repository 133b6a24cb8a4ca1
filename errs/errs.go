// Package errs defines the taxonomy of error kinds the RWTF codec surfaces,
// per spec §7. Most failures are flat sentinel errors; a handful carry enough
// context (region, index) that callers need to inspect it, so those are
// small exported struct types that still satisfy the error interface.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic indicates the first 8 bytes of a track do not match the
	// RWTF magic sequence.
	ErrBadMagic = errors.New("rwtf: bad magic")

	// ErrBadVersion indicates an unsupported file_version.
	ErrBadVersion = errors.New("rwtf: unsupported file version")

	// ErrBadSchema indicates an unknown type tag, invalid F64 scale, or
	// malformed field name length in a schema.
	ErrBadSchema = errors.New("rwtf: bad schema")

	// ErrTruncatedInput indicates required bytes are missing from the input.
	ErrTruncatedInput = errors.New("rwtf: truncated input")

	// ErrDecryptFail indicates an encrypted section failed to authenticate:
	// wrong key, wrong key length, or a corrupted ciphertext. The format
	// cannot distinguish these cases from each other.
	ErrDecryptFail = errors.New("rwtf: decrypt failed")

	// ErrOutOfRange indicates an encoded integer does not fit its target
	// width, or a LEB128 varint overflows 64 bits.
	ErrOutOfRange = errors.New("rwtf: value out of range")

	// ErrBadMetadata indicates an unknown metadata entry kind, a malformed
	// entry body size, or an invalid track-type tag.
	ErrBadMetadata = errors.New("rwtf: bad metadata")

	// ErrBadValue indicates an encoded value is not valid for its field
	// type: the Bool and BoolArray decoders return it for any byte other
	// than 0x00 or 0x01. Write-time coercion failures are silently dropped
	// rather than surfaced, and an invalid F64 scale is reported as
	// ErrBadSchema.
	ErrBadValue = errors.New("rwtf: bad value")

	// ErrOffsetMismatch indicates a file-header or section offset field does
	// not agree with the actual size of the region it bounds.
	ErrOffsetMismatch = errors.New("rwtf: offset mismatch")
)

// Region names used by CrcMismatchError.
const (
	RegionHeader   = "header"
	RegionMetadata = "metadata"
	RegionData     = "data_table"
	RegionPresence = "presence"
)

// CrcMismatchError reports a CRC verification failure for a named region of
// the track, per spec §7's CrcMismatch{region} kind.
type CrcMismatchError struct {
	Region string
}

func (e *CrcMismatchError) Error() string {
	return fmt.Sprintf("rwtf: crc mismatch in %s", e.Region)
}

// ColumnCrcMismatchError reports a CRC verification failure for a specific
// column within a section.
type ColumnCrcMismatchError struct {
	Column int
}

func (e *ColumnCrcMismatchError) Error() string {
	return fmt.Sprintf("rwtf: crc mismatch in column %d", e.Column)
}

// SectionIndexError reports an out-of-range section index, per spec §7's
// SectionIndex kind.
type SectionIndexError struct {
	Index int
	Count int
}

func (e *SectionIndexError) Error() string {
	return fmt.Sprintf("rwtf: section index %d out of range (have %d)", e.Index, e.Count)
}
