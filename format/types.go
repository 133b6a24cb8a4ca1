// Package format defines the closed wire-tag vocabularies shared by the
// schema, value, and metadata layers of the RWTF container format.
package format

// FieldType is the closed set of column types a schema field may declare.
type FieldType uint8

const (
	TypeI64       FieldType = 0x00
	TypeF64       FieldType = 0x01
	TypeU64       FieldType = 0x02
	TypeBool      FieldType = 0x10
	TypeString    FieldType = 0x20
	TypeBoolArray FieldType = 0x21
	TypeU64Array  FieldType = 0x22
	TypeByteArray FieldType = 0x23
)

// IsValid reports whether t is one of the tags in the closed FieldType set.
func (t FieldType) IsValid() bool {
	switch t {
	case TypeI64, TypeF64, TypeU64, TypeBool, TypeString, TypeBoolArray, TypeU64Array, TypeByteArray:
		return true
	default:
		return false
	}
}

func (t FieldType) String() string {
	switch t {
	case TypeI64:
		return "I64"
	case TypeF64:
		return "F64"
	case TypeU64:
		return "U64"
	case TypeBool:
		return "Bool"
	case TypeString:
		return "String"
	case TypeBoolArray:
		return "BoolArray"
	case TypeU64Array:
		return "U64Array"
	case TypeByteArray:
		return "ByteArray"
	default:
		return "Unknown"
	}
}

// TrackType identifies the kind of activity a track records.
type TrackType uint8

const (
	TrackTrip    TrackType = 0x00
	TrackRoute   TrackType = 0x01
	TrackSegment TrackType = 0x02
)

// IsValid reports whether t is one of the tags in the closed TrackType set.
func (t TrackType) IsValid() bool {
	switch t {
	case TrackTrip, TrackRoute, TrackSegment:
		return true
	default:
		return false
	}
}

func (t TrackType) String() string {
	switch t {
	case TrackTrip:
		return "trip"
	case TrackRoute:
		return "route"
	case TrackSegment:
		return "segment"
	default:
		return "unknown"
	}
}

// MetadataKind is the closed set of metadata table entry kinds.
type MetadataKind uint8

const (
	MetadataTrackType MetadataKind = 0x00
	MetadataCreatedAt MetadataKind = 0x01
)

func (k MetadataKind) String() string {
	switch k {
	case MetadataTrackType:
		return "track_type"
	case MetadataCreatedAt:
		return "created_at"
	default:
		return "unknown"
	}
}

// SectionEncoding is the closed set of section payload encodings.
type SectionEncoding uint8

const (
	EncodingStandard  SectionEncoding = 0x00
	EncodingEncrypted SectionEncoding = 0x01
)

func (e SectionEncoding) String() string {
	switch e {
	case EncodingStandard:
		return "standard"
	case EncodingEncrypted:
		return "encrypted"
	default:
		return "unknown"
	}
}
