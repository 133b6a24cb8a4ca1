// Package section implements the columnar section engine: building a
// Section's rows into a presence-bitmap- and CRC-32-framed byte body, and
// decoding that body back into rows or a single projected column.
//
// # Layout
//
// A built section body is:
//
//	[presence bitmap][CRC-32][column 0 bytes][CRC-32][column 1 bytes][CRC-32]...
//
// The presence bitmap has one bit per (row, field) pair, row-major, so a
// decoder can recover which rows carry which fields without touching any
// column payload. Each column's bytes are produced by the matching codec in
// the field package and are independently checksummed.
//
// # Standard and encrypted sections
//
// Standard builds the presence-bitmap/column body directly. Encrypted seals
// the same body with XChaCha20-Poly1305 (see crypt.go) before it is framed
// into the section's header; decoding reverses this transparently, so
// Decode and Column take the same arguments regardless of encoding.
//
// # Coercion and trimming
//
// Build coerces each row's value against its field's declared type (see
// coerce.go) and silently drops a row/field pair that cannot be coerced,
// optionally reporting the drop through a DropLogger. A field with zero
// surviving values across every row is trimmed from the persisted schema
// entirely; Header.Schema may therefore have fewer fields than the schema a
// Section was built with.
package section
