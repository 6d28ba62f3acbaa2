// Package itch implements zero-copy overlay parsing of NASDAQ
// TotalView-ITCH 5.0 messages. Overlays alias the caller's buffer and
// never allocate; field access converts big-endian wire values to host
// order on read.
package itch

import "encoding/binary"

// BE16 reads a 16-bit big-endian unsigned integer at the start of b.
// Callers must ensure len(b) >= 2.
func BE16(b []byte) uint16 {
	return binary.BigEndian.Uint16(b)
}

// BE32 reads a 32-bit big-endian unsigned integer at the start of b.
// Callers must ensure len(b) >= 4.
func BE32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// BE64 reads a 64-bit big-endian unsigned integer at the start of b.
// Callers must ensure len(b) >= 8.
func BE64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

// PutBE16 writes v as 16-bit big-endian into b. Callers must ensure
// len(b) >= 2. Used by tests to build synthetic wire records.
func PutBE16(b []byte, v uint16) {
	binary.BigEndian.PutUint16(b, v)
}

// PutBE32 writes v as 32-bit big-endian into b. Callers must ensure
// len(b) >= 4.
func PutBE32(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

// PutBE64 writes v as 64-bit big-endian into b. Callers must ensure
// len(b) >= 8.
func PutBE64(b []byte, v uint64) {
	binary.BigEndian.PutUint64(b, v)
}

// MaxTimestamp48 is the largest legal value of a 48-bit timestamp field
// (2^48 - 1).
const MaxTimestamp48 uint64 = (1 << 48) - 1

// Timestamp48 decodes a 6-byte big-endian integer into nanoseconds since
// midnight. Callers must ensure len(b) >= 6.
func Timestamp48(b []byte) uint64 {
	return uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
}

// PutTimestamp48 writes the low 48 bits of v as a 6-byte big-endian
// field into b. Callers must ensure len(b) >= 6 and v <= MaxTimestamp48.
func PutTimestamp48(b []byte, v uint64) {
	b[0] = byte(v >> 40)
	b[1] = byte(v >> 32)
	b[2] = byte(v >> 24)
	b[3] = byte(v >> 16)
	b[4] = byte(v >> 8)
	b[5] = byte(v)
}
