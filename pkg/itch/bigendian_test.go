package itch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBE16_RoundTrip(t *testing.T) {
	buf := make([]byte, 2)
	for _, v := range []uint16{0, 1, 0x00FF, 0xFF00, 0xFFFF, 12345} {
		PutBE16(buf, v)
		require.Equal(t, v, BE16(buf))
	}
}

func TestBE32_RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	for _, v := range []uint32{0, 1, 0xDEADBEEF, 0xFFFFFFFF} {
		PutBE32(buf, v)
		require.Equal(t, v, BE32(buf))
	}
}

func TestBE64_RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	for _, v := range []uint64{0, 1, 0xDEADBEEFCAFEF00D, 0xFFFFFFFFFFFFFFFF} {
		PutBE64(buf, v)
		require.Equal(t, v, BE64(buf))
	}
}

func TestTimestamp48_RoundTrip(t *testing.T) {
	buf := make([]byte, 6)
	for _, v := range []uint64{0, 1, 12345, MaxTimestamp48} {
		PutTimestamp48(buf, v)
		require.Equal(t, v, Timestamp48(buf))
	}
}

func TestTimestamp48_MaxValue(t *testing.T) {
	require.Equal(t, uint64(1<<48-1), MaxTimestamp48)

	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	require.Equal(t, MaxTimestamp48, Timestamp48(buf))
}

func TestTimestamp48_ByteOrder(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	want := uint64(0x01)<<40 | uint64(0x02)<<32 | uint64(0x03)<<24 |
		uint64(0x04)<<16 | uint64(0x05)<<8 | uint64(0x06)
	require.Equal(t, want, Timestamp48(buf))
}
