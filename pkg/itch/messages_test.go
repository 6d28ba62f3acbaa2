package itch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildHeader(buf []byte, msgType byte, stockLocate, tracking uint16, ts uint64) {
	buf[0] = msgType
	PutBE16(buf[1:3], stockLocate)
	PutBE16(buf[3:5], tracking)
	PutTimestamp48(buf[5:11], ts)
}

func TestLengthFor_ModeledTypes(t *testing.T) {
	require.Equal(t, 11, LengthFor(TypeSystemEvent))
	require.Equal(t, AddOrderLen, LengthFor(TypeAddOrder))
	require.Equal(t, OrderExecutedLen, LengthFor(TypeOrderExecuted))
}

func TestLengthFor_StructurallySkippableTypes(t *testing.T) {
	skippable := []byte{
		TypeStockDirectory, TypeStockTradingAction, TypeRegSHORestriction,
		TypeMarketParticipantPosition, TypeMWCBDeclineLevel, TypeMWCBStatus,
		TypeIPOQuotingPeriod, TypeAddOrderMPID, TypeOrderExecutedWithPrice,
		TypeOrderCancel, TypeOrderDelete, TypeOrderReplace, TypeTrade,
		TypeCrossTrade, TypeBrokenTrade, TypeNOII, TypeNetOrderImbalanceIndicator2,
	}
	for _, ty := range skippable {
		require.Greater(t, LengthFor(ty), 0, "type %q must have a nonzero tabulated length", string(ty))
	}
}

func TestLengthFor_UnknownType(t *testing.T) {
	require.Equal(t, 0, LengthFor('Z'))
	require.Equal(t, 0, LengthFor(0))
	require.Equal(t, 0, LengthFor(0xFF))
}

func TestHeader_Fields(t *testing.T) {
	buf := make([]byte, HeaderLen)
	buildHeader(buf, TypeSystemEvent, 7, 42, MaxTimestamp48)

	h := NewHeader(buf)
	require.Equal(t, byte(TypeSystemEvent), h.MsgType())
	require.Equal(t, uint16(7), h.StockLocate())
	require.Equal(t, uint16(42), h.TrackingNumber())
	require.Equal(t, MaxTimestamp48, h.Timestamp())
}

func TestStockSymbol_StringTrimsPadding(t *testing.T) {
	sym := StockSymbol{buf: []byte("AAPL    ")}
	require.Equal(t, "AAPL", sym.String())

	full := StockSymbol{buf: []byte("ABCDEFGH")}
	require.Equal(t, "ABCDEFGH", full.String())
}

func TestStockSymbol_Equals(t *testing.T) {
	sym := StockSymbol{buf: []byte("AAPL    ")}
	require.True(t, sym.Equals("AAPL"))
	require.False(t, sym.Equals("AAP"))
	require.False(t, sym.Equals("AAPLE"))
	require.False(t, sym.Equals("MSFT"))

	full := StockSymbol{buf: []byte("ABCDEFGH")}
	require.True(t, full.Equals("ABCDEFGH"))
}

// buildAddOrder writes a synthetic 36-byte Add Order record per
// spec.md §6.1's field table, for wire round-trip property 7.
func buildAddOrder(orderRef uint64, side byte, shares uint32, symbol string, price uint32) []byte {
	buf := make([]byte, AddOrderLen)
	buildHeader(buf, TypeAddOrder, 1, 2, 123456789)
	PutBE64(buf[11:19], orderRef)
	buf[19] = side
	PutBE32(buf[20:24], shares)
	copy(buf[24:32], symbol+"        ")
	PutBE32(buf[32:36], price)
	return buf
}

func TestAddOrder_WireRoundTrip(t *testing.T) {
	buf := buildAddOrder(0x1122334455667788, 'B', 100, "AAPL", 1_000_000)

	a := NewAddOrder(buf)
	require.Equal(t, byte(TypeAddOrder), a.MsgType())
	require.Equal(t, uint64(0x1122334455667788), a.OrderRef())
	require.Equal(t, byte('B'), a.Side())
	require.True(t, a.IsBuy())
	require.Equal(t, uint32(100), a.Shares())
	require.Equal(t, "AAPL", a.Stock().String())
	require.Equal(t, uint32(1_000_000), a.Price())
}

func TestAddOrder_SellSide(t *testing.T) {
	buf := buildAddOrder(1, 'S', 50, "MSFT", 500000)
	a := NewAddOrder(buf)
	require.False(t, a.IsBuy())
	require.Equal(t, byte('S'), a.Side())
}

func buildOrderExecuted(orderRef uint64, shares uint32, matchNumber uint64) []byte {
	buf := make([]byte, OrderExecutedLen)
	buildHeader(buf, TypeOrderExecuted, 1, 2, 987654321)
	PutBE64(buf[11:19], orderRef)
	PutBE32(buf[19:23], shares)
	PutBE64(buf[23:31], matchNumber)
	return buf
}

func TestOrderExecuted_WireRoundTrip(t *testing.T) {
	buf := buildOrderExecuted(42, 75, 0xABCDEF0123456789)

	e := NewOrderExecuted(buf)
	require.Equal(t, byte(TypeOrderExecuted), e.MsgType())
	require.Equal(t, uint64(42), e.OrderRef())
	require.Equal(t, uint32(75), e.ExecutedShares())
	require.Equal(t, uint64(0xABCDEF0123456789), e.MatchNumber())
}

func TestSystemEvent_Overlay(t *testing.T) {
	buf := make([]byte, SystemEventLen)
	buildHeader(buf, TypeSystemEvent, 3, 4, 5)

	s := NewSystemEvent(buf)
	require.Equal(t, byte(TypeSystemEvent), s.MsgType())
	require.Equal(t, uint16(3), s.StockLocate())
}
