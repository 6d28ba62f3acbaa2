package feed

import (
	"encoding/json"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/divitsinghall/Chronos-ITCH/pkg/book"
)

func TestWSHub_PublishSnapshot_IncludesDecimalDisplayPrices(t *testing.T) {
	h := NewWSHub()
	recv := make(chan []byte, 1)
	h.mu.Lock()
	h.clients[(*websocket.Conn)(nil)] = recv
	h.mu.Unlock()

	pool := book.NewPool(4)
	ob := book.NewOrderBook(pool)
	require.True(t, ob.AddOrder(1, 1_000_000, 10, book.Buy, nil))
	require.True(t, ob.AddOrder(2, 1_010_000, 5, book.Sell, nil))

	h.PublishSnapshot(ob)

	var payload []byte
	select {
	case payload = <-recv:
	default:
		t.Fatal("expected a broadcast payload")
	}

	var snap snapshot
	require.NoError(t, json.Unmarshal(payload, &snap))
	require.Equal(t, uint64(1_000_000), snap.BestBid)
	require.Equal(t, "100", snap.BestBidDisplay)
	require.Equal(t, uint64(1_010_000), snap.BestAsk)
	require.Equal(t, "101", snap.BestAskDisplay)
	require.Equal(t, 2, snap.OrderCount)
}
