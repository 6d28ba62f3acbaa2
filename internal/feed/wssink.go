package feed

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/divitsinghall/Chronos-ITCH/pkg/book"
)

// snapshot is the best-bid/best-ask view broadcast to every
// connected client. Prices are carried both as raw integer ticks and
// as a decimal.Decimal-rendered display string (DisplayPrice) — the
// book itself never touches decimal, but the snapshot is exactly the
// human-readable boundary spec.md's original_source notes call for
// (SPEC_FULL §12).
type snapshot struct {
	BestBid        uint64 `json:"best_bid,omitempty"`
	BestBidDisplay string `json:"best_bid_display,omitempty"`
	BestAsk        uint64 `json:"best_ask,omitempty"`
	BestAskDisplay string `json:"best_ask_display,omitempty"`
	BestBidVolume  uint64 `json:"best_bid_volume,omitempty"`
	BestAskVolume  uint64 `json:"best_ask_volume,omitempty"`
	OrderCount     int    `json:"order_count"`
}

// WSHub broadcasts book snapshots to connected WebSocket clients. It
// is a much smaller cousin of the teacher's websocket_server.go
// client registry — a map of live connections, each with its own
// buffered send channel, with no per-client subscription filtering
// since this core is single-symbol.
type WSHub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
}

// NewWSHub returns an idle hub. Call ServeHTTP from an http.ServeMux
// to accept client connections, and PublishSnapshot (or Broadcast
// directly) to push updates.
func NewWSHub() *WSHub {
	return &WSHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]chan []byte),
	}
}

// ServeHTTP upgrades the connection and registers it for broadcasts
// until the client disconnects.
func (h *WSHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	send := make(chan []byte, 16)
	h.mu.Lock()
	h.clients[conn] = send
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for payload := range send {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

// Broadcast sends payload to every currently connected client,
// dropping it for any client whose send buffer is full rather than
// blocking the caller.
func (h *WSHub) Broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.clients {
		select {
		case ch <- payload:
		default:
		}
	}
}

// PublishSnapshot marshals the book's current top-of-book state and
// broadcasts it. Must be called from the same goroutine that owns the
// book (spec §5: the book is not internally synchronized) — the CLI
// calls this itself once, after ParseStream has consumed the input,
// rather than handing the book to a separate ticking goroutine.
func (h *WSHub) PublishSnapshot(b *book.OrderBook) {
	var snap snapshot
	if bid, ok := b.BestBid(); ok {
		snap.BestBid = bid
		snap.BestBidDisplay = DisplayPrice(bid).String()
		snap.BestBidVolume = b.BestBidVolume()
	}
	if ask, ok := b.BestAsk(); ok {
		snap.BestAsk = ask
		snap.BestAskDisplay = DisplayPrice(ask).String()
		snap.BestAskVolume = b.BestAskVolume()
	}
	snap.OrderCount = b.OrderCount()

	payload, err := json.Marshal(snap)
	if err != nil {
		return
	}
	h.Broadcast(payload)
}
