package feed

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/divitsinghall/Chronos-ITCH/pkg/book"
)

// execEvent is the wire shape published for every fill. Kept separate
// from book.Execution so the wire format can evolve independently of
// the matching engine's internal struct.
type execEvent struct {
	MakerID   uint64 `json:"maker_id"`
	TakerID   uint64 `json:"taker_id"`
	Price     uint64 `json:"price"`
	Qty       uint32 `json:"qty"`
	MakerSide string `json:"maker_side"`
}

// NATSSink publishes every book execution as JSON to a fixed NATS
// subject. It satisfies book.ExecutionSink via Publish.
type NATSSink struct {
	nc      *nats.Conn
	subject string
}

// NewNATSSink wraps an already-connected NATS connection. The caller
// owns nc's lifecycle.
func NewNATSSink(nc *nats.Conn, subject string) *NATSSink {
	return &NATSSink{nc: nc, subject: subject}
}

// Publish marshals exec and publishes it, silently dropping the event
// on a marshal or publish error — a lost fill event must never block
// or panic the matching hot path that calls it.
func (s *NATSSink) Publish(exec book.Execution) {
	payload, err := json.Marshal(execEvent{
		MakerID:   exec.MakerID,
		TakerID:   exec.TakerID,
		Price:     exec.Price,
		Qty:       exec.Qty,
		MakerSide: exec.MakerSide.String(),
	})
	if err != nil {
		return
	}
	_ = s.nc.Publish(s.subject, payload)
}
