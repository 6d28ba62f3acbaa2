package itch

// Result is the outcome of a single parse_one call.
type Result int

const (
	// Ok means a complete, recognized or skippable message was
	// consumed.
	Ok Result = iota
	// BufferTooSmall means buf[0] named a known type whose full record
	// length exceeds len(buf); no bytes were consumed.
	BufferTooSmall
	// UnknownType means buf[0] is not a recognized ITCH type byte at
	// all (length table entry is 0); no bytes were consumed.
	UnknownType
)

// Sink receives typed message overlays during dispatch. Every hook
// receives a view bound to the call's lifetime; implementations must
// not retain the overlay past return, since it aliases the caller's
// buffer. Embed DefaultSink to get no-op implementations for hooks you
// don't care about.
type Sink interface {
	OnSystemEvent(SystemEvent)
	OnAddOrder(AddOrder)
	OnOrderExecuted(OrderExecuted)
	OnUnknown(msgType byte, raw []byte)
}

// DefaultSink implements Sink with no-op hooks. Embed it in a caller's
// sink type to override only the hooks that matter (spec §6.3).
type DefaultSink struct{}

func (DefaultSink) OnSystemEvent(SystemEvent)          {}
func (DefaultSink) OnAddOrder(AddOrder)                {}
func (DefaultSink) OnOrderExecuted(OrderExecuted)      {}
func (DefaultSink) OnUnknown(msgType byte, raw []byte) {}

// ParseOne inspects buf[0] as a message type byte, looks up its wire
// length, and if buf holds at least that many bytes, dispatches a
// typed overlay to sink and returns (Ok, length). Otherwise it returns
// (BufferTooSmall, 0) or (UnknownType, 0) without consuming anything
// or allocating. An empty buf is always UnknownType.
func ParseOne(buf []byte, sink Sink) (Result, int) {
	if len(buf) == 0 {
		return UnknownType, 0
	}

	t := buf[0]
	n := LengthFor(t)
	if n == 0 {
		return UnknownType, 0
	}
	if len(buf) < n {
		return BufferTooSmall, 0
	}

	rec := buf[:n]
	switch t {
	case TypeSystemEvent:
		sink.OnSystemEvent(NewSystemEvent(rec))
	case TypeAddOrder:
		sink.OnAddOrder(NewAddOrder(rec))
	case TypeOrderExecuted:
		sink.OnOrderExecuted(NewOrderExecuted(rec))
	default:
		sink.OnUnknown(t, rec)
	}
	return Ok, n
}

// ParseStream repeatedly invokes ParseOne over successive suffixes of
// buf, stopping at the first incomplete or malformed record. It never
// panics or returns an error; it returns the number of bytes
// successfully consumed, so the caller can inspect or retain the
// un-consumed remainder (spec §4.3).
func ParseStream(buf []byte, sink Sink) int {
	consumed := 0
	for consumed < len(buf) {
		result, n := ParseOne(buf[consumed:], sink)
		if result != Ok {
			break
		}
		consumed += n
	}
	return consumed
}
