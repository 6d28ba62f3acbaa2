package book

// PriceLevel aggregates every resting order at one price. It caches
// TotalVolume so market-data accessors don't need to walk the queue
// (spec §4.6). Invariant: TotalVolume == sum of Qty over every queued
// order.
type PriceLevel struct {
	Price       uint64
	orders      Queue
	TotalVolume uint64
}

// newPriceLevel returns a PriceLevel ready to accept orders at price.
func newPriceLevel(price uint64) *PriceLevel {
	return &PriceLevel{Price: price, orders: NewQueue()}
}

// Empty reports whether the level has no resting orders.
func (l *PriceLevel) Empty() bool { return l.orders.Empty() }

// OrderCount counts resting orders at this level. O(n).
func (l *PriceLevel) OrderCount() int { return l.orders.Size() }

// Front returns the oldest resting order at this level, or nil if
// empty.
func (l *PriceLevel) Front() *Order { return l.orders.Front() }

// Add appends order to the back of the queue (time priority) and
// updates the cached volume.
func (l *PriceLevel) Add(o *Order) {
	l.orders.PushBack(o)
	l.TotalVolume += uint64(o.Qty)
}

// Remove unlinks o from the queue and saturating-subtracts its
// quantity from the cached volume. Saturating subtraction guards
// against accounting drift on malformed call sequences (spec §4.6);
// well-formed use never underflows.
func (l *PriceLevel) Remove(o *Order) {
	l.orders.Remove(o)
	l.reduceVolume(uint64(o.Qty))
}

// PopFront detaches and returns the oldest resting order, updating the
// cached volume. Precondition: the level is non-empty.
func (l *PriceLevel) PopFront() *Order {
	o := l.orders.PopFront()
	l.reduceVolume(uint64(o.Qty))
	return o
}

// reduceVolume saturating-subtracts delta from TotalVolume, called on
// partial fills.
func (l *PriceLevel) reduceVolume(delta uint64) {
	if delta >= l.TotalVolume {
		l.TotalVolume = 0
	} else {
		l.TotalVolume -= delta
	}
}
