package book

import "sort"

// Execution is reported once per maker/taker fill, before either
// order's state is mutated any further (spec §4.7 rule 3).
type Execution struct {
	MakerID   uint64
	TakerID   uint64
	Price     uint64 // always the maker's price
	Qty       uint32
	MakerSide Side
}

// ExecutionSink receives Execution reports during a single AddOrder
// call. It may be nil, in which case fills are still computed and
// applied but not reported.
type ExecutionSink func(Execution)

// OrderBook is a single-symbol, single-threaded limit order book:
// two price-sorted sides (bids descending, asks ascending) plus an
// id->*Order index for O(1) cancel (spec §4.7). It owns no order
// storage itself — that lives in the backing Pool — and must not be
// shared across goroutines (spec §5).
type OrderBook struct {
	pool  *Pool
	bids  []*PriceLevel // sorted descending by Price
	asks  []*PriceLevel // sorted ascending by Price
	index map[uint64]*Order
}

// NewOrderBook returns an OrderBook backed by pool. The book does not
// own the pool's lifetime; the caller must keep it alive and must not
// share it with another OrderBook concurrently (spec §5).
func NewOrderBook(pool *Pool) *OrderBook {
	return &OrderBook{
		pool:  pool,
		index: make(map[uint64]*Order, pool.Capacity()),
	}
}

// OrderCount returns the number of currently resting orders.
func (b *OrderBook) OrderCount() int { return len(b.index) }

// BidLevelCount returns the number of distinct bid price levels.
func (b *OrderBook) BidLevelCount() int { return len(b.bids) }

// AskLevelCount returns the number of distinct ask price levels.
func (b *OrderBook) AskLevelCount() int { return len(b.asks) }

// Empty reports whether the book holds no resting orders on either
// side.
func (b *OrderBook) Empty() bool { return len(b.bids) == 0 && len(b.asks) == 0 }

// BestBid returns the highest resting bid price and whether one
// exists.
func (b *OrderBook) BestBid() (uint64, bool) {
	if len(b.bids) == 0 {
		return 0, false
	}
	return b.bids[0].Price, true
}

// BestAsk returns the lowest resting ask price and whether one
// exists.
func (b *OrderBook) BestAsk() (uint64, bool) {
	if len(b.asks) == 0 {
		return 0, false
	}
	return b.asks[0].Price, true
}

// Spread returns BestAsk - BestBid, and whether both sides are
// non-empty.
func (b *OrderBook) Spread() (uint64, bool) {
	bid, okBid := b.BestBid()
	ask, okAsk := b.BestAsk()
	if !okBid || !okAsk {
		return 0, false
	}
	return ask - bid, true
}

// BestBidVolume returns the total resting quantity at the best bid, or
// 0 if there is no bid side.
func (b *OrderBook) BestBidVolume() uint64 {
	if len(b.bids) == 0 {
		return 0
	}
	return b.bids[0].TotalVolume
}

// BestAskVolume returns the total resting quantity at the best ask, or
// 0 if there is no ask side.
func (b *OrderBook) BestAskVolume() uint64 {
	if len(b.asks) == 0 {
		return 0
	}
	return b.asks[0].TotalVolume
}

// AddOrder inserts or matches a new order. Duplicate id is rejected
// with no state change. The order first walks the opposing side,
// consuming resting liquidity price-time-priority (spec §4.7); any
// unfilled remainder rests at the order's original limit price. Apart
// from a duplicate id, it returns false only when a non-zero remainder
// could not rest because the pool is exhausted — executions already
// reported by then are final and are not rolled back (spec §4.7, §7).
func (b *OrderBook) AddOrder(id uint64, price uint64, qty uint32, side Side, sink ExecutionSink) bool {
	if _, exists := b.index[id]; exists {
		return false
	}
	if qty == 0 {
		// Nothing to match or rest; accept trivially with no state
		// change beyond refusing a future duplicate id — but since
		// nothing rests, there is no id to track. Mirrors spec's
		// "unfilled remainder" wording: a zero-qty order has none.
		return true
	}

	remaining := qty
	if side == Buy {
		remaining = b.matchBuy(id, price, remaining, sink)
	} else {
		remaining = b.matchSell(id, price, remaining, sink)
	}
	if remaining == 0 {
		return true
	}

	o := b.pool.Acquire()
	if o == nil {
		return false
	}
	o.ID = id
	o.Price = price
	o.Qty = remaining
	o.Side = side

	if side == Buy {
		b.insertLevel(&b.bids, o, comparatorFor(Buy))
	} else {
		b.insertLevel(&b.asks, o, comparatorFor(Sell))
	}
	b.index[id] = o
	return true
}

// CancelOrder removes a resting order by id, returning false if it is
// not currently resting. O(1) expected: map lookup plus intrusive
// unlink; level erasure from the sorted side is O(levels) worst case
// (spec §4.7).
func (b *OrderBook) CancelOrder(id uint64) bool {
	o, ok := b.index[id]
	if !ok {
		return false
	}
	delete(b.index, id)

	if o.Side == Buy {
		b.removeFromSide(&b.bids, o)
	} else {
		b.removeFromSide(&b.asks, o)
	}
	b.pool.Release(o)
	return true
}

// matchBuy walks asks ascending while the taker's price crosses the
// best ask, consuming resting liquidity FIFO within each level.
func (b *OrderBook) matchBuy(takerID, price uint64, qty uint32, sink ExecutionSink) uint32 {
	for qty > 0 && len(b.asks) > 0 {
		level := b.asks[0]
		if price < level.Price {
			break
		}
		qty = b.matchLevel(level, takerID, qty, Sell, sink)
		if level.Empty() {
			b.asks = b.asks[1:]
		}
	}
	return qty
}

// matchSell walks bids descending while the taker's price crosses the
// best bid.
func (b *OrderBook) matchSell(takerID, price uint64, qty uint32, sink ExecutionSink) uint32 {
	for qty > 0 && len(b.bids) > 0 {
		level := b.bids[0]
		if price > level.Price {
			break
		}
		qty = b.matchLevel(level, takerID, qty, Buy, sink)
		if level.Empty() {
			b.bids = b.bids[1:]
		}
	}
	return qty
}

// matchLevel consumes resting orders at level FIFO until qty is
// exhausted or the level empties, reporting each fill before mutating
// any state further (spec §4.7 rule 3).
func (b *OrderBook) matchLevel(level *PriceLevel, takerID uint64, qty uint32, makerSide Side, sink ExecutionSink) uint32 {
	for qty > 0 && !level.Empty() {
		maker := level.Front()
		fill := qty
		if maker.Qty < fill {
			fill = maker.Qty
		}

		if sink != nil {
			sink(Execution{
				MakerID:   maker.ID,
				TakerID:   takerID,
				Price:     level.Price,
				Qty:       fill,
				MakerSide: makerSide,
			})
		}

		qty -= fill
		level.reduceVolume(uint64(fill))
		maker.reduceQty(fill)

		if maker.Filled() {
			level.orders.PopFront()
			delete(b.index, maker.ID)
			b.pool.Release(maker)
		}
	}
	return qty
}

// comparatorFor returns the "better than" ordering for side: bids sort
// descending (higher price is better), asks sort ascending (lower
// price is better). Both insertLevel and removeFromSide use the same
// comparator for a given side so they agree on level position.
func comparatorFor(side Side) func(p, q uint64) bool {
	if side == Buy {
		return func(p, q uint64) bool { return p > q }
	}
	return func(p, q uint64) bool { return p < q }
}

// insertLevel splices o into *side (sorted by better), creating a new
// PriceLevel if none exists at o.Price yet. Binary search finds the
// first level whose price is not better than o.Price (spec §4.7).
func (b *OrderBook) insertLevel(side *[]*PriceLevel, o *Order, better func(p, q uint64) bool) {
	levels := *side
	i := sort.Search(len(levels), func(i int) bool {
		return !better(levels[i].Price, o.Price)
	})
	if i < len(levels) && levels[i].Price == o.Price {
		levels[i].Add(o)
		return
	}

	level := newPriceLevel(o.Price)
	level.Add(o)
	levels = append(levels, nil)
	copy(levels[i+1:], levels[i:])
	levels[i] = level
	*side = levels
}

// removeFromSide unlinks o from its price level, erasing the level if
// it becomes empty.
func (b *OrderBook) removeFromSide(side *[]*PriceLevel, o *Order) {
	levels := *side
	better := comparatorFor(o.Side)
	i := sort.Search(len(levels), func(i int) bool {
		return !better(levels[i].Price, o.Price)
	})
	if i >= len(levels) || levels[i].Price != o.Price {
		return
	}

	levels[i].Remove(o)
	if levels[i].Empty() {
		*side = append(levels[:i], levels[i+1:]...)
	}
}
