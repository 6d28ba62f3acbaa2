// Package book implements a price-time-priority limit order book: a
// fixed-capacity object pool of orders, an intrusive FIFO queue per
// price level, and a matching engine over two sorted sides. The whole
// package is single-threaded; order storage is allocated only at
// construction, while new price levels and the side-book slices are
// allocated as levels appear (spec §5) — callers must not share a
// *OrderBook across goroutines.
package book

// Pool is a fixed-capacity, index-based free-stack allocator for
// *Order records. All storage is allocated once at construction;
// addresses of Order values are stable for the pool's lifetime (spec
// §4.4). Acquire and Release are both O(1) and never allocate.
//
// Each Order knows its own slot index (set once, at construction), so
// Release needs no pointer arithmetic to find its place back on the
// free stack.
type Pool struct {
	storage []Order
	free    []uint32 // stack of free indices into storage
}

// NewPool allocates a pool with room for capacity orders. This is the
// pool's only allocation.
func NewPool(capacity int) *Pool {
	p := &Pool{
		storage: make([]Order, capacity),
		free:    make([]uint32, capacity),
	}
	for i := 0; i < capacity; i++ {
		p.storage[i].slot = uint32(i)
		p.free[i] = uint32(i)
	}
	return p
}

// Acquire pops a free slot off the stack and returns a pointer to it,
// with every field zeroed except its fixed slot index. Returns nil if
// the pool is exhausted.
func (p *Pool) Acquire() *Order {
	n := len(p.free)
	if n == 0 {
		return nil
	}
	n--
	idx := p.free[n]
	p.free = p.free[:n]

	o := &p.storage[idx]
	slot := o.slot
	*o = Order{}
	o.slot = slot
	return o
}

// Release returns a slot to the free stack. The caller must not touch
// *o after calling Release. Releasing a pointer not produced by
// Acquire on this pool, or double-releasing, is undefined behavior —
// the pool does not check in the hot path (spec §4.4, §7). No bitmap
// is maintained here to detect it; spec §4.4 allows that only as test
// scaffolding (see pool_test.go's debugPool), never as a write on this
// hot path.
func (p *Pool) Release(o *Order) {
	p.free = append(p.free, o.slot)
}

// Owns reports whether o points inside this pool's storage, for debug
// assertions (spec §4.4). It does not check whether the slot is
// currently allocated.
func (p *Pool) Owns(o *Order) bool {
	return int(o.slot) < len(p.storage) && o == &p.storage[o.slot]
}

// Capacity returns the total number of slots the pool was constructed
// with.
func (p *Pool) Capacity() int { return len(p.storage) }

// Available returns the number of free slots.
func (p *Pool) Available() int { return len(p.free) }

// Allocated returns the number of currently allocated slots.
func (p *Pool) Allocated() int { return len(p.storage) - len(p.free) }

// Empty reports whether every slot is free.
func (p *Pool) Empty() bool { return len(p.free) == len(p.storage) }

// Full reports whether no slot is free.
func (p *Pool) Full() bool { return len(p.free) == 0 }
