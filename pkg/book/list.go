package book

// node carries the linkage slots embedded in every Order. An Order
// with prev == nil && next == nil is unlinked; a linked Order's prev
// and next always point at a real neighbor or at the owning Queue's
// sentinel, never at nil (spec §4.5).
type node struct {
	prev, next *Order
}

// Linked reports whether the order is currently linked into some
// Queue.
func (n node) Linked() bool { return n.prev != nil || n.next != nil }

// Queue is a doubly-linked FIFO whose element storage is supplied by
// the caller: elements are *Order values carrying their own linkage
// (spec §4.5). The sentinel is an ordinary, never-inserted Order value
// owned by the Queue itself, not the pool.
//
// A Queue's address must stay fixed for the life of every Order linked
// into it — its sentinel is a real neighbor, not a copyable value.
// OrderBook resolves the reallocation hazard in spec §9's Open Question
// by storing price levels as *PriceLevel behind a slice of pointers:
// the side book's backing array may move and reallocate as levels are
// inserted, but each PriceLevel (and the Queue, and the sentinel,
// inside it) stays put at a stable heap address, so linked Order nodes
// never dangle.
//
// All operations except Size are O(1); Size is deliberately O(n) and
// uncached.
type Queue struct {
	sentinel Order
}

// NewQueue returns an empty, ready-to-use Queue. The sentinel is
// self-linked on first use, at the Queue's final address, so the
// returned value may be copied into place before it is used.
func NewQueue() Queue {
	return Queue{}
}

// lazyInit self-links the sentinel if the Queue has not been used yet.
func (q *Queue) lazyInit() {
	if q.sentinel.next == nil {
		q.sentinel.prev, q.sentinel.next = &q.sentinel, &q.sentinel
	}
}

// Empty reports whether the queue holds no elements.
func (q *Queue) Empty() bool { q.lazyInit(); return q.sentinel.next == &q.sentinel }

// Size counts elements by walking the list. O(n); uncached by design
// (spec §4.5) since push/pop/remove are the hot operations.
func (q *Queue) Size() int {
	q.lazyInit()
	n := 0
	for e := q.sentinel.next; e != &q.sentinel; e = e.next {
		n++
	}
	return n
}

// PushBack splices e in just before the sentinel (the new tail).
// Precondition: e is not currently linked into any queue.
func (q *Queue) PushBack(e *Order) {
	q.lazyInit()
	q.insertBefore(&q.sentinel, e)
}

// PushFront splices e in just after the sentinel (the new head).
// Precondition: e is not currently linked into any queue.
func (q *Queue) PushFront(e *Order) {
	q.lazyInit()
	q.insertAfter(&q.sentinel, e)
}

// Front returns the head element, or nil if the queue is empty.
func (q *Queue) Front() *Order {
	if q.Empty() {
		return nil
	}
	return q.sentinel.next
}

// Back returns the tail element, or nil if the queue is empty.
func (q *Queue) Back() *Order {
	if q.Empty() {
		return nil
	}
	return q.sentinel.prev
}

// PopFront detaches and returns the head element. Precondition: the
// queue is non-empty.
func (q *Queue) PopFront() *Order {
	e := q.sentinel.next
	q.Remove(e)
	return e
}

// PopBack detaches and returns the tail element. Precondition: the
// queue is non-empty.
func (q *Queue) PopBack() *Order {
	e := q.sentinel.prev
	q.Remove(e)
	return e
}

// Remove unlinks e from this queue using e's own linkage slots —
// O(1), no search. Precondition: e is currently linked in this queue.
func (q *Queue) Remove(e *Order) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
}

func (q *Queue) insertBefore(pos, e *Order) {
	e.next = pos
	e.prev = pos.prev
	pos.prev.next = e
	pos.prev = e
}

func (q *Queue) insertAfter(pos, e *Order) {
	e.prev = pos
	e.next = pos.next
	pos.next.prev = e
	pos.next = e
}
