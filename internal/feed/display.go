// Package feed wires decoded ITCH messages and book executions out to
// the outside world: NATS subject publication and a WebSocket
// broadcast of book snapshots. Nothing in pkg/itch or pkg/book depends
// on this package; it only consumes their public types.
package feed

import (
	"github.com/shopspring/decimal"
)

// priceScale is ITCH 5.0's fixed-point scale: integer ticks are price
// times 10^4.
const priceScale = 10000

// DisplayPrice converts an integer tick price into a human-readable
// decimal, for logs and the WebSocket snapshot feed only — the
// matching engine itself stays on raw uint64 ticks end to end.
func DisplayPrice(ticks uint64) decimal.Decimal {
	return decimal.New(int64(ticks), 0).Div(decimal.New(priceScale, 0))
}

// ParseDisplayPrice is DisplayPrice's inverse, used by test fixtures
// and any operator tooling that accepts human-entered prices.
func ParseDisplayPrice(s string) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	ticks := d.Mul(decimal.New(priceScale, 0)).Round(0)
	return uint64(ticks.IntPart()), nil
}
