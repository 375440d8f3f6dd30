package types

import (
	"time"

	"github.com/moznion/go-optional"
)

// Side is the direction of a position or trade.
type Side string

const (
	SideLong  Side = "long"
	SideShort Side = "short"
)

// Position is the single open holding tracked during a backtest run.
// The engine owns it exclusively: created on an entry signal, converted
// into a Trade on the opposing signal or at the end of the run.
type Position struct {
	Side       Side
	EntryPrice float64
	EntryTime  time.Time
	Quantity   float64
}

// Trade is the immutable record of one completed or forcibly-closed position.
//
// A position still open when the run ends is recorded with IsOpen=true and
// ExitTime/ExitPrice left as None, while PnL reflects a synthetic close at
// the last bar's price. The asymmetry is deliberate: consumers can tell the
// book was never actually closed, but the final capital still reflects a
// fully liquidated portfolio.
type Trade struct {
	EntryTime  time.Time
	ExitTime   optional.Option[time.Time]
	EntryPrice float64
	ExitPrice  optional.Option[float64]
	Side       Side
	Quantity   float64
	PnL        float64
	PercentPnL float64
	IsOpen     bool
}
