package types

// SignalValue is a per-bar trade instruction produced by a strategy.
// A signal slice is evaluated positionally: the signal at index i is acted
// on against the close price of the bar at index i.
type SignalValue int

const (
	// SignalBuy opens a long position, or closes an open short.
	SignalBuy SignalValue = 1
	// SignalSell opens a short position, or closes an open long.
	SignalSell SignalValue = -1
	// SignalHold takes no action.
	SignalHold SignalValue = 0
)

// String returns the human-readable name of the signal.
func (s SignalValue) String() string {
	switch s {
	case SignalBuy:
		return "buy"
	case SignalSell:
		return "sell"
	case SignalHold:
		return "hold"
	default:
		return "unknown"
	}
}
