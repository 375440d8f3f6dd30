package types

import "time"

// Bar is a single OHLCV price bar.
//
// Bars fed to the engine must be strictly ascending by time; the engine does
// not sort or deduplicate. The usual OHLC relationship (low <= open, close <= high)
// is expected but not validated: malformed bars propagate silently into
// computed values.
type Bar struct {
	Time   time.Time `yaml:"time"`
	Open   float64   `yaml:"open"`
	High   float64   `yaml:"high"`
	Low    float64   `yaml:"low"`
	Close  float64   `yaml:"close"`
	Volume float64   `yaml:"volume"`
}

// MarketCondition labels the overall behavior of a price window.
type MarketCondition string

const (
	MarketConditionBullish  MarketCondition = "bullish"
	MarketConditionBearish  MarketCondition = "bearish"
	MarketConditionNeutral  MarketCondition = "neutral"
	MarketConditionVolatile MarketCondition = "volatile"
)
