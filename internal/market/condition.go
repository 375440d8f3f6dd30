// Package market classifies a window of price bars by overall behavior.
// The classifier is stateless and independent of the backtest loop; it only
// annotates context around a run.
package market

import (
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/indicator"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/types"
)

// Classification thresholds. Volatility is checked first, so a window can
// be volatile regardless of its direction.
const (
	volatileATRPercent   = 2.5
	bullishPercentChange = 1.5
	bearishPercentChange = -1.5
	atrPeriod            = 14
)

// Classify labels a price window as bullish, bearish, neutral or volatile.
//
// The last lookback bars are analyzed; a lookback of 0, negative, or at
// least the series length selects the whole series. The decision combines
// the percent change from the window's first to last close with an
// ATR-based volatility percentage (ATR relative to the last close).
// Empty input classifies as neutral.
func Classify(bars []types.Bar, lookback int) types.MarketCondition {
	if len(bars) == 0 {
		return types.MarketConditionNeutral
	}

	window := bars
	if lookback > 0 && lookback < len(bars) {
		window = bars[len(bars)-lookback:]
	}

	firstClose := window[0].Close
	lastClose := window[len(window)-1].Close
	percentChange := (lastClose - firstClose) / firstClose * 100

	atrPercent := averageTrueRange(window) / lastClose * 100

	switch {
	case atrPercent > volatileATRPercent:
		return types.MarketConditionVolatile
	case percentChange > bullishPercentChange:
		return types.MarketConditionBullish
	case percentChange < bearishPercentChange:
		return types.MarketConditionBearish
	default:
		return types.MarketConditionNeutral
	}
}

// averageTrueRange estimates the window's ATR as the simple mean of the
// last atrPeriod true ranges. Windows too short for a full period degrade
// to the mean of whatever true ranges exist, and a single bar falls back to
// its high-low range.
func averageTrueRange(window []types.Bar) float64 {
	if len(window) == 1 {
		return window[0].High - window[0].Low
	}

	ranges := indicator.TrueRanges(
		indicator.Highs(window),
		indicator.Lows(window),
		indicator.Closes(window),
	)
	if len(ranges) == 0 {
		return 0
	}

	if len(ranges) > atrPeriod {
		ranges = ranges[len(ranges)-atrPeriod:]
	}

	total := 0.0
	for _, tr := range ranges {
		total += tr
	}

	return total / float64(len(ranges))
}
