package indicator

import (
	"github.com/FinanceSutra/FinanceSUTRA-sub002/pkg/errors"
)

// Default stochastic oscillator parameters.
const (
	DefaultStochasticPeriod  = 14
	DefaultStochasticSmoothK = 3
	DefaultStochasticSmoothD = 3
)

// StochasticResult holds the %K and %D lines, each aligned 1:1 with the
// input series.
type StochasticResult struct {
	K Series
	D Series
}

// Stochastic calculates the stochastic oscillator over parallel high, low
// and close series.
//
// The raw %K is 100*(close-lowestLow)/(highestHigh-lowestLow) over the
// trailing window, defined as 100 when the window's range is zero. %K is the
// SMA of the raw values over smoothK bars and %D the SMA of %K over smoothD
// bars; both are re-padded with leading None entries to the input length.
//
// The three inputs must have equal lengths; a mismatch is a hard
// precondition failure.
func Stochastic(high, low, close []float64, period, smoothK, smoothD int) (StochasticResult, error) {
	n := len(close)
	if len(high) != n || len(low) != n {
		return StochasticResult{}, errors.Newf(errors.ErrCodeSeriesLengthMismatch,
			"stochastic requires equal-length inputs: high=%d low=%d close=%d", len(high), len(low), n)
	}

	if period < 1 || smoothK < 1 || smoothD < 1 {
		return StochasticResult{}, errors.Newf(errors.ErrCodeInvalidPeriod,
			"stochastic periods must be positive: period=%d smoothK=%d smoothD=%d", period, smoothK, smoothD)
	}

	rawK := make([]float64, 0, n)

	for i := period - 1; i < n; i++ {
		highest := high[i-(period-1)]
		lowest := low[i-(period-1)]

		for j := i - (period - 1); j <= i; j++ {
			if high[j] > highest {
				highest = high[j]
			}

			if low[j] < lowest {
				lowest = low[j]
			}
		}

		if highest == lowest {
			rawK = append(rawK, 100)
		} else {
			rawK = append(rawK, 100*(close[i]-lowest)/(highest-lowest))
		}
	}

	kValues := smaValues(rawK, smoothK)
	dValues := smaValues(kValues, smoothD)

	return StochasticResult{
		K: padSeries(kValues, n),
		D: padSeries(dValues, n),
	}, nil
}
