package indicator

import (
	"math"

	"github.com/FinanceSutra/FinanceSUTRA-sub002/pkg/errors"
)

// DefaultATRPeriod is the conventional ATR lookback.
const DefaultATRPeriod = 14

// TrueRanges computes the per-bar true range over parallel high, low and
// close series:
//
//	max(high-low, |high-prevClose|, |low-prevClose|)
//
// One value per bar starting at index 1, so the result is one shorter than
// the input. The inputs are assumed equal-length.
func TrueRanges(high, low, close []float64) []float64 {
	if len(close) < 2 {
		return nil
	}

	ranges := make([]float64, 0, len(close)-1)

	for i := 1; i < len(close); i++ {
		tr := high[i] - low[i]
		if hc := math.Abs(high[i] - close[i-1]); hc > tr {
			tr = hc
		}

		if lc := math.Abs(low[i] - close[i-1]); lc > tr {
			tr = lc
		}

		ranges = append(ranges, tr)
	}

	return ranges
}

// ATR calculates the Average True Range over parallel high, low and close
// series. The seed value is the simple average of the first period true
// ranges; later values use Wilder smoothing, identical in form to RSI's.
// Inputs too short to fill the first window yield an all-None series of the
// input length.
//
// The three inputs must have equal lengths; a mismatch is a hard
// precondition failure.
func ATR(high, low, close []float64, period int) (Series, error) {
	n := len(close)
	if len(high) != n || len(low) != n {
		return nil, errors.Newf(errors.ErrCodeSeriesLengthMismatch,
			"atr requires equal-length inputs: high=%d low=%d close=%d", len(high), len(low), n)
	}

	if period < 1 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "atr period must be positive, got %d", period)
	}

	trueRanges := TrueRanges(high, low, close)
	if len(trueRanges) < period {
		return NoneSeries(n), nil
	}

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += trueRanges[i]
	}

	values := make([]float64, 0, len(trueRanges)-period+1)
	atr := sum / float64(period)
	values = append(values, atr)

	for i := period; i < len(trueRanges); i++ {
		atr = (atr*float64(period-1) + trueRanges[i]) / float64(period)
		values = append(values, atr)
	}

	return padSeries(values, n), nil
}
