package indicator

// DefaultRSIPeriod is the conventional RSI lookback.
const DefaultRSIPeriod = 14

// rsiZeroLossEpsilon substitutes for the average loss when it is exactly
// zero. This keeps a perfect uptrend finite (RSI just below 100) instead of
// dividing by zero. It is an approximation, not a true RSI=100 clamp, and is
// kept deliberately so results match the historical behavior of this engine.
const rsiZeroLossEpsilon = 0.001

// RSI calculates the Relative Strength Index of data over period.
//
// The seed average gain/loss is the simple mean of the first period
// bar-over-bar changes; later averages use Wilder smoothing:
//
//	avg = (avg*(period-1) + new) / period
//
// The first defined value is at index period (one change is consumed per
// bar). Inputs shorter than period+1 yield an all-None series of the same
// length. All defined values are bounded in (0, 100).
func RSI(data []float64, period int) Series {
	n := len(data)
	if period < 1 || n < period+1 {
		return NoneSeries(n)
	}

	gains := make([]float64, 0, n-1)
	losses := make([]float64, 0, n-1)

	for i := 1; i < n; i++ {
		change := data[i] - data[i-1]
		if change > 0 {
			gains = append(gains, change)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -change)
		}
	}

	avgGain := 0.0
	avgLoss := 0.0

	for i := 0; i < period; i++ {
		avgGain += gains[i]
		avgLoss += losses[i]
	}

	avgGain /= float64(period)
	avgLoss /= float64(period)

	values := make([]float64, 0, len(gains)-period+1)
	values = append(values, rsiFromAverages(avgGain, avgLoss))

	for i := period; i < len(gains); i++ {
		avgGain = (avgGain*float64(period-1) + gains[i]) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + losses[i]) / float64(period)
		values = append(values, rsiFromAverages(avgGain, avgLoss))
	}

	return padSeries(values, n)
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		avgLoss = rsiZeroLossEpsilon
	}

	return 100 - (100 / (1 + avgGain/avgLoss))
}
