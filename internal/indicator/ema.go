package indicator

// EMA calculates the exponential moving average of data over period.
// The seed value is the simple average of the first period entries; each
// following value applies the recurrence
//
//	ema[i] = (data[i] - ema[i-1]) * multiplier + ema[i-1]
//
// with multiplier 2/(period+1). The first defined value is at index
// period-1. Inputs shorter than the period yield an all-None series of the
// same length.
func EMA(data []float64, period int) Series {
	n := len(data)
	if period < 1 || n < period {
		return NoneSeries(n)
	}

	return padSeries(emaValues(data, period), n)
}

// emaValues computes the unpadded EMA values starting from the SMA seed.
func emaValues(data []float64, period int) []float64 {
	if period < 1 || len(data) < period {
		return nil
	}

	multiplier := 2.0 / float64(period+1)
	values := make([]float64, 0, len(data)-period+1)

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += data[i]
	}

	values = append(values, sum/float64(period))

	for i := period; i < len(data); i++ {
		prev := values[len(values)-1]
		values = append(values, (data[i]-prev)*multiplier+prev)
	}

	return values
}
