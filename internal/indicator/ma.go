package indicator

// SMA calculates the simple moving average of data over period.
// The first defined value is at index period-1. Inputs shorter than the
// period yield an all-None series of the same length.
func SMA(data []float64, period int) Series {
	n := len(data)
	if period < 1 || n < period {
		return NoneSeries(n)
	}

	return padSeries(smaValues(data, period), n)
}

// smaValues computes the unpadded moving-average values using a sliding sum,
// so the whole series costs O(n) rather than O(n*period).
func smaValues(data []float64, period int) []float64 {
	if period < 1 || len(data) < period {
		return nil
	}

	values := make([]float64, 0, len(data)-period+1)

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += data[i]
	}

	values = append(values, sum/float64(period))

	for i := period; i < len(data); i++ {
		sum = sum - data[i-period] + data[i]
		values = append(values, sum/float64(period))
	}

	return values
}
