package indicator

import (
	"math"

	"github.com/moznion/go-optional"
)

// Default Bollinger Bands parameters.
const (
	DefaultBollingerPeriod     = 20
	DefaultBollingerMultiplier = 2.0
)

// BollingerBandsResult holds the three bands, each aligned 1:1 with the
// input series.
type BollingerBandsResult struct {
	Upper  Series
	Middle Series
	Lower  Series
}

// BollingerBands calculates Bollinger Bands over data. The middle band is
// the SMA; the per-index standard deviation is taken over the trailing
// window around that already-computed middle value; upper and lower are
// middle +/- multiplier*stddev.
func BollingerBands(data []float64, period int, multiplier float64) BollingerBandsResult {
	n := len(data)
	middle := SMA(data, period)
	upper := NoneSeries(n)
	lower := NoneSeries(n)

	for i := period - 1; i < n; i++ {
		mid, ok := middle.At(i)
		if !ok {
			continue
		}

		sum := 0.0
		for j := i - (period - 1); j <= i; j++ {
			deviation := data[j] - mid
			sum += deviation * deviation
		}

		stdDev := math.Sqrt(sum / float64(period))
		upper[i] = optional.Some(mid + multiplier*stdDev)
		lower[i] = optional.Some(mid - multiplier*stdDev)
	}

	return BollingerBandsResult{
		Upper:  upper,
		Middle: middle,
		Lower:  lower,
	}
}
