package indicator

import (
	"github.com/moznion/go-optional"
)

// Default MACD parameters.
const (
	DefaultMACDFastPeriod   = 12
	DefaultMACDSlowPeriod   = 26
	DefaultMACDSignalPeriod = 9
)

// MACDResult holds the MACD line, signal line and histogram, each aligned
// 1:1 with the input series.
type MACDResult struct {
	MACDLine   Series
	SignalLine Series
	Histogram  Series
}

// MACD calculates Moving Average Convergence Divergence over data.
//
// The MACD line is EMA(fast) - EMA(slow), defined only where both are. The
// signal line is an EMA over the defined portion of the MACD line, re-padded
// with leading None entries to realign with the input. The histogram is
// MACD minus signal, None where either operand is.
func MACD(data []float64, fastPeriod, slowPeriod, signalPeriod int) MACDResult {
	n := len(data)
	fastEMA := EMA(data, fastPeriod)
	slowEMA := EMA(data, slowPeriod)

	macdLine := NoneSeries(n)

	for i := 0; i < n; i++ {
		fast, fastOK := fastEMA.At(i)
		slow, slowOK := slowEMA.At(i)

		if fastOK && slowOK {
			macdLine[i] = optional.Some(fast - slow)
		}
	}

	// The signal EMA runs over the defined MACD values only, then shifts
	// back into place so all three series stay index-aligned.
	defined := macdLine.Values()
	signalTail := EMA(defined, signalPeriod)

	signalLine := NoneSeries(n)

	lead := n - len(signalTail)
	for i, v := range signalTail {
		signalLine[lead+i] = v
	}

	histogram := NoneSeries(n)

	for i := 0; i < n; i++ {
		macd, macdOK := macdLine.At(i)
		signal, signalOK := signalLine.At(i)

		if macdOK && signalOK {
			histogram[i] = optional.Some(macd - signal)
		}
	}

	return MACDResult{
		MACDLine:   macdLine,
		SignalLine: signalLine,
		Histogram:  histogram,
	}
}
