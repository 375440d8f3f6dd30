package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type MACDTestSuite struct {
	suite.Suite
}

func TestMACDSuite(t *testing.T) {
	suite.Run(t, new(MACDTestSuite))
}

func (suite *MACDTestSuite) TestAlignment() {
	data := make([]float64, 40)
	for i := range data {
		data[i] = float64(i) * 1.5
	}

	result := MACD(data, DefaultMACDFastPeriod, DefaultMACDSlowPeriod, DefaultMACDSignalPeriod)

	suite.Len(result.MACDLine, 40)
	suite.Len(result.SignalLine, 40)
	suite.Len(result.Histogram, 40)

	// MACD line starts where the slow EMA does; the signal line needs
	// another signalPeriod-1 defined MACD values on top of that.
	firstMACD := DefaultMACDSlowPeriod - 1
	firstSignal := firstMACD + DefaultMACDSignalPeriod - 1

	for i := 0; i < firstMACD; i++ {
		suite.False(result.MACDLine.Valid(i), "macd line index %d", i)
	}

	for i := firstMACD; i < 40; i++ {
		suite.True(result.MACDLine.Valid(i), "macd line index %d", i)
	}

	for i := 0; i < firstSignal; i++ {
		suite.False(result.SignalLine.Valid(i), "signal line index %d", i)
		suite.False(result.Histogram.Valid(i), "histogram index %d", i)
	}

	for i := firstSignal; i < 40; i++ {
		suite.True(result.SignalLine.Valid(i), "signal line index %d", i)
		suite.True(result.Histogram.Valid(i), "histogram index %d", i)
	}
}

func (suite *MACDTestSuite) TestConstantSeriesIsZero() {
	data := make([]float64, 40)
	for i := range data {
		data[i] = 50
	}

	result := MACD(data, DefaultMACDFastPeriod, DefaultMACDSlowPeriod, DefaultMACDSignalPeriod)

	for i := 0; i < 40; i++ {
		if macd, ok := result.MACDLine.At(i); ok {
			suite.InDelta(0.0, macd, 1e-9)
		}

		if histogram, ok := result.Histogram.At(i); ok {
			suite.InDelta(0.0, histogram, 1e-9)
		}
	}
}

func (suite *MACDTestSuite) TestShortInputAllNone() {
	result := MACD([]float64{1, 2, 3}, 12, 26, 9)

	suite.Len(result.MACDLine, 3)

	for i := 0; i < 3; i++ {
		suite.False(result.MACDLine.Valid(i))
		suite.False(result.SignalLine.Valid(i))
		suite.False(result.Histogram.Valid(i))
	}
}
