package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RSITestSuite struct {
	suite.Suite
}

func TestRSISuite(t *testing.T) {
	suite.Run(t, new(RSITestSuite))
}

func (suite *RSITestSuite) TestRSIMonotonicRise() {
	data := make([]float64, 30)
	for i := range data {
		data[i] = float64(i + 1)
	}

	result := RSI(data, DefaultRSIPeriod)
	suite.Len(result, 30)

	// One change is consumed per bar, so the first value lands at index
	// period, not period-1.
	for i := 0; i < DefaultRSIPeriod; i++ {
		suite.False(result.Valid(i))
	}

	for i := DefaultRSIPeriod; i < 30; i++ {
		value, ok := result.At(i)
		suite.True(ok)
		suite.GreaterOrEqual(value, 0.0)
		suite.LessOrEqual(value, 100.0)
		// With no losses the epsilon divisor pins RSI just below 100.
		suite.Greater(value, 99.0)
	}
}

func (suite *RSITestSuite) TestRSIZeroLossEpsilon() {
	data := []float64{1, 2, 3, 4}

	result := RSI(data, 2)

	// avgGain=1, avgLoss=0 -> epsilon divisor: 100 - 100/(1 + 1/0.001).
	value, ok := result.At(2)
	suite.True(ok)
	suite.InDelta(100-100.0/1001.0, value, 1e-9)
	suite.Less(value, 100.0)
}

func (suite *RSITestSuite) TestRSIMixedChanges() {
	// changes: +1, +1, -7, 0 with period 2.
	result := RSI([]float64{10, 11, 12, 5, 5}, 2)

	suite.False(result.Valid(0))
	suite.False(result.Valid(1))

	// Wilder step: avgGain=0.5, avgLoss=3.5 -> rs=1/7.
	value, ok := result.At(3)
	suite.True(ok)
	suite.InDelta(12.5, value, 1e-9)

	value, ok = result.At(4)
	suite.True(ok)
	suite.InDelta(12.5, value, 1e-9)
}

func (suite *RSITestSuite) TestRSIShortInputAllNone() {
	result := RSI([]float64{1, 2, 3}, 14)

	suite.Len(result, 3)

	for i := range result {
		suite.False(result.Valid(i))
	}
}
