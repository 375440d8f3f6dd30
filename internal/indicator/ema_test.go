package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type EMATestSuite struct {
	suite.Suite
}

func TestEMASuite(t *testing.T) {
	suite.Run(t, new(EMATestSuite))
}

func (suite *EMATestSuite) TestEMASeedIsSMA() {
	result := EMA([]float64{2, 4, 6, 8}, 3)

	suite.False(result.Valid(0))
	suite.False(result.Valid(1))

	// First value is the simple average of the first three entries.
	seed, ok := result.At(2)
	suite.True(ok)
	suite.InDelta(4.0, seed, 1e-9)

	// ema[3] = (8 - 4) * 0.5 + 4 with multiplier 2/(3+1).
	value, ok := result.At(3)
	suite.True(ok)
	suite.InDelta(6.0, value, 1e-9)
}

func (suite *EMATestSuite) TestEMAConstantSeriesMatchesSMA() {
	data := []float64{5, 5, 5, 5, 5}
	ema := EMA(data, 3)
	sma := SMA(data, 3)

	for i := range data {
		emaValue, emaOK := ema.At(i)
		smaValue, smaOK := sma.At(i)
		suite.Equal(smaOK, emaOK)

		if emaOK {
			suite.InDelta(5.0, emaValue, 1e-9)
			suite.InDelta(smaValue, emaValue, 1e-9)
		}
	}
}

func (suite *EMATestSuite) TestEMAShortInputAllNone() {
	result := EMA([]float64{1, 2}, 3)

	suite.Len(result, 2)
	suite.False(result.Valid(0))
	suite.False(result.Valid(1))
}
