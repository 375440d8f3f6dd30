package strategy

import (
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/indicator"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/types"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/pkg/errors"
)

// Default RSI reversal thresholds.
const (
	DefaultRSIOversold   = 30.0
	DefaultRSIOverbought = 70.0
)

// RSIReversal buys when RSI crosses down through the oversold threshold and
// sells when it crosses up through the overbought threshold.
type RSIReversal struct {
	period     int
	oversold   float64
	overbought float64
}

// NewRSIReversal creates an RSI reversal strategy with conventional
// parameters (period 14, thresholds 30/70).
func NewRSIReversal() Strategy {
	return &RSIReversal{
		period:     indicator.DefaultRSIPeriod,
		oversold:   DefaultRSIOversold,
		overbought: DefaultRSIOverbought,
	}
}

// Name returns the registry name of the strategy.
func (s *RSIReversal) Name() string {
	return "rsi_reversal"
}

// Config configures the strategy. Expected parameters: period (int),
// and optionally oversold (float64) and overbought (float64).
func (s *RSIReversal) Config(params ...any) error {
	if len(params) < 1 || len(params) > 3 {
		return errors.New(errors.ErrCodeMissingParameter,
			"Config expects 1 to 3 parameters: period (int), oversold (float64), overbought (float64)")
	}

	period, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for period parameter, expected int")
	}

	if period < 1 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	oversold := s.oversold
	overbought := s.overbought

	if len(params) >= 2 {
		oversold, ok = params[1].(float64)
		if !ok {
			return errors.New(errors.ErrCodeInvalidType, "invalid type for oversold parameter, expected float64")
		}
	}

	if len(params) == 3 {
		overbought, ok = params[2].(float64)
		if !ok {
			return errors.New(errors.ErrCodeInvalidType, "invalid type for overbought parameter, expected float64")
		}
	}

	if oversold >= overbought {
		return errors.Newf(errors.ErrCodeInvalidParameter,
			"oversold threshold %.2f must be below overbought threshold %.2f", oversold, overbought)
	}

	s.period = period
	s.oversold = oversold
	s.overbought = overbought

	return nil
}

// Signals emits a buy when RSI drops below the oversold threshold and a
// sell when it rises above the overbought threshold, both on the crossing
// bar only.
func (s *RSIReversal) Signals(bars []types.Bar) []types.SignalValue {
	rsi := indicator.RSI(indicator.Closes(bars), s.period)

	signals := make([]types.SignalValue, len(bars))

	for i := 1; i < len(bars); i++ {
		value, ok := rsi.At(i)
		prev, prevOK := rsi.At(i - 1)

		if !ok || !prevOK {
			continue
		}

		if value < s.oversold && prev >= s.oversold {
			signals[i] = types.SignalBuy
		} else if value > s.overbought && prev <= s.overbought {
			signals[i] = types.SignalSell
		}
	}

	return signals
}
