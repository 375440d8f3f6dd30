package strategy

import (
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/indicator"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/types"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/pkg/errors"
)

// Default crossover periods.
const (
	DefaultFastMAPeriod = 10
	DefaultSlowMAPeriod = 20
)

// MACrossover buys when the fast moving average crosses above the slow one
// and sells on the opposite cross.
type MACrossover struct {
	fastPeriod int
	slowPeriod int
}

// NewMACrossover creates an MA crossover strategy with default periods.
func NewMACrossover() Strategy {
	return &MACrossover{
		fastPeriod: DefaultFastMAPeriod,
		slowPeriod: DefaultSlowMAPeriod,
	}
}

// Name returns the registry name of the strategy.
func (s *MACrossover) Name() string {
	return "ma_crossover"
}

// Config configures the crossover periods. Expected parameters:
// fastPeriod (int), slowPeriod (int), with fastPeriod < slowPeriod.
func (s *MACrossover) Config(params ...any) error {
	if len(params) != 2 {
		return errors.New(errors.ErrCodeMissingParameter,
			"Config expects 2 parameters: fastPeriod (int), slowPeriod (int)")
	}

	fastPeriod, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for fastPeriod parameter, expected int")
	}

	slowPeriod, ok := params[1].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for slowPeriod parameter, expected int")
	}

	if fastPeriod < 1 || slowPeriod <= fastPeriod {
		return errors.Newf(errors.ErrCodeInvalidPeriod,
			"periods must satisfy 0 < fast < slow, got fast=%d slow=%d", fastPeriod, slowPeriod)
	}

	s.fastPeriod = fastPeriod
	s.slowPeriod = slowPeriod

	return nil
}

// Signals emits a buy on an upward fast/slow cross and a sell on a downward
// one. Bars where either average is still warming up stay hold.
func (s *MACrossover) Signals(bars []types.Bar) []types.SignalValue {
	closes := indicator.Closes(bars)
	fastMA := indicator.SMA(closes, s.fastPeriod)
	slowMA := indicator.SMA(closes, s.slowPeriod)

	signals := make([]types.SignalValue, len(bars))

	for i := 1; i < len(bars); i++ {
		fast, fastOK := fastMA.At(i)
		slow, slowOK := slowMA.At(i)
		prevFast, prevFastOK := fastMA.At(i - 1)
		prevSlow, prevSlowOK := slowMA.At(i - 1)

		if !fastOK || !slowOK || !prevFastOK || !prevSlowOK {
			continue
		}

		if fast > slow && prevFast <= prevSlow {
			signals[i] = types.SignalBuy
		} else if fast < slow && prevFast >= prevSlow {
			signals[i] = types.SignalSell
		}
	}

	return signals
}
