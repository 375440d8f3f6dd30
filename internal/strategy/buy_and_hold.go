package strategy

import (
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/types"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/pkg/errors"
)

// BuyAndHold enters a long position on the first tradable bar and never
// exits. Useful as a benchmark against signal-driven strategies.
type BuyAndHold struct{}

// NewBuyAndHold creates a buy-and-hold strategy.
func NewBuyAndHold() Strategy {
	return &BuyAndHold{}
}

// Name returns the registry name of the strategy.
func (s *BuyAndHold) Name() string {
	return "buy_and_hold"
}

// Config accepts no parameters.
func (s *BuyAndHold) Config(params ...any) error {
	if len(params) != 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "buy_and_hold takes no parameters")
	}

	return nil
}

// Signals buys on bar 1, the first bar the engine acts on, and holds for
// the rest of the run.
func (s *BuyAndHold) Signals(bars []types.Bar) []types.SignalValue {
	signals := make([]types.SignalValue, len(bars))
	if len(signals) > 1 {
		signals[1] = types.SignalBuy
	}

	return signals
}
