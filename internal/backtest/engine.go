// Package backtest implements the event-driven strategy backtesting engine:
// a deterministic single-pass simulator that replays historical bars through
// a signal function, manages at most one open position, applies commission
// and slippage, and derives summary performance metrics.
package backtest

import (
	"context"
	"time"

	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/logger"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/types"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/pkg/errors"
)

// SignalFunc maps a full bar history to one signal per bar. It is the sole
// strategy extension point: the engine treats it as a black box and never
// inspects how the signals were produced.
type SignalFunc func(bars []types.Bar) []types.SignalValue

// OnProcessBarCallback is called once per processed bar. Returning an error
// aborts the run.
type OnProcessBarCallback func(current, total int) error

// RunCallbacks holds optional hooks invoked during a run. Nil fields are
// skipped.
type RunCallbacks struct {
	OnProcessBar OnProcessBarCallback
}

// Engine replays bars through a signal function. A single Engine may run
// any number of backtests; each Run is independent, side-effect free and
// safe to invoke from concurrent goroutines.
type Engine struct {
	config Config
	logger *logger.Logger
}

// NewEngine creates an engine with the given configuration. A nil logger
// disables logging.
func NewEngine(config Config, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Engine{
		config: config,
		logger: log,
	}
}

// Run executes one backtest over bars using the signals produced by
// signalFn.
//
// The scan starts at index 1; bar 0 only seeds the equity curve at the
// initial capital. For each bar the pre-trade mark-to-market equity is
// recorded, then the signal is applied against the bar's close: an entry
// signal with no open position opens one, an opposing signal closes it, and
// a same-direction or hold signal does nothing. A position still open after
// the last bar is closed synthetically at the last close so FinalCapital
// reflects a fully liquidated book, but its Trade keeps IsOpen=true with
// None exit fields.
//
// Run fails with ErrCodeNoData on empty input and ErrCodeSignalLengthMismatch
// when signalFn returns a slice of the wrong length; there are no partial
// results. Inputs are never mutated and identical inputs produce identical
// results.
func (e *Engine) Run(ctx context.Context, bars []types.Bar, signalFn SignalFunc) (*types.Result, error) {
	return e.RunWithCallbacks(ctx, bars, signalFn, RunCallbacks{})
}

// RunWithCallbacks is Run with per-bar lifecycle hooks, used by callers that
// report progress.
func (e *Engine) RunWithCallbacks(ctx context.Context, bars []types.Bar, signalFn SignalFunc, callbacks RunCallbacks) (*types.Result, error) {
	if len(bars) == 0 {
		return nil, errors.New(errors.ErrCodeNoData, "backtest requires at least one bar")
	}

	signals := signalFn(bars)
	if len(signals) != len(bars) {
		return nil, errors.Newf(errors.ErrCodeSignalLengthMismatch,
			"signals length %d does not match bars length %d", len(signals), len(bars))
	}

	cash := e.config.InitialCapital

	var position *types.Position

	trades := make([]types.Trade, 0)
	equity := make([]types.EquityPoint, 0, len(bars))
	equity = append(equity, types.EquityPoint{Time: bars[0].Time, Value: cash})

	for i := 1; i < len(bars); i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeBacktestRunFailed, "backtest canceled", err)
		}

		if callbacks.OnProcessBar != nil {
			if err := callbacks.OnProcessBar(i, len(bars)); err != nil {
				return nil, errors.Wrap(errors.ErrCodeBacktestRunFailed, "process-bar callback failed", err)
			}
		}

		bar := bars[i]
		price := bar.Close
		signal := signals[i]

		// Pre-trade mark-to-market equity.
		portfolioValue := cash
		if position != nil {
			portfolioValue += position.Quantity * price
		}

		equity = append(equity, types.EquityPoint{Time: bar.Time, Value: portfolioValue})

		switch {
		case signal == types.SignalBuy && position == nil:
			position = e.openLong(&cash, bar)
		case signal == types.SignalSell && position == nil:
			position = e.openShort(&cash, bar)
		case position != nil &&
			((signal == types.SignalSell && position.Side == types.SideLong) ||
				(signal == types.SignalBuy && position.Side == types.SideShort)):
			trades = append(trades, e.closePosition(&cash, position, bar))
			position = nil
		}
	}

	// Force-close a position left open at the end of the scan. Cash is
	// credited as if closed at the last bar so the final capital reflects a
	// liquidated book, but the trade is flagged open with None exit fields.
	if position != nil {
		trades = append(trades, e.forceClose(&cash, position, bars[len(bars)-1]))
		position = nil
	}

	finalCapital := cash
	totalPnL := finalCapital - e.config.InitialCapital

	winningTrades := 0

	for _, trade := range trades {
		if trade.PnL > 0 {
			winningTrades++
		}
	}

	result := &types.Result{
		InitialCapital: e.config.InitialCapital,
		FinalCapital:   finalCapital,
		TotalPnL:       totalPnL,
		PercentReturn:  totalPnL / e.config.InitialCapital * 100,
		Trades:         trades,
		Equity:         equity,
		WinningTrades:  winningTrades,
		LosingTrades:   len(trades) - winningTrades,
		WinRate:        winRate(winningTrades, len(trades)),
		MaxDrawdown:    maxDrawdown(equity, e.config.InitialCapital),
		SharpeRatio:    sharpeRatio(equity),
	}

	e.logger.Debug("Backtest run completed",
		zap.Int("bars", len(bars)),
		zap.Int("trades", len(trades)),
		zap.Float64("final_capital", finalCapital),
	)

	return result, nil
}

// openLong enters a long position at the bar's close, worsened by slippage.
// The notional plus commission is deducted from cash.
func (e *Engine) openLong(cash *float64, bar types.Bar) *types.Position {
	tradeCash := *cash * e.config.PositionSizing
	effectivePrice := bar.Close * (1 + e.config.SlippagePercent/100)
	commission := tradeCash * e.config.CommissionPercent / 100
	quantity := (tradeCash - commission) / effectivePrice

	*cash -= quantity*effectivePrice + commission

	return &types.Position{
		Side:       types.SideLong,
		EntryPrice: effectivePrice,
		EntryTime:  bar.Time,
		Quantity:   quantity,
	}
}

// openShort enters a short position at the bar's close, worsened by
// slippage. Only the commission is deducted from cash at entry, not the
// shorted notional. Historical results depend on this exact accounting.
func (e *Engine) openShort(cash *float64, bar types.Bar) *types.Position {
	tradeCash := *cash * e.config.PositionSizing
	effectivePrice := bar.Close * (1 - e.config.SlippagePercent/100)
	commission := tradeCash * e.config.CommissionPercent / 100
	quantity := (tradeCash - commission) / effectivePrice

	*cash -= commission

	return &types.Position{
		Side:       types.SideShort,
		EntryPrice: effectivePrice,
		EntryTime:  bar.Time,
		Quantity:   quantity,
	}
}

// exitTerms computes the slippage-adjusted exit price, gross pnl, exit value
// and exit commission for closing position at price.
func (e *Engine) exitTerms(position *types.Position, price float64) (exitPrice, pnl, exitValue, commission float64) {
	if position.Side == types.SideLong {
		exitPrice = price * (1 - e.config.SlippagePercent/100)
		pnl = (exitPrice - position.EntryPrice) * position.Quantity
	} else {
		exitPrice = price * (1 + e.config.SlippagePercent/100)
		pnl = (position.EntryPrice - exitPrice) * position.Quantity
	}

	exitValue = position.Quantity * exitPrice
	commission = exitValue * e.config.CommissionPercent / 100

	return exitPrice, pnl, exitValue, commission
}

// closePosition closes an open position against the bar's close and records
// the completed trade. The net exit value is credited to cash.
func (e *Engine) closePosition(cash *float64, position *types.Position, bar types.Bar) types.Trade {
	exitPrice, pnl, exitValue, commission := e.exitTerms(position, bar.Close)

	*cash += exitValue - commission

	return types.Trade{
		EntryTime:  position.EntryTime,
		ExitTime:   optional.Some(bar.Time),
		EntryPrice: position.EntryPrice,
		ExitPrice:  optional.Some(exitPrice),
		Side:       position.Side,
		Quantity:   position.Quantity,
		PnL:        pnl - commission,
		PercentPnL: (pnl - commission) / (position.Quantity * position.EntryPrice) * 100,
		IsOpen:     false,
	}
}

// forceClose liquidates the position against the last bar for accounting
// purposes while recording the trade as still open. PnL and cash use the
// synthetic exit; the recorded ExitTime and ExitPrice stay None.
func (e *Engine) forceClose(cash *float64, position *types.Position, lastBar types.Bar) types.Trade {
	_, pnl, exitValue, commission := e.exitTerms(position, lastBar.Close)

	*cash += exitValue - commission

	return types.Trade{
		EntryTime:  position.EntryTime,
		ExitTime:   optional.None[time.Time](),
		EntryPrice: position.EntryPrice,
		ExitPrice:  optional.None[float64](),
		Side:       position.Side,
		Quantity:   position.Quantity,
		PnL:        pnl - commission,
		PercentPnL: (pnl - commission) / (position.Quantity * position.EntryPrice) * 100,
		IsOpen:     true,
	}
}
