package types

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// EquityPoint is the mark-to-market portfolio value at one bar.
type EquityPoint struct {
	Time  time.Time `yaml:"time"`
	Value float64   `yaml:"value"`
}

// Result is the aggregate output of a backtest run. It is derived entirely
// from the trade log and equity curve and never mutated after the run
// completes.
//
// RunID and Timestamp identify a persisted run. They are stamped by the
// caller before writing, not by the engine, so that two runs over identical
// inputs produce identical Results.
type Result struct {
	RunID          string        `yaml:"run_id,omitempty"`
	Timestamp      time.Time     `yaml:"timestamp,omitempty"`
	Strategy       string        `yaml:"strategy,omitempty"`
	InitialCapital float64       `yaml:"initial_capital"`
	FinalCapital   float64       `yaml:"final_capital"`
	TotalPnL       float64       `yaml:"total_pnl"`
	PercentReturn  float64       `yaml:"percent_return"`
	WinningTrades  int           `yaml:"winning_trades"`
	LosingTrades   int           `yaml:"losing_trades"`
	WinRate        float64       `yaml:"win_rate"`
	MaxDrawdown    float64       `yaml:"max_drawdown"`
	SharpeRatio    float64       `yaml:"sharpe_ratio"`
	Trades         []Trade       `yaml:"-"`
	Equity         []EquityPoint `yaml:"-"`
	// TradesFilePath is the path to the trades parquet file, if one was written.
	TradesFilePath string `yaml:"trades_file_path,omitempty"`
}

// RealizedPnL sums the recorded trade PnLs. Summation is done in decimal so
// the reconciliation against FinalCapital-InitialCapital is not distorted by
// accumulation order.
func (r *Result) RealizedPnL() float64 {
	total := decimal.Zero
	for _, trade := range r.Trades {
		total = total.Add(decimal.NewFromFloat(trade.PnL))
	}

	result, _ := total.Float64()

	return result
}

// WriteResult marshals the result summary to YAML and writes it to path.
func WriteResult(path string, result *Result) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal backtest result to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write backtest result to file: %w", err)
	}

	return nil
}
