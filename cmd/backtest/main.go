package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/backtest"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/backtest/writer"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/datasource"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/logger"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/market"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/strategy"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/types"
)

// backtestAction loads the market data, runs the selected strategy through
// the engine and writes the result files.
func backtestAction(ctx context.Context, cmd *cli.Command) error {
	dataPath := cmd.String("data")
	strategyName := cmd.String("strategy")
	configPath := cmd.String("config")
	resultsFolder := cmd.String("results")
	lookback := cmd.Int("lookback")
	exportCSV := cmd.Bool("csv")

	appLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer appLogger.Sync() //nolint:errcheck // best-effort flush on exit

	config := backtest.DefaultConfig()

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		config, err = backtest.ParseConfig(string(content))
		if err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	source, err := datasource.NewDuckDBDataSource(appLogger)
	if err != nil {
		return fmt.Errorf("failed to create data source: %w", err)
	}
	defer source.Close()

	if err := source.Initialize(dataPath); err != nil {
		return fmt.Errorf("failed to load market data: %w", err)
	}

	var bars []types.Bar

	if lookback > 0 {
		bars, err = source.ReadLastN(int(lookback))
	} else {
		bars, err = source.ReadAll()
	}

	if err != nil {
		return fmt.Errorf("failed to read market data: %w", err)
	}

	registry := strategy.NewDefaultRegistry()

	strat, err := registry.Get(strategyName)
	if err != nil {
		return fmt.Errorf("unknown strategy %q (available: %v): %w", strategyName, registry.List(), err)
	}

	appLogger.Info("Starting backtest",
		zap.String("strategy", strat.Name()),
		zap.String("data", dataPath),
		zap.Int("bars", len(bars)),
	)

	bar := progressbar.Default(int64(len(bars)), "backtest")
	callbacks := backtest.RunCallbacks{
		OnProcessBar: func(current, total int) error {
			return bar.Set(current)
		},
	}

	engine := backtest.NewEngine(config, appLogger)

	result, err := engine.RunWithCallbacks(ctx, bars, strat.Signals, callbacks)
	if err != nil {
		return fmt.Errorf("backtest failed: %w", err)
	}

	_ = bar.Finish() //nolint:errcheck // cosmetic

	result.RunID = uuid.NewString()
	result.Timestamp = time.Now()
	result.Strategy = strat.Name()

	condition := market.Classify(bars, 0)
	appLogger.Info("Market condition over tested window",
		zap.String("condition", string(condition)),
	)

	tradesPath := filepath.Join(resultsFolder, result.RunID+"_trades.parquet")
	tradesWriter := writer.NewTradesWriter(tradesPath)

	if err := tradesWriter.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize trades writer: %w", err)
	}
	defer tradesWriter.Close()

	if err := tradesWriter.Write(result.Trades); err != nil {
		return fmt.Errorf("failed to write trades: %w", err)
	}

	result.TradesFilePath = tradesWriter.GetOutputPath()

	if exportCSV {
		csvWriter := writer.NewCSVWriter(
			filepath.Join(resultsFolder, result.RunID+"_trades.csv"),
			filepath.Join(resultsFolder, result.RunID+"_equity.csv"),
		)

		if err := csvWriter.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize csv writer: %w", err)
		}
		defer csvWriter.Close()

		if err := csvWriter.WriteTrades(result.Trades); err != nil {
			return fmt.Errorf("failed to write trades csv: %w", err)
		}

		if err := csvWriter.WriteEquityCurve(result.Equity); err != nil {
			return fmt.Errorf("failed to write equity curve csv: %w", err)
		}
	}

	resultPath := filepath.Join(resultsFolder, result.RunID+".yaml")
	if err := types.WriteResult(resultPath, result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	fmt.Printf("\nBacktest complete (%s)\n", result.RunID)
	fmt.Printf("  Strategy:        %s\n", result.Strategy)
	fmt.Printf("  Market:          %s\n", condition)
	fmt.Printf("  Initial capital: %.2f\n", result.InitialCapital)
	fmt.Printf("  Final capital:   %.2f\n", result.FinalCapital)
	fmt.Printf("  Return:          %.2f%%\n", result.PercentReturn)
	fmt.Printf("  Trades:          %d (%d won, %d lost, win rate %.1f%%)\n",
		len(result.Trades), result.WinningTrades, result.LosingTrades, result.WinRate)
	fmt.Printf("  Max drawdown:    %.2f%%\n", result.MaxDrawdown)
	fmt.Printf("  Sharpe ratio:    %.2f\n", result.SharpeRatio)
	fmt.Printf("  Results:         %s\n", resultPath)

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "backtest",
		Usage: "Run a strategy backtest over historical market data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "data",
				Aliases:  []string{"d"},
				Usage:    "Path to a CSV or Parquet market data file",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "strategy",
				Aliases: []string{"s"},
				Usage:   "Strategy to run (ma_crossover, rsi_reversal, buy_and_hold)",
				Value:   "ma_crossover",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML backtest config file",
			},
			&cli.StringFlag{
				Name:    "results",
				Aliases: []string{"r"},
				Usage:   "Directory for result files",
				Value:   "results",
			},
			&cli.IntFlag{
				Name:    "lookback",
				Aliases: []string{"l"},
				Usage:   "Run over only the most recent N bars (0 runs over all bars)",
				Value:   0,
			},
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "Also export the trade log and equity curve as CSV files",
			},
		},
		Action: backtestAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
