package backtest

import (
	"math"

	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/types"
)

// annualizationPeriods assumes 252 trading periods per year when
// annualizing the Sharpe ratio.
const annualizationPeriods = 252

// winRate returns winning trades as a percentage of all trades, 0 when
// there were none.
func winRate(winningTrades, totalTrades int) float64 {
	if totalTrades == 0 {
		return 0
	}

	return float64(winningTrades) / float64(totalTrades) * 100
}

// maxDrawdown returns the largest percentage decline from a running equity
// peak, 0 if equity never dips below a prior peak.
func maxDrawdown(equity []types.EquityPoint, initialCapital float64) float64 {
	maxDD := 0.0
	peak := initialCapital

	for _, point := range equity {
		if point.Value > peak {
			peak = point.Value
		}

		drawdown := (peak - point.Value) / peak * 100
		if drawdown > maxDD {
			maxDD = drawdown
		}
	}

	return maxDD
}

// sharpeRatio computes the annualized Sharpe ratio over bar-to-bar simple
// returns of the whole equity curve (not per-trade returns). Returns 0 when
// the curve is too short or the return deviation is zero.
func sharpeRatio(equity []types.EquityPoint) float64 {
	if len(equity) < 2 {
		return 0
	}

	returns := make([]float64, 0, len(equity)-1)
	for i := 1; i < len(equity); i++ {
		returns = append(returns, equity[i].Value/equity[i-1].Value-1)
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}

	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		deviation := r - mean
		variance += deviation * deviation
	}

	stdDev := math.Sqrt(variance / float64(len(returns)))
	if stdDev == 0 {
		return 0
	}

	return mean / stdDev * math.Sqrt(annualizationPeriods)
}
