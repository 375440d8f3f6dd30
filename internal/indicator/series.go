// Package indicator implements the technical indicator library: pure
// functions over price series that produce per-bar values aligned 1:1 with
// their input.
//
// Outputs use optional values rather than a zero sentinel. A None entry
// means "not yet computable" (the trailing window has not filled), and every
// consumer must treat it that way. Functions degrade gracefully on too-short
// input by returning an all-None series of matching length instead of
// failing; the only hard failures are mismatched lengths across the parallel
// high/low/close inputs of Stochastic and ATR.
package indicator

import (
	"github.com/moznion/go-optional"

	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/types"
)

// Series is an indicator output aligned 1:1 with its input price series.
// Leading entries are None until enough history has accumulated.
type Series []optional.Option[float64]

// NoneSeries returns a series of n None entries.
func NoneSeries(n int) Series {
	s := make(Series, n)
	for i := range s {
		s[i] = optional.None[float64]()
	}

	return s
}

// At returns the value at index i and whether it is defined.
func (s Series) At(i int) (float64, bool) {
	if i < 0 || i >= len(s) || s[i].IsNone() {
		return 0, false
	}

	return s[i].Unwrap(), true
}

// Valid reports whether the entry at index i is defined.
func (s Series) Valid(i int) bool {
	_, ok := s.At(i)

	return ok
}

// Values returns the defined entries in order, dropping the None padding.
func (s Series) Values() []float64 {
	values := make([]float64, 0, len(s))

	for _, v := range s {
		if v.IsSome() {
			values = append(values, v.Unwrap())
		}
	}

	return values
}

// padSeries right-aligns values into a series of length n, padding the
// front with None.
func padSeries(values []float64, n int) Series {
	s := NoneSeries(n)

	lead := n - len(values)
	for i, v := range values {
		s[lead+i] = optional.Some(v)
	}

	return s
}

// Closes extracts the close prices of bars.
func Closes(bars []types.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, bar := range bars {
		closes[i] = bar.Close
	}

	return closes
}

// Highs extracts the high prices of bars.
func Highs(bars []types.Bar) []float64 {
	highs := make([]float64, len(bars))
	for i, bar := range bars {
		highs[i] = bar.High
	}

	return highs
}

// Lows extracts the low prices of bars.
func Lows(bars []types.Bar) []float64 {
	lows := make([]float64, len(bars))
	for i, bar := range bars {
		lows[i] = bar.Low
	}

	return lows
}
