// Package strategy defines the pluggable trading-strategy interface and the
// strategies shipped with the engine.
//
// A strategy is expressed directly as code producing one signal per bar.
// There is deliberately no support for scanning free-text strategy source
// for keywords: anything that can emit a signal slice of the right length
// can plug into the engine.
package strategy

import (
	"sync"

	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/types"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/pkg/errors"
)

// Strategy turns a full bar history into a parallel slice of per-bar
// signals. Implementations must be pure: no I/O, no mutation of bars, and
// len(Signals(bars)) == len(bars) for any input.
type Strategy interface {
	// Name returns the registry name of the strategy.
	Name() string
	// Config configures the strategy parameters. Each implementation
	// documents the parameters it expects.
	Config(params ...any) error
	// Signals computes one signal per bar.
	Signals(bars []types.Bar) []types.SignalValue
}

// Registry manages the available strategies.
type Registry interface {
	Register(strategy Strategy) error
	Get(name string) (Strategy, error)
	List() []string
	Remove(name string) error
}

type registry struct {
	strategies map[string]Strategy
	mu         sync.RWMutex
}

// NewRegistry creates an empty strategy registry.
func NewRegistry() Registry {
	return &registry{
		strategies: make(map[string]Strategy),
		mu:         sync.RWMutex{},
	}
}

// NewDefaultRegistry creates a registry populated with the shipped
// strategies.
func NewDefaultRegistry() Registry {
	r := NewRegistry()

	// Registration of freshly-constructed strategies cannot collide.
	_ = r.Register(NewMACrossover())
	_ = r.Register(NewRSIReversal())
	_ = r.Register(NewBuyAndHold())

	return r
}

// Register adds a strategy to the registry.
func (r *registry) Register(strategy Strategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strategy.Name()
	if _, exists := r.strategies[name]; exists {
		return errors.Newf(errors.ErrCodeStrategyAlreadyExists, "strategy %s already registered", name)
	}

	r.strategies[name] = strategy

	return nil
}

// Get retrieves a strategy by name.
func (r *registry) Get(name string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategy, exists := r.strategies[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeStrategyNotFound, "strategy %s not found", name)
	}

	return strategy, nil
}

// List returns the names of all registered strategies.
func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}

	return names
}

// Remove removes a strategy from the registry.
func (r *registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[name]; !exists {
		return errors.Newf(errors.ErrCodeStrategyNotFound, "strategy %s not found", name)
	}

	delete(r.strategies, name)

	return nil
}
