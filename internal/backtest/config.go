package backtest

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/FinanceSutra/FinanceSUTRA-sub002/pkg/errors"
)

// Default cost and sizing parameters.
const (
	DefaultInitialCapital    = 10000.0
	DefaultCommissionPercent = 0.1
	DefaultSlippagePercent   = 0.05
	DefaultPositionSizing    = 1.0
)

// Config holds the capital and cost parameters of a backtest run.
//
// The engine itself does not validate the config: InitialCapital <= 0 is
// accepted by Run and produces the distorted percent figures one would
// expect. Validate guards the configuration boundary (CLI, config files)
// instead.
type Config struct {
	// InitialCapital is the starting cash of the simulated portfolio.
	InitialCapital float64 `yaml:"initial_capital" json:"initial_capital" validate:"required,gt=0"`
	// CommissionPercent is the commission charged per transaction, as a
	// percentage of traded value.
	CommissionPercent float64 `yaml:"commission_percent" json:"commission_percent" validate:"gte=0"`
	// SlippagePercent worsens every fill by this percentage.
	SlippagePercent float64 `yaml:"slippage_percent" json:"slippage_percent" validate:"gte=0"`
	// PositionSizing is the fraction of available cash committed per trade.
	PositionSizing float64 `yaml:"position_sizing" json:"position_sizing" validate:"gt=0,lte=1"`
}

// DefaultConfig returns the standard backtest configuration.
func DefaultConfig() Config {
	return Config{
		InitialCapital:    DefaultInitialCapital,
		CommissionPercent: DefaultCommissionPercent,
		SlippagePercent:   DefaultSlippagePercent,
		PositionSizing:    DefaultPositionSizing,
	}
}

// ParseConfig unmarshals a YAML config on top of the defaults and validates
// the result. Fields absent from the document keep their default values.
func ParseConfig(content string) (Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeBacktestConfigError, "failed to parse backtest config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the config against its declared constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestConfigError, "invalid backtest config", err)
	}

	return nil
}

// ConfigSchema returns the JSON schema of the engine configuration.
func ConfigSchema() (string, error) {
	reflector := new(jsonschema.Reflector)
	reflector.DoNotReference = true
	schema := reflector.Reflect(Config{})

	jsonSchemaBytes, err := json.Marshal(schema)
	if err != nil {
		return "", err
	}

	return string(jsonSchemaBytes), nil
}
