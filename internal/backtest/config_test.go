package backtest

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/FinanceSutra/FinanceSUTRA-sub002/pkg/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestDefaults() {
	config := DefaultConfig()

	suite.InDelta(10000.0, config.InitialCapital, 1e-9)
	suite.InDelta(0.1, config.CommissionPercent, 1e-9)
	suite.InDelta(0.05, config.SlippagePercent, 1e-9)
	suite.InDelta(1.0, config.PositionSizing, 1e-9)
	suite.NoError(config.Validate())
}

func (suite *ConfigTestSuite) TestParseConfigOverridesKeepDefaults() {
	config, err := ParseConfig("initial_capital: 50000\ncommission_percent: 0.2\n")
	suite.NoError(err)

	suite.InDelta(50000.0, config.InitialCapital, 1e-9)
	suite.InDelta(0.2, config.CommissionPercent, 1e-9)
	suite.InDelta(DefaultSlippagePercent, config.SlippagePercent, 1e-9)
	suite.InDelta(DefaultPositionSizing, config.PositionSizing, 1e-9)
}

func (suite *ConfigTestSuite) TestParseConfigEmptyIsDefaults() {
	config, err := ParseConfig("")
	suite.NoError(err)
	suite.Equal(DefaultConfig(), config)
}

func (suite *ConfigTestSuite) TestParseConfigMalformedYAML() {
	_, err := ParseConfig("initial_capital: [not a number")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeBacktestConfigError))
}

func (suite *ConfigTestSuite) TestValidateRejectsNonPositiveCapital() {
	config := DefaultConfig()
	config.InitialCapital = 0

	err := config.Validate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeBacktestConfigError))
}

func (suite *ConfigTestSuite) TestValidateRejectsOversizedPosition() {
	config := DefaultConfig()
	config.PositionSizing = 1.5

	suite.Error(config.Validate())
}

func (suite *ConfigTestSuite) TestValidateRejectsNegativeCosts() {
	config := DefaultConfig()
	config.CommissionPercent = -0.1

	suite.Error(config.Validate())
}

func (suite *ConfigTestSuite) TestConfigSchema() {
	schema, err := ConfigSchema()
	suite.NoError(err)
	suite.Contains(schema, "initial_capital")
	suite.Contains(schema, "position_sizing")
}
