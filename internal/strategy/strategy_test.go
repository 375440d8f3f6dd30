package strategy

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/FinanceSutra/FinanceSUTRA-sub002/pkg/errors"
)

type RegistryTestSuite struct {
	suite.Suite
	registry Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (suite *RegistryTestSuite) SetupTest() {
	suite.registry = NewRegistry()
}

func (suite *RegistryTestSuite) TestRegisterAndGet() {
	suite.NoError(suite.registry.Register(NewMACrossover()))

	s, err := suite.registry.Get("ma_crossover")
	suite.NoError(err)
	suite.Equal("ma_crossover", s.Name())
}

func (suite *RegistryTestSuite) TestRegisterDuplicateFails() {
	suite.NoError(suite.registry.Register(NewMACrossover()))

	err := suite.registry.Register(NewMACrossover())
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeStrategyAlreadyExists))
}

func (suite *RegistryTestSuite) TestGetMissingFails() {
	_, err := suite.registry.Get("nope")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeStrategyNotFound))
}

func (suite *RegistryTestSuite) TestList() {
	suite.Empty(suite.registry.List())

	suite.NoError(suite.registry.Register(NewMACrossover()))
	suite.NoError(suite.registry.Register(NewBuyAndHold()))

	suite.ElementsMatch([]string{"ma_crossover", "buy_and_hold"}, suite.registry.List())
}

func (suite *RegistryTestSuite) TestRemove() {
	suite.NoError(suite.registry.Register(NewBuyAndHold()))
	suite.NoError(suite.registry.Remove("buy_and_hold"))

	_, err := suite.registry.Get("buy_and_hold")
	suite.Error(err)

	err = suite.registry.Remove("buy_and_hold")
	suite.True(errors.HasCode(err, errors.ErrCodeStrategyNotFound))
}

func (suite *RegistryTestSuite) TestDefaultRegistryHasShippedStrategies() {
	registry := NewDefaultRegistry()
	suite.ElementsMatch(
		[]string{"ma_crossover", "rsi_reversal", "buy_and_hold"},
		registry.List(),
	)
}
