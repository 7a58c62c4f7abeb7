package testutil

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/petshield/petshield/internal/config"
	"github.com/petshield/petshield/internal/logger"
	"github.com/petshield/petshield/internal/types"
)

// Stores bundles the in-memory repositories handed to services under test.
type Stores struct {
	PlanRepo        *InMemoryPlanStore
	ContractRepo    *InMemoryContractStore
	InstallmentRepo *InMemoryInstallmentStore
}

// BaseServiceTestSuite provides fresh stores, a logger and a tenant-scoped
// context for every test.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	logger *logger.Logger
	config *config.Configuration
}

func (s *BaseServiceTestSuite) SetupTest() {
	s.config = config.GetDefaultConfig()
	s.logger = logger.GetLogger()
	s.stores = Stores{
		PlanRepo:        NewInMemoryPlanStore(),
		ContractRepo:    NewInMemoryContractStore(),
		InstallmentRepo: NewInMemoryInstallmentStore(),
	}

	ctx := context.Background()
	ctx = types.SetTenantID(ctx, types.DefaultTenantID)
	ctx = types.SetUserID(ctx, types.DefaultUserID)
	s.ctx = ctx
}

func (s *BaseServiceTestSuite) TearDownTest() {
	s.stores.PlanRepo.Clear()
	s.stores.ContractRepo.Clear()
	s.stores.InstallmentRepo.Clear()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}
