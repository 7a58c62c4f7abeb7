package service

import (
	"github.com/petshield/petshield/internal/config"
	"github.com/petshield/petshield/internal/domain/contract"
	"github.com/petshield/petshield/internal/domain/installment"
	"github.com/petshield/petshield/internal/domain/plan"
	"github.com/petshield/petshield/internal/logger"
)

// ServiceParams bundles the dependencies shared by all services so
// constructors stay stable as the dependency set grows.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	PlanRepo        plan.Repository
	ContractRepo    contract.Repository
	InstallmentRepo installment.Repository
}
