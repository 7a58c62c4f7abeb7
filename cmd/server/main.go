package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	v1 "github.com/petshield/petshield/internal/api/v1"
	"github.com/petshield/petshield/internal/config"
	"github.com/petshield/petshield/internal/domain/contract"
	"github.com/petshield/petshield/internal/domain/installment"
	"github.com/petshield/petshield/internal/domain/plan"
	"github.com/petshield/petshield/internal/logger"
	"github.com/petshield/petshield/internal/postgres"
	pgrepo "github.com/petshield/petshield/internal/repository/postgres"
	"github.com/petshield/petshield/internal/rest/middleware"
	"github.com/petshield/petshield/internal/service"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.Load,
			logger.NewLogger,
			postgres.NewClient,
			newPlanRepository,
			newContractRepository,
			newInstallmentRepository,
			newServiceParams,
			service.NewRenewalService,
			service.NewRegularizationService,
			service.NewContractService,
			v1.NewBillingHandler,
			v1.NewContractHandler,
			newRouter,
		),
		fx.Invoke(startServer),
	)
	app.Run()
}

func newPlanRepository(client *postgres.Client, log *logger.Logger) plan.Repository {
	return pgrepo.NewPlanRepository(client, log)
}

func newContractRepository(client *postgres.Client, log *logger.Logger) contract.Repository {
	return pgrepo.NewContractRepository(client, log)
}

func newInstallmentRepository(client *postgres.Client, log *logger.Logger) installment.Repository {
	return pgrepo.NewInstallmentRepository(client, log)
}

func newServiceParams(
	cfg *config.Configuration,
	log *logger.Logger,
	planRepo plan.Repository,
	contractRepo contract.Repository,
	installmentRepo installment.Repository,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:          log,
		Config:          cfg,
		PlanRepo:        planRepo,
		ContractRepo:    contractRepo,
		InstallmentRepo: installmentRepo,
	}
}

func newRouter(
	cfg *config.Configuration,
	log *logger.Logger,
	billingHandler *v1.BillingHandler,
	contractHandler *v1.ContractHandler,
) *gin.Engine {
	if cfg.Deployment.Mode != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = log.GetGinLogger()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.ErrorHandlerMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	group := router.Group("/v1")
	{
		group.GET("/plans/cadence", billingHandler.ResolveCadence)
		group.POST("/contracts", contractHandler.CreateContract)
		group.GET("/contracts/:id", contractHandler.GetContract)
		group.POST("/contracts/:id/payments", contractHandler.RecordPayment)
		group.POST("/contracts/validate-cadence", billingHandler.ValidateCadence)
		group.POST("/billing/renewal/preview", billingHandler.PreviewRenewal)
		group.POST("/billing/regularization/quote", billingHandler.QuoteRegularization)
	}

	return router
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	log *logger.Logger,
	router *gin.Engine,
	client *postgres.Client,
) {
	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalw("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			return client.Close()
		},
	})
}
