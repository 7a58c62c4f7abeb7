package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/petshield/petshield/internal/config"
	"github.com/petshield/petshield/internal/logger"
	"github.com/petshield/petshield/internal/postgres"
	pgrepo "github.com/petshield/petshield/internal/repository/postgres"
	"github.com/petshield/petshield/internal/service"
)

// Scans every contract's first two installments for the historical
// double-period due-date bug and optionally corrects them.
func main() {
	dryRun := flag.Bool("dry-run", true, "Run in dry-run mode (no actual changes)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.GetLogger().Fatalw("failed to load config", "error", err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		logger.GetLogger().Fatalw("failed to initialize logger", "error", err)
	}
	defer log.Sync()

	if *dryRun {
		log.Info("running in DRY-RUN mode - no changes will be made")
	}

	client, err := postgres.NewClient(cfg, log)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer client.Close()

	params := service.ServiceParams{
		Logger:          log,
		Config:          cfg,
		PlanRepo:        pgrepo.NewPlanRepository(client, log),
		ContractRepo:    pgrepo.NewContractRepository(client, log),
		InstallmentRepo: pgrepo.NewInstallmentRepository(client, log),
	}
	auditService := service.NewInstallmentAuditService(params)

	ctx := context.Background()

	report, err := auditService.Run(ctx, !*dryRun)
	if err != nil {
		log.Fatalw("installment audit failed", "error", err)
	}

	for _, entry := range report.Entries {
		fmt.Printf("contract %s (%s) plan=%s cadence=%s installment=%s due %s -> %s\n",
			entry.ContractNumber,
			entry.ContractID,
			entry.PlanName,
			entry.Cadence,
			entry.InstallmentID,
			entry.OldDueDate.Format("2006-01-02"),
			entry.NewDueDate.Format("2006-01-02"),
		)
	}

	log.Infow("installment audit complete",
		"scanned", report.Scanned,
		"flagged", report.Flagged,
		"corrected", report.Corrected,
		"failed", report.Failed,
		"dry_run", *dryRun,
	)

	if *dryRun {
		fmt.Println("\n=== DRY-RUN MODE ===")
		fmt.Printf("Would correct %d installments\n", report.Flagged)
		fmt.Printf("Run with --dry-run=false to apply changes\n")
	} else {
		fmt.Printf("\nScanned %d contracts, corrected %d, failed %d\n",
			report.Scanned, report.Corrected, report.Failed)
	}
}
