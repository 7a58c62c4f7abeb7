package service

import (
	"context"
	"sort"
	"time"

	"github.com/petshield/petshield/internal/domain/contract"
	"github.com/petshield/petshield/internal/types"
)

// InstallmentAuditService scans every contract's first two installments for
// the historical "double period" scheduling bug: a second installment due
// two cadence periods after the first instead of one. Dry-run reports;
// apply mode rewrites the due date of non-paid second installments, once.
type InstallmentAuditService interface {
	Run(ctx context.Context, apply bool) (*InstallmentAuditReport, error)
}

// InstallmentAuditEntry describes one flagged contract.
type InstallmentAuditEntry struct {
	ContractID     string              `json:"contract_id"`
	ContractNumber string              `json:"contract_number"`
	PlanName       string              `json:"plan_name"`
	Cadence        types.BillingPeriod `json:"cadence"`
	InstallmentID  string              `json:"installment_id"`
	OldDueDate     time.Time           `json:"old_due_date"`
	NewDueDate     time.Time           `json:"new_due_date"`
}

// InstallmentAuditReport summarizes a full audit pass.
type InstallmentAuditReport struct {
	Scanned   int                     `json:"scanned"`
	Flagged   int                     `json:"flagged"`
	Corrected int                     `json:"corrected"`
	Failed    int                     `json:"failed"`
	Applied   bool                    `json:"applied"`
	Entries   []InstallmentAuditEntry `json:"entries"`
}

type installmentAuditService struct {
	ServiceParams
}

func NewInstallmentAuditService(params ServiceParams) InstallmentAuditService {
	return &installmentAuditService{ServiceParams: params}
}

// dueDateTolerance absorbs timezone and off-by-one artifacts in stored due
// dates.
const dueDateTolerance = 24 * time.Hour

func (s *installmentAuditService) Run(ctx context.Context, apply bool) (*InstallmentAuditReport, error) {
	contracts, err := s.ContractRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &InstallmentAuditReport{Applied: apply}

	for _, c := range contracts {
		report.Scanned++

		entry, ok, err := s.classify(ctx, c)
		if err != nil {
			s.Logger.Errorw("failed to audit contract installments",
				"contract_id", c.ID,
				"contract_number", c.ContractNumber,
				"error", err,
			)
			report.Failed++
			continue
		}
		if !ok {
			continue
		}

		report.Flagged++
		report.Entries = append(report.Entries, *entry)

		if !apply {
			continue
		}

		if err := s.InstallmentRepo.UpdateDueDate(ctx, entry.InstallmentID, entry.NewDueDate); err != nil {
			s.Logger.Errorw("failed to correct installment due date",
				"contract_id", c.ID,
				"installment_id", entry.InstallmentID,
				"error", err,
			)
			report.Failed++
			continue
		}

		report.Corrected++
		s.Logger.Infow("corrected installment due date",
			"contract_id", c.ID,
			"installment_id", entry.InstallmentID,
			"old_due_date", entry.OldDueDate,
			"new_due_date", entry.NewDueDate,
		)
	}

	return report, nil
}

// classify decides whether a contract's second installment carries the
// double-period due date. Returns ok=false for clean contracts.
func (s *installmentAuditService) classify(ctx context.Context, c *contract.Contract) (*InstallmentAuditEntry, bool, error) {
	installments, err := s.InstallmentRepo.ListByContract(ctx, c.ID)
	if err != nil {
		return nil, false, err
	}
	if len(installments) < 2 {
		return nil, false, nil
	}

	sort.Slice(installments, func(i, j int) bool {
		return installments[i].InstallmentNumber < installments[j].InstallmentNumber
	})

	first, second := installments[0], installments[1]
	if !second.InstallmentStatus.IsMutable() {
		// paid installments are immutable history
		return nil, false, nil
	}

	correct := addPeriods(first.DueDate, 1, c.BillingPeriod)
	wrong := addPeriods(first.DueDate, 2, c.BillingPeriod)

	if !withinTolerance(second.DueDate, wrong) || withinTolerance(second.DueDate, correct) {
		return nil, false, nil
	}

	entry := &InstallmentAuditEntry{
		ContractID:     c.ID,
		ContractNumber: c.ContractNumber,
		PlanName:       s.planName(ctx, c.PlanID),
		Cadence:        c.BillingPeriod,
		InstallmentID:  second.ID,
		OldDueDate:     second.DueDate,
		NewDueDate:     correct,
	}
	return entry, true, nil
}

// planName resolves the plan name for report readability only; lookup
// failures fall back to the raw plan ID.
func (s *installmentAuditService) planName(ctx context.Context, planID string) string {
	p, err := s.PlanRepo.Get(ctx, planID)
	if err != nil || p == nil {
		return planID
	}
	return p.Name
}

func addPeriods(t time.Time, n int, cadence types.BillingPeriod) time.Time {
	if cadence == types.BILLING_PERIOD_ANNUAL {
		return types.AddYears(t, n)
	}
	return types.AddMonths(t, n)
}

func withinTolerance(a, b time.Time) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= dueDateTolerance
}
