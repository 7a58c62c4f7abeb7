package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petshield/petshield/internal/api/dto"
	"github.com/petshield/petshield/internal/domain/plan"
	ierr "github.com/petshield/petshield/internal/errors"
	"github.com/petshield/petshield/internal/logger"
	"github.com/petshield/petshield/internal/service"
	"github.com/petshield/petshield/internal/types"
)

type BillingHandler struct {
	renewalService        service.RenewalService
	regularizationService service.RegularizationService
	logger                *logger.Logger
}

func NewBillingHandler(
	renewalService service.RenewalService,
	regularizationService service.RegularizationService,
	logger *logger.Logger,
) *BillingHandler {
	return &BillingHandler{
		renewalService:        renewalService,
		regularizationService: regularizationService,
		logger:                logger,
	}
}

// ResolveCadence returns the billing cadence mandated by a plan name.
func (h *BillingHandler) ResolveCadence(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.Error(ierr.NewError("plan name is required").
			WithHint("Pass the plan name in the name query parameter").
			Mark(ierr.ErrValidation))
		return
	}

	c.JSON(http.StatusOK, dto.CadenceResponse{
		PlanName:      name,
		BillingPeriod: plan.ResolveCadence(name),
	})
}

// ValidateCadence enforces plan/cadence compatibility; 422 on mismatch.
func (h *BillingHandler) ValidateCadence(c *gin.Context) {
	var req dto.ValidateCadenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	cadence, err := plan.EnforceCadence(req.PlanName, req.BillingPeriod)
	if err != nil {
		h.logger.Errorw("cadence validation failed", "plan_name", req.PlanName, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.CadenceResponse{
		PlanName:      req.PlanName,
		BillingPeriod: cadence,
	})
}

// PreviewRenewal computes the next anchor-aligned renewal date.
func (h *BillingHandler) PreviewRenewal(c *gin.Context) {
	var req dto.RenewalPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	next, err := h.renewalService.NextRenewalDate(req.AnchorDate, req.Now(), req.BillingPeriod)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.RenewalPreviewResponse{
		NextRenewalDate: next,
		BillingPeriod:   req.BillingPeriod,
	})
}

// QuoteRegularization computes overdue periods, the anniversary-aligned
// received date and the catch-up amount for a contract in arrears.
func (h *BillingHandler) QuoteRegularization(c *gin.Context) {
	var req dto.RegularizationQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	now := req.Now()

	overdue, err := h.regularizationService.OverduePeriods(req.LastPaidDate, now, req.BillingPeriod, req.AnchorDate)
	if err != nil {
		c.Error(err)
		return
	}

	received, err := h.regularizationService.ReceivedDate(req.AnchorDate, now, req.BillingPeriod)
	if err != nil {
		c.Error(err)
		return
	}

	base, err := types.MoneyFromString(req.BaseAmount)
	if err != nil {
		c.Error(err)
		return
	}
	amount := h.regularizationService.Amount(base, overdue, true)

	c.JSON(http.StatusOK, dto.RegularizationQuoteResponse{
		OverduePeriods: overdue,
		ReceivedDate:   received,
		Amount:         amount.String(),
		AmountMinor:    int64(amount),
	})
}
