package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petshield/petshield/internal/api/dto"
	ierr "github.com/petshield/petshield/internal/errors"
	"github.com/petshield/petshield/internal/logger"
	"github.com/petshield/petshield/internal/service"
)

type ContractHandler struct {
	contractService service.ContractService
	logger          *logger.Logger
}

func NewContractHandler(
	contractService service.ContractService,
	logger *logger.Logger,
) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
		logger:          logger,
	}
}

func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.contractService.CreateContract(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to create contract", "contract_number", req.ContractNumber, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ContractHandler) RecordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
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

	resp, err := h.contractService.RecordPayment(c.Request.Context(), c.Param("id"), req.ReceivedAt)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	resp, err := h.contractService.GetContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
