package types

import (
	"fmt"
	"strings"

	ierr "github.com/petshield/petshield/internal/errors"
	"github.com/samber/lo"
)

// InstallmentStatus is the lifecycle state of a contract installment.
type InstallmentStatus string

const (
	InstallmentStatusPending   InstallmentStatus = "PENDING"
	InstallmentStatusCurrent   InstallmentStatus = "CURRENT"
	InstallmentStatusPaid      InstallmentStatus = "PAID"
	InstallmentStatusCancelled InstallmentStatus = "CANCELLED"
)

// String returns the string representation of the installment status
func (s InstallmentStatus) String() string {
	return string(s)
}

// Validate validates the installment status
func (s InstallmentStatus) Validate() error {
	allowed := []InstallmentStatus{
		InstallmentStatusPending,
		InstallmentStatusCurrent,
		InstallmentStatusPaid,
		InstallmentStatusCancelled,
	}
	if lo.Contains(allowed, s) {
		return nil
	}
	return ierr.NewError("invalid installment status").
		WithHint(fmt.Sprintf("Installment status must be one of: %s", strings.Join(lo.Map(allowed, func(s InstallmentStatus, _ int) string { return string(s) }), ", "))).
		Mark(ierr.ErrValidation)
}

// IsMutable reports whether the installment may still be rescheduled.
// Paid installments are immutable history; cancelled ones are left alone.
func (s InstallmentStatus) IsMutable() bool {
	return s == InstallmentStatusPending || s == InstallmentStatusCurrent
}
