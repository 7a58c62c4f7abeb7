package installment

import (
	"context"
	"time"
)

// Repository defines the interface for installment persistence operations
type Repository interface {
	// Create creates a new installment
	Create(ctx context.Context, installment *Installment) error

	// Get retrieves an installment by ID
	Get(ctx context.Context, id string) (*Installment, error)

	// ListByContract retrieves all installments of a contract ordered by
	// installment number
	ListByContract(ctx context.Context, contractID string) ([]*Installment, error)

	// UpdateDueDate rewrites the due date of a single installment
	UpdateDueDate(ctx context.Context, id string, dueDate time.Time) error
}
