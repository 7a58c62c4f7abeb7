package contract

import "context"

// Repository defines the interface for contract persistence operations
type Repository interface {
	// Create creates a new contract
	Create(ctx context.Context, contract *Contract) error

	// Get retrieves a contract by ID
	Get(ctx context.Context, id string) (*Contract, error)

	// Update updates an existing contract
	Update(ctx context.Context, contract *Contract) error

	// List retrieves all published contracts
	List(ctx context.Context) ([]*Contract, error)

	// Delete soft deletes a contract
	Delete(ctx context.Context, id string) error
}
