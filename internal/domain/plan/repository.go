package plan

import "context"

// Repository defines the interface for plan persistence operations
type Repository interface {
	// Create creates a new plan
	Create(ctx context.Context, plan *Plan) error

	// Get retrieves a plan by ID
	Get(ctx context.Context, id string) (*Plan, error)

	// Update updates an existing plan
	Update(ctx context.Context, plan *Plan) error

	// List retrieves all published plans
	List(ctx context.Context) ([]*Plan, error)
}
