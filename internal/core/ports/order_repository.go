package ports

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

// OrderReader exposes committed order state to queries.
type OrderReader interface {
	// Get retrieves an order by id.
	// Returns errs.ObjectNotFoundError when no order has that id.
	Get(ctx context.Context, id int64) (*order.Order, error)
}

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted.
type OrderRepository interface {
	OrderReader

	// Add persists a newly placed order.
	// The order must be valid and its id must not be in use.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a transition of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error
}
