// Package ports defines the contracts between the application core and its adapters:
// repositories and readers for roles, participant profiles, orders, id sequences and
// the event outbox, the unit of work that binds them into one transaction, and the
// publisher that ships outbox messages out of the process.
package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/role"
)

// RoleReader looks up role assignments.
type RoleReader interface {
	// Get returns the principal's assignment. A principal that never chose a role
	// gets an assignment with role.None, never a NotFound error.
	Get(ctx context.Context, principal kernel.Principal) (*role.Assignment, error)
}

// RoleRepository stores role assignments. An assignment is written once.
type RoleRepository interface {
	RoleReader

	// Add records a chosen role. Returns errs.AlreadyAssignedError if the principal
	// already holds one.
	Add(ctx context.Context, assignment *role.Assignment) error
}
