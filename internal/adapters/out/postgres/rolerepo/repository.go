package rolerepo

import (
	"context"
	"errors"
	"fmt"

	"supplychain/internal/adapters/out/postgres/pgerr"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRoleRepository implements RoleRepository using GORM.
type GormRoleRepository struct {
	db *gorm.DB
}

func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// Get returns the stored assignment, or an unassigned one when the principal has no row.
func (r *GormRoleRepository) Get(ctx context.Context, principal kernel.Principal) (*role.Assignment, error) {
	if err := principal.Validate(); err != nil {
		return nil, err
	}

	var dto RoleDTO
	err := r.db.WithContext(ctx).Where("principal = ?", principal.String()).First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return role.NewAssignment(principal)
		}
		return nil, err
	}
	return toDomain(dto)
}

// Add inserts the chosen role. The row is checked first so the transaction is not
// aborted by a failed insert.
func (r *GormRoleRepository) Add(ctx context.Context, assignment *role.Assignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}
	if !assignment.IsAssigned() {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s cannot be stored", assignment.Role()))
	}

	current, err := r.Get(ctx, assignment.Principal())
	if err != nil {
		return err
	}
	if current.IsAssigned() {
		return errs.NewAlreadyAssignedError(current.Principal().String(), current.Role().String())
	}

	dto := fromDomain(assignment)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewAlreadyAssignedErrorWithCause(dto.Principal, assignment.Role().String(), err)
		}
		return err
	}
	return nil
}
