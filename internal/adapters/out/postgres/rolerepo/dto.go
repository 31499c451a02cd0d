package rolerepo

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/role"
)

// RoleDTO is one row per principal that chose a role. Unassigned principals have no row.
type RoleDTO struct {
	Principal  string    `gorm:"primaryKey;size:256"`
	Role       int       `gorm:"not null"`
	AssignedAt time.Time `gorm:"autoCreateTime"`
}

func (RoleDTO) TableName() string {
	return "roles"
}

func fromDomain(a *role.Assignment) RoleDTO {
	return RoleDTO{
		Principal: a.Principal().String(),
		Role:      int(a.Role()),
	}
}

func toDomain(dto RoleDTO) (*role.Assignment, error) {
	principal, err := kernel.NewPrincipal(dto.Principal)
	if err != nil {
		return nil, err
	}
	return role.RestoreAssignment(principal, role.Role(dto.Role))
}
