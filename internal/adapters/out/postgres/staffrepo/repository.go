package staffrepo

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements StaffRepository using GORM.
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// GetUser retrieves a user by ID.
func (r *GormStaffRepository) GetUser(ctx context.Context, id kernel.UUID) (*staff.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return userToDomain(dto)
}

// AddUser saves a new user to the database.
func (r *GormStaffRepository) AddUser(ctx context.Context, user *staff.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(user)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetRoleByName retrieves a role by its unique name.
func (r *GormStaffRepository) GetRoleByName(ctx context.Context, name string) (*staff.Role, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto RoleDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("role", name)
		}
		return nil, err
	}

	return roleToDomain(dto)
}

// AddRole saves a new role to the database. Role names are unique.
func (r *GormStaffRepository) AddRole(ctx context.Context, role *staff.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&RoleDTO{}).Where("name = ?", role.Name()).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewStateConflictError("role", fmt.Sprintf("role %s already exists", role.Name()))
	}

	dto := roleFromDomain(role)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllRoles retrieves every role ordered by name.
func (r *GormStaffRepository) GetAllRoles(ctx context.Context) ([]*staff.Role, error) {
	var dtos []RoleDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	roles := make([]*staff.Role, 0, len(dtos))
	for _, dto := range dtos {
		role, err := roleToDomain(dto)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	return roles, nil
}
