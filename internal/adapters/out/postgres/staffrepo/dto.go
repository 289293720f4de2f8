// Package staffrepo provides persistence for the user/role directory used by
// authorization checks.
package staffrepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name   string
	RoleID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// RoleDTO represents the database structure for persisting roles.
type RoleDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for roles.
func (RoleDTO) TableName() string {
	return "roles"
}

// userFromDomain converts a user to its database representation.
func userFromDomain(user *staff.User) UserDTO {
	var roleID *uuid.UUID
	if id := user.RoleID(); id != nil {
		raw := id.Bytes()
		roleID = &raw
	}

	return UserDTO{
		ID:     user.ID().Bytes(),
		Name:   user.Name(),
		RoleID: roleID,
	}
}

// userToDomain converts a database DTO to a user.
func userToDomain(dto UserDTO) (*staff.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var roleID *kernel.UUID
	if dto.RoleID != nil {
		rID, roleErr := kernel.UUIDFromBytes((*dto.RoleID)[:])
		if roleErr != nil {
			return nil, roleErr
		}
		roleID = &rID
	}

	return staff.RestoreUser(id, dto.Name, roleID)
}

// roleFromDomain converts a role to its database representation.
func roleFromDomain(role *staff.Role) RoleDTO {
	return RoleDTO{
		ID:   role.ID().Bytes(),
		Name: role.Name(),
	}
}

// roleToDomain converts a database DTO to a role.
func roleToDomain(dto RoleDTO) (*staff.Role, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.RestoreRole(id, dto.Name)
}
