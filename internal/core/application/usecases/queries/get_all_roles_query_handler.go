package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllRolesQueryHandler retrieves the role directory from the database.
type GetAllRolesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRolesQueryHandler creates a handler for role queries.
func NewGetAllRolesQueryHandler(db *gorm.DB) GetAllRolesQueryHandler {
	return GetAllRolesQueryHandler{db: db}
}

// Handle executes the query, returning roles ordered by name.
func (h GetAllRolesQueryHandler) Handle(ctx context.Context, query GetAllRolesQuery) ([]RoleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	roles := make([]RoleResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM roles
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string

		if err = rows.Scan(&id, &name); err != nil {
			return nil, err
		}

		roleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		roles = append(roles, RoleResponse{ID: roleID, Name: name})
	}

	return roles, rows.Err()
}
