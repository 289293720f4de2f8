// Package menurepo provides persistence for menu items and their stock
// counters. Stock mutation goes through conditional single-statement updates
// so that concurrent reservations cannot oversell an item.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"uniqueIndex"`
	Price         float64
	StockQuantity int
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item to its database representation.
func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:            item.ID().Bytes(),
		Name:          item.Name(),
		Price:         item.Price(),
		StockQuantity: item.StockQuantity(),
	}
}

// toDomain converts a database DTO to a menu item.
func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, dto.Name, dto.Price, dto.StockQuantity)
}
