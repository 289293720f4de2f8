package cmd

import (
	"fmt"

	"restaurant/internal/core/domain/services"
)

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	WaiterRoleName    string
	ChefRoleName      string
	CashierRoleName   string
	LowStockThreshold int
	LowStockSchedule  string
}

// RoleNames returns the configured role names, falling back to the
// conventional defaults for any name left empty.
func (c Config) RoleNames() services.RoleNames {
	names := services.DefaultRoleNames()
	if c.WaiterRoleName != "" {
		names.Waiter = c.WaiterRoleName
	}
	if c.ChefRoleName != "" {
		names.Chef = c.ChefRoleName
	}
	if c.CashierRoleName != "" {
		names.Cashier = c.CashierRoleName
	}
	return names
}

// DSN builds the postgres connection string for GORM.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
