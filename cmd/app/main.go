package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"restaurant/cmd"
	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/paymentrepo"
	"restaurant/internal/adapters/out/postgres/staffrepo"
	"restaurant/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateGetLowStockMenuItemsQueryHandler(),
		configs.LowStockThreshold,
		configs.LowStockSchedule,
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		WaiterRoleName:    goDotEnvVariable("WAITER_ROLE_NAME"),
		ChefRoleName:      goDotEnvVariable("CHEF_ROLE_NAME"),
		CashierRoleName:   goDotEnvVariable("CASHIER_ROLE_NAME"),
		LowStockThreshold: goDotEnvIntVariable("LOW_STOCK_THRESHOLD", 5),
		LowStockSchedule:  goDotEnvVariable("LOW_STOCK_SCHEDULE"),
	}
	if config.LowStockSchedule == "" {
		config.LowStockSchedule = "0 * * * * *"
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string, fallback int) int {
	value := goDotEnvVariable(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return parsed
}

func migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&menurepo.MenuItemDTO{},
		&paymentrepo.PaymentDTO{},
		&staffrepo.UserDTO{},
		&staffrepo.RoleDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateStartCookingCommandHandler(),
		app.CreateMarkOrderReadyCommandHandler(),
		app.CreateMarkOrderServedCommandHandler(),
		app.CreateProcessPaymentCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateDeleteAllOrdersCommandHandler(),
		app.CreateCreateMenuItemCommandHandler(),
		app.CreateCreateRoleCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
		app.CreateGetPaymentQueryHandler(),
		app.CreateGetPaymentByOrderQueryHandler(),
		app.CreateGetAllPaymentsQueryHandler(),
		app.CreateGetPaymentsByStatusQueryHandler(),
		app.CreateGetAllMenuItemsQueryHandler(),
		app.CreateGetLowStockMenuItemsQueryHandler(),
		app.CreateGetAllRolesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
