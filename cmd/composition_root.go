package cmd

import (
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.AccessPolicy
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewAccessPolicy(configs.RoleNames()),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateStartCookingCommandHandler() commands.StartCookingCommandHandler {
	return commands.NewStartCookingCommandHandler(c.fulfillmentUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	return commands.NewMarkOrderReadyCommandHandler(c.fulfillmentUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateMarkOrderServedCommandHandler() commands.MarkOrderServedCommandHandler {
	return commands.NewMarkOrderServedCommandHandler(c.fulfillmentUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	return commands.NewProcessPaymentCommandHandler(c.fulfillmentUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.cleanupUoWFactory())
}

func (c *CompositionRoot) CreateDeleteAllOrdersCommandHandler() commands.DeleteAllOrdersCommandHandler {
	return commands.NewDeleteAllOrdersCommandHandler(c.cleanupUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRoleCommandHandler() commands.CreateRoleCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentQueryHandler() queries.GetPaymentQueryHandler {
	return queries.NewGetPaymentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentByOrderQueryHandler() queries.GetPaymentByOrderQueryHandler {
	return queries.NewGetPaymentByOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllPaymentsQueryHandler() queries.GetAllPaymentsQueryHandler {
	return queries.NewGetAllPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentsByStatusQueryHandler() queries.GetPaymentsByStatusQueryHandler {
	return queries.NewGetPaymentsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllMenuItemsQueryHandler() queries.GetAllMenuItemsQueryHandler {
	return queries.NewGetAllMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockMenuItemsQueryHandler() queries.GetLowStockMenuItemsQueryHandler {
	return queries.NewGetLowStockMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllRolesQueryHandler() queries.GetAllRolesQueryHandler {
	return queries.NewGetAllRolesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) fulfillmentUoWFactory() commands.FulfillmentUoWFactory {
	return FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cleanupUoWFactory() commands.CleanupUoWFactory {
	return FuncCleanupUoWFactory(func() commands.CleanupUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncCleanupUoWFactory func() commands.CleanupUoW

func (f FuncCleanupUoWFactory) Create() commands.CleanupUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}
