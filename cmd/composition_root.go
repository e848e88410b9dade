package cmd

import (
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// defaultPendingOrderTTL bounds how long a network order may sit unclaimed
// before the expiry sweep cancels it.
const defaultPendingOrderTTL = 30 * time.Minute

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	config     Config
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		config:     config,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePublishLocationCommandHandler() commands.PublishLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPublishLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRunnerCommandHandler() commands.CreateRunnerCommandHandler {
	var f commands.RunnerUoWFactory = FuncRunnerUoWFactory(func() commands.RunnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRunnerCommandHandler(f)
}

func (c *CompositionRoot) CreateSetRunnerAvailabilityCommandHandler() commands.SetRunnerAvailabilityCommandHandler {
	var f commands.RunnerUoWFactory = FuncRunnerUoWFactory(func() commands.RunnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRunnerAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() commands.ExpirePendingOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpirePendingOrdersCommandHandler(f, c.pendingOrderTTL())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClaimableOrdersQueryHandler() queries.GetClaimableOrdersQueryHandler {
	return queries.NewGetClaimableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTimelineQueryHandler() queries.GetOrderTimelineQueryHandler {
	return queries.NewGetOrderTimelineQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllRunnersQueryHandler() queries.GetAllRunnersQueryHandler {
	return queries.NewGetAllRunnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderLocationQueryHandler() queries.GetOrderLocationQueryHandler {
	return queries.NewGetOrderLocationQueryHandler(&c.uowFactory)
}

func (c *CompositionRoot) pendingOrderTTL() time.Duration {
	ttl, err := time.ParseDuration(c.config.PendingOrderTTL)
	if err != nil || ttl <= 0 {
		return defaultPendingOrderTTL
	}
	return ttl
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRunnerUoWFactory func() commands.RunnerUoW

func (f FuncRunnerUoWFactory) Create() commands.RunnerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}
