// Package cmd wires configuration and the object graph for the application
// binary.
package cmd

import (
	"log/slog"

	httpadapter "kioskhub/internal/adapters/in/http"
	"kioskhub/internal/adapters/out/postgres"
	"kioskhub/internal/core/application/maintenance"
	"kioskhub/internal/core/application/usecases/commands"
	"kioskhub/internal/core/application/usecases/queries"
	"kioskhub/internal/jobs"
)

// CompositionRoot builds every component of the application from the shared
// pool outward.
type CompositionRoot struct {
	cfg    Config
	pool   *postgres.Pool
	logger *slog.Logger
}

// NewCompositionRoot creates the root over an already-opened pool.
func NewCompositionRoot(cfg Config, pool *postgres.Pool, logger *slog.Logger) *CompositionRoot {
	return &CompositionRoot{cfg: cfg, pool: pool, logger: logger}
}

// MaintenanceSwitch creates the switch that severs and restores the pool.
func (c *CompositionRoot) MaintenanceSwitch() *maintenance.Switch {
	return maintenance.NewSwitch(c.pool, c.logger)
}

// JobManager creates the background job coordinator.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.pool, c.logger)
}

// Server creates the HTTP facade over all command and query handlers.
func (c *CompositionRoot) Server(sw *maintenance.Switch) *httpadapter.Server {
	uowFactory := postgres.NewGormUnitOfWorkFactory(c.pool)

	commandHandlers := httpadapter.CommandHandlers{
		CreateOrder: commands.NewCreateOrderCommandHandler(uowFactory),
		UpdateOrder: commands.NewUpdateOrderCommandHandler(uowFactory),
		DeleteOrder: commands.NewDeleteOrderCommandHandler(uowFactory),
		CreateItem:  commands.NewCreateItemCommandHandler(uowFactory),
		UpdateItem:  commands.NewUpdateItemCommandHandler(uowFactory),
		DeleteItem:  commands.NewDeleteItemCommandHandler(uowFactory),
		CreateKiosk: commands.NewCreateKioskCommandHandler(uowFactory),
		UpdateKiosk: commands.NewUpdateKioskCommandHandler(uowFactory),
		DeleteKiosk: commands.NewDeleteKioskCommandHandler(uowFactory),
	}

	queryHandlers := httpadapter.QueryHandlers{
		GetOrders:         queries.NewGetOrdersQueryHandler(c.pool),
		GetOrdersByStatus: queries.NewGetOrdersByStatusQueryHandler(c.pool),
		GetOrderByID:      queries.NewGetOrderByIDQueryHandler(c.pool),
		ListItems:         queries.NewListItemsQueryHandler(c.pool),
		GetItem:           queries.NewGetItemQueryHandler(c.pool),
		ListKiosks:        queries.NewListKiosksQueryHandler(c.pool),
		GetKiosk:          queries.NewGetKioskQueryHandler(c.pool),
	}

	info := httpadapter.ServiceInfo{
		Name:        c.cfg.AppName,
		Version:     c.cfg.AppVersion,
		Environment: c.cfg.Environment,
	}

	return httpadapter.NewServer(commandHandlers, queryHandlers, sw, info)
}
