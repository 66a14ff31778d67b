// Package http is the inbound HTTP adapter: echo handlers over the command
// and query handlers, the maintenance gate, and the error taxonomy mapping.
package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kioskhub/internal/core/application/maintenance"
	"kioskhub/internal/core/application/usecases/commands"
	"kioskhub/internal/core/application/usecases/queries"
	"kioskhub/internal/pkg/errs"
)

// CommandHandlers groups the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	DeleteOrder commands.DeleteOrderCommandHandler
	CreateItem  commands.CreateItemCommandHandler
	UpdateItem  commands.UpdateItemCommandHandler
	DeleteItem  commands.DeleteItemCommandHandler
	CreateKiosk commands.CreateKioskCommandHandler
	UpdateKiosk commands.UpdateKioskCommandHandler
	DeleteKiosk commands.DeleteKioskCommandHandler
}

// QueryHandlers groups the read-side handlers the server dispatches to.
type QueryHandlers struct {
	GetOrders         queries.GetOrdersQueryHandler
	GetOrdersByStatus queries.GetOrdersByStatusQueryHandler
	GetOrderByID      queries.GetOrderByIDQueryHandler
	ListItems         queries.ListItemsQueryHandler
	GetItem           queries.GetItemQueryHandler
	ListKiosks        queries.ListKiosksQueryHandler
	GetKiosk          queries.GetKioskQueryHandler
}

// ServiceInfo is what the root endpoint reports.
type ServiceInfo struct {
	Name        string
	Version     string
	Environment string
}

// Server wires the HTTP surface to the application layer.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	sw       *maintenance.Switch
	info     ServiceInfo
}

// NewServer creates the HTTP server facade.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	sw *maintenance.Switch,
	info ServiceInfo,
) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		sw:       sw,
		info:     info,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.Root)

	e.GET("/maintenance", s.GetMaintenance)
	e.POST("/maintenance", s.SetMaintenance)

	e.GET("/orders", s.ListOrders)
	e.GET("/orders/status/:status", s.ListOrdersByStatus)
	e.GET("/orders/:id", s.GetOrder)
	e.POST("/orders", s.CreateOrder)
	e.PATCH("/orders/:id", s.UpdateOrder)
	e.DELETE("/orders/:id", s.DeleteOrder)

	e.GET("/items", s.ListItems)
	e.GET("/items/available", s.ListAvailableItems)
	e.GET("/items/kiosk/:type", s.ListItemsByKioskType)
	e.GET("/items/:ref", s.GetItem)
	e.POST("/items", s.CreateItem)
	e.PATCH("/items/:ref", s.UpdateItem)
	e.DELETE("/items/:ref", s.DeleteItem)

	e.GET("/kiosks", s.ListKiosks)
	e.GET("/kiosks/:id", s.GetKiosk)
	e.POST("/kiosks", s.CreateKiosk)
	e.PATCH("/kiosks/:id", s.UpdateKiosk)
	e.DELETE("/kiosks/:id", s.DeleteKiosk)
}

// Root handles GET / with basic service info.
func (s *Server) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"name":        s.info.Name,
		"version":     s.info.Version,
		"environment": s.info.Environment,
		"status":      "ok",
	})
}

// pathID parses a numeric path parameter. Non-numeric values are client
// errors, distinct from the 404 a missing record produces.
func pathID(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
