package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kioskhub/internal/pkg/errs"
)

type maintenanceRequest struct {
	Enabled *bool `json:"enabled"`
}

type maintenanceResponse struct {
	Enabled bool `json:"enabled"`
}

// GetMaintenance handles GET /maintenance.
func (s *Server) GetMaintenance(c echo.Context) error {
	return c.JSON(http.StatusOK, maintenanceResponse{Enabled: s.sw.Enabled()})
}

// SetMaintenance handles POST /maintenance. Enabling severs the database
// pool; disabling reopens it.
func (s *Server) SetMaintenance(c echo.Context) error {
	var req maintenanceRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.Enabled == nil {
		return errs.NewValueIsRequiredError("enabled")
	}

	if err := s.sw.SetEnabled(*req.Enabled); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, maintenanceResponse{Enabled: s.sw.Enabled()})
}
