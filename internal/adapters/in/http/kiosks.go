package http

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"kioskhub/internal/core/application/usecases/commands"
	"kioskhub/internal/core/application/usecases/queries"
	"kioskhub/internal/pkg/errs"
)

type createKioskRequest struct {
	KioskType     string `json:"kiosk_type"`
	Role          string `json:"role"`
	Enabled       *bool  `json:"enabled"`
	Nickname      string `json:"nickname"`
	AppVersion    string `json:"app_version"`
	AppPlatform   string `json:"app_platform"`
	ClientKioskID *int64 `json:"client_kiosk_id"`
}

// enabled defaults a freshly registered kiosk to active.
func (r createKioskRequest) enabled() bool {
	if r.Enabled == nil {
		return true
	}
	return *r.Enabled
}

type updateKioskRequest struct {
	KioskType   *string `json:"kiosk_type"`
	Role        *string `json:"role"`
	Enabled     *bool   `json:"enabled"`
	Nickname    *string `json:"nickname"`
	AppVersion  *string `json:"app_version"`
	AppPlatform *string `json:"app_platform"`
	// RawMessage keeps "absent", "null", and a number distinguishable, so a
	// PATCH can clear the binding without every PATCH clearing it.
	ClientKioskID json.RawMessage `json:"client_kiosk_id"`
}

type kioskResponse struct {
	Kiosk *queries.KioskView `json:"kiosk"`
}

type kioskWithOrderResponse struct {
	Kiosk        *queries.KioskView `json:"kiosk"`
	CurrentOrder *queries.OrderView `json:"currentOrder"`
}

type kiosksResponse struct {
	Kiosks []queries.KioskView `json:"kiosks"`
}

// ListKiosks handles GET /kiosks.
func (s *Server) ListKiosks(c echo.Context) error {
	views, err := s.queries.ListKiosks.Handle(c.Request().Context(), queries.NewListKiosksQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, kiosksResponse{Kiosks: views})
}

// GetKiosk handles GET /kiosks/:id. The response carries the kiosk's current
// order alongside the kiosk itself, null when the queue is empty.
func (s *Server) GetKiosk(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetKioskQuery(id)
	if err != nil {
		return err
	}

	view, err := s.queries.GetKiosk.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	current := view.CurrentOrder
	view.CurrentOrder = nil
	return c.JSON(http.StatusOK, kioskWithOrderResponse{Kiosk: view, CurrentOrder: current})
}

// CreateKiosk handles POST /kiosks.
func (s *Server) CreateKiosk(c echo.Context) error {
	var req createKioskRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateKioskCommand(
		req.KioskType, req.Role, req.enabled(),
		req.Nickname, req.AppVersion, req.AppPlatform,
		req.ClientKioskID,
	)
	if err != nil {
		return err
	}

	kiosk, err := s.commands.CreateKiosk.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, kioskResponse{Kiosk: &queries.KioskView{
		ID:            kiosk.ID(),
		KioskType:     kiosk.KioskType().String(),
		Role:          kiosk.Role().String(),
		Enabled:       kiosk.Enabled(),
		Nickname:      kiosk.Nickname(),
		AppVersion:    kiosk.AppVersion(),
		AppPlatform:   kiosk.AppPlatform(),
		ClientKioskID: kiosk.ClientKioskID(),
		CreatedAt:     kiosk.CreatedAt(),
	}})
}

// UpdateKiosk handles PATCH /kiosks/:id.
func (s *Server) UpdateKiosk(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateKioskRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	clientKioskID, clientKioskIDSet, err := parseClientKioskID(req.ClientKioskID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateKioskCommand(
		id,
		req.KioskType, req.Role, req.Enabled,
		req.Nickname, req.AppVersion, req.AppPlatform,
		clientKioskID, clientKioskIDSet,
	)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateKiosk.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	query, err := queries.NewGetKioskQuery(id)
	if err != nil {
		return err
	}
	view, err := s.queries.GetKiosk.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	view.CurrentOrder = nil
	return c.JSON(http.StatusOK, kioskResponse{Kiosk: view})
}

// DeleteKiosk handles DELETE /kiosks/:id.
func (s *Server) DeleteKiosk(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteKioskCommand(id)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteKiosk.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"message": "kiosk deleted", "id": id})
}

func parseClientKioskID(raw json.RawMessage) (*int64, bool, error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	if string(raw) == "null" {
		return nil, true, nil
	}

	var id int64
	if err := wireJSON.Unmarshal(raw, &id); err != nil {
		return nil, false, errs.NewValueIsInvalidErrorWithCause("client_kiosk_id", err)
	}
	return &id, true, nil
}
