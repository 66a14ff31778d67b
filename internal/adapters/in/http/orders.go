package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kioskhub/internal/core/application/usecases/commands"
	"kioskhub/internal/core/application/usecases/queries"
	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/pkg/errs"
)

type createOrderLineRequest struct {
	ID             kernel.ItemRef  `json:"id"`
	Customizations json.RawMessage `json:"customizations"`
}

type createOrderRequest struct {
	KioskID     int64                    `json:"kiosk_id"`
	Status      string                   `json:"status"`
	UserProfile json.RawMessage          `json:"user_profile"`
	Items       []createOrderLineRequest `json:"items"`
}

type updateOrderRequest struct {
	Status         *string         `json:"status"`
	SurveyResponse json.RawMessage `json:"survey_response"`
}

type orderResponse struct {
	Order *queries.OrderView `json:"order"`
}

type ordersResponse struct {
	Orders []queries.OrderView `json:"orders"`
}

// CreateOrder handles POST /orders. A request repeating the kiosk's latest
// order inside the suppression window gets that order back instead of a new
// one.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	profile, err := kernel.ParseDocument("user_profile", req.UserProfile)
	if err != nil {
		return err
	}

	lines := make([]commands.LineInput, 0, len(req.Items))
	for _, item := range req.Items {
		customizations, parseErr := kernel.ParseDocument("customizations", item.Customizations)
		if parseErr != nil {
			return parseErr
		}
		lines = append(lines, commands.LineInput{Ref: item.ID, Customizations: customizations})
	}

	cmd, err := commands.NewCreateOrderCommand(req.KioskID, req.Status, profile, lines)
	if err != nil {
		return err
	}

	result, err := s.commands.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	view, err := s.fetchOrder(c, result.OrderID)
	if err != nil {
		return err
	}

	// A suppressed retry answers exactly like the first submission; the
	// kiosk client cannot tell it resubmitted.
	return c.JSON(http.StatusCreated, orderResponse{Order: view})
}

// ListOrders handles GET /orders with the latest, user, and kiosk_type
// filters.
func (s *Server) ListOrders(c echo.Context) error {
	latest, err := latestParam(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrdersQuery(latest, c.QueryParam("user"), c.QueryParam("kiosk_type"))
	if err != nil {
		return err
	}

	views, err := s.queries.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ordersResponse{Orders: views})
}

// ListOrdersByStatus handles GET /orders/status/:status with an optional
// latest cap.
func (s *Server) ListOrdersByStatus(c echo.Context) error {
	latest, err := latestParam(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrdersByStatusQuery(c.Param("status"), latest)
	if err != nil {
		return err
	}

	views, err := s.queries.GetOrdersByStatus.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ordersResponse{Orders: views})
}

// GetOrder handles GET /orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	view, err := s.fetchOrder(c, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderResponse{Order: view})
}

// UpdateOrder handles PATCH /orders/:id.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateOrderRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	var survey *kernel.Document
	if len(req.SurveyResponse) > 0 {
		doc, parseErr := kernel.ParseDocument("survey_response", req.SurveyResponse)
		if parseErr != nil {
			return parseErr
		}
		survey = &doc
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.Status, survey)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	view, err := s.fetchOrder(c, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderResponse{Order: view})
}

// DeleteOrder handles DELETE /orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"message": "order deleted", "id": id})
}

func (s *Server) fetchOrder(c echo.Context, id int64) (*queries.OrderView, error) {
	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return nil, err
	}
	return s.queries.GetOrderByID.Handle(c.Request().Context(), query)
}

// latestParam parses the optional latest query parameter. Present means a
// positive cap; anything else is a client error.
func latestParam(c echo.Context) (int, error) {
	raw := c.QueryParam("latest")
	if raw == "" {
		return 0, nil
	}

	latest, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("latest", err)
	}
	if latest < 1 {
		return 0, errs.NewValueIsOutOfRangeError("latest", latest, 1, nil)
	}
	return latest, nil
}
