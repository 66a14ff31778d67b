package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kioskhub/internal/core/application/usecases/commands"
	"kioskhub/internal/core/application/usecases/queries"
	"kioskhub/internal/core/domain/model/kernel"
)

type createItemRequest struct {
	Slug        string `json:"slug"`
	KioskType   string `json:"kiosk_type"`
	ItemType    string `json:"item_type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

type updateItemRequest struct {
	Slug        *string `json:"slug"`
	ItemType    *string `json:"item_type"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type itemResponse struct {
	Item *queries.ItemView `json:"item"`
}

type itemsResponse struct {
	Items []queries.ItemView `json:"items"`
}

// ListItems handles GET /items.
func (s *Server) ListItems(c echo.Context) error {
	return s.listItems(c, "", false)
}

// ListAvailableItems handles GET /items/available.
func (s *Server) ListAvailableItems(c echo.Context) error {
	return s.listItems(c, "", true)
}

// ListItemsByKioskType handles GET /items/kiosk/:type.
func (s *Server) ListItemsByKioskType(c echo.Context) error {
	return s.listItems(c, c.Param("type"), false)
}

func (s *Server) listItems(c echo.Context, kioskType string, availableOnly bool) error {
	query, err := queries.NewListItemsQuery(kioskType, c.QueryParam("item_type"), availableOnly)
	if err != nil {
		return err
	}

	views, err := s.queries.ListItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, itemsResponse{Items: views})
}

// GetItem handles GET /items/:ref, where ref is a numeric id or a slug.
func (s *Server) GetItem(c echo.Context) error {
	ref, err := kernel.ParseItemRef(c.Param("ref"))
	if err != nil {
		return err
	}

	query, err := queries.NewGetItemQuery(ref)
	if err != nil {
		return err
	}

	view, err := s.queries.GetItem.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, itemResponse{Item: view})
}

// CreateItem handles POST /items.
func (s *Server) CreateItem(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateItemCommand(
		req.Slug, req.KioskType, req.ItemType, req.Name, req.Description, req.Available,
	)
	if err != nil {
		return err
	}

	item, err := s.commands.CreateItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, itemResponse{Item: &queries.ItemView{
		ID:          item.ID(),
		Slug:        item.Slug(),
		KioskType:   item.KioskType().String(),
		ItemType:    item.ItemType().String(),
		Name:        item.Name(),
		Description: item.Description(),
		Available:   item.Available(),
		CreatedAt:   item.CreatedAt(),
	}})
}

// UpdateItem handles PATCH /items/:ref. The kiosk type of an item is fixed
// after creation; only the listed fields can change.
func (s *Server) UpdateItem(c echo.Context) error {
	ref, err := kernel.ParseItemRef(c.Param("ref"))
	if err != nil {
		return err
	}

	var req updateItemRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateItemCommand(
		ref, req.Slug, req.Name, req.Description, req.Available, req.ItemType,
	)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	query, err := queries.NewGetItemQuery(ref)
	if err != nil {
		return err
	}
	view, err := s.queries.GetItem.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, itemResponse{Item: view})
}

// DeleteItem handles DELETE /items/:ref.
func (s *Server) DeleteItem(c echo.Context) error {
	ref, err := kernel.ParseItemRef(c.Param("ref"))
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteItemCommand(ref)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"message": "item deleted", "ref": ref.String()})
}
