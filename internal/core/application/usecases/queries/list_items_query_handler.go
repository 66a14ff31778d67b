package queries

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
)

type itemRow struct {
	ID          int64
	Slug        string
	KioskType   string
	ItemType    string
	Name        string
	Description string
	Available   bool
	CreatedAt   time.Time
}

// ListItemsQueryHandler lists catalog items for menus and the admin surface.
type ListItemsQueryHandler struct {
	dbProvider DBProvider
}

// NewListItemsQueryHandler creates a handler for item listing.
func NewListItemsQueryHandler(dbProvider DBProvider) ListItemsQueryHandler {
	return ListItemsQueryHandler{dbProvider: dbProvider}
}

// Handle executes the query. Results are sorted by id for stable menus.
func (h ListItemsQueryHandler) Handle(
	ctx context.Context, query ListItemsQuery,
) ([]ItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db, err := h.dbProvider.DB()
	if err != nil {
		return nil, err
	}

	dataset := goqu.Dialect(dialectPostgres).
		From("items").
		Select("id", "slug", "kiosk_type", "item_type", "name", "description", "available", "created_at").
		Order(goqu.I("id").Asc())

	if query.KioskType() != "" {
		dataset = dataset.Where(goqu.C("kiosk_type").Eq(query.KioskType().String()))
	}
	if query.ItemType() != "" {
		dataset = dataset.Where(goqu.C("item_type").Eq(query.ItemType().String()))
	}
	if query.AvailableOnly() {
		dataset = dataset.Where(goqu.C("available").IsTrue())
	}

	sql, args, err := dataset.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []itemRow
	if err = db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]ItemView, 0, len(rows))
	for _, row := range rows {
		views = append(views, ItemView{
			ID:          row.ID,
			Slug:        row.Slug,
			KioskType:   row.KioskType,
			ItemType:    row.ItemType,
			Name:        row.Name,
			Description: row.Description,
			Available:   row.Available,
			CreatedAt:   row.CreatedAt,
		})
	}
	return views, nil
}
