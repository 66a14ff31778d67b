package queries

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"kioskhub/internal/pkg/errs"
)

// GetItemQueryHandler fetches one catalog item by id or slug.
type GetItemQueryHandler struct {
	dbProvider DBProvider
}

// NewGetItemQueryHandler creates a handler for single-item reads.
func NewGetItemQueryHandler(dbProvider DBProvider) GetItemQueryHandler {
	return GetItemQueryHandler{dbProvider: dbProvider}
}

// Handle executes the query. Returns ObjectNotFound when the reference does
// not resolve.
func (h GetItemQueryHandler) Handle(
	ctx context.Context, query GetItemQuery,
) (*ItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db, err := h.dbProvider.DB()
	if err != nil {
		return nil, err
	}

	var condition goqu.Expression
	if query.Ref().BySlug() {
		condition = goqu.C("slug").Eq(query.Ref().Slug())
	} else {
		condition = goqu.C("id").Eq(query.Ref().ID())
	}

	sql, args, err := goqu.Dialect(dialectPostgres).
		From("items").
		Select("id", "slug", "kiosk_type", "item_type", "name", "description", "available", "created_at").
		Where(condition).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []itemRow
	if err = db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("item", query.Ref().String())
	}

	row := rows[0]
	return &ItemView{
		ID:          row.ID,
		Slug:        row.Slug,
		KioskType:   row.KioskType,
		ItemType:    row.ItemType,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		CreatedAt:   row.CreatedAt,
	}, nil
}
