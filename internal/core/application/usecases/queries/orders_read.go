package queries

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"gorm.io/gorm"

	"kioskhub/internal/core/domain/model/kernel"
)

const dialectPostgres = "postgres"

type orderRow struct {
	ID             int64
	KioskID        int64
	KioskType      string
	Status         string
	UserProfile    kernel.Document
	SurveyResponse kernel.Document
	CreatedAt      time.Time
}

type orderItemRow struct {
	ID             int64
	OrderID        int64
	ItemID         int64
	Customizations kernel.Document
	Slug           *string
	Name           *string
	Description    *string
	Available      *bool
}

// selectOrders runs the given order select and hydrates each row's lines
// with their catalog fields. An extra item condition narrows which lines are
// attached, which the kiosk query uses to scope lines to its own type.
func selectOrders(
	ctx context.Context,
	db *gorm.DB,
	dataset *goqu.SelectDataset,
	itemConditions ...goqu.Expression,
) ([]OrderView, error) {
	sql, args, err := dataset.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []orderRow
	if err = db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []OrderView{}, nil
	}

	orderIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		orderIDs = append(orderIDs, row.ID)
	}

	itemsByOrder, err := selectOrderItems(ctx, db, orderIDs, itemConditions...)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		items := itemsByOrder[row.ID]
		if items == nil {
			items = []OrderItemView{}
		}
		views = append(views, OrderView{
			ID:             row.ID,
			KioskID:        row.KioskID,
			KioskType:      row.KioskType,
			Status:         row.Status,
			UserProfile:    row.UserProfile,
			SurveyResponse: row.SurveyResponse,
			CreatedAt:      row.CreatedAt,
			Items:          items,
		})
	}
	return views, nil
}

// selectOrderItems loads the lines for a set of orders, joined with their
// catalog entries. The join is left-sided: lines outlive deleted items.
func selectOrderItems(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []int64,
	conditions ...goqu.Expression,
) (map[int64][]OrderItemView, error) {
	dataset := goqu.Dialect(dialectPostgres).
		From(goqu.T("order_items").As("oi")).
		Select(
			goqu.I("oi.id"),
			goqu.I("oi.order_id"),
			goqu.I("oi.item_id"),
			goqu.I("oi.customizations"),
			goqu.I("i.slug"),
			goqu.I("i.name"),
			goqu.I("i.description"),
			goqu.I("i.available"),
		).
		LeftJoin(goqu.T("items").As("i"), goqu.On(goqu.I("oi.item_id").Eq(goqu.I("i.id")))).
		Where(goqu.I("oi.order_id").In(orderIDs)).
		Order(goqu.I("oi.id").Asc())
	if len(conditions) > 0 {
		dataset = dataset.Where(conditions...)
	}

	sql, args, err := dataset.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []orderItemRow
	if err = db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	itemsByOrder := make(map[int64][]OrderItemView, len(orderIDs))
	for _, row := range rows {
		view := OrderItemView{
			ID:             row.ID,
			ItemID:         row.ItemID,
			Customizations: row.Customizations,
		}
		if row.Slug != nil {
			view.Slug = *row.Slug
		}
		if row.Name != nil {
			view.Name = *row.Name
		}
		if row.Description != nil {
			view.Description = *row.Description
		}
		if row.Available != nil {
			view.Available = *row.Available
		}
		itemsByOrder[row.OrderID] = append(itemsByOrder[row.OrderID], view)
	}
	return itemsByOrder, nil
}

// baseOrderSelect is the shared projection for order reads.
func baseOrderSelect() *goqu.SelectDataset {
	return goqu.Dialect(dialectPostgres).
		From("orders").
		Select("id", "kiosk_id", "kiosk_type", "status", "user_profile", "survey_response", "created_at")
}
