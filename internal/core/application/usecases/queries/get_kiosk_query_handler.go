package queries

import (
	"context"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"gorm.io/gorm"

	"kioskhub/internal/core/domain/model/catalog"
	"kioskhub/internal/core/domain/model/order"
	"kioskhub/internal/pkg/errs"
)

type kioskRow struct {
	ID            int64
	KioskType     string
	Role          string
	Enabled       bool
	Nickname      string
	AppVersion    string
	AppPlatform   string
	ClientKioskID *int64
	CreatedAt     time.Time
}

// GetKioskQueryHandler fetches a kiosk and resolves its current order: the
// oldest pending order of the kiosk it services that holds at least one
// item of the kiosk's type. A fulfill-role kiosk
// services its bound client kiosk, every other role services itself. Only
// lines whose item matches the viewing kiosk's type are attached, so a
// juice station paired with a sweet station sees just its half of a shared
// order.
type GetKioskQueryHandler struct {
	dbProvider DBProvider
}

// NewGetKioskQueryHandler creates a handler for single-kiosk reads.
func NewGetKioskQueryHandler(dbProvider DBProvider) GetKioskQueryHandler {
	return GetKioskQueryHandler{dbProvider: dbProvider}
}

// Handle executes the query. Returns ObjectNotFound when the kiosk does not
// exist; a kiosk with no pending work comes back with a nil CurrentOrder.
func (h GetKioskQueryHandler) Handle(
	ctx context.Context, query GetKioskQuery,
) (*KioskView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db, err := h.dbProvider.DB()
	if err != nil {
		return nil, err
	}

	var row kioskRow
	err = db.WithContext(ctx).Raw(`
		SELECT
			id,
			kiosk_type,
			role,
			enabled,
			nickname,
			app_version,
			app_platform,
			client_kiosk_id,
			created_at
		FROM kiosks
		WHERE id = ?
	`, query.KioskID()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("kiosk", query.KioskID())
		}
		return nil, err
	}

	view := &KioskView{
		ID:            row.ID,
		KioskType:     row.KioskType,
		Role:          row.Role,
		Enabled:       row.Enabled,
		Nickname:      row.Nickname,
		AppVersion:    row.AppVersion,
		AppPlatform:   row.AppPlatform,
		ClientKioskID: row.ClientKioskID,
		CreatedAt:     row.CreatedAt,
	}

	scopeKioskID := row.ID
	if row.Role == catalog.RoleFulfill.String() && row.ClientKioskID != nil {
		scopeKioskID = *row.ClientKioskID
	}

	// An order only counts as this kiosk's work when at least one of its
	// lines is an item of the kiosk's type; a pending order holding only the
	// other station's items must not block the queue.
	hasMatchingItem := goqu.L(
		"EXISTS (SELECT 1 FROM order_items oi JOIN items i ON i.id = oi.item_id"+
			" WHERE oi.order_id = orders.id AND i.kiosk_type = ?)",
		row.KioskType,
	)
	dataset := baseOrderSelect().
		Where(
			goqu.C("kiosk_id").Eq(scopeKioskID),
			goqu.C("status").Eq(order.Pending.String()),
			hasMatchingItem,
		).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Limit(1)

	current, err := selectOrders(ctx, db, dataset, goqu.I("i.kiosk_type").Eq(row.KioskType))
	if err != nil {
		return nil, err
	}
	if len(current) > 0 {
		view.CurrentOrder = &current[0]
	}
	return view, nil
}
