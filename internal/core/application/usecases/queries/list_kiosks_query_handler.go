package queries

import (
	"context"
)

// ListKiosksQueryHandler lists the kiosk directory for the admin surface.
type ListKiosksQueryHandler struct {
	dbProvider DBProvider
}

// NewListKiosksQueryHandler creates a handler for kiosk listing.
func NewListKiosksQueryHandler(dbProvider DBProvider) ListKiosksQueryHandler {
	return ListKiosksQueryHandler{dbProvider: dbProvider}
}

// Handle executes the query. Current orders are not resolved here; that is
// the single-kiosk query's job.
func (h ListKiosksQueryHandler) Handle(
	ctx context.Context, query ListKiosksQuery,
) ([]KioskView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db, err := h.dbProvider.DB()
	if err != nil {
		return nil, err
	}

	var rows []kioskRow
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
		ORDER BY id
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]KioskView, 0, len(rows))
	for _, row := range rows {
		views = append(views, KioskView{
			ID:            row.ID,
			KioskType:     row.KioskType,
			Role:          row.Role,
			Enabled:       row.Enabled,
			Nickname:      row.Nickname,
			AppVersion:    row.AppVersion,
			AppPlatform:   row.AppPlatform,
			ClientKioskID: row.ClientKioskID,
			CreatedAt:     row.CreatedAt,
		})
	}
	return views, nil
}
