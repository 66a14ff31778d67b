package orderrepo

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"gorm.io/gorm"

	"kioskhub/internal/core/domain/model/order"
	"kioskhub/internal/core/ports"
	"kioskhub/internal/pkg/errs"
)

const dialectPostgres = "postgres"

// GormOrderRepository implements ports.OrderRepository using GORM. When
// obtained through a unit of work after Begin, every method runs inside
// that transaction.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a repository on the given handle, which is
// either the shared connection or an open transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add persists the order and all of its lines. The caller is responsible
// for the surrounding transaction; partial inserts are rolled back with it.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	lineDTOs := linesFromDomain(dto.ID, aggregate.Lines())
	if err := r.db.WithContext(ctx).Create(&lineDTOs).Error; err != nil {
		return err
	}

	persisted, err := toDomain(dto, lineDTOs)
	if err != nil {
		return err
	}
	*aggregate = *persisted
	return nil
}

// GetLatestForKiosk retrieves the most recently created order for the
// kiosk. Creation order is decided by id, not timestamp, so simultaneous
// inserts tie-break deterministically. Lines are not loaded; duplicate
// suppression only inspects the order row.
func (r *GormOrderRepository) GetLatestForKiosk(ctx context.Context, kioskID int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Where("kiosk_id = ?", kioskID).
		Order("id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", kioskID)
		}
		return nil, err
	}

	return toDomain(dto, nil)
}

// ApplyPatch updates only the columns the patch carries, translated into a
// single UPDATE over the enumerated columns.
func (r *GormOrderRepository) ApplyPatch(ctx context.Context, id int64, patch ports.OrderPatch) error {
	if patch.IsEmpty() {
		return errs.NewValueIsRequiredError("fields to update")
	}

	record := goqu.Record{}
	if patch.Status != nil {
		record["status"] = patch.Status.String()
	}
	if patch.SurveyResponse != nil {
		value, err := (*patch.SurveyResponse).Value()
		if err != nil {
			return err
		}
		record["survey_response"] = value
	}

	sql, args, err := goqu.Dialect(dialectPostgres).
		Update("orders").
		Set(record).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(sql, args...)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}
	return nil
}

// Delete removes the order's lines and then the order itself. The line
// delete affecting zero rows says nothing about existence, so absence is
// decided by the order delete.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id).
		Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}
	return nil
}
