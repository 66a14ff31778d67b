package catalogrepo

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"gorm.io/gorm"

	"kioskhub/internal/core/domain/model/catalog"
	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/core/ports"
	"kioskhub/internal/pkg/errs"
)

const dialectPostgres = "postgres"

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a repository on the given handle, which is
// either the shared connection or an open transaction.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// refCondition translates the dual-key item reference into a query scope.
func refCondition(query *gorm.DB, ref kernel.ItemRef) *gorm.DB {
	if ref.BySlug() {
		return query.Where("slug = ?", ref.Slug())
	}
	return query.Where("id = ?", ref.ID())
}

// ResolveItem fetches an item by slug or id, depending on the reference form.
func (r *GormCatalogRepository) ResolveItem(ctx context.Context, ref kernel.ItemRef) (*catalog.Item, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	err := refCondition(r.db.WithContext(ctx), ref).First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", ref.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// SlugTaken reports whether another item already holds the slug. The exclude
// reference, when constructed, removes the item being renamed from the check.
func (r *GormCatalogRepository) SlugTaken(ctx context.Context, slug string, exclude kernel.ItemRef) (bool, error) {
	query := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("slug = ?", slug)
	if exclude.Validate() == nil {
		if exclude.BySlug() {
			query = query.Where("slug <> ?", exclude.Slug())
		} else {
			query = query.Where("id <> ?", exclude.ID())
		}
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddItem persists a new catalog item and restores it with the generated id
// and creation timestamp.
func (r *GormCatalogRepository) AddItem(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	persisted, err := itemToDomain(dto)
	if err != nil {
		return err
	}
	*item = *persisted
	return nil
}

// PatchItem updates only the columns the patch carries.
func (r *GormCatalogRepository) PatchItem(ctx context.Context, ref kernel.ItemRef, patch ports.ItemPatch) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return errs.NewValueIsRequiredError("fields to update")
	}

	record := goqu.Record{}
	if patch.Slug != nil {
		record["slug"] = *patch.Slug
	}
	if patch.Name != nil {
		record["name"] = *patch.Name
	}
	if patch.Description != nil {
		record["description"] = *patch.Description
	}
	if patch.Available != nil {
		record["available"] = *patch.Available
	}
	if patch.ItemType != nil {
		record["item_type"] = patch.ItemType.String()
	}

	var condition goqu.Expression
	if ref.BySlug() {
		condition = goqu.C("slug").Eq(ref.Slug())
	} else {
		condition = goqu.C("id").Eq(ref.ID())
	}

	sql, args, err := goqu.Dialect(dialectPostgres).
		Update("items").
		Set(record).
		Where(condition).
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
		return errs.NewObjectNotFoundError("item", ref.String())
	}
	return nil
}

// DeleteItem removes the referenced item.
func (r *GormCatalogRepository) DeleteItem(ctx context.Context, ref kernel.ItemRef) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	result := refCondition(r.db.WithContext(ctx), ref).Delete(&ItemDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", ref.String())
	}
	return nil
}

// GetKiosk fetches a kiosk by id.
func (r *GormCatalogRepository) GetKiosk(ctx context.Context, id int64) (*catalog.Kiosk, error) {
	var dto KioskDTO
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("kiosk", id)
		}
		return nil, err
	}

	return kioskToDomain(dto)
}

// KioskExists reports whether a kiosk with the given id is stored.
func (r *GormCatalogRepository) KioskExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&KioskDTO{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddKiosk persists a new kiosk and restores it with the generated id and
// creation timestamp.
func (r *GormCatalogRepository) AddKiosk(ctx context.Context, kiosk *catalog.Kiosk) error {
	if err := kiosk.Validate(); err != nil {
		return err
	}

	dto := kioskFromDomain(kiosk)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	persisted, err := kioskToDomain(dto)
	if err != nil {
		return err
	}
	*kiosk = *persisted
	return nil
}

// PatchKiosk updates only the columns the patch carries. The client kiosk
// binding is tri-state, so it is driven by ClientKioskIDSet rather than nil.
func (r *GormCatalogRepository) PatchKiosk(ctx context.Context, id int64, patch ports.KioskPatch) error {
	if patch.IsEmpty() {
		return errs.NewValueIsRequiredError("fields to update")
	}

	record := goqu.Record{}
	if patch.KioskType != nil {
		record["kiosk_type"] = patch.KioskType.String()
	}
	if patch.Role != nil {
		record["role"] = patch.Role.String()
	}
	if patch.Enabled != nil {
		record["enabled"] = *patch.Enabled
	}
	if patch.Nickname != nil {
		record["nickname"] = *patch.Nickname
	}
	if patch.AppVersion != nil {
		record["app_version"] = *patch.AppVersion
	}
	if patch.AppPlatform != nil {
		record["app_platform"] = *patch.AppPlatform
	}
	if patch.ClientKioskIDSet {
		record["client_kiosk_id"] = patch.ClientKioskID
	}

	sql, args, err := goqu.Dialect(dialectPostgres).
		Update("kiosks").
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
		return errs.NewObjectNotFoundError("kiosk", id)
	}
	return nil
}

// DeleteKiosk removes the kiosk.
func (r *GormCatalogRepository) DeleteKiosk(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&KioskDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("kiosk", id)
	}
	return nil
}
