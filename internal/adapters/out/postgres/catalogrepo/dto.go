// Package catalogrepo implements the catalog repository over GORM, mapping
// items and kiosks to their tables.
package catalogrepo

import (
	"time"

	"kioskhub/internal/core/domain/model/catalog"
	"kioskhub/internal/core/domain/model/kernel"
)

// ItemDTO is the database representation of a catalog item.
type ItemDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Slug        string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	KioskType   string    `gorm:"type:varchar(16);not null;index"`
	ItemType    string    `gorm:"type:varchar(16);not null"`
	Name        string    `gorm:"type:varchar(256);not null"`
	Description string    `gorm:"not null"`
	Available   bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// TableName overrides GORM's naming convention to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// KioskDTO is the database representation of a kiosk.
type KioskDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	KioskType     string    `gorm:"type:varchar(16);not null"`
	Role          string    `gorm:"type:varchar(16);not null"`
	Enabled       bool      `gorm:"not null"`
	Nickname      string    `gorm:"type:varchar(128)"`
	AppVersion    string    `gorm:"type:varchar(64)"`
	AppPlatform   string    `gorm:"type:varchar(64)"`
	ClientKioskID *int64    `gorm:"index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

// TableName overrides GORM's naming convention to use "kiosks".
func (KioskDTO) TableName() string {
	return "kiosks"
}

func itemFromDomain(item *catalog.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID(),
		Slug:        item.Slug(),
		KioskType:   item.KioskType().String(),
		ItemType:    item.ItemType().String(),
		Name:        item.Name(),
		Description: item.Description(),
		Available:   item.Available(),
		CreatedAt:   item.CreatedAt(),
	}
}

func itemToDomain(dto ItemDTO) (*catalog.Item, error) {
	return catalog.RestoreItem(
		dto.ID,
		dto.Slug,
		kernel.KioskType(dto.KioskType),
		catalog.ItemType(dto.ItemType),
		dto.Name,
		dto.Description,
		dto.Available,
		dto.CreatedAt,
	)
}

func kioskFromDomain(kiosk *catalog.Kiosk) KioskDTO {
	return KioskDTO{
		ID:            kiosk.ID(),
		KioskType:     kiosk.KioskType().String(),
		Role:          kiosk.Role().String(),
		Enabled:       kiosk.Enabled(),
		Nickname:      kiosk.Nickname(),
		AppVersion:    kiosk.AppVersion(),
		AppPlatform:   kiosk.AppPlatform(),
		ClientKioskID: kiosk.ClientKioskID(),
		CreatedAt:     kiosk.CreatedAt(),
	}
}

func kioskToDomain(dto KioskDTO) (*catalog.Kiosk, error) {
	return catalog.RestoreKiosk(
		dto.ID,
		kernel.KioskType(dto.KioskType),
		catalog.Role(dto.Role),
		dto.Enabled,
		dto.Nickname,
		dto.AppVersion,
		dto.AppPlatform,
		dto.ClientKioskID,
		dto.CreatedAt,
	)
}
