// Package orderrepo implements the order repository over GORM, mapping the
// order aggregate and its lines to the orders and order_items tables.
package orderrepo

import (
	"time"

	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/core/domain/model/order"
)

// OrderDTO is the database representation of an order.
type OrderDTO struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	KioskID        int64           `gorm:"not null;index"`
	KioskType      string          `gorm:"type:varchar(16);not null"`
	Status         string          `gorm:"type:varchar(16);not null;index"`
	UserProfile    kernel.Document `gorm:"type:jsonb"`
	SurveyResponse kernel.Document `gorm:"type:jsonb"`
	CreatedAt      time.Time       `gorm:"autoCreateTime;index"`
}

// TableName overrides GORM's naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the database representation of one order line. Lines are
// exclusively owned by their order and deleted with it.
type OrderItemDTO struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	OrderID        int64           `gorm:"not null;index"`
	ItemID         int64           `gorm:"not null"`
	Customizations kernel.Document `gorm:"type:jsonb"`
}

// TableName overrides GORM's naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation,
// excluding lines, which map to their own table.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:             aggregate.ID(),
		KioskID:        aggregate.KioskID(),
		KioskType:      aggregate.KioskType().String(),
		Status:         aggregate.Status().String(),
		UserProfile:    aggregate.UserProfile(),
		SurveyResponse: aggregate.SurveyResponse(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// linesFromDomain converts the aggregate's lines for a given order id.
func linesFromDomain(orderID int64, lines []order.Line) []OrderItemDTO {
	dtos := make([]OrderItemDTO, 0, len(lines))
	for _, line := range lines {
		dtos = append(dtos, OrderItemDTO{
			OrderID:        orderID,
			ItemID:         line.ItemID(),
			Customizations: line.Customizations(),
		})
	}
	return dtos
}

// toDomain reconstructs an order aggregate from its database rows.
func toDomain(dto OrderDTO, lineDTOs []OrderItemDTO) (*order.Order, error) {
	lines := make([]order.Line, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		line, err := order.NewLine(lineDTO.ItemID, lineDTO.Customizations)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.KioskID,
		kernel.KioskType(dto.KioskType),
		order.Status(dto.Status),
		dto.UserProfile,
		dto.SurveyResponse,
		dto.CreatedAt,
		lines,
	)
}
