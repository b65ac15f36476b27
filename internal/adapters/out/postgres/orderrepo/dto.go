// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order aggregate,
// handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"kitchen/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The id is a store-assigned monotonic sequence, so newer orders always
// compare greater than older ones.
type OrderDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"index;not null"`
	ItemID    int64  `gorm:"index;not null"`
	Quantity  int    `gorm:"not null"`
	Note      string `gorm:"not null;default:''"`
	Status    string `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:        aggregate.ID(),
		UserID:    aggregate.UserID(),
		ItemID:    aggregate.ItemID(),
		Quantity:  aggregate.Quantity(),
		Note:      aggregate.Note(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row to an order domain aggregate.
// Reconstruction re-validates all invariants via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		dto.UserID,
		dto.ItemID,
		dto.Quantity,
		dto.Note,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
