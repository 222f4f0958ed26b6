package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusServed    = "served"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

const (
	OrderTypeDineIn   = "dine_in"
	OrderTypeTakeaway = "takeaway"
	OrderTypeDelivery = "delivery"
)

type Order struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	OrderNumber    string           `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number"`
	TableID        *uint            `gorm:"index" json:"table_id,omitempty"`
	Table          *RestaurantTable `gorm:"foreignKey:TableID" json:"table,omitempty"`
	WaiterID       uint             `gorm:"index;not null" json:"waiter_id"`
	Waiter         *User            `gorm:"foreignKey:WaiterID" json:"waiter,omitempty"`
	OrderType      string           `gorm:"type:varchar(20);not null;default:'dine_in'" json:"order_type"`
	Status         string           `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Subtotal       float64          `gorm:"type:decimal(10,2);not null;default:0.00" json:"subtotal"`
	TaxAmount      float64          `gorm:"type:decimal(10,2);not null;default:0.00" json:"tax_amount"`
	DiscountAmount float64          `gorm:"type:decimal(10,2);not null;default:0.00" json:"discount_amount"`
	TotalAmount    float64          `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	GuestsCount    int              `gorm:"not null;default:1" json:"guests_count"`
	Notes          string           `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"not null" json:"updated_at"`
	Items          []OrderItem      `gorm:"foreignKey:OrderID" json:"items"`
	Payments       []Payment        `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}

// IsActive reports whether the order still occupies its table.
func (o *Order) IsActive() bool {
	return o.Status != OrderStatusCompleted && o.Status != OrderStatusCancelled
}

// IsOpen reports whether the order may still be edited.
func (o *Order) IsOpen() bool {
	return o.IsActive()
}
