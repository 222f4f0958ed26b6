package models

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusRefunded  = "refunded"
	PaymentStatusFailed    = "failed"
)

const (
	PaymentMethodCash    = "cash"
	PaymentMethodCard    = "card"
	PaymentMethodMobile  = "mobile"
	PaymentMethodVoucher = "voucher"
	PaymentMethodMixed   = "mixed"
)

type Payment struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	PaymentNumber        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"payment_number"`
	OrderID              uint      `gorm:"not null;index" json:"order_id"`
	Order                *Order    `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	CashierID            uint      `gorm:"index;not null" json:"cashier_id"`
	Cashier              *User     `gorm:"foreignKey:CashierID" json:"cashier,omitempty"`
	Amount               float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod        string    `gorm:"type:varchar(20);not null" json:"payment_method"`
	Status               string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TransactionReference string    `gorm:"type:varchar(100)" json:"transaction_reference"`
	Notes                string    `gorm:"type:text" json:"notes"`
	CreatedAt            time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time `gorm:"not null" json:"updated_at"`
}
