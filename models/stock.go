package models

import "time"

const (
	StockMovementIn         = "in"
	StockMovementOut        = "out"
	StockMovementAdjustment = "adjustment"
	StockMovementWaste      = "waste"
)

type StockItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(150);not null" json:"name"`
	SKU         string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku"`
	Category    string          `gorm:"type:varchar(50)" json:"category"`
	Quantity    float64         `gorm:"type:decimal(10,2);not null;default:0.00" json:"quantity"`
	Unit        string          `gorm:"type:varchar(20);not null" json:"unit"`
	MinQuantity float64         `gorm:"type:decimal(10,2);not null;default:0.00" json:"min_quantity"`
	UnitCost    float64         `gorm:"type:decimal(10,2);not null;default:0.00" json:"unit_cost"`
	Supplier    string          `gorm:"type:varchar(255)" json:"supplier"`
	ExpiryDate  *time.Time      `json:"expiry_date,omitempty"`
	Notes       string          `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
	Movements   []StockMovement `gorm:"foreignKey:StockItemID" json:"movements,omitempty"`
}

// IsLowStock is evaluated on read, never cached.
func (s *StockItem) IsLowStock() bool {
	return s.Quantity <= s.MinQuantity
}

// StockMovement is an immutable audit record of one quantity change.
type StockMovement struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	StockItemID    uint      `gorm:"not null;index" json:"stock_item_id"`
	StockItem      StockItem `gorm:"foreignKey:StockItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	UserID         uint      `gorm:"index" json:"user_id"`
	User           *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Type           string    `gorm:"type:varchar(20);not null" json:"type"`
	Quantity       float64   `gorm:"type:decimal(10,2);not null" json:"quantity"`
	QuantityBefore float64   `gorm:"type:decimal(10,2);not null" json:"quantity_before"`
	QuantityAfter  float64   `gorm:"type:decimal(10,2);not null" json:"quantity_after"`
	Reason         string    `gorm:"type:varchar(255);not null" json:"reason"`
	Reference      string    `gorm:"type:varchar(100)" json:"reference"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}
