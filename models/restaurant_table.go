package models

import "time"

const (
	TableStatusAvailable   = "available"
	TableStatusOccupied    = "occupied"
	TableStatusReserved    = "reserved"
	TableStatusUnavailable = "unavailable"
)

type RestaurantTable struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Number    string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"number"`
	Capacity  int       `gorm:"not null;default:2" json:"capacity"`
	Location  string    `gorm:"type:varchar(100)" json:"location"`
	Status    string    `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (t *RestaurantTable) IsAvailable() bool {
	return t.Status == TableStatusAvailable
}
