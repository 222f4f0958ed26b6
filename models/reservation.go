package models

import "time"

const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
	ReservationStatusNoShow    = "no_show"
)

type Reservation struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	TableID         uint             `gorm:"not null;index" json:"table_id"`
	Table           *RestaurantTable `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"table,omitempty"`
	CustomerName    string           `gorm:"type:varchar(100);not null" json:"customer_name"`
	CustomerPhone   string           `gorm:"type:varchar(20)" json:"customer_phone"`
	CustomerEmail   string           `gorm:"type:varchar(150)" json:"customer_email"`
	GuestsCount     int              `gorm:"not null" json:"guests_count"`
	ReservationDate string           `gorm:"type:varchar(10);not null;index" json:"reservation_date"` // YYYY-MM-DD
	ReservationTime string           `gorm:"type:varchar(5);not null" json:"reservation_time"`        // HH:MM
	Duration        int              `gorm:"not null;default:120" json:"duration"`                    // minutes
	Status          string           `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes           string           `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"not null" json:"updated_at"`
}
