package models

import "time"

type MenuItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CategoryID      uint      `gorm:"not null;index" json:"category_id"`
	Category        Category  `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	Price           float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Image           string    `gorm:"type:varchar(255)" json:"image"`
	PreparationTime int       `gorm:"default:0" json:"preparation_time"`
	IsAvailable     bool      `gorm:"not null;default:true" json:"is_available"`
	IsFeatured      bool      `gorm:"not null;default:false" json:"is_featured"`
	Allergens       string    `gorm:"type:varchar(255)" json:"allergens"`
	Calories        int       `gorm:"default:0" json:"calories"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
