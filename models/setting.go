package models

import "time"

const (
	SettingTypeString  = "string"
	SettingTypeInteger = "integer"
	SettingTypeFloat   = "float"
	SettingTypeBoolean = "boolean"
)

type Setting struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Key         string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"key"`
	Value       string    `gorm:"type:text" json:"value"`
	Type        string    `gorm:"type:varchar(20);not null;default:'string'" json:"type"`
	Group       string    `gorm:"type:varchar(50)" json:"group"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
