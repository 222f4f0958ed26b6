package services

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/utils"
)

// DefaultTaxRate applies when no tax_rate setting exists. Percentage.
const DefaultTaxRate = 10.0

type SettingService struct {
	DB *gorm.DB
}

func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{DB: db}
}

func (s *SettingService) Get(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := s.DB.Where("`key` = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("setting", key)
		}
		return nil, utils.WrapPersistence("load setting", err)
	}
	return &setting, nil
}

func (s *SettingService) Set(key, value, valueType, group string) (*models.Setting, error) {
	var setting models.Setting
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("`key` = ?", key).First(&setting).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			setting = models.Setting{Key: key, Value: value, Type: valueType, Group: group}
			if err := tx.Create(&setting).Error; err != nil {
				return utils.WrapPersistence("create setting", err)
			}
		case err != nil:
			return utils.WrapPersistence("load setting", err)
		default:
			setting.Value = value
			setting.Type = valueType
			setting.Group = group
			if err := tx.Save(&setting).Error; err != nil {
				return utils.WrapPersistence("save setting", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (s *SettingService) List(group string) ([]models.Setting, error) {
	query := s.DB.Order("`key` asc")
	if group != "" {
		query = query.Where("`group` = ?", group)
	}

	var settings []models.Setting
	if err := query.Find(&settings).Error; err != nil {
		return nil, utils.WrapPersistence("list settings", err)
	}
	return settings, nil
}

// TaxRate reads the configured tax percentage, falling back to the default.
// It is read once at wiring time and injected into the order services.
func (s *SettingService) TaxRate() float64 {
	setting, err := s.Get("tax_rate")
	if err != nil {
		return DefaultTaxRate
	}
	rate, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil || rate < 0 {
		return DefaultTaxRate
	}
	return rate
}
