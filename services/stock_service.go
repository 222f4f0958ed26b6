package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/utils"
)

// StockService keeps the stock quantity and its movement log consistent:
// every quantity change writes exactly one immutable movement carrying the
// before/after quantities, in the same transaction as the mutation.
type StockService struct {
	DB *gorm.DB
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{DB: db}
}

type CreateStockItemInput struct {
	Name        string     `json:"name" binding:"required,max=150"`
	SKU         string     `json:"sku" binding:"required,max=50"`
	Category    string     `json:"category"`
	Quantity    float64    `json:"quantity" binding:"min=0"`
	Unit        string     `json:"unit" binding:"required,max=20"`
	MinQuantity float64    `json:"min_quantity" binding:"min=0"`
	UnitCost    float64    `json:"unit_cost" binding:"min=0"`
	Supplier    string     `json:"supplier"`
	ExpiryDate  *time.Time `json:"expiry_date"`
	Notes       string     `json:"notes"`
}

type AdjustStockInput struct {
	Type      string  `json:"type" binding:"required,oneof=in out adjustment waste"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	Reason    string  `json:"reason" binding:"required,max=255"`
	Reference string  `json:"reference"`
}

// CreateItem creates a stock item; a non-zero opening quantity is recorded
// as an initial movement so the ledger starts consistent.
func (s *StockService) CreateItem(userID uint, in CreateStockItemInput) (*models.StockItem, error) {
	if in.Quantity < 0 {
		return nil, utils.NewValidationError("quantity must not be negative")
	}

	item := models.StockItem{
		Name:        in.Name,
		SKU:         in.SKU,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		MinQuantity: in.MinQuantity,
		UnitCost:    in.UnitCost,
		Supplier:    in.Supplier,
		ExpiryDate:  in.ExpiryDate,
		Notes:       in.Notes,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return utils.WrapPersistence("create stock item", err)
		}

		if in.Quantity > 0 {
			movement := models.StockMovement{
				StockItemID:    item.ID,
				UserID:         userID,
				Type:           models.StockMovementIn,
				Quantity:       in.Quantity,
				QuantityBefore: 0,
				QuantityAfter:  in.Quantity,
				Reason:         "Initial stock",
			}
			if err := tx.Create(&movement).Error; err != nil {
				return utils.WrapPersistence("create stock movement", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Adjust applies one movement to a stock item. For out/waste the quantity
// must fit in the current stock; for adjustment the caller supplies the
// target quantity and the recorded movement quantity is the absolute delta.
// Quantity mutation and movement append commit together or not at all.
func (s *StockService) Adjust(userID, itemID uint, in AdjustStockInput) (*models.StockItem, error) {
	if in.Quantity <= 0 {
		return nil, utils.NewValidationError("quantity must be greater than zero")
	}

	var item models.StockItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("stock item", itemID)
			}
			return utils.WrapPersistence("load stock item", err)
		}

		before := item.Quantity
		var after, recorded float64

		switch in.Type {
		case models.StockMovementOut, models.StockMovementWaste:
			if in.Quantity > before {
				return utils.NewValidationError("insufficient stock: %.2f %s available", before, item.Unit)
			}
			after = before - in.Quantity
			recorded = in.Quantity
		case models.StockMovementAdjustment:
			after = in.Quantity
			recorded = math.Abs(after - before)
		case models.StockMovementIn:
			after = before + in.Quantity
			recorded = in.Quantity
		default:
			return utils.NewValidationError("invalid movement type %q", in.Type)
		}

		item.Quantity = after
		if err := tx.Save(&item).Error; err != nil {
			return utils.WrapPersistence("save stock item", err)
		}

		movement := models.StockMovement{
			StockItemID:    item.ID,
			UserID:         userID,
			Type:           in.Type,
			Quantity:       recorded,
			QuantityBefore: before,
			QuantityAfter:  after,
			Reason:         in.Reason,
			Reference:      in.Reference,
		}
		if err := tx.Create(&movement).Error; err != nil {
			return utils.WrapPersistence("create stock movement", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Get loads one stock item with its recent movements, newest first.
func (s *StockService) Get(itemID uint) (*models.StockItem, error) {
	var item models.StockItem
	err := s.DB.Preload("Movements", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at desc").Limit(20)
	}).First(&item, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("stock item", itemID)
		}
		return nil, utils.WrapPersistence("load stock item", err)
	}
	return &item, nil
}

// List returns stock items, optionally only the low ones.
func (s *StockService) List(category string, lowOnly bool) ([]models.StockItem, error) {
	query := s.DB.Order("name asc")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if lowOnly {
		query = query.Where("quantity <= min_quantity")
	}

	var items []models.StockItem
	if err := query.Find(&items).Error; err != nil {
		return nil, utils.WrapPersistence("list stock items", err)
	}
	return items, nil
}

// Movements returns the movement history of one item, newest first.
func (s *StockService) Movements(itemID uint) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	err := s.DB.Where("stock_item_id = ?", itemID).
		Order("created_at desc").
		Find(&movements).Error
	if err != nil {
		return nil, utils.WrapPersistence("list stock movements", err)
	}
	return movements, nil
}
