package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/utils"
)

// OrderItemService drives per-line kitchen progress. Status writes are
// permissive overwrites: the kitchen may move a line forward or backward,
// the value is only checked for being a known status. After every write the
// parent order's derived status is re-evaluated.
type OrderItemService struct {
	DB      *gorm.DB
	TaxRate float64
}

func NewOrderItemService(db *gorm.DB, taxRate float64) *OrderItemService {
	return &OrderItemService{DB: db, TaxRate: taxRate}
}

func validOrderItemStatus(status string) bool {
	switch status {
	case models.OrderItemStatusPending,
		models.OrderItemStatusPreparing,
		models.OrderItemStatusReady,
		models.OrderItemStatusServed,
		models.OrderItemStatusCancelled:
		return true
	}
	return false
}

func loadItem(tx *gorm.DB, item *models.OrderItem, itemID uint) error {
	if err := tx.First(item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("order item", itemID)
		}
		return utils.WrapPersistence("load order item", err)
	}
	return nil
}

// UpdateStatus overwrites the line status and re-derives the parent order
// status in the same transaction. Derivation only ever advances the order.
func (s *OrderItemService) UpdateStatus(itemID uint, status string) (*models.OrderItem, error) {
	if !validOrderItemStatus(status) {
		return nil, utils.NewValidationError("invalid item status %q", status)
	}

	var item models.OrderItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := loadItem(tx, &item, itemID); err != nil {
			return err
		}

		item.Status = status
		if err := tx.Save(&item).Error; err != nil {
			return utils.WrapPersistence("save order item", err)
		}

		var order models.Order
		if err := lockOrder(tx, &order, item.OrderID); err != nil {
			return err
		}
		var items []models.OrderItem
		if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
			return utils.WrapPersistence("load order items", err)
		}

		derived := DeriveOrderStatus(order.Status, items)
		if derived != order.Status {
			order.Status = derived
			if err := tx.Save(&order).Error; err != nil {
				return utils.WrapPersistence("save order status", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity changes a line's quantity on an open order and recomputes
// the order totals from the full item set.
func (s *OrderItemService) UpdateQuantity(itemID uint, quantity int, notes *string) (*models.OrderItem, error) {
	if quantity < 1 || quantity > 99 {
		return nil, utils.NewValidationError("quantity must be between 1 and 99")
	}

	var item models.OrderItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := loadItem(tx, &item, itemID); err != nil {
			return err
		}

		var order models.Order
		if err := lockOrder(tx, &order, item.OrderID); err != nil {
			return err
		}
		if !order.IsOpen() {
			return utils.NewInvalidStateError("cannot modify an item of a %s order", order.Status)
		}

		item.Quantity = quantity
		if notes != nil {
			item.Notes = *notes
		}
		if err := tx.Save(&item).Error; err != nil {
			return utils.WrapPersistence("save order item", err)
		}

		return recalcOrderTotals(tx, &order, s.TaxRate)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Remove deletes a line from an open order. When the last item goes, the
// order shell is deleted with it rather than left empty.
func (s *OrderItemService) Remove(itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var item models.OrderItem
		if err := loadItem(tx, &item, itemID); err != nil {
			return err
		}

		var order models.Order
		if err := lockOrder(tx, &order, item.OrderID); err != nil {
			return err
		}
		if !order.IsOpen() {
			return utils.NewInvalidStateError("cannot remove an item of a %s order", order.Status)
		}

		if err := tx.Delete(&models.OrderItem{}, item.ID).Error; err != nil {
			return utils.WrapPersistence("delete order item", err)
		}

		var remaining int64
		if err := tx.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&remaining).Error; err != nil {
			return utils.WrapPersistence("count order items", err)
		}
		if remaining == 0 {
			return deleteEmptyOrder(tx, &order)
		}

		return recalcOrderTotals(tx, &order, s.TaxRate)
	})
}

// Kitchen lists pending and preparing items of active orders, oldest first.
func (s *OrderItemService) Kitchen() ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := s.DB.Preload("MenuItem").Preload("Order").Preload("Order.Table").
		Where("status IN ?", []string{models.OrderItemStatusPending, models.OrderItemStatusPreparing}).
		Where("order_id IN (?)", s.DB.Model(&models.Order{}).Select("id").
			Where("status NOT IN ?", []string{models.OrderStatusCompleted, models.OrderStatusCancelled})).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return nil, utils.WrapPersistence("list kitchen items", err)
	}
	return items, nil
}
