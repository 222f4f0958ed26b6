package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/utils"
)

// lockOrder loads an order row FOR UPDATE so concurrent writers against the
// same order are serialized by the store. sqlite ignores the clause, which
// is fine for tests.
func lockOrder(tx *gorm.DB, order *models.Order, orderID uint) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("order", orderID)
		}
		return utils.WrapPersistence("load order", err)
	}
	return nil
}

func hasCompletedPayment(tx *gorm.DB, orderID uint) (bool, error) {
	var count int64
	err := tx.Model(&models.Payment{}).
		Where("order_id = ? AND status = ?", orderID, models.PaymentStatusCompleted).
		Count(&count).Error
	if err != nil {
		return false, utils.WrapPersistence("count completed payments", err)
	}
	return count > 0, nil
}

func completedPaymentTotal(tx *gorm.DB, orderID uint) (float64, error) {
	var total float64
	err := tx.Model(&models.Payment{}).
		Where("order_id = ? AND status = ?", orderID, models.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, utils.WrapPersistence("sum completed payments", err)
	}
	return total, nil
}

// releaseTableIfIdle sets the table back to available unless another order
// in a non-terminal status still references it. Occupancy is a derived view
// of the at-most-one-active-order invariant, never authoritative on its own.
func releaseTableIfIdle(tx *gorm.DB, tableID uint, excludeOrderID uint) error {
	var active int64
	err := tx.Model(&models.Order{}).
		Where("table_id = ? AND id <> ? AND status NOT IN ?",
			tableID, excludeOrderID,
			[]string{models.OrderStatusCompleted, models.OrderStatusCancelled}).
		Count(&active).Error
	if err != nil {
		return utils.WrapPersistence("count active orders", err)
	}
	if active > 0 {
		return nil
	}

	err = tx.Model(&models.RestaurantTable{}).
		Where("id = ?", tableID).
		Update("status", models.TableStatusAvailable).Error
	if err != nil {
		return utils.WrapPersistence("release table", err)
	}
	return nil
}

// deleteEmptyOrder removes an order shell and releases its table.
func deleteEmptyOrder(tx *gorm.DB, order *models.Order) error {
	if err := tx.Delete(&models.Order{}, order.ID).Error; err != nil {
		return utils.WrapPersistence("delete order", err)
	}
	if order.TableID != nil {
		return releaseTableIfIdle(tx, *order.TableID, order.ID)
	}
	return nil
}

// recalcOrderTotals recomputes subtotal/tax/total from the full current set
// of non-cancelled items. Full recalculation, not incremental deltas, is the
// defining approach here: it cannot drift.
func recalcOrderTotals(tx *gorm.DB, order *models.Order, taxRate float64) error {
	var subtotal float64
	err := tx.Model(&models.OrderItem{}).
		Where("order_id = ? AND status <> ?", order.ID, models.OrderItemStatusCancelled).
		Select("COALESCE(SUM(quantity * unit_price), 0)").
		Scan(&subtotal).Error
	if err != nil {
		return utils.WrapPersistence("sum order items", err)
	}

	order.Subtotal = utils.Round2(subtotal)
	order.TaxAmount = utils.Round2(order.Subtotal * taxRate / 100)
	order.TotalAmount = utils.Round2(order.Subtotal + order.TaxAmount - order.DiscountAmount)
	if err := tx.Save(order).Error; err != nil {
		return utils.WrapPersistence("save order totals", err)
	}
	return nil
}
