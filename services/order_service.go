package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/utils"
)

// OrderService owns order totals and the order-level status. The tax rate is
// a percentage injected at construction so the engine can be tested without
// reaching into the settings table.
type OrderService struct {
	DB      *gorm.DB
	TaxRate float64
}

func NewOrderService(db *gorm.DB, taxRate float64) *OrderService {
	return &OrderService{DB: db, TaxRate: taxRate}
}

type OrderLineInput struct {
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1,max=99"`
	Notes      string `json:"notes"`
}

type CreateOrderInput struct {
	TableID     *uint            `json:"table_id"`
	OrderType   string           `json:"order_type" binding:"required,oneof=dine_in takeaway delivery"`
	GuestsCount int              `json:"guests_count"`
	Notes       string           `json:"notes"`
	Items       []OrderLineInput `json:"items" binding:"required,min=1,dive"`
}

type OrderFilter struct {
	Status    string `form:"status"`
	OrderType string `form:"order_type"`
	TableID   uint   `form:"table_id"`
	WaiterID  uint   `form:"waiter_id"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
}

var orderStatusRank = map[string]int{
	models.OrderStatusPending:   0,
	models.OrderStatusConfirmed: 1,
	models.OrderStatusPreparing: 2,
	models.OrderStatusReady:     3,
	models.OrderStatusServed:    4,
	models.OrderStatusCompleted: 5,
	models.OrderStatusCancelled: 6,
}

func validOrderStatus(status string) bool {
	_, ok := orderStatusRank[status]
	return ok
}

// DeriveOrderStatus computes the order status implied by its items: all
// served means served, everything ready-or-served means ready, anything
// still preparing means preparing. Cancelled items are ignored and an empty
// set leaves the status alone. The result never goes backwards from the
// current status; manual sets stay authoritative.
func DeriveOrderStatus(current string, items []models.OrderItem) string {
	var active []models.OrderItem
	for _, item := range items {
		if item.Status != models.OrderItemStatusCancelled {
			active = append(active, item)
		}
	}
	if len(active) == 0 {
		return current
	}

	allServed := true
	allReadyOrServed := true
	anyPreparing := false
	for _, item := range active {
		if item.Status != models.OrderItemStatusServed {
			allServed = false
		}
		if item.Status != models.OrderItemStatusReady && item.Status != models.OrderItemStatusServed {
			allReadyOrServed = false
		}
		if item.Status == models.OrderItemStatusPreparing {
			anyPreparing = true
		}
	}

	derived := current
	switch {
	case allServed:
		derived = models.OrderStatusServed
	case allReadyOrServed:
		derived = models.OrderStatusReady
	case anyPreparing:
		derived = models.OrderStatusPreparing
	}

	if orderStatusRank[derived] > orderStatusRank[current] {
		return derived
	}
	return current
}

func newOrderNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + raw[:12]
}

// Create places an order, snapshotting each line's menu price, computing the
// totals and occupying the table, all in one transaction.
func (s *OrderService) Create(waiterID uint, in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, utils.NewValidationError("at least one item is required")
	}
	switch in.OrderType {
	case models.OrderTypeDineIn, models.OrderTypeTakeaway, models.OrderTypeDelivery:
	default:
		return nil, utils.NewValidationError("invalid order type %q", in.OrderType)
	}
	if in.OrderType == models.OrderTypeDineIn && in.TableID == nil {
		return nil, utils.NewValidationError("a table is required for dine-in orders")
	}

	guests := in.GuestsCount
	if guests < 1 {
		guests = 1
	}

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if in.TableID != nil {
			var table models.RestaurantTable
			if err := tx.First(&table, *in.TableID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.NewNotFoundError("table", *in.TableID)
				}
				return utils.WrapPersistence("load table", err)
			}
		}

		order = models.Order{
			OrderNumber: newOrderNumber(),
			TableID:     in.TableID,
			WaiterID:    waiterID,
			OrderType:   in.OrderType,
			Status:      models.OrderStatusPending,
			GuestsCount: guests,
			Notes:       in.Notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return utils.WrapPersistence("create order", err)
		}

		subtotal, err := s.appendLines(tx, order.ID, in.Items)
		if err != nil {
			return err
		}

		order.Subtotal = utils.Round2(subtotal)
		order.TaxAmount = utils.Round2(order.Subtotal * s.TaxRate / 100)
		order.TotalAmount = utils.Round2(order.Subtotal + order.TaxAmount - order.DiscountAmount)
		if err := tx.Save(&order).Error; err != nil {
			return utils.WrapPersistence("save order totals", err)
		}

		if order.TableID != nil {
			if err := tx.Model(&models.RestaurantTable{}).
				Where("id = ?", *order.TableID).
				Update("status", models.TableStatusOccupied).Error; err != nil {
				return utils.WrapPersistence("occupy table", err)
			}
		}

		return tx.Preload("Items").Preload("Items.MenuItem").First(&order, order.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// appendLines creates order items, snapshotting the current menu price, and
// returns the added subtotal.
func (s *OrderService) appendLines(tx *gorm.DB, orderID uint, lines []OrderLineInput) (float64, error) {
	var subtotal float64
	for _, line := range lines {
		if line.Quantity < 1 || line.Quantity > 99 {
			return 0, utils.NewValidationError("quantity must be between 1 and 99")
		}

		var menuItem models.MenuItem
		if err := tx.First(&menuItem, line.MenuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, utils.NewValidationError("unknown menu item %d", line.MenuItemID)
			}
			return 0, utils.WrapPersistence("load menu item", err)
		}
		if !menuItem.IsAvailable {
			return 0, utils.NewValidationError("menu item %q is not available", menuItem.Name)
		}

		item := models.OrderItem{
			OrderID:    orderID,
			MenuItemID: menuItem.ID,
			Quantity:   line.Quantity,
			UnitPrice:  menuItem.Price,
			Notes:      line.Notes,
			Status:     models.OrderItemStatusPending,
		}
		if err := tx.Create(&item).Error; err != nil {
			return 0, utils.WrapPersistence("create order item", err)
		}
		subtotal += menuItem.Price * float64(line.Quantity)
	}
	return subtotal, nil
}

// AddItems appends lines to an open order and recomputes totals, preserving
// any existing discount.
func (s *OrderService) AddItems(orderID uint, lines []OrderLineInput) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, utils.NewValidationError("at least one item is required")
	}

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockOrder(tx, &order, orderID); err != nil {
			return err
		}
		if !order.IsOpen() {
			return utils.NewInvalidStateError("cannot add items to a %s order", order.Status)
		}

		added, err := s.appendLines(tx, order.ID, lines)
		if err != nil {
			return err
		}

		order.Subtotal = utils.Round2(order.Subtotal + added)
		order.TaxAmount = utils.Round2(order.Subtotal * s.TaxRate / 100)
		order.TotalAmount = utils.Round2(order.Subtotal + order.TaxAmount - order.DiscountAmount)
		if err := tx.Save(&order).Error; err != nil {
			return utils.WrapPersistence("save order totals", err)
		}

		return tx.Preload("Items").Preload("Items.MenuItem").First(&order, order.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ApplyDiscount sets the order discount and recomputes the total.
func (s *OrderService) ApplyDiscount(orderID uint, amount float64) (*models.Order, error) {
	if amount < 0 {
		return nil, utils.NewValidationError("discount must not be negative")
	}

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockOrder(tx, &order, orderID); err != nil {
			return err
		}
		if !order.IsOpen() {
			return utils.NewInvalidStateError("cannot modify a %s order", order.Status)
		}

		total := utils.Round2(order.Subtotal + order.TaxAmount - amount)
		if total < 0 {
			return utils.NewValidationError("discount exceeds the order total")
		}

		order.DiscountAmount = utils.Round2(amount)
		order.TotalAmount = total
		if err := tx.Save(&order).Error; err != nil {
			return utils.WrapPersistence("save order", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus sets the order status directly. Manual sets are
// authoritative: derivation from items only ever advances this value.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*models.Order, error) {
	if !validOrderStatus(status) {
		return nil, utils.NewValidationError("invalid order status %q", status)
	}
	if status == models.OrderStatusCancelled {
		return s.Cancel(orderID)
	}

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockOrder(tx, &order, orderID); err != nil {
			return err
		}

		order.Status = status
		if err := tx.Save(&order).Error; err != nil {
			return utils.WrapPersistence("save order", err)
		}

		if status == models.OrderStatusCompleted && order.TableID != nil {
			if err := releaseTableIfIdle(tx, *order.TableID, order.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Cancel cancels the order and all of its items. Orders with a completed
// payment can no longer be cancelled.
func (s *OrderService) Cancel(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockOrder(tx, &order, orderID); err != nil {
			return err
		}

		paid, err := hasCompletedPayment(tx, order.ID)
		if err != nil {
			return err
		}
		if paid {
			return utils.NewConflictError("order %s has a completed payment and cannot be cancelled", order.OrderNumber)
		}

		order.Status = models.OrderStatusCancelled
		if err := tx.Save(&order).Error; err != nil {
			return utils.WrapPersistence("save order", err)
		}

		if err := tx.Model(&models.OrderItem{}).
			Where("order_id = ?", order.ID).
			Update("status", models.OrderItemStatusCancelled).Error; err != nil {
			return utils.WrapPersistence("cancel order items", err)
		}

		if order.TableID != nil {
			if err := releaseTableIfIdle(tx, *order.TableID, order.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete physically removes an order. Only empty orders may be deleted;
// anything else goes through Cancel so the record survives.
func (s *OrderService) Delete(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := lockOrder(tx, &order, orderID); err != nil {
			return err
		}

		paid, err := hasCompletedPayment(tx, order.ID)
		if err != nil {
			return err
		}
		if paid {
			return utils.NewConflictError("order %s has a completed payment and cannot be deleted", order.OrderNumber)
		}

		var itemCount int64
		if err := tx.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error; err != nil {
			return utils.WrapPersistence("count order items", err)
		}
		if itemCount > 0 {
			return utils.NewInvalidStateError("order %s still has items, cancel it instead", order.OrderNumber)
		}

		return deleteEmptyOrder(tx, &order)
	})
}

// Get loads one order with its items and payments.
func (s *OrderService) Get(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Items").Preload("Items.MenuItem").
		Preload("Payments").Preload("Table").Preload("Waiter").
		First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("order", orderID)
		}
		return nil, utils.WrapPersistence("load order", err)
	}
	return &order, nil
}

// List returns orders matching the filter, newest first.
func (s *OrderService) List(filter OrderFilter) ([]models.Order, error) {
	query := s.DB.Preload("Items").Preload("Table")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderType != "" {
		query = query.Where("order_type = ?", filter.OrderType)
	}
	if filter.TableID != 0 {
		query = query.Where("table_id = ?", filter.TableID)
	}
	if filter.WaiterID != 0 {
		query = query.Where("waiter_id = ?", filter.WaiterID)
	}
	if filter.DateFrom != "" {
		query = query.Where("created_at >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("created_at <= ?", filter.DateTo+" 23:59:59")
	}

	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, utils.WrapPersistence("list orders", err)
	}
	return orders, nil
}
