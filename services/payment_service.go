package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/utils"
)

// PaymentService records payment facts against orders. It never talks to a
// gateway; settlement here means bookkeeping and order closure.
type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

type RecordPaymentInput struct {
	OrderID              uint    `json:"order_id" binding:"required"`
	Amount               float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod        string  `json:"payment_method" binding:"required,oneof=cash card mobile voucher mixed"`
	TransactionReference string  `json:"transaction_reference"`
	Notes                string  `json:"notes"`
}

type PaymentResult struct {
	Payment   *models.Payment `json:"payment"`
	Remaining float64         `json:"remaining"`
}

type MethodSummary struct {
	PaymentMethod string  `json:"payment_method"`
	Count         int64   `json:"count"`
	Total         float64 `json:"total"`
}

type DailySummary struct {
	Date        string          `json:"date"`
	ByMethod    []MethodSummary `json:"by_method"`
	TotalAmount float64         `json:"total_amount"`
	TotalCount  int64           `json:"total_count"`
}

func validPaymentMethod(method string) bool {
	switch method {
	case models.PaymentMethodCash, models.PaymentMethodCard,
		models.PaymentMethodMobile, models.PaymentMethodVoucher,
		models.PaymentMethodMixed:
		return true
	}
	return false
}

func newPaymentNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "PAY-" + raw[:12]
}

// Record posts a completed payment against the order's outstanding balance.
// The order row is locked for the whole check-then-write so two cashiers
// racing to settle the same order cannot slip past the over-payment guard.
func (s *PaymentService) Record(cashierID uint, in RecordPaymentInput) (*PaymentResult, error) {
	if in.Amount <= 0 {
		return nil, utils.NewValidationError("amount must be greater than zero")
	}
	if !validPaymentMethod(in.PaymentMethod) {
		return nil, utils.NewValidationError("invalid payment method %q", in.PaymentMethod)
	}

	var result PaymentResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := lockOrder(tx, &order, in.OrderID); err != nil {
			return err
		}
		if order.Status == models.OrderStatusCancelled {
			return utils.NewConflictError("order %s is cancelled and cannot be paid", order.OrderNumber)
		}

		paid, err := completedPaymentTotal(tx, order.ID)
		if err != nil {
			return err
		}
		remaining := order.TotalAmount - paid
		if in.Amount > remaining+utils.MoneyEpsilon {
			return utils.NewValidationError("amount %.2f exceeds the remaining balance %.2f", in.Amount, remaining)
		}

		payment := models.Payment{
			PaymentNumber:        newPaymentNumber(),
			OrderID:              order.ID,
			CashierID:            cashierID,
			Amount:               utils.Round2(in.Amount),
			PaymentMethod:        in.PaymentMethod,
			Status:               models.PaymentStatusCompleted,
			TransactionReference: in.TransactionReference,
			Notes:                in.Notes,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return utils.WrapPersistence("create payment", err)
		}

		newPaid := paid + payment.Amount
		if newPaid >= order.TotalAmount-utils.MoneyEpsilon {
			order.Status = models.OrderStatusCompleted
			if err := tx.Save(&order).Error; err != nil {
				return utils.WrapPersistence("complete order", err)
			}
			if order.TableID != nil {
				if err := releaseTableIfIdle(tx, *order.TableID, order.ID); err != nil {
					return err
				}
			}
		}

		result.Payment = &payment
		result.Remaining = utils.Round2(order.TotalAmount - newPaid)
		if result.Remaining < 0 {
			result.Remaining = 0
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Refund marks a completed payment refunded and keeps the audit trail: the
// reason is appended to the notes, never overwritten. If the completed
// payments no longer cover a completed order, the order falls back to
// served: the settlement-driven transition is rolled back, kitchen
// progress is not.
func (s *PaymentService) Refund(paymentID uint, reason string) (*models.Payment, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, utils.NewValidationError("a refund reason is required")
	}

	var payment models.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("payment", paymentID)
			}
			return utils.WrapPersistence("load payment", err)
		}
		if payment.Status != models.PaymentStatusCompleted {
			return utils.NewInvalidStateError("only completed payments can be refunded")
		}

		payment.Status = models.PaymentStatusRefunded
		if payment.Notes != "" {
			payment.Notes += "\n"
		}
		payment.Notes += "Refunded: " + reason
		if err := tx.Save(&payment).Error; err != nil {
			return utils.WrapPersistence("save payment", err)
		}

		var order models.Order
		if err := lockOrder(tx, &order, payment.OrderID); err != nil {
			return err
		}
		if order.Status == models.OrderStatusCompleted {
			paid, err := completedPaymentTotal(tx, order.ID)
			if err != nil {
				return err
			}
			if paid < order.TotalAmount-utils.MoneyEpsilon {
				order.Status = models.OrderStatusServed
				if err := tx.Save(&order).Error; err != nil {
					return utils.WrapPersistence("save order", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// Delete removes a payment record. Completed payments are historical facts
// and can only be refunded, never deleted.
func (s *PaymentService) Delete(paymentID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.First(&payment, paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("payment", paymentID)
			}
			return utils.WrapPersistence("load payment", err)
		}
		if payment.Status == models.PaymentStatusCompleted {
			return utils.NewInvalidStateError("completed payments cannot be deleted, refund instead")
		}
		if err := tx.Delete(&models.Payment{}, payment.ID).Error; err != nil {
			return utils.WrapPersistence("delete payment", err)
		}
		return nil
	})
}

// Get loads one payment with its order.
func (s *PaymentService) Get(paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	err := s.DB.Preload("Order").Preload("Order.Table").Preload("Cashier").
		First(&payment, paymentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("payment", paymentID)
		}
		return nil, utils.WrapPersistence("load payment", err)
	}
	return &payment, nil
}

// List returns payments, optionally filtered by order, status or method.
func (s *PaymentService) List(orderID uint, status, method string) ([]models.Payment, error) {
	query := s.DB.Preload("Order")
	if orderID != 0 {
		query = query.Where("order_id = ?", orderID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if method != "" {
		query = query.Where("payment_method = ?", method)
	}

	var payments []models.Payment
	if err := query.Order("created_at desc").Find(&payments).Error; err != nil {
		return nil, utils.WrapPersistence("list payments", err)
	}
	return payments, nil
}

// Daily aggregates completed payments of one day by method. Pure read.
func (s *PaymentService) Daily(date string) (*DailySummary, error) {
	summary := DailySummary{Date: date}
	err := s.DB.Model(&models.Payment{}).
		Where("status = ? AND created_at >= ? AND created_at <= ?",
			models.PaymentStatusCompleted, date+" 00:00:00", date+" 23:59:59").
		Select("payment_method, COUNT(*) as count, SUM(amount) as total").
		Group("payment_method").
		Scan(&summary.ByMethod).Error
	if err != nil {
		return nil, utils.WrapPersistence("daily payment summary", err)
	}

	for _, row := range summary.ByMethod {
		summary.TotalAmount += row.Total
		summary.TotalCount += row.Count
	}
	summary.TotalAmount = utils.Round2(summary.TotalAmount)
	return &summary, nil
}
