package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/services"
	"github.com/Afofou24/chef-s-table-main/utils"
)

func TestRecordPaymentCompletesOrderAndFreesTable(t *testing.T) {
	db := openTestDB(t)
	waiter := seedWaiter(t, db)
	table := seedTable(t, db, "P1")
	burger := seedMenuItem(t, db, "Burger", 10.00)

	orders := services.NewOrderService(db, 10.0)
	payments := services.NewPaymentService(db)

	order, err := orders.Create(waiter.ID, services.CreateOrderInput{
		TableID:   &table.ID,
		OrderType: models.OrderTypeDineIn,
		Items:     []services.OrderLineInput{{MenuItemID: burger.ID, Quantity: 2}},
	})
	assert.NoError(t, err)
	assert.InDelta(t, 22.00, order.TotalAmount, utils.MoneyEpsilon)

	result, err := payments.Record(waiter.ID, services.RecordPaymentInput{
		OrderID:       order.ID,
		Amount:        22.00,
		PaymentMethod: models.PaymentMethodCash,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, result.Payment.Status)
	assert.InDelta(t, 0, result.Remaining, utils.MoneyEpsilon)

	settled, err := orders.Get(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, settled.Status)

	var freed models.RestaurantTable
	assert.NoError(t, db.First(&freed, table.ID).Error)
	assert.Equal(t, models.TableStatusAvailable, freed.Status)
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	db := openTestDB(t)
	waiter := seedWaiter(t, db)
	burger := seedMenuItem(t, db, "Burger", 10.00)

	orders := services.NewOrderService(db, 10.0)
	payments := services.NewPaymentService(db)

	order, err := orders.Create(waiter.ID, services.CreateOrderInput{
		OrderType: models.OrderTypeTakeaway,
		Items:     []services.OrderLineInput{{MenuItemID: burger.ID, Quantity: 2}},
	})
	assert.NoError(t, err)

	_, err = payments.Record(waiter.ID, services.RecordPaymentInput{
		OrderID:       order.ID,
		Amount:        25.00,
		PaymentMethod: models.PaymentMethodCash,
	})
	assert.Error(t, err)
	assert.Equal(t, 422, utils.StatusCodeFor(err))

	// Nothing was written and the order stayed open.
	var count int64
	assert.NoError(t, db.Model(&models.Payment{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.Zero(t, count)

	unchanged, err := orders.Get(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, unchanged.Status)
}

func TestRecordPaymentPartialThenSettle(t *testing.T) {
	db := openTestDB(t)
	waiter := seedWaiter(t, db)
	burger := seedMenuItem(t, db, "Burger", 10.00)

	orders := services.NewOrderService(db, 10.0)
	payments := services.NewPaymentService(db)

	order, err := orders.Create(waiter.ID, services.CreateOrderInput{
		OrderType: models.OrderTypeTakeaway,
		Items:     []services.OrderLineInput{{MenuItemID: burger.ID, Quantity: 2}},
	})
	assert.NoError(t, err)

	partial, err := payments.Record(waiter.ID, services.RecordPaymentInput{
		OrderID:       order.ID,
		Amount:        10.00,
		PaymentMethod: models.PaymentMethodCash,
	})
	assert.NoError(t, err)
	assert.InDelta(t, 12.00, partial.Remaining, utils.MoneyEpsilon)

	open, err := orders.Get(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, open.Status)

	rest, err := payments.Record(waiter.ID, services.RecordPaymentInput{
		OrderID:       order.ID,
		Amount:        12.00,
		PaymentMethod: models.PaymentMethodCard,
	})
	assert.NoError(t, err)
	assert.InDelta(t, 0, rest.Remaining, utils.MoneyEpsilon)

	settled, err := orders.Get(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, settled.Status)
}

func TestRecordPaymentRefusedOnCancelledOrder(t *testing.T) {
	db := openTestDB(t)
	waiter := seedWaiter(t, db)
	burger := seedMenuItem(t, db, "Burger", 10.00)

	orders := services.NewOrderService(db, 10.0)
	payments := services.NewPaymentService(db)

	order, err := orders.Create(waiter.ID, services.CreateOrderInput{
		OrderType: models.OrderTypeTakeaway,
		Items:     []services.OrderLineInput{{MenuItemID: burger.ID, Quantity: 1}},
	})
	assert.NoError(t, err)
	_, err = orders.Cancel(order.ID)
	assert.NoError(t, err)

	_, err = payments.Record(waiter.ID, services.RecordPaymentInput{
		OrderID:       order.ID,
		Amount:        5.00,
		PaymentMethod: models.PaymentMethodCash,
	})
	assert.Error(t, err)
	assert.Equal(t, 422, utils.StatusCodeFor(err))
}

func TestRefundRevertsCompletedOrderToServed(t *testing.T) {
	db := openTestDB(t)
	waiter := seedWaiter(t, db)
	burger := seedMenuItem(t, db, "Burger", 10.00)

	orders := services.NewOrderService(db, 10.0)
	payments := services.NewPaymentService(db)

	order, err := orders.Create(waiter.ID, services.CreateOrderInput{
		OrderType: models.OrderTypeTakeaway,
		Items:     []services.OrderLineInput{{MenuItemID: burger.ID, Quantity: 2}},
	})
	assert.NoError(t, err)

	result, err := payments.Record(waiter.ID, services.RecordPaymentInput{
		OrderID:       order.ID,
		Amount:        22.00,
		PaymentMethod: models.PaymentMethodCard,
		Notes:         "table insisted on card",
	})
	assert.NoError(t, err)

	refunded, err := payments.Refund(result.Payment.ID, "double charge")
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, refunded.Status)
	assert.Contains(t, refunded.Notes, "table insisted on card")
	assert.Contains(t, refunded.Notes, "Refunded: double charge")

	reverted, err := orders.Get(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusServed, reverted.Status)

	// A second refund of the same payment is refused.
	_, err = payments.Refund(result.Payment.ID, "again")
	assert.Error(t, err)
	assert.Equal(t, 422, utils.StatusCodeFor(err))
}

func TestRefundRequiresReason(t *testing.T) {
	db := openTestDB(t)
	payments := services.NewPaymentService(db)

	_, err := payments.Refund(1, "   ")
	assert.Error(t, err)
	assert.Equal(t, 422, utils.StatusCodeFor(err))
}

func TestDeleteCompletedPaymentRefused(t *testing.T) {
	db := openTestDB(t)
	waiter := seedWaiter(t, db)
	burger := seedMenuItem(t, db, "Burger", 10.00)

	orders := services.NewOrderService(db, 10.0)
	payments := services.NewPaymentService(db)

	order, err := orders.Create(waiter.ID, services.CreateOrderInput{
		OrderType: models.OrderTypeTakeaway,
		Items:     []services.OrderLineInput{{MenuItemID: burger.ID, Quantity: 1}},
	})
	assert.NoError(t, err)

	result, err := payments.Record(waiter.ID, services.RecordPaymentInput{
		OrderID:       order.ID,
		Amount:        11.00,
		PaymentMethod: models.PaymentMethodCash,
	})
	assert.NoError(t, err)

	err = payments.Delete(result.Payment.ID)
	assert.Error(t, err)
	assert.Equal(t, 422, utils.StatusCodeFor(err))
}

func TestDailySummaryGroupsByMethod(t *testing.T) {
	db := openTestDB(t)
	waiter := seedWaiter(t, db)
	burger := seedMenuItem(t, db, "Burger", 10.00)

	orders := services.NewOrderService(db, 10.0)
	payments := services.NewPaymentService(db)

	for _, method := range []string{models.PaymentMethodCash, models.PaymentMethodCard} {
		order, err := orders.Create(waiter.ID, services.CreateOrderInput{
			OrderType: models.OrderTypeTakeaway,
			Items:     []services.OrderLineInput{{MenuItemID: burger.ID, Quantity: 1}},
		})
		assert.NoError(t, err)
		_, err = payments.Record(waiter.ID, services.RecordPaymentInput{
			OrderID:       order.ID,
			Amount:        11.00,
			PaymentMethod: method,
		})
		assert.NoError(t, err)
	}

	today := time.Now().Format("2006-01-02")
	summary, err := payments.Daily(today)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalCount)
	assert.InDelta(t, 22.00, summary.TotalAmount, utils.MoneyEpsilon)
	assert.Len(t, summary.ByMethod, 2)
}
