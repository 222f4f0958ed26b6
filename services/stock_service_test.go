package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/services"
	"github.com/Afofou24/chef-s-table-main/utils"
)

func TestCreateStockItemWritesInitialMovement(t *testing.T) {
	db := openTestDB(t)
	user := seedWaiter(t, db)
	svc := services.NewStockService(db)

	item, err := svc.CreateItem(user.ID, services.CreateStockItemInput{
		Name:        "Tomatoes",
		SKU:         "VEG-001",
		Quantity:    5,
		Unit:        "kg",
		MinQuantity: 10,
	})
	assert.NoError(t, err)
	assert.True(t, item.IsLowStock())

	movements, err := svc.Movements(item.ID)
	assert.NoError(t, err)
	assert.Len(t, movements, 1)
	assert.Equal(t, models.StockMovementIn, movements[0].Type)
	assert.Equal(t, "Initial stock", movements[0].Reason)
	assert.InDelta(t, 0, movements[0].QuantityBefore, 0.001)
	assert.InDelta(t, 5, movements[0].QuantityAfter, 0.001)
}

func TestAdjustStockInOutAndWaste(t *testing.T) {
	db := openTestDB(t)
	user := seedWaiter(t, db)
	svc := services.NewStockService(db)

	item, err := svc.CreateItem(user.ID, services.CreateStockItemInput{
		Name: "Flour", SKU: "DRY-001", Quantity: 5, Unit: "kg", MinQuantity: 10,
	})
	assert.NoError(t, err)

	item, err = svc.Adjust(user.ID, item.ID, services.AdjustStockInput{
		Type: models.StockMovementIn, Quantity: 10, Reason: "Delivery",
	})
	assert.NoError(t, err)
	assert.InDelta(t, 15, item.Quantity, 0.001)
	assert.False(t, item.IsLowStock())

	item, err = svc.Adjust(user.ID, item.ID, services.AdjustStockInput{
		Type: models.StockMovementOut, Quantity: 3, Reason: "Lunch service",
	})
	assert.NoError(t, err)
	assert.InDelta(t, 12, item.Quantity, 0.001)

	item, err = svc.Adjust(user.ID, item.ID, services.AdjustStockInput{
		Type: models.StockMovementWaste, Quantity: 2, Reason: "Spoiled",
	})
	assert.NoError(t, err)
	assert.InDelta(t, 10, item.Quantity, 0.001)

	movements, err := svc.Movements(item.ID)
	assert.NoError(t, err)
	assert.Len(t, movements, 4)
	// Every record carries a consistent before/after pair.
	for _, m := range movements {
		switch m.Type {
		case models.StockMovementIn:
			assert.InDelta(t, m.QuantityAfter, m.QuantityBefore+m.Quantity, 0.001)
		case models.StockMovementOut, models.StockMovementWaste:
			assert.InDelta(t, m.QuantityAfter, m.QuantityBefore-m.Quantity, 0.001)
		}
	}
}

func TestAdjustStockInsufficientQuantity(t *testing.T) {
	db := openTestDB(t)
	user := seedWaiter(t, db)
	svc := services.NewStockService(db)

	item, err := svc.CreateItem(user.ID, services.CreateStockItemInput{
		Name: "Oil", SKU: "DRY-002", Quantity: 2, Unit: "l",
	})
	assert.NoError(t, err)

	_, err = svc.Adjust(user.ID, item.ID, services.AdjustStockInput{
		Type: models.StockMovementOut, Quantity: 5, Reason: "Service",
	})
	assert.Error(t, err)
	assert.Equal(t, 422, utils.StatusCodeFor(err))

	// The failed adjustment left neither the quantity nor the ledger changed.
	reloaded, err := svc.Get(item.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 2, reloaded.Quantity, 0.001)
	movements, err := svc.Movements(item.ID)
	assert.NoError(t, err)
	assert.Len(t, movements, 1)
}

func TestAdjustStockToTargetQuantity(t *testing.T) {
	db := openTestDB(t)
	user := seedWaiter(t, db)
	svc := services.NewStockService(db)

	item, err := svc.CreateItem(user.ID, services.CreateStockItemInput{
		Name: "Rice", SKU: "DRY-003", Quantity: 20, Unit: "kg",
	})
	assert.NoError(t, err)

	// Adjustment takes the counted target; the movement records the delta.
	item, err = svc.Adjust(user.ID, item.ID, services.AdjustStockInput{
		Type: models.StockMovementAdjustment, Quantity: 14, Reason: "Stock take",
	})
	assert.NoError(t, err)
	assert.InDelta(t, 14, item.Quantity, 0.001)

	movements, err := svc.Movements(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StockMovementAdjustment, movements[0].Type)
	assert.InDelta(t, 6, movements[0].Quantity, 0.001)
	assert.InDelta(t, 20, movements[0].QuantityBefore, 0.001)
	assert.InDelta(t, 14, movements[0].QuantityAfter, 0.001)
}

func TestListLowStockOnly(t *testing.T) {
	db := openTestDB(t)
	user := seedWaiter(t, db)
	svc := services.NewStockService(db)

	_, err := svc.CreateItem(user.ID, services.CreateStockItemInput{
		Name: "Salt", SKU: "DRY-004", Quantity: 50, Unit: "kg", MinQuantity: 5,
	})
	assert.NoError(t, err)
	_, err = svc.CreateItem(user.ID, services.CreateStockItemInput{
		Name: "Pepper", SKU: "DRY-005", Quantity: 1, Unit: "kg", MinQuantity: 5,
	})
	assert.NoError(t, err)

	low, err := svc.List("", true)
	assert.NoError(t, err)
	assert.Len(t, low, 1)
	assert.Equal(t, "Pepper", low[0].Name)

	all, err := svc.List("", false)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}
