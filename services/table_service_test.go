package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/services"
	"github.com/Afofou24/chef-s-table-main/utils"
)

func TestSetStatusRefusesReleaseWithActiveOrder(t *testing.T) {
	db := openTestDB(t)
	waiter := seedWaiter(t, db)
	table := seedTable(t, db, "R1")
	burger := seedMenuItem(t, db, "Burger", 10.00)

	orders := services.NewOrderService(db, 10.0)
	tables := services.NewTableService(db)

	order, err := orders.Create(waiter.ID, services.CreateOrderInput{
		TableID:   &table.ID,
		OrderType: models.OrderTypeDineIn,
		Items:     []services.OrderLineInput{{MenuItemID: burger.ID, Quantity: 1}},
	})
	assert.NoError(t, err)

	_, err = tables.SetStatus(table.ID, models.TableStatusAvailable)
	assert.Error(t, err)
	assert.Equal(t, 422, utils.StatusCodeFor(err))

	_, err = orders.Cancel(order.ID)
	assert.NoError(t, err)

	updated, err := tables.SetStatus(table.ID, models.TableStatusAvailable)
	assert.NoError(t, err)
	assert.Equal(t, models.TableStatusAvailable, updated.Status)
}

func TestSetStatusUnavailableForMaintenance(t *testing.T) {
	db := openTestDB(t)
	table := seedTable(t, db, "R2")
	tables := services.NewTableService(db)

	updated, err := tables.SetStatus(table.ID, models.TableStatusUnavailable)
	assert.NoError(t, err)
	assert.Equal(t, models.TableStatusUnavailable, updated.Status)

	_, err = tables.SetStatus(table.ID, "broken")
	assert.Error(t, err)
}

func TestCreateReservationRejectsOverlap(t *testing.T) {
	db := openTestDB(t)
	table := seedTable(t, db, "R3")
	tables := services.NewTableService(db)

	first, err := tables.CreateReservation(services.ReservationInput{
		TableID:         table.ID,
		CustomerName:    "Ada",
		GuestsCount:     2,
		ReservationDate: "2026-09-15",
		ReservationTime: "19:00",
		Duration:        120,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.ReservationStatusPending, first.Status)

	// 20:00 falls inside the 19:00-21:00 window.
	_, err = tables.CreateReservation(services.ReservationInput{
		TableID:         table.ID,
		CustomerName:    "Grace",
		GuestsCount:     4,
		ReservationDate: "2026-09-15",
		ReservationTime: "20:00",
		Duration:        120,
	})
	assert.Error(t, err)
	assert.Equal(t, 422, utils.StatusCodeFor(err))

	// 21:00 starts exactly when the first one ends.
	_, err = tables.CreateReservation(services.ReservationInput{
		TableID:         table.ID,
		CustomerName:    "Grace",
		GuestsCount:     4,
		ReservationDate: "2026-09-15",
		ReservationTime: "21:00",
		Duration:        120,
	})
	assert.NoError(t, err)

	// Same slot on another day is fine.
	_, err = tables.CreateReservation(services.ReservationInput{
		TableID:         table.ID,
		CustomerName:    "Linus",
		GuestsCount:     2,
		ReservationDate: "2026-09-16",
		ReservationTime: "19:30",
		Duration:        120,
	})
	assert.NoError(t, err)
}

func TestCreateReservationValidation(t *testing.T) {
	db := openTestDB(t)
	table := seedTable(t, db, "R4")
	tables := services.NewTableService(db)

	_, err := tables.CreateReservation(services.ReservationInput{
		TableID: table.ID, CustomerName: "Ada", GuestsCount: 2,
		ReservationDate: "15-09-2026", ReservationTime: "19:00",
	})
	assert.Error(t, err, "date must be YYYY-MM-DD")

	_, err = tables.CreateReservation(services.ReservationInput{
		TableID: table.ID, CustomerName: "Ada", GuestsCount: 2,
		ReservationDate: "2026-09-15", ReservationTime: "25:00",
	})
	assert.Error(t, err, "time must be HH:MM")

	_, err = tables.CreateReservation(services.ReservationInput{
		TableID: 9999, CustomerName: "Ada", GuestsCount: 2,
		ReservationDate: "2026-09-15", ReservationTime: "19:00",
	})
	assert.Equal(t, 404, utils.StatusCodeFor(err))
}

func TestReservationStatusKeepsTableInStep(t *testing.T) {
	db := openTestDB(t)
	table := seedTable(t, db, "R5")
	tables := services.NewTableService(db)

	reservation, err := tables.CreateReservation(services.ReservationInput{
		TableID:         table.ID,
		CustomerName:    "Ada",
		GuestsCount:     2,
		ReservationDate: "2026-09-15",
		ReservationTime: "19:00",
	})
	assert.NoError(t, err)

	_, err = tables.UpdateReservationStatus(reservation.ID, models.ReservationStatusConfirmed)
	assert.NoError(t, err)
	var reserved models.RestaurantTable
	assert.NoError(t, db.First(&reserved, table.ID).Error)
	assert.Equal(t, models.TableStatusReserved, reserved.Status)

	_, err = tables.UpdateReservationStatus(reservation.ID, models.ReservationStatusNoShow)
	assert.NoError(t, err)
	var freed models.RestaurantTable
	assert.NoError(t, db.First(&freed, table.ID).Error)
	assert.Equal(t, models.TableStatusAvailable, freed.Status)
}

func TestUpdateReservationGuardsTerminalStates(t *testing.T) {
	db := openTestDB(t)
	table := seedTable(t, db, "R6")
	tables := services.NewTableService(db)

	reservation, err := tables.CreateReservation(services.ReservationInput{
		TableID:         table.ID,
		CustomerName:    "Ada",
		GuestsCount:     2,
		ReservationDate: "2026-09-15",
		ReservationTime: "19:00",
	})
	assert.NoError(t, err)

	_, err = tables.UpdateReservationStatus(reservation.ID, models.ReservationStatusCancelled)
	assert.NoError(t, err)

	_, err = tables.UpdateReservation(reservation.ID, services.ReservationInput{
		TableID:         table.ID,
		CustomerName:    "Ada",
		GuestsCount:     4,
		ReservationDate: "2026-09-15",
		ReservationTime: "20:00",
	})
	assert.Error(t, err)
	assert.Equal(t, 422, utils.StatusCodeFor(err))
}
