package services_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Afofou24/chef-s-table-main/models"
)

var testDBCounter int64

// openTestDB gives every test its own named in-memory database so tests do
// not see each other's rows.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.RestaurantTable{},
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Reservation{},
		&models.StockItem{},
		&models.StockMovement{},
		&models.Setting{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedWaiter(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Name:     "Test Waiter",
		Email:    fmt.Sprintf("waiter%d@example.com", atomic.AddInt64(&testDBCounter, 1)),
		Password: "hashed",
		Role:     models.RoleWaiter,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed waiter: %v", err)
	}
	return user
}

func seedTable(t *testing.T, db *gorm.DB, number string) models.RestaurantTable {
	t.Helper()
	table := models.RestaurantTable{
		Number:   number,
		Capacity: 4,
		Status:   models.TableStatusAvailable,
	}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("failed to seed table: %v", err)
	}
	return table
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64) models.MenuItem {
	t.Helper()
	category := models.Category{Name: "Mains " + name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	item := models.MenuItem{
		CategoryID:  category.ID,
		Name:        name,
		Price:       price,
		IsAvailable: true,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}
	return item
}
