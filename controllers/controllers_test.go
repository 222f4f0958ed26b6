package controllers_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Afofou24/chef-s-table-main/models"
)

var testDBCounter int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:ctrl_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
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
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// asUser stands in for the auth middleware in tests.
func asUser(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.RestaurantTable, models.MenuItem) {
	t.Helper()
	table := models.RestaurantTable{Number: "T1", Capacity: 4, Status: models.TableStatusAvailable}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("failed to seed table: %v", err)
	}
	category := models.Category{Name: "Mains"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	menu := models.MenuItem{CategoryID: category.ID, Name: "Test Food", Price: 10.0, IsAvailable: true}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}
	return table, menu
}
