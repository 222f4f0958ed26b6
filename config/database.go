package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database configured through the environment.
// DB_DRIVER selects mysql (default) or sqlite; DB_DSN overrides the DSN.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	dsn := os.Getenv("DB_DSN")

	if driver == "sqlite" {
		if dsn == "" {
			dsn = "chefs_table.db"
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}

	if dsn == "" {
		user := getenv("DB_USER", "root")
		pass := os.Getenv("DB_PASSWORD")
		host := getenv("DB_HOST", "127.0.0.1")
		port := getenv("DB_PORT", "3306")
		name := getenv("DB_NAME", "chefs_table")
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, pass, host, port, name)
	}
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
