package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/utils"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// GetDashboardStats -> headline counts for the dashboard
func (rc *ReportController) GetDashboardStats(c *gin.Context) {
	var stats struct {
		ActiveOrders    int64   `json:"active_orders"`
		OccupiedTables  int64   `json:"occupied_tables"`
		AvailableTables int64   `json:"available_tables"`
		LowStockItems   int64   `json:"low_stock_items"`
		TodayRevenue    float64 `json:"today_revenue"`
		TodayOrders     int64   `json:"today_orders"`
	}

	today := time.Now().Format("2006-01-02")

	rc.DB.Model(&models.Order{}).
		Where("status NOT IN ?", []string{models.OrderStatusCompleted, models.OrderStatusCancelled}).
		Count(&stats.ActiveOrders)
	rc.DB.Model(&models.RestaurantTable{}).
		Where("status = ?", models.TableStatusOccupied).Count(&stats.OccupiedTables)
	rc.DB.Model(&models.RestaurantTable{}).
		Where("status = ?", models.TableStatusAvailable).Count(&stats.AvailableTables)
	rc.DB.Model(&models.StockItem{}).
		Where("quantity <= min_quantity").Count(&stats.LowStockItems)
	rc.DB.Model(&models.Payment{}).
		Where("status = ? AND created_at >= ?", models.PaymentStatusCompleted, today+" 00:00:00").
		Select("COALESCE(SUM(amount), 0)").Scan(&stats.TodayRevenue)
	rc.DB.Model(&models.Order{}).
		Where("created_at >= ?", today+" 00:00:00").Count(&stats.TodayOrders)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}

// GetPopularItems -> best sellers by line count and revenue
func (rc *ReportController) GetPopularItems(c *gin.Context) {
	var popular []struct {
		MenuItemID uint    `json:"menu_item_id"`
		Name       string  `json:"name"`
		Count      int64   `json:"count"`
		Revenue    float64 `json:"revenue"`
	}

	err := rc.DB.Raw(`
		SELECT m.id AS menu_item_id, m.name,
		       COUNT(oi.id) AS count, SUM(oi.unit_price * oi.quantity) AS revenue
		FROM order_items oi
		JOIN menu_items m ON oi.menu_item_id = m.id
		WHERE oi.status <> ?
		GROUP BY m.id, m.name
		ORDER BY count DESC
		LIMIT 10
	`, models.OrderItemStatusCancelled).Scan(&popular).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Popular items", popular)
}

// GetSalesReport -> completed-order totals per day over a date range
func (rc *ReportController) GetSalesReport(c *gin.Context) {
	from := c.Query("date_from")
	to := c.Query("date_to")
	if from == "" || to == "" {
		utils.RespondWithError(c, utils.NewValidationError("date_from and date_to are required"))
		return
	}

	var rows []struct {
		Day    string  `json:"day"`
		Orders int64   `json:"orders"`
		Total  float64 `json:"total"`
	}

	err := rc.DB.Model(&models.Order{}).
		Where("status = ? AND created_at >= ? AND created_at <= ?",
			models.OrderStatusCompleted, from+" 00:00:00", to+" 23:59:59").
		Select("DATE(created_at) AS day, COUNT(*) AS orders, SUM(total_amount) AS total").
		Group("DATE(created_at)").
		Order("day asc").
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Sales report", rows)
}
