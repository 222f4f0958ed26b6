package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Afofou24/chef-s-table-main/controllers"
	"github.com/Afofou24/chef-s-table-main/middlewares"
	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/services"
)

func SetupRouter(db *gorm.DB, taxRate float64) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	orderSvc := services.NewOrderService(db, taxRate)
	itemSvc := services.NewOrderItemService(db, taxRate)
	paymentSvc := services.NewPaymentService(db)
	tableSvc := services.NewTableService(db)
	stockSvc := services.NewStockService(db)
	settingSvc := services.NewSettingService(db)

	userCtrl := controllers.NewUserController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	menuCtrl := controllers.NewMenuController(db)
	tableCtrl := controllers.NewTableController(db, tableSvc)
	reservationCtrl := controllers.NewReservationController(tableSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	itemCtrl := controllers.NewOrderItemController(itemSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	stockCtrl := controllers.NewStockController(stockSvc)
	settingCtrl := controllers.NewSettingController(settingSvc)
	reportCtrl := controllers.NewReportController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Login/register behind the strict limiter
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())

	api.GET("/profile", userCtrl.GetProfile)
	api.GET("/users", userCtrl.GetAllUsers)

	// CATALOG
	api.GET("/categories", categoryCtrl.GetAllCategories)
	api.POST("/categories", middlewares.RequireRoles(models.RoleAdmin), categoryCtrl.CreateCategory)
	api.PATCH("/categories/:cat_id", middlewares.RequireRoles(models.RoleAdmin), categoryCtrl.UpdateCategory)
	api.DELETE("/categories/:cat_id", middlewares.RequireRoles(models.RoleAdmin), categoryCtrl.DeleteCategory)

	api.GET("/menu-items", menuCtrl.GetAllMenuItems)
	api.GET("/menu-items/:menu_id", menuCtrl.GetMenuItemByID)
	api.POST("/menu-items", middlewares.RequireRoles(models.RoleAdmin), menuCtrl.CreateMenuItem)
	api.PATCH("/menu-items/:menu_id", middlewares.RequireRoles(models.RoleAdmin), menuCtrl.UpdateMenuItem)
	api.DELETE("/menu-items/:menu_id", middlewares.RequireRoles(models.RoleAdmin), menuCtrl.DeleteMenuItem)

	// TABLES
	api.GET("/tables", tableCtrl.GetAllTables)
	api.GET("/tables/:table_id", tableCtrl.GetTableByID)
	api.POST("/tables", middlewares.RequireRoles(models.RoleAdmin), tableCtrl.CreateTable)
	api.PATCH("/tables/:table_id", middlewares.RequireRoles(models.RoleAdmin), tableCtrl.UpdateTable)
	api.PATCH("/tables/:table_id/status", tableCtrl.UpdateTableStatus)
	api.DELETE("/tables/:table_id", middlewares.RequireRoles(models.RoleAdmin), tableCtrl.DeleteTable)

	// RESERVATIONS
	api.GET("/reservations", reservationCtrl.GetAllReservations)
	api.POST("/reservations", reservationCtrl.CreateReservation)
	api.PATCH("/reservations/:reservation_id", reservationCtrl.UpdateReservation)
	api.PATCH("/reservations/:reservation_id/status", reservationCtrl.UpdateReservationStatus)

	// ORDERS
	api.GET("/orders", orderCtrl.GetAllOrders)
	api.POST("/orders", middlewares.RequireRoles(models.RoleWaiter, models.RoleCashier), orderCtrl.CreateOrder)
	api.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	api.POST("/orders/:order_id/items", middlewares.RequireRoles(models.RoleWaiter, models.RoleCashier), orderCtrl.AddItems)
	api.PATCH("/orders/:order_id/discount", middlewares.RequireRoles(models.RoleCashier), orderCtrl.ApplyDiscount)
	api.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	api.POST("/orders/:order_id/cancel", middlewares.RequireRoles(models.RoleWaiter, models.RoleCashier), orderCtrl.CancelOrder)
	api.DELETE("/orders/:order_id", middlewares.RequireRoles(models.RoleAdmin), orderCtrl.DeleteOrder)

	// ORDER ITEMS / KITCHEN
	api.GET("/kitchen/items", middlewares.RequireRoles(models.RoleChef), itemCtrl.GetKitchenItems)
	api.PATCH("/order-items/:item_id/status", middlewares.RequireRoles(models.RoleChef, models.RoleWaiter), itemCtrl.UpdateItemStatus)
	api.PATCH("/order-items/:item_id", middlewares.RequireRoles(models.RoleWaiter, models.RoleCashier), itemCtrl.UpdateItem)
	api.DELETE("/order-items/:item_id", middlewares.RequireRoles(models.RoleWaiter, models.RoleCashier), itemCtrl.DeleteItem)

	// PAYMENTS
	api.GET("/payments", middlewares.RequireRoles(models.RoleCashier), paymentCtrl.GetAllPayments)
	api.POST("/payments", middlewares.RequireRoles(models.RoleCashier), paymentCtrl.CreatePayment)
	api.GET("/payments/summary", middlewares.RequireRoles(models.RoleCashier), paymentCtrl.GetDailySummary)
	api.GET("/payments/:payment_id", middlewares.RequireRoles(models.RoleCashier), paymentCtrl.GetPaymentByID)
	api.POST("/payments/:payment_id/refund", middlewares.RequireRoles(models.RoleCashier), paymentCtrl.RefundPayment)
	api.DELETE("/payments/:payment_id", middlewares.RequireRoles(models.RoleAdmin), paymentCtrl.DeletePayment)

	// STOCK
	api.GET("/stock-items", stockCtrl.GetAllStockItems)
	api.GET("/stock-items/low", stockCtrl.GetLowStockItems)
	api.POST("/stock-items", middlewares.RequireRoles(models.RoleAdmin), stockCtrl.CreateStockItem)
	api.GET("/stock-items/:item_id", stockCtrl.GetStockItemByID)
	api.POST("/stock-items/:item_id/adjust", stockCtrl.AdjustStock)
	api.GET("/stock-items/:item_id/movements", stockCtrl.GetStockMovements)

	// SETTINGS
	api.GET("/settings", settingCtrl.GetAllSettings)
	api.GET("/settings/:key", settingCtrl.GetSetting)
	api.PUT("/settings", settingCtrl.UpsertSetting)

	// REPORTS
	api.GET("/dashboard/stats", reportCtrl.GetDashboardStats)
	api.GET("/reports/popular-items", middlewares.RequireRoles(models.RoleAdmin), reportCtrl.GetPopularItems)
	api.GET("/reports/sales", middlewares.RequireRoles(models.RoleAdmin), reportCtrl.GetSalesReport)

	return r
}
