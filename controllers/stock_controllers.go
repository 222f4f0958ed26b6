package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Afofou24/chef-s-table-main/services"
	"github.com/Afofou24/chef-s-table-main/utils"
)

type StockController struct {
	Stock *services.StockService
}

func NewStockController(stock *services.StockService) *StockController {
	return &StockController{Stock: stock}
}

// GetAllStockItems
func (sc *StockController) GetAllStockItems(c *gin.Context) {
	lowOnly := c.Query("low_stock") == "true"
	items, err := sc.Stock.List(c.Query("category"), lowOnly)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of stock items", items)
}

// CreateStockItem
func (sc *StockController) CreateStockItem(c *gin.Context) {
	var body services.CreateStockItemInput
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := sc.Stock.CreateItem(currentUserID(c), body)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.InfoLogger.Printf("Stock item created: %s (%s, qty=%.2f)", item.Name, item.SKU, item.Quantity)
	utils.RespondJSON(c, http.StatusCreated, "Stock item created", item)
}

// GetStockItemByID -> item with its recent movements and low-stock flag
func (sc *StockController) GetStockItemByID(c *gin.Context) {
	id, ok := paramID(c, "item_id")
	if !ok {
		return
	}

	item, err := sc.Stock.Get(id)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Stock item detail", gin.H{
		"item":      item,
		"low_stock": item.IsLowStock(),
	})
}

// AdjustStock -> one atomic quantity change plus its movement record
func (sc *StockController) AdjustStock(c *gin.Context) {
	id, ok := paramID(c, "item_id")
	if !ok {
		return
	}

	var body services.AdjustStockInput
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := sc.Stock.Adjust(currentUserID(c), id, body)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.InfoLogger.Printf("Stock adjusted: %s %s %.2f (now %.2f %s)",
		item.SKU, body.Type, body.Quantity, item.Quantity, item.Unit)
	utils.RespondJSON(c, http.StatusOK, "Stock adjusted", item)
}

// GetStockMovements -> full movement history of one item
func (sc *StockController) GetStockMovements(c *gin.Context) {
	id, ok := paramID(c, "item_id")
	if !ok {
		return
	}

	movements, err := sc.Stock.Movements(id)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Stock movements", movements)
}

// GetLowStockItems
func (sc *StockController) GetLowStockItems(c *gin.Context) {
	items, err := sc.Stock.List("", true)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Low stock items", items)
}
