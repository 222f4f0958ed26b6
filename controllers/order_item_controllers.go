package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/services"
	"github.com/Afofou24/chef-s-table-main/utils"
)

type OrderItemController struct {
	Items *services.OrderItemService
}

func NewOrderItemController(items *services.OrderItemService) *OrderItemController {
	return &OrderItemController{Items: items}
}

// UpdateItemStatus -> kitchen advances (or rewinds) one line
func (oic *OrderItemController) UpdateItemStatus(c *gin.Context) {
	id, ok := paramID(c, "item_id")
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := oic.Items.UpdateStatus(id, body.Status)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item status updated", item)
}

// UpdateItem -> quantity/notes edit on an open order
func (oic *OrderItemController) UpdateItem(c *gin.Context) {
	id, ok := paramID(c, "item_id")
	if !ok {
		return
	}

	var body struct {
		Quantity int     `json:"quantity" binding:"required,min=1,max=99"`
		Notes    *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := oic.Items.UpdateQuantity(id, body.Quantity, body.Notes)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item updated", item)
}

// DeleteItem -> remove a line; the last line takes the order with it
func (oic *OrderItemController) DeleteItem(c *gin.Context) {
	id, ok := paramID(c, "item_id")
	if !ok {
		return
	}

	if err := oic.Items.Remove(id); err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item removed", gin.H{"item_id": id})
}

// GetKitchenItems -> pending/preparing lines of active orders, grouped per order
func (oic *OrderItemController) GetKitchenItems(c *gin.Context) {
	items, err := oic.Items.Kitchen()
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	grouped := make(map[uint][]models.OrderItem)
	for _, item := range items {
		grouped[item.OrderID] = append(grouped[item.OrderID], item)
	}
	utils.RespondJSON(c, http.StatusOK, "Kitchen items", grouped)
}
