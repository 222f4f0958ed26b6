package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Afofou24/chef-s-table-main/services"
	"github.com/Afofou24/chef-s-table-main/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// GetAllOrders -> list orders with their items, filterable
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var filter services.OrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orders, err := oc.Orders.List(filter)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// CreateOrder -> place an order with its initial lines
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body services.CreateOrderInput
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Create(currentUserID(c), body)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %s created (table=%v, type=%s, total=%.2f)",
		order.OrderNumber, order.TableID, order.OrderType, order.TotalAmount)
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID -> one order with items and payments
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := paramID(c, "order_id")
	if !ok {
		return
	}

	order, err := oc.Orders.Get(id)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// AddItems -> append lines to an open order
func (oc *OrderController) AddItems(c *gin.Context) {
	id, ok := paramID(c, "order_id")
	if !ok {
		return
	}

	var body struct {
		Items []services.OrderLineInput `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.AddItems(id, body.Items)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Items added", order)
}

// ApplyDiscount -> set the order discount
func (oc *OrderController) ApplyDiscount(c *gin.Context) {
	id, ok := paramID(c, "order_id")
	if !ok {
		return
	}

	var body struct {
		DiscountAmount float64 `json:"discount_amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.ApplyDiscount(id, body.DiscountAmount)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Discount applied", order)
}

// UpdateOrderStatus -> manual status set, authoritative over derivation
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c, "order_id")
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

	order, err := oc.Orders.UpdateStatus(id, body.Status)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// CancelOrder -> cancel an order and its items
func (oc *OrderController) CancelOrder(c *gin.Context) {
	id, ok := paramID(c, "order_id")
	if !ok {
		return
	}

	order, err := oc.Orders.Cancel(id)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %s cancelled", order.OrderNumber)
	utils.RespondJSON(c, http.StatusOK, "Order cancelled", order)
}

// DeleteOrder -> remove an empty order shell
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := paramID(c, "order_id")
	if !ok {
		return
	}

	if err := oc.Orders.Delete(id); err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": id})
}
