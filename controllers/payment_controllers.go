package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Afofou24/chef-s-table-main/services"
	"github.com/Afofou24/chef-s-table-main/utils"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

// GetAllPayments
func (pc *PaymentController) GetAllPayments(c *gin.Context) {
	orderID, _ := strconv.ParseUint(c.Query("order_id"), 10, 32)
	payments, err := pc.Payments.List(uint(orderID), c.Query("status"), c.Query("payment_method"))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All payments", payments)
}

// CreatePayment -> record a payment against the order's remaining balance
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var body services.RecordPaymentInput
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := pc.Payments.Record(currentUserID(c), body)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.InfoLogger.Printf("Payment %s recorded for order %d (%.2f %s, remaining %.2f)",
		result.Payment.PaymentNumber, result.Payment.OrderID,
		result.Payment.Amount, result.Payment.PaymentMethod, result.Remaining)
	utils.RespondJSON(c, http.StatusCreated, "Payment recorded", result)
}

// GetPaymentByID
func (pc *PaymentController) GetPaymentByID(c *gin.Context) {
	id, ok := paramID(c, "payment_id")
	if !ok {
		return
	}

	payment, err := pc.Payments.Get(id)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment detail", payment)
}

// RefundPayment -> status transition, the historical record stays
func (pc *PaymentController) RefundPayment(c *gin.Context) {
	id, ok := paramID(c, "payment_id")
	if !ok {
		return
	}

	var body struct {
		Reason string `json:"reason" binding:"required,max=500"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment, err := pc.Payments.Refund(id, body.Reason)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.InfoLogger.Printf("Payment %s refunded: %s", payment.PaymentNumber, body.Reason)
	utils.RespondJSON(c, http.StatusOK, "Payment refunded", payment)
}

// DeletePayment -> only non-completed payments may go
func (pc *PaymentController) DeletePayment(c *gin.Context) {
	id, ok := paramID(c, "payment_id")
	if !ok {
		return
	}

	if err := pc.Payments.Delete(id); err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment deleted", gin.H{"payment_id": id})
}

// GetDailySummary -> completed payments of one day grouped by method
func (pc *PaymentController) GetDailySummary(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	summary, err := pc.Payments.Daily(date)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daily payment summary", summary)
}
