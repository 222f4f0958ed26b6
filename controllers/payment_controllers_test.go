package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Afofou24/chef-s-table-main/controllers"
	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/services"
	"github.com/Afofou24/chef-s-table-main/utils"
)

func setupPaymentRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(1, models.RoleCashier))

	paymentCtrl := controllers.NewPaymentController(services.NewPaymentService(db))
	router.POST("/payments", paymentCtrl.CreatePayment)
	router.GET("/payments/:payment_id", paymentCtrl.GetPaymentByID)
	router.POST("/payments/:payment_id/refund", paymentCtrl.RefundPayment)
	router.GET("/payments/summary", paymentCtrl.GetDailySummary)
	return router
}

func placeTestOrder(t *testing.T, db *gorm.DB, menuID uint) models.Order {
	t.Helper()
	svc := services.NewOrderService(db, 10.0)
	order, err := svc.Create(1, services.CreateOrderInput{
		OrderType: models.OrderTypeTakeaway,
		Items:     []services.OrderLineInput{{MenuItemID: menuID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("failed to place order: %v", err)
	}
	return *order
}

func TestCreatePaymentSettlesOrder(t *testing.T) {
	db := openTestDB(t)
	_, menu := seedCatalog(t, db)
	router := setupPaymentRouter(db)
	order := placeTestOrder(t, db, menu.ID)

	payload := fmt.Sprintf(`{"order_id":%d,"amount":22.00,"payment_method":"cash"}`, order.ID)
	req, _ := http.NewRequest("POST", "/payments", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data services.PaymentResult `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.PaymentStatusCompleted, created.Data.Payment.Status)
	assert.InDelta(t, 0, created.Data.Remaining, utils.MoneyEpsilon)

	var settled models.Order
	assert.NoError(t, db.First(&settled, order.ID).Error)
	assert.Equal(t, models.OrderStatusCompleted, settled.Status)
}

func TestCreatePaymentOverAmountRejected(t *testing.T) {
	db := openTestDB(t)
	_, menu := seedCatalog(t, db)
	router := setupPaymentRouter(db)
	order := placeTestOrder(t, db, menu.ID)

	payload := fmt.Sprintf(`{"order_id":%d,"amount":25.00,"payment_method":"cash"}`, order.ID)
	req, _ := http.NewRequest("POST", "/payments", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	payload = fmt.Sprintf(`{"order_id":%d,"amount":22.00,"payment_method":"iou"}`, order.ID)
	req, _ = http.NewRequest("POST", "/payments", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefundPaymentEndpoint(t *testing.T) {
	db := openTestDB(t)
	_, menu := seedCatalog(t, db)
	router := setupPaymentRouter(db)
	order := placeTestOrder(t, db, menu.ID)

	payments := services.NewPaymentService(db)
	result, err := payments.Record(1, services.RecordPaymentInput{
		OrderID:       order.ID,
		Amount:        22.00,
		PaymentMethod: models.PaymentMethodCard,
	})
	assert.NoError(t, err)

	// Reason is mandatory.
	req, _ := http.NewRequest("POST", fmt.Sprintf("/payments/%d/refund", result.Payment.ID),
		bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req, _ = http.NewRequest("POST", fmt.Sprintf("/payments/%d/refund", result.Payment.ID),
		bytes.NewBufferString(`{"reason":"double charge"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var refunded struct {
		Data models.Payment `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &refunded))
	assert.Equal(t, models.PaymentStatusRefunded, refunded.Data.Status)
}

func TestDailySummaryEndpoint(t *testing.T) {
	db := openTestDB(t)
	_, menu := seedCatalog(t, db)
	router := setupPaymentRouter(db)
	order := placeTestOrder(t, db, menu.ID)

	payments := services.NewPaymentService(db)
	_, err := payments.Record(1, services.RecordPaymentInput{
		OrderID:       order.ID,
		Amount:        22.00,
		PaymentMethod: models.PaymentMethodCash,
	})
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", "/payments/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		Data services.DailySummary `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, int64(1), summary.Data.TotalCount)
	assert.InDelta(t, 22.00, summary.Data.TotalAmount, utils.MoneyEpsilon)

	req, _ = http.NewRequest("GET", "/payments/summary?date=bogus", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
