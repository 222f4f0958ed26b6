package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Afofou24/chef-s-table-main/controllers"
	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/utils"
)

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	userCtrl := controllers.NewUserController(db)
	router.POST("/register", userCtrl.Register)
	router.POST("/login", userCtrl.Login)
	return router
}

func TestRegisterAndLogin(t *testing.T) {
	db := openTestDB(t)
	router := setupUserRouter(db)

	payload := `{"name":"Jane Smith","email":"Jane@Example.com","password":"supersecret1","role":"cashier"}`
	req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Email is stored lowercased.
	var user models.User
	assert.NoError(t, db.Where("email = ?", "jane@example.com").First(&user).Error)
	assert.Equal(t, models.RoleCashier, user.Role)
	assert.NotEqual(t, "supersecret1", user.Password)

	login := `{"email":"jane@example.com","password":"supersecret1"}`
	req, _ = http.NewRequest("POST", "/login", bytes.NewBufferString(login))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token    string `json:"token"`
			UserRole string `json:"user_role"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.RoleCashier, resp.Data.UserRole)

	claims, err := utils.ParseToken(resp.Data.Token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleCashier, claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := openTestDB(t)
	router := setupUserRouter(db)

	payload := `{"name":"Jane Smith","email":"jane@example.com","password":"supersecret1","role":"waiter"}`
	req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	req, _ = http.NewRequest("POST", "/login", bytes.NewBufferString(`{"email":"jane@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req, _ = http.NewRequest("POST", "/login", bytes.NewBufferString(`{"email":"nobody@example.com","password":"whatever"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	db := openTestDB(t)
	router := setupUserRouter(db)

	// Too-short password and unknown role are both binding failures.
	for _, payload := range []string{
		`{"name":"X","email":"x@example.com","password":"short","role":"waiter"}`,
		`{"name":"X","email":"x@example.com","password":"longenough1","role":"janitor"}`,
		`{"name":"X","email":"not-an-email","password":"longenough1","role":"waiter"}`,
	} {
		req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "payload: %s", payload)
	}
}
