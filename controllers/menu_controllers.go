package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenuItems
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	query := mc.DB.Preload("Category")
	if c.Query("available") == "true" {
		query = query.Where("is_available = ?", true)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var items []models.MenuItem
	if err := query.Order("name asc").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// CreateMenuItem
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var body struct {
		CategoryID      uint    `json:"category_id" binding:"required"`
		Name            string  `json:"name" binding:"required,max=255"`
		Description     string  `json:"description"`
		Price           float64 `json:"price" binding:"required,gt=0"`
		Image           string  `json:"image"`
		PreparationTime int     `json:"preparation_time"`
		IsAvailable     *bool   `json:"is_available"`
		IsFeatured      bool    `json:"is_featured"`
		Allergens       string  `json:"allergens"`
		Calories        int     `json:"calories"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.Category
	if err := mc.DB.First(&category, body.CategoryID).Error; err != nil {
		utils.RespondWithError(c, utils.NewNotFoundError("category", body.CategoryID))
		return
	}

	item := models.MenuItem{
		CategoryID:      body.CategoryID,
		Name:            body.Name,
		Description:     body.Description,
		Price:           body.Price,
		Image:           body.Image,
		PreparationTime: body.PreparationTime,
		IsAvailable:     true,
		IsFeatured:      body.IsFeatured,
		Allergens:       body.Allergens,
		Calories:        body.Calories,
	}
	if body.IsAvailable != nil {
		item.IsAvailable = *body.IsAvailable
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// GetMenuItemByID
func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	id, ok := paramID(c, "menu_id")
	if !ok {
		return
	}

	var item models.MenuItem
	if err := mc.DB.Preload("Category").First(&item, id).Error; err != nil {
		utils.RespondWithError(c, utils.NewNotFoundError("menu item", id))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// UpdateMenuItem -> price edits never touch already placed orders
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, ok := paramID(c, "menu_id")
	if !ok {
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondWithError(c, utils.NewNotFoundError("menu item", id))
		return
	}

	var body struct {
		CategoryID      *uint    `json:"category_id"`
		Name            *string  `json:"name"`
		Description     *string  `json:"description"`
		Price           *float64 `json:"price"`
		Image           *string  `json:"image"`
		PreparationTime *int     `json:"preparation_time"`
		IsAvailable     *bool    `json:"is_available"`
		IsFeatured      *bool    `json:"is_featured"`
		Allergens       *string  `json:"allergens"`
		Calories        *int     `json:"calories"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Price != nil && *body.Price <= 0 {
		utils.RespondWithError(c, utils.NewValidationError("price must be greater than zero"))
		return
	}

	if body.CategoryID != nil {
		item.CategoryID = *body.CategoryID
	}
	if body.Name != nil {
		item.Name = *body.Name
	}
	if body.Description != nil {
		item.Description = *body.Description
	}
	if body.Price != nil {
		item.Price = *body.Price
	}
	if body.Image != nil {
		item.Image = *body.Image
	}
	if body.PreparationTime != nil {
		item.PreparationTime = *body.PreparationTime
	}
	if body.IsAvailable != nil {
		item.IsAvailable = *body.IsAvailable
	}
	if body.IsFeatured != nil {
		item.IsFeatured = *body.IsFeatured
	}
	if body.Allergens != nil {
		item.Allergens = *body.Allergens
	}
	if body.Calories != nil {
		item.Calories = *body.Calories
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, ok := paramID(c, "menu_id")
	if !ok {
		return
	}

	var used int64
	if err := mc.DB.Model(&models.OrderItem{}).Where("menu_item_id = ?", id).Count(&used).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if used > 0 {
		utils.RespondWithError(c, utils.NewConflictError("menu item is referenced by existing orders, mark it unavailable instead"))
		return
	}

	if err := mc.DB.Delete(&models.MenuItem{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"menu_id": id})
}
