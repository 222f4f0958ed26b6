package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/services"
	"github.com/Afofou24/chef-s-table-main/utils"
)

type SettingController struct {
	Settings *services.SettingService
}

func NewSettingController(settings *services.SettingService) *SettingController {
	return &SettingController{Settings: settings}
}

// GetAllSettings
func (sc *SettingController) GetAllSettings(c *gin.Context) {
	settings, err := sc.Settings.List(c.Query("group"))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All settings", settings)
}

// GetSetting
func (sc *SettingController) GetSetting(c *gin.Context) {
	setting, err := sc.Settings.Get(c.Param("key"))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Setting", setting)
}

// UpsertSetting -> admin only. Tax changes apply to new service wiring, not
// retroactively to totals already stored on orders.
func (sc *SettingController) UpsertSetting(c *gin.Context) {
	if !requireRole(c, models.RoleAdmin) {
		return
	}

	var body struct {
		Key   string `json:"key" binding:"required,max=100"`
		Value string `json:"value" binding:"required"`
		Type  string `json:"type" binding:"omitempty,oneof=string integer float boolean"`
		Group string `json:"group"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Type == "" {
		body.Type = models.SettingTypeString
	}

	setting, err := sc.Settings.Set(body.Key, body.Value, body.Type, body.Group)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.InfoLogger.Printf("Setting %s updated to %q", setting.Key, setting.Value)
	utils.RespondJSON(c, http.StatusOK, "Setting saved", setting)
}
