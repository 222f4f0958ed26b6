package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Afofou24/chef-s-table-main/utils"
)

var ErrNoPermission = errors.New("you do not have permission")

// paramID reads a numeric path parameter; a malformed one yields 404 since
// no entity can match it.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("invalid "+name))
		return 0, false
	}
	return uint(id), true
}

// currentUserID reads the acting staff member set by the auth middleware.
// The engine trusts this identity, it does not authenticate it.
func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func requireRole(c *gin.Context, roles ...string) bool {
	role, _ := c.Get("role")
	for _, r := range roles {
		if role == r {
			return true
		}
	}
	utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
	return false
}
