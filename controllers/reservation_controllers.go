package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Afofou24/chef-s-table-main/services"
	"github.com/Afofou24/chef-s-table-main/utils"
)

type ReservationController struct {
	Tables *services.TableService
}

func NewReservationController(tables *services.TableService) *ReservationController {
	return &ReservationController{Tables: tables}
}

// GetAllReservations
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	tableID, _ := strconv.ParseUint(c.Query("table_id"), 10, 32)
	reservations, err := rc.Tables.ListReservations(c.Query("date"), c.Query("status"), uint(tableID))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// CreateReservation -> rejected on slot overlap
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var body services.ReservationInput
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Tables.CreateReservation(body)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation created for %s on %s %s (table %d)",
		reservation.CustomerName, reservation.ReservationDate,
		reservation.ReservationTime, reservation.TableID)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// UpdateReservation
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := paramID(c, "reservation_id")
	if !ok {
		return
	}

	var body services.ReservationInput
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Tables.UpdateReservation(id, body)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// UpdateReservationStatus -> confirm/cancel/complete/no-show
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, ok := paramID(c, "reservation_id")
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

	reservation, err := rc.Tables.UpdateReservationStatus(id, body.Status)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation status updated", reservation)
}
