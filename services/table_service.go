package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Afofou24/chef-s-table-main/models"
	"github.com/Afofou24/chef-s-table-main/utils"
)

// TableService tracks table occupancy and reservations. Occupancy changes
// driven by orders live in the order/payment services; this owns the
// reservation side branches and direct status edits.
type TableService struct {
	DB *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{DB: db}
}

type ReservationInput struct {
	TableID         uint   `json:"table_id" binding:"required"`
	CustomerName    string `json:"customer_name" binding:"required,max=100"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email"`
	GuestsCount     int    `json:"guests_count" binding:"required,min=1,max=20"`
	ReservationDate string `json:"reservation_date" binding:"required"`
	ReservationTime string `json:"reservation_time" binding:"required"`
	Duration        int    `json:"duration"`
	Notes           string `json:"notes"`
}

func (s *TableService) GetTable(tableID uint) (*models.RestaurantTable, error) {
	var table models.RestaurantTable
	if err := s.DB.First(&table, tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("table", tableID)
		}
		return nil, utils.WrapPersistence("load table", err)
	}
	return &table, nil
}

// SetStatus edits a table status manually (e.g. marking it unavailable for
// maintenance). Releasing an occupied table is refused while an active
// order still references it; the order flow owns that transition.
func (s *TableService) SetStatus(tableID uint, status string) (*models.RestaurantTable, error) {
	switch status {
	case models.TableStatusAvailable, models.TableStatusOccupied,
		models.TableStatusReserved, models.TableStatusUnavailable:
	default:
		return nil, utils.NewValidationError("invalid table status %q", status)
	}

	var table models.RestaurantTable
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&table, tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("table", tableID)
			}
			return utils.WrapPersistence("load table", err)
		}

		if status == models.TableStatusAvailable {
			var active int64
			err := tx.Model(&models.Order{}).
				Where("table_id = ? AND status NOT IN ?", table.ID,
					[]string{models.OrderStatusCompleted, models.OrderStatusCancelled}).
				Count(&active).Error
			if err != nil {
				return utils.WrapPersistence("count active orders", err)
			}
			if active > 0 {
				return utils.NewConflictError("table %s still has an active order", table.Number)
			}
		}

		table.Status = status
		if err := tx.Save(&table).Error; err != nil {
			return utils.WrapPersistence("save table", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func reservationWindow(start string, duration int) (time.Time, time.Time, error) {
	begin, err := time.Parse("15:04", start)
	if err != nil {
		return time.Time{}, time.Time{}, utils.NewValidationError("invalid reservation time %q", start)
	}
	if duration <= 0 {
		duration = 120
	}
	return begin, begin.Add(time.Duration(duration) * time.Minute), nil
}

// checkOverlap rejects a reservation whose [start, start+duration) interval
// intersects any non-cancelled reservation on the same table and date.
func (s *TableService) checkOverlap(tx *gorm.DB, in ReservationInput, excludeID uint) error {
	begin, end, err := reservationWindow(in.ReservationTime, in.Duration)
	if err != nil {
		return err
	}

	var existing []models.Reservation
	query := tx.Where("table_id = ? AND reservation_date = ? AND status <> ?",
		in.TableID, in.ReservationDate, models.ReservationStatusCancelled)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Find(&existing).Error; err != nil {
		return utils.WrapPersistence("load reservations", err)
	}

	for _, r := range existing {
		otherBegin, otherEnd, err := reservationWindow(r.ReservationTime, r.Duration)
		if err != nil {
			continue
		}
		if begin.Before(otherEnd) && otherBegin.Before(end) {
			return utils.NewConflictError("table is already reserved for this slot")
		}
	}
	return nil
}

// CreateReservation books a table slot after the overlap check.
func (s *TableService) CreateReservation(in ReservationInput) (*models.Reservation, error) {
	if _, err := time.Parse("2006-01-02", in.ReservationDate); err != nil {
		return nil, utils.NewValidationError("invalid reservation date %q", in.ReservationDate)
	}
	if in.GuestsCount < 1 || in.GuestsCount > 20 {
		return nil, utils.NewValidationError("guests count must be between 1 and 20")
	}
	if in.Duration == 0 {
		in.Duration = 120
	}
	if in.Duration < 30 || in.Duration > 480 {
		return nil, utils.NewValidationError("duration must be between 30 and 480 minutes")
	}

	var reservation models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var table models.RestaurantTable
		if err := tx.First(&table, in.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("table", in.TableID)
			}
			return utils.WrapPersistence("load table", err)
		}

		if err := s.checkOverlap(tx, in, 0); err != nil {
			return err
		}

		reservation = models.Reservation{
			TableID:         in.TableID,
			CustomerName:    in.CustomerName,
			CustomerPhone:   in.CustomerPhone,
			CustomerEmail:   in.CustomerEmail,
			GuestsCount:     in.GuestsCount,
			ReservationDate: in.ReservationDate,
			ReservationTime: in.ReservationTime,
			Duration:        in.Duration,
			Status:          models.ReservationStatusPending,
			Notes:           in.Notes,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return utils.WrapPersistence("create reservation", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateReservationStatus moves the reservation and keeps the table status
// in step: confirmation reserves the table, cancelling or no-showing the
// last confirmed reservation of that date frees it again.
func (s *TableService) UpdateReservationStatus(reservationID uint, status string) (*models.Reservation, error) {
	switch status {
	case models.ReservationStatusPending, models.ReservationStatusConfirmed,
		models.ReservationStatusCancelled, models.ReservationStatusCompleted,
		models.ReservationStatusNoShow:
	default:
		return nil, utils.NewValidationError("invalid reservation status %q", status)
	}

	var reservation models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("reservation", reservationID)
			}
			return utils.WrapPersistence("load reservation", err)
		}

		reservation.Status = status
		if err := tx.Save(&reservation).Error; err != nil {
			return utils.WrapPersistence("save reservation", err)
		}

		switch status {
		case models.ReservationStatusConfirmed:
			err := tx.Model(&models.RestaurantTable{}).
				Where("id = ?", reservation.TableID).
				Update("status", models.TableStatusReserved).Error
			if err != nil {
				return utils.WrapPersistence("reserve table", err)
			}
		case models.ReservationStatusCancelled, models.ReservationStatusNoShow:
			var confirmed int64
			err := tx.Model(&models.Reservation{}).
				Where("table_id = ? AND id <> ? AND reservation_date = ? AND status = ?",
					reservation.TableID, reservation.ID, reservation.ReservationDate,
					models.ReservationStatusConfirmed).
				Count(&confirmed).Error
			if err != nil {
				return utils.WrapPersistence("count confirmed reservations", err)
			}
			if confirmed == 0 {
				err := tx.Model(&models.RestaurantTable{}).
					Where("id = ?", reservation.TableID).
					Update("status", models.TableStatusAvailable).Error
				if err != nil {
					return utils.WrapPersistence("release table", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateReservation edits an open reservation, re-running the overlap check.
func (s *TableService) UpdateReservation(reservationID uint, in ReservationInput) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("reservation", reservationID)
			}
			return utils.WrapPersistence("load reservation", err)
		}

		switch reservation.Status {
		case models.ReservationStatusCompleted, models.ReservationStatusCancelled, models.ReservationStatusNoShow:
			return utils.NewInvalidStateError("cannot modify a %s reservation", reservation.Status)
		}

		if in.Duration == 0 {
			in.Duration = 120
		}
		if err := s.checkOverlap(tx, in, reservation.ID); err != nil {
			return err
		}

		reservation.TableID = in.TableID
		reservation.CustomerName = in.CustomerName
		reservation.CustomerPhone = in.CustomerPhone
		reservation.CustomerEmail = in.CustomerEmail
		reservation.GuestsCount = in.GuestsCount
		reservation.ReservationDate = in.ReservationDate
		reservation.ReservationTime = in.ReservationTime
		reservation.Duration = in.Duration
		reservation.Notes = in.Notes
		if err := tx.Save(&reservation).Error; err != nil {
			return utils.WrapPersistence("save reservation", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// ListReservations filters by date, table and status.
func (s *TableService) ListReservations(date, status string, tableID uint) ([]models.Reservation, error) {
	query := s.DB.Preload("Table")
	if date != "" {
		query = query.Where("reservation_date = ?", date)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if tableID != 0 {
		query = query.Where("table_id = ?", tableID)
	}

	var reservations []models.Reservation
	if err := query.Order("reservation_date asc, reservation_time asc").Find(&reservations).Error; err != nil {
		return nil, utils.WrapPersistence("list reservations", err)
	}
	return reservations, nil
}
