package repositories

import (
	"errors"
	"fmt"
	"time"

	"dealership-backend/apperrors"
	"dealership-backend/db/models"

	"gorm.io/gorm"
)

type BookingRepository interface {
	CreateBooking(booking *models.ServiceBooking) (*models.ServiceBooking, error)
	GetBookingByID(id string) (*models.ServiceBooking, error)
	UpdateBooking(booking *models.ServiceBooking) (*models.ServiceBooking, error)
	GetBookingsByDate(date time.Time) ([]models.ServiceBooking, error)
	GetBookingsByStatus(status models.BookingStatus) ([]models.ServiceBooking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) CreateBooking(booking *models.ServiceBooking) (*models.ServiceBooking, error) {
	if err := r.db.Create(booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

func (r *bookingRepository) GetBookingByID(id string) (*models.ServiceBooking, error) {
	var booking models.ServiceBooking
	err := r.db.Where("id = ?", id).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("booking %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateBooking(booking *models.ServiceBooking) (*models.ServiceBooking, error) {
	if err := r.db.Save(booking).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return booking, nil
}

// GetBookingsByDate returns the workshop schedule for one calendar day.
func (r *bookingRepository) GetBookingsByDate(date time.Time) ([]models.ServiceBooking, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var bookings []models.ServiceBooking
	err := r.db.Where("preferred_date >= ? AND preferred_date < ?", dayStart, dayEnd).
		Order("preferred_slot ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for %s: %w", dayStart.Format("2006-01-02"), err)
	}
	return bookings, nil
}

func (r *bookingRepository) GetBookingsByStatus(status models.BookingStatus) ([]models.ServiceBooking, error) {
	var bookings []models.ServiceBooking
	err := r.db.Where("status = ?", status).
		Order("preferred_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s bookings: %w", status, err)
	}
	return bookings, nil
}
