package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adityapratama/gymflow/internal/domain/bookings"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateBooking persists the booking and its trainee link rows.
func (r *BookingRepository) CreateBooking(ctx context.Context, booking *bookings.Booking, traineeExtIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return err
		}

		links := make([]bookings.BookingTrainee, len(traineeExtIDs))
		for i, extID := range traineeExtIDs {
			links[i] = bookings.BookingTrainee{
				BookingID:    booking.ID,
				TraineeExtID: extID,
			}
		}
		return tx.Create(&links).Error
	})
}

func (r *BookingRepository) FindByExtID(ctx context.Context, extID string) (*bookings.Booking, error) {
	var booking bookings.Booking
	err := r.db.WithContext(ctx).
		Preload("Trainees").
		Where("ext_id = ?", extID).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]bookings.Booking, error) {
	var result []bookings.Booking
	err := r.db.WithContext(ctx).Preload("Trainees").Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

// HasTraineeLink reports whether the trainee is already attached to any
// booking of the class.
func (r *BookingRepository) HasTraineeLink(ctx context.Context, classExtID, traineeExtID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&bookings.BookingTrainee{}).
		Joins("JOIN bookings ON bookings.id = booking_trainees.booking_id").
		Where("bookings.class_ext_id = ? AND booking_trainees.trainee_ext_id = ?", classExtID, traineeExtID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
