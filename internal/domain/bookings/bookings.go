package bookings

import (
	"time"

	"github.com/adityapratama/gymflow/internal/domain/classes"
	"github.com/adityapratama/gymflow/internal/domain/users"
)

// Booking attaches a set of trainees to one scheduled class. The class
// reference is advisory: it is resolved after creation, not enforced by a
// database constraint.
type Booking struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ExtID      string    `json:"ext_id" gorm:"column:ext_id;unique"`
	ClassExtID string    `json:"class" gorm:"column:class_ext_id;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Trainees []BookingTrainee `json:"trainees" gorm:"foreignKey:BookingID"`
}

func (Booking) TableName() string {
	return "bookings"
}

// BookingTrainee is one trainee-to-booking link row.
type BookingTrainee struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	BookingID    int64  `json:"booking_id" gorm:"column:booking_id;not null;index"`
	TraineeExtID string `json:"trainee" gorm:"column:trainee_ext_id;not null;index"`
}

func (BookingTrainee) TableName() string {
	return "booking_trainees"
}

type BookClassRequest struct {
	Class    string   `json:"class" validate:"required"`
	Trainees []string `json:"trainees" validate:"required,min=1,dive,required"`
}

// EnrichedBooking is a booking with its class and trainee references
// resolved. References that no longer resolve come back nil or absent.
type EnrichedBooking struct {
	ExtID     string          `json:"id"`
	Class     *classes.Class  `json:"class"`
	Trainees  []users.Profile `json:"trainees"`
	CreatedAt time.Time       `json:"created_at"`
}
