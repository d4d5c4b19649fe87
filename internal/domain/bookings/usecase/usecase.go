package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/ksuid"

	"github.com/adityapratama/gymflow/internal/domain/bookings"
	"github.com/adityapratama/gymflow/internal/domain/classes"
	"github.com/adityapratama/gymflow/internal/domain/users"
	"github.com/adityapratama/gymflow/internal/platform/config"
	"github.com/adityapratama/gymflow/internal/platform/queue"
	"github.com/adityapratama/gymflow/pkg/constant"
	"github.com/adityapratama/gymflow/pkg/response"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *bookings.Booking, traineeExtIDs []string) error
	FindByExtID(ctx context.Context, extID string) (*bookings.Booking, error)
	FindAll(ctx context.Context) ([]bookings.Booking, error)
	HasTraineeLink(ctx context.Context, classExtID, traineeExtID string) (bool, error)
}

// ClassResolver resolves a class reference after booking creation.
type ClassResolver interface {
	ResolveClass(ctx context.Context, classExtID string) (*classes.Class, error)
}

// TraineeResolver resolves trainee references after booking creation.
type TraineeResolver interface {
	ResolveTrainee(ctx context.Context, traineeExtID string) (*users.User, error)
}

// NotificationPublisher hands a confirmation job to the notification queue.
type NotificationPublisher interface {
	PublishBookingNotification(ctx context.Context, job queue.BookingNotification) error
}

type Usecase struct {
	repo      BookingRepository
	classes   ClassResolver
	trainees  TraineeResolver
	publisher NotificationPublisher
	options   config.BookingConfig
}

func NewUsecase(repo BookingRepository, classResolver ClassResolver, traineeResolver TraineeResolver, publisher NotificationPublisher, options config.BookingConfig) *Usecase {
	return &Usecase{
		repo:      repo,
		classes:   classResolver,
		trainees:  traineeResolver,
		publisher: publisher,
		options:   options,
	}
}

// BookClass creates the booking and returns it enriched with its class and
// trainee references. Referential integrity stays advisory: the class is
// resolved after creation, and a dangling reference only fails the request
// when the booking itself cannot be re-read.
func (u Usecase) BookClass(ctx context.Context, payload bookings.BookClassRequest) (*bookings.EnrichedBooking, error) {
	if u.options.RequireTraineeRole {
		for _, traineeExtID := range payload.Trainees {
			trainee, err := u.trainees.ResolveTrainee(ctx, traineeExtID)
			if err != nil {
				return nil, response.InternalServerError(err)
			}
			if trainee == nil || trainee.Role != constant.RoleTrainee {
				return nil, response.NewError(http.StatusBadRequest, "All trainees must be registered trainee accounts", nil)
			}
		}
	}

	if u.options.PreventDuplicates {
		for _, traineeExtID := range payload.Trainees {
			linked, err := u.repo.HasTraineeLink(ctx, payload.Class, traineeExtID)
			if err != nil {
				return nil, response.InternalServerError(err)
			}
			if linked {
				return nil, response.NewError(http.StatusBadRequest, "Trainee is already booked for this class", nil)
			}
		}
	}

	booking := &bookings.Booking{
		ExtID:      "booking_" + ksuid.New().String(),
		ClassExtID: payload.Class,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := u.repo.CreateBooking(ctx, booking, payload.Trainees); err != nil {
		return nil, response.InternalServerError(err)
	}

	stored, err := u.repo.FindByExtID(ctx, booking.ExtID)
	if err != nil {
		return nil, response.InternalServerError(err)
	}
	if stored == nil {
		return nil, response.NewError(http.StatusInternalServerError, "Failed to book class schedule: Booking not found", nil)
	}

	enriched, err := u.enrich(ctx, stored)
	if err != nil {
		return nil, err
	}

	u.notify(ctx, enriched)
	return enriched, nil
}

func (u Usecase) ListBookings(ctx context.Context) ([]bookings.EnrichedBooking, error) {
	stored, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, response.InternalServerError(err)
	}

	result := make([]bookings.EnrichedBooking, 0, len(stored))
	for i := range stored {
		enriched, err := u.enrich(ctx, &stored[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *enriched)
	}
	return result, nil
}

func (u Usecase) enrich(ctx context.Context, booking *bookings.Booking) (*bookings.EnrichedBooking, error) {
	class, err := u.classes.ResolveClass(ctx, booking.ClassExtID)
	if err != nil {
		return nil, response.InternalServerError(err)
	}

	profiles := make([]users.Profile, 0, len(booking.Trainees))
	for _, link := range booking.Trainees {
		trainee, err := u.trainees.ResolveTrainee(ctx, link.TraineeExtID)
		if err != nil {
			return nil, response.InternalServerError(err)
		}
		if trainee != nil {
			profiles = append(profiles, users.NewProfile(trainee))
		}
	}

	return &bookings.EnrichedBooking{
		ExtID:     booking.ExtID,
		Class:     class,
		Trainees:  profiles,
		CreatedAt: booking.CreatedAt,
	}, nil
}

// notify publishes the confirmation job. A queue failure is logged and never
// fails the booking.
func (u Usecase) notify(ctx context.Context, enriched *bookings.EnrichedBooking) {
	if u.publisher == nil {
		return
	}

	job := queue.BookingNotification{
		BookingExtID: enriched.ExtID,
	}
	if enriched.Class != nil {
		job.ClassTitle = enriched.Class.Title
		job.Date = enriched.Class.Date
		job.StartTime = enriched.Class.StartTime
		job.EndTime = enriched.Class.EndTime
	}
	for _, trainee := range enriched.Trainees {
		job.TraineeEmails = append(job.TraineeEmails, trainee.Email)
	}

	if err := u.publisher.PublishBookingNotification(ctx, job); err != nil {
		log.Warn().Err(err).Str("booking_id", enriched.ExtID).Msg("Failed to publish booking notification")
	}
}
