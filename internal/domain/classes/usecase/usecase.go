package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/adityapratama/gymflow/internal/domain/classes"
	"github.com/adityapratama/gymflow/internal/platform/config"
	"github.com/adityapratama/gymflow/pkg/response"
)

type ClassRepository interface {
	CreateClass(ctx context.Context, class *classes.Class) error
	FindByExactSlot(ctx context.Context, date, trainerExtID, startTime, endTime string) (*classes.Class, error)
	FindByTrainerAndDate(ctx context.Context, trainerExtID, date string) ([]classes.Class, error)
	CountByDate(ctx context.Context, date string) (int64, error)
	FindAll(ctx context.Context) ([]classes.Class, error)
	FindByTrainer(ctx context.Context, trainerExtID string) ([]classes.Class, error)
	CreateClassGuarded(ctx context.Context, class *classes.Class, overlapDetection bool) error
}

// TrainerFinder is the slice of the user store the scheduler depends on.
type TrainerFinder interface {
	TrainerExists(ctx context.Context, trainerExtID string) (bool, error)
}

type Usecase struct {
	repo    ClassRepository
	finder  TrainerFinder
	options config.SchedulingConfig
}

func NewUsecase(repo ClassRepository, finder TrainerFinder, options config.SchedulingConfig) *Usecase {
	return &Usecase{
		repo:    repo,
		finder:  finder,
		options: options,
	}
}

// ScheduleClass validates the proposed class and persists it when the
// duration, conflict and capacity rules all hold.
func (u Usecase) ScheduleClass(ctx context.Context, payload classes.ScheduleClassRequest) (*classes.Class, error) {
	if err := classes.ParseDate(payload.Date); err != nil {
		return nil, response.NewError(http.StatusBadRequest, "Validation error occurred.",
			response.FieldError{Field: "date", Message: err.Error()})
	}

	duration, err := classes.SlotDuration(payload.StartTime, payload.EndTime)
	if err != nil {
		return nil, response.NewError(http.StatusBadRequest, "Validation error occurred.",
			response.FieldError{Field: "startTime", Message: err.Error()})
	}
	if duration != classes.ClassDuration {
		return nil, response.NewError(http.StatusBadRequest, "Each class must last exactly two hours.", nil)
	}

	exists, err := u.finder.TrainerExists(ctx, payload.Trainer)
	if err != nil {
		return nil, response.InternalServerError(err)
	}
	if !exists {
		return nil, response.NewError(http.StatusNotFound, "Trainer not found", nil)
	}

	class := &classes.Class{
		ExtID:        "class_" + ksuid.New().String(),
		Title:        payload.Title,
		Date:         payload.Date,
		StartTime:    payload.StartTime,
		EndTime:      payload.EndTime,
		TrainerExtID: payload.Trainer,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if u.options.AtomicGuard {
		if err := u.repo.CreateClassGuarded(ctx, class, u.options.OverlapDetection); err != nil {
			return nil, mapGuardError(err)
		}
		return class, nil
	}

	// Default path keeps the original check-then-act sequence: the checks
	// and the insert are separate statements with no isolation.
	if err := u.checkSlotFree(ctx, class); err != nil {
		return nil, err
	}

	count, err := u.repo.CountByDate(ctx, class.Date)
	if err != nil {
		return nil, response.InternalServerError(err)
	}
	if count >= classes.MaxClassesPerDay {
		return nil, response.NewError(http.StatusBadRequest, "Cannot schedule more than 5 classes per day", nil)
	}

	if err := u.repo.CreateClass(ctx, class); err != nil {
		return nil, response.InternalServerError(err)
	}

	return class, nil
}

func (u Usecase) checkSlotFree(ctx context.Context, class *classes.Class) error {
	if u.options.OverlapDetection {
		onDate, err := u.repo.FindByTrainerAndDate(ctx, class.TrainerExtID, class.Date)
		if err != nil {
			return response.InternalServerError(err)
		}
		for _, existing := range onDate {
			if classes.SlotsOverlap(existing.StartTime, existing.EndTime, class.StartTime, class.EndTime) {
				return response.NewError(http.StatusBadRequest, "Time slot is already scheduled, select another time slot", nil)
			}
		}
		return nil
	}

	conflict, err := u.repo.FindByExactSlot(ctx, class.Date, class.TrainerExtID, class.StartTime, class.EndTime)
	if err != nil {
		return response.InternalServerError(err)
	}
	if conflict != nil {
		return response.NewError(http.StatusBadRequest, "Time slot is already scheduled, select another time slot", nil)
	}
	return nil
}

func mapGuardError(err error) error {
	switch {
	case errors.Is(err, classes.ErrSlotConflict):
		return response.NewError(http.StatusBadRequest, "Time slot is already scheduled, select another time slot", nil)
	case errors.Is(err, classes.ErrDailyCapacityExceeded):
		return response.NewError(http.StatusBadRequest, "Cannot schedule more than 5 classes per day", nil)
	default:
		return response.InternalServerError(err)
	}
}

func (u Usecase) ListClasses(ctx context.Context) ([]classes.Class, error) {
	result, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, response.InternalServerError(err)
	}
	return result, nil
}

// ClassesForTrainer returns every class led by the trainer. A trainer with
// classes on several dates gets them all, not just the first match.
func (u Usecase) ClassesForTrainer(ctx context.Context, trainerExtID string) ([]classes.Class, error) {
	result, err := u.repo.FindByTrainer(ctx, trainerExtID)
	if err != nil {
		return nil, response.InternalServerError(err)
	}
	if len(result) == 0 {
		return nil, response.NewError(http.StatusNotFound, "No assigned class schedules found.", nil)
	}
	return result, nil
}
