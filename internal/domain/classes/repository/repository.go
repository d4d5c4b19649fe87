package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/adityapratama/gymflow/internal/domain/classes"
)

type ClassRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

func (r *ClassRepository) CreateClass(ctx context.Context, class *classes.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

// FindByExactSlot looks up a class with the identical (date, trainer, start,
// end) tuple.
func (r *ClassRepository) FindByExactSlot(ctx context.Context, date, trainerExtID, startTime, endTime string) (*classes.Class, error) {
	var class classes.Class
	err := r.db.WithContext(ctx).
		Where("date = ? AND trainer_ext_id = ? AND start_time = ? AND end_time = ?",
			date, trainerExtID, startTime, endTime).
		First(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepository) FindByTrainerAndDate(ctx context.Context, trainerExtID, date string) ([]classes.Class, error) {
	var result []classes.Class
	err := r.db.WithContext(ctx).
		Where("trainer_ext_id = ? AND date = ?", trainerExtID, date).
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ClassRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&classes.Class{}).
		Where("date = ?", date).
		Count(&count).Error
	return count, err
}

func (r *ClassRepository) FindAll(ctx context.Context) ([]classes.Class, error) {
	var result []classes.Class
	if err := r.db.WithContext(ctx).Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ClassRepository) FindByTrainer(ctx context.Context, trainerExtID string) ([]classes.Class, error) {
	var result []classes.Class
	err := r.db.WithContext(ctx).
		Where("trainer_ext_id = ?", trainerExtID).
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ClassRepository) FindByExtID(ctx context.Context, extID string) (*classes.Class, error) {
	var class classes.Class
	err := r.db.WithContext(ctx).Where("ext_id = ?", extID).First(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &class, nil
}

// CreateClassGuarded re-runs the conflict and capacity checks inside a single
// transaction, holding row locks on the date's classes so two concurrent
// requests cannot both pass. Returns classes.ErrSlotConflict or
// classes.ErrDailyCapacityExceeded when a check fails.
func (r *ClassRepository) CreateClassGuarded(ctx context.Context, class *classes.Class, overlapDetection bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var onDate []classes.Class
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("date = ?", class.Date).
			Find(&onDate).Error
		if err != nil {
			return err
		}

		for _, existing := range onDate {
			if existing.TrainerExtID != class.TrainerExtID {
				continue
			}
			if overlapDetection {
				if classes.SlotsOverlap(existing.StartTime, existing.EndTime, class.StartTime, class.EndTime) {
					return classes.ErrSlotConflict
				}
			} else if existing.StartTime == class.StartTime && existing.EndTime == class.EndTime {
				return classes.ErrSlotConflict
			}
		}

		if len(onDate) >= classes.MaxClassesPerDay {
			return classes.ErrDailyCapacityExceeded
		}

		return tx.Create(class).Error
	})
}
