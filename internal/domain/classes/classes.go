package classes

import (
	"errors"
	"time"
)

// Class is one scheduled gym class: a fixed two-hour slot on a calendar day,
// led by a single trainer.
type Class struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ExtID        string    `json:"ext_id" gorm:"column:ext_id;unique"`
	Title        string    `json:"title" gorm:"column:title;type:varchar(255);not null"`
	Date         string    `json:"date" gorm:"column:date;type:varchar(10);not null;index"`
	StartTime    string    `json:"startTime" gorm:"column:start_time;type:varchar(8);not null"`
	EndTime      string    `json:"endTime" gorm:"column:end_time;type:varchar(8);not null"`
	TrainerExtID string    `json:"trainer" gorm:"column:trainer_ext_id;not null;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Class) TableName() string {
	return "classes"
}

// MaxClassesPerDay caps how many classes may share one calendar date,
// across all trainers.
const MaxClassesPerDay = 5

// ClassDuration is the only allowed class length.
const ClassDuration = 2 * time.Hour

// Sentinel errors surfaced by the transactional scheduling guard.
var (
	ErrSlotConflict          = errors.New("time slot is already scheduled")
	ErrDailyCapacityExceeded = errors.New("daily class capacity exceeded")
)

type ScheduleClassRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=255"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	Trainer   string `json:"trainer" validate:"required"`
}
