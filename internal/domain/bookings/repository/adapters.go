package repository

import (
	"context"

	"github.com/adityapratama/gymflow/internal/domain/classes"
	classRepo "github.com/adityapratama/gymflow/internal/domain/classes/repository"
	"github.com/adityapratama/gymflow/internal/domain/users"
	userRepo "github.com/adityapratama/gymflow/internal/domain/users/repository"
)

// ClassResolverAdapter narrows the class repository to the lookup the
// booking ledger needs to enrich a booking.
type ClassResolverAdapter struct {
	repo *classRepo.ClassRepository
}

func NewClassResolverAdapter(repo *classRepo.ClassRepository) *ClassResolverAdapter {
	return &ClassResolverAdapter{repo: repo}
}

func (a *ClassResolverAdapter) ResolveClass(ctx context.Context, classExtID string) (*classes.Class, error) {
	return a.repo.FindByExtID(ctx, classExtID)
}

// TraineeResolverAdapter narrows the user repository to trainee lookups.
type TraineeResolverAdapter struct {
	repo *userRepo.User
}

func NewTraineeResolverAdapter(repo *userRepo.User) *TraineeResolverAdapter {
	return &TraineeResolverAdapter{repo: repo}
}

func (a *TraineeResolverAdapter) ResolveTrainee(ctx context.Context, traineeExtID string) (*users.User, error) {
	return a.repo.FindUserByExtID(ctx, traineeExtID)
}
