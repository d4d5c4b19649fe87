package repository

import (
	"context"

	userRepo "github.com/adityapratama/gymflow/internal/domain/users/repository"
)

// TrainerFinderAdapter narrows the user repository down to the single lookup
// the scheduling engine needs.
type TrainerFinderAdapter struct {
	repo *userRepo.User
}

func NewTrainerFinderAdapter(repo *userRepo.User) *TrainerFinderAdapter {
	return &TrainerFinderAdapter{repo: repo}
}

// TrainerExists reports whether the id resolves to a stored user. Matching
// the persistence behavior, the role is not checked here.
func (a *TrainerFinderAdapter) TrainerExists(ctx context.Context, trainerExtID string) (bool, error) {
	user, err := a.repo.FindUserByExtID(ctx, trainerExtID)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}
