package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/segmentio/ksuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adityapratama/gymflow/internal/domain/users"
	"github.com/adityapratama/gymflow/pkg/constant"
	"github.com/adityapratama/gymflow/pkg/jwt"
	"github.com/adityapratama/gymflow/pkg/response"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user users.User) error
	FindUserByEmail(ctx context.Context, email string) (*users.User, error)
	FindUserByExtID(ctx context.Context, extID string) (*users.User, error)
	FindUsersByRole(ctx context.Context, role string) ([]users.User, error)
	SaveUser(ctx context.Context, user *users.User) error
	DeleteUserByExtID(ctx context.Context, extID string) (bool, error)
}

type Usecase struct {
	repo       UserRepository
	jwtService *jwt.Service
}

func NewUsecase(repo UserRepository, jwtService *jwt.Service) *Usecase {
	return &Usecase{
		repo:       repo,
		jwtService: jwtService,
	}
}

// createAccount is the shared path for admin, trainer and trainee creation:
// email pre-check, password requirement, bcrypt hash, persist.
func (u Usecase) createAccount(ctx context.Context, name, email, phone, password, role string) (*users.User, error) {
	existing, err := u.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, response.InternalServerError(err)
	}
	if existing != nil {
		return nil, response.NewError(http.StatusBadRequest, "User already exists with this email", nil)
	}

	if password == "" {
		return nil, response.NewError(http.StatusBadRequest, "Password is required", nil)
	}

	hashPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.InternalServerError(err)
	}

	user := users.User{
		ExtID:     "user_" + ksuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Role:      role,
		Password:  string(hashPassword),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := u.repo.CreateUser(ctx, user); err != nil {
		return nil, response.InternalServerError(err)
	}

	return &user, nil
}

func (u Usecase) RegisterAdmin(ctx context.Context, payload users.RegisterAdminRequest) (*users.RegisterResponse, error) {
	user, err := u.createAccount(ctx, payload.Name, payload.Email, payload.Phone, payload.Password, constant.RoleAdmin)
	if err != nil {
		return nil, err
	}

	token, err := u.jwtService.GenerateAccessToken(user.ExtID, user.Role)
	if err != nil {
		return nil, response.InternalServerError(err)
	}

	return &users.RegisterResponse{
		User:        users.NewProfile(user),
		AccessToken: token,
	}, nil
}

func (u Usecase) SignIn(ctx context.Context, payload users.SignInRequest) (*users.SignInResponse, error) {
	user, err := u.repo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		return nil, response.InternalServerError(err)
	}
	if user == nil {
		return nil, response.NewError(http.StatusUnauthorized, "Invalid email or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		return nil, response.NewError(http.StatusUnauthorized, "Invalid email or password", nil)
	}

	accessToken, err := u.jwtService.GenerateAccessToken(user.ExtID, user.Role)
	if err != nil {
		return nil, response.InternalServerError(err)
	}

	refreshToken, err := u.jwtService.GenerateRefreshToken(user.ExtID, user.Role)
	if err != nil {
		return nil, response.InternalServerError(err)
	}

	return &users.SignInResponse{
		User:         users.NewProfile(user),
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshAccessToken mints a new access token from a valid refresh token,
// provided its user still exists.
func (u Usecase) RefreshAccessToken(ctx context.Context, refreshToken string) (*users.RefreshTokenResponse, error) {
	claims, err := u.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, response.NewError(http.StatusUnauthorized, "Invalid or expired refresh token", nil)
	}

	user, err := u.repo.FindUserByExtID(ctx, claims.UserExtID)
	if err != nil {
		return nil, response.InternalServerError(err)
	}
	if user == nil {
		return nil, response.NewError(http.StatusUnauthorized, "Invalid or expired refresh token", nil)
	}

	accessToken, err := u.jwtService.GenerateAccessToken(user.ExtID, user.Role)
	if err != nil {
		return nil, response.InternalServerError(err)
	}

	return &users.RefreshTokenResponse{AccessToken: accessToken}, nil
}

func (u Usecase) CreateTrainer(ctx context.Context, payload users.CreateTrainerRequest) (*users.Profile, error) {
	user, err := u.createAccount(ctx, payload.Name, payload.Email, payload.Phone, payload.Password, constant.RoleTrainer)
	if err != nil {
		return nil, err
	}

	profile := users.NewProfile(user)
	return &profile, nil
}

func (u Usecase) ListTrainers(ctx context.Context) ([]users.Profile, error) {
	trainers, err := u.repo.FindUsersByRole(ctx, constant.RoleTrainer)
	if err != nil {
		return nil, response.InternalServerError(err)
	}

	profiles := make([]users.Profile, len(trainers))
	for i := range trainers {
		profiles[i] = users.NewProfile(&trainers[i])
	}
	return profiles, nil
}

func (u Usecase) UpdateTrainer(ctx context.Context, payload users.UpdateTrainerRequest) (*users.Profile, error) {
	return u.updateByRole(ctx, constant.RoleTrainer, payload.ExtID, payload.Name, payload.Email, payload.Phone)
}

func (u Usecase) DeleteTrainer(ctx context.Context, extID string) error {
	trainer, err := u.repo.FindUserByExtID(ctx, extID)
	if err != nil {
		return response.InternalServerError(err)
	}
	if trainer == nil || trainer.Role != constant.RoleTrainer {
		return response.NewError(http.StatusNotFound, "Trainer not found", nil)
	}

	deleted, err := u.repo.DeleteUserByExtID(ctx, extID)
	if err != nil {
		return response.InternalServerError(err)
	}
	if !deleted {
		return response.NewError(http.StatusNotFound, "Trainer not found", nil)
	}
	return nil
}

func (u Usecase) CreateTrainee(ctx context.Context, payload users.CreateTraineeRequest) (*users.Profile, error) {
	user, err := u.createAccount(ctx, payload.Name, payload.Email, payload.Phone, payload.Password, constant.RoleTrainee)
	if err != nil {
		return nil, err
	}

	profile := users.NewProfile(user)
	return &profile, nil
}

func (u Usecase) UpdateTrainee(ctx context.Context, payload users.UpdateTraineeRequest) (*users.Profile, error) {
	return u.updateByRole(ctx, constant.RoleTrainee, payload.ExtID, payload.Name, payload.Email, payload.Phone)
}

func (u Usecase) updateByRole(ctx context.Context, role, extID, name, email, phone string) (*users.Profile, error) {
	notFound := "Trainer not found"
	if role == constant.RoleTrainee {
		notFound = "Trainee not found"
	}

	user, err := u.repo.FindUserByExtID(ctx, extID)
	if err != nil {
		return nil, response.InternalServerError(err)
	}
	if user == nil || user.Role != role {
		return nil, response.NewError(http.StatusNotFound, notFound, nil)
	}

	if email != "" && email != user.Email {
		existing, err := u.repo.FindUserByEmail(ctx, email)
		if err != nil {
			return nil, response.InternalServerError(err)
		}
		if existing != nil {
			return nil, response.NewError(http.StatusBadRequest, "User already exists with this email", nil)
		}
		user.Email = email
	}
	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.Phone = phone
	}
	user.UpdatedAt = time.Now()

	if err := u.repo.SaveUser(ctx, user); err != nil {
		return nil, response.InternalServerError(err)
	}

	profile := users.NewProfile(user)
	return &profile, nil
}
