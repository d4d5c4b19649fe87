package delivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adityapratama/gymflow/internal/domain/users"
	"github.com/adityapratama/gymflow/pkg/middleware"
	"github.com/adityapratama/gymflow/pkg/response"
	"github.com/adityapratama/gymflow/pkg/validator"
)

const refreshCookieName = "refreshToken"

type UserUsecase interface {
	RegisterAdmin(ctx context.Context, payload users.RegisterAdminRequest) (*users.RegisterResponse, error)
	SignIn(ctx context.Context, payload users.SignInRequest) (*users.SignInResponse, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*users.RefreshTokenResponse, error)
	CreateTrainer(ctx context.Context, payload users.CreateTrainerRequest) (*users.Profile, error)
	ListTrainers(ctx context.Context) ([]users.Profile, error)
	UpdateTrainer(ctx context.Context, payload users.UpdateTrainerRequest) (*users.Profile, error)
	DeleteTrainer(ctx context.Context, extID string) error
	CreateTrainee(ctx context.Context, payload users.CreateTraineeRequest) (*users.Profile, error)
	UpdateTrainee(ctx context.Context, payload users.UpdateTraineeRequest) (*users.Profile, error)
}

type Handler struct {
	ctx           context.Context
	usecase       UserUsecase
	secureCookies bool
	refreshTTL    time.Duration
}

func NewHandler(ctx context.Context, usecase UserUsecase, secureCookies bool, refreshTTL time.Duration) *Handler {
	return &Handler{
		ctx:           ctx,
		usecase:       usecase,
		secureCookies: secureCookies,
		refreshTTL:    refreshTTL,
	}
}

// fail maps usecase errors onto the envelope, hiding anything unexpected.
func fail(c echo.Context, err error) error {
	var apiErr *response.APIError
	if errors.As(err, &apiErr) {
		return response.Error(c, apiErr.Code, apiErr.Message, apiErr.Details)
	}
	return response.Error(c, http.StatusInternalServerError, "internal_server_error", nil)
}

func validationFail(c echo.Context, err error) error {
	field, message := validator.FieldDetail(err)
	return response.ErrorDetails(c, http.StatusBadRequest, "Validation error occurred.", response.FieldError{
		Field:   field,
		Message: message,
	})
}

func (h *Handler) RegisterAdmin(c echo.Context) error {
	logger := middleware.GetLogger(c)

	var req users.RegisterAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid_request_body", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		logger.Warn().Err(err).Msg("Admin registration validation failed")
		return validationFail(c, err)
	}

	result, err := h.usecase.RegisterAdmin(h.ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to register admin")
		return fail(c, err)
	}

	logger.Info().Str("user_id", result.User.ExtID).Msg("Admin registered")
	return response.Success(c, http.StatusCreated, "Admin registered successfully", result)
}

func (h *Handler) SignIn(c echo.Context) error {
	logger := middleware.GetLogger(c)

	var req users.SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid_request_body", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return validationFail(c, err)
	}

	result, err := h.usecase.SignIn(h.ctx, req)
	if err != nil {
		logger.Warn().Msg("Sign-in failed")
		return fail(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    result.RefreshToken,
		Path:     "/",
		Expires:  time.Now().Add(h.refreshTTL),
		HttpOnly: true,
		Secure:   h.secureCookies,
	})

	logger.Info().Str("user_id", result.User.ExtID).Msg("User signed in")
	return response.Success(c, http.StatusOK, "User logged in successfully", result)
}

func (h *Handler) RefreshToken(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return response.Error(c, http.StatusUnauthorized, "Invalid or expired refresh token", nil)
	}

	result, err := h.usecase.RefreshAccessToken(h.ctx, cookie.Value)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, "Access token refreshed successfully", result)
}

func (h *Handler) CreateTrainer(c echo.Context) error {
	logger := middleware.GetLogger(c)

	var req users.CreateTrainerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid_request_body", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return validationFail(c, err)
	}

	result, err := h.usecase.CreateTrainer(h.ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create trainer")
		return fail(c, err)
	}

	logger.Info().Str("trainer_id", result.ExtID).Msg("Trainer created")
	return response.Success(c, http.StatusCreated, "Trainer created successfully", result)
}

func (h *Handler) ListTrainers(c echo.Context) error {
	result, err := h.usecase.ListTrainers(h.ctx)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, "Trainers fetched successfully", result)
}

func (h *Handler) UpdateTrainer(c echo.Context) error {
	var req users.UpdateTrainerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid_request_body", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return validationFail(c, err)
	}

	result, err := h.usecase.UpdateTrainer(h.ctx, req)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, "Trainer updated successfully", result)
}

func (h *Handler) DeleteTrainer(c echo.Context) error {
	var req struct {
		ExtID string `json:"id" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid_request_body", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return validationFail(c, err)
	}

	if err := h.usecase.DeleteTrainer(h.ctx, req.ExtID); err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, "Trainer deleted successfully", []struct{}{})
}

func (h *Handler) CreateTrainee(c echo.Context) error {
	logger := middleware.GetLogger(c)

	var req users.CreateTraineeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid_request_body", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return validationFail(c, err)
	}

	result, err := h.usecase.CreateTrainee(h.ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create trainee")
		return fail(c, err)
	}

	return response.Success(c, http.StatusCreated, "Trainee created successfully", result)
}

func (h *Handler) UpdateTrainee(c echo.Context) error {
	var req users.UpdateTraineeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid_request_body", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return validationFail(c, err)
	}

	result, err := h.usecase.UpdateTrainee(h.ctx, req)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, "Trainee profile updated successfully", result)
}
