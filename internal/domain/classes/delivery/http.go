package delivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adityapratama/gymflow/internal/domain/classes"
	"github.com/adityapratama/gymflow/pkg/middleware"
	"github.com/adityapratama/gymflow/pkg/response"
	"github.com/adityapratama/gymflow/pkg/validator"
)

type ClassUsecase interface {
	ScheduleClass(ctx context.Context, payload classes.ScheduleClassRequest) (*classes.Class, error)
	ListClasses(ctx context.Context) ([]classes.Class, error)
	ClassesForTrainer(ctx context.Context, trainerExtID string) ([]classes.Class, error)
}

type Handler struct {
	ctx     context.Context
	usecase ClassUsecase
}

func NewHandler(ctx context.Context, usecase ClassUsecase) *Handler {
	return &Handler{
		ctx:     ctx,
		usecase: usecase,
	}
}

func fail(c echo.Context, err error) error {
	var apiErr *response.APIError
	if errors.As(err, &apiErr) {
		return response.Error(c, apiErr.Code, apiErr.Message, apiErr.Details)
	}
	return response.Error(c, http.StatusInternalServerError, "internal_server_error", nil)
}

func (h *Handler) ScheduleClass(c echo.Context) error {
	logger := middleware.GetLogger(c)

	var req classes.ScheduleClassRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid_request_body", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		field, message := validator.FieldDetail(err)
		return response.ErrorDetails(c, http.StatusBadRequest, "Validation error occurred.",
			response.FieldError{Field: field, Message: message})
	}

	result, err := h.usecase.ScheduleClass(h.ctx, req)
	if err != nil {
		logger.Warn().Err(err).Str("trainer", req.Trainer).Str("date", req.Date).Msg("Class scheduling rejected")
		return fail(c, err)
	}

	logger.Info().Str("class_id", result.ExtID).Msg("Class scheduled")
	return response.Success(c, http.StatusCreated, "Class scheduled successfully", result)
}

func (h *Handler) ListClasses(c echo.Context) error {
	result, err := h.usecase.ListClasses(h.ctx)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, "Classes fetched successfully", result)
}

func (h *Handler) ClassesForTrainer(c echo.Context) error {
	trainerID := c.Param("trainerId")

	result, err := h.usecase.ClassesForTrainer(h.ctx, trainerID)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, "Assigned class schedules retrieved successfully", result)
}
