package delivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adityapratama/gymflow/internal/domain/bookings"
	"github.com/adityapratama/gymflow/pkg/middleware"
	"github.com/adityapratama/gymflow/pkg/response"
)

type BookingUsecase interface {
	BookClass(ctx context.Context, payload bookings.BookClassRequest) (*bookings.EnrichedBooking, error)
	ListBookings(ctx context.Context) ([]bookings.EnrichedBooking, error)
}

type Handler struct {
	ctx     context.Context
	usecase BookingUsecase
}

func NewHandler(ctx context.Context, usecase BookingUsecase) *Handler {
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

func (h *Handler) BookClass(c echo.Context) error {
	logger := middleware.GetLogger(c)

	var req bookings.BookClassRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid_request_body", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "Validation error", err.Error())
	}

	result, err := h.usecase.BookClass(h.ctx, req)
	if err != nil {
		logger.Error().Err(err).Str("class", req.Class).Msg("Failed to book class schedule")
		return fail(c, err)
	}

	logger.Info().Str("booking_id", result.ExtID).Msg("Class schedule booked")
	return response.Success(c, http.StatusOK, "Class schedule booked successfully", result)
}

func (h *Handler) ListBookings(c echo.Context) error {
	result, err := h.usecase.ListBookings(h.ctx)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, "Bookings fetched successfully", result)
}
