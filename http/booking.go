package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/virtualpalace/palace-tour-service/model"
	httpmiddleware "github.com/virtualpalace/palace-tour-service/pkg/http/middleware"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
	"github.com/virtualpalace/palace-tour-service/service"
)

type BookingHandler struct {
	bookingService service.Booking
	validate       *validator.Validate
}

func NewBookingHandler(e *echo.Echo, validate *validator.Validate, bookingService service.Booking) {
	handler := &BookingHandler{
		bookingService: bookingService,
		validate:       validate,
	}

	e.POST("/bookings", handler.createBooking)
	e.GET("/bookings", handler.getMyBookings)
	e.GET("/bookings/guide", handler.getGuideBookings, httpmiddleware.RequireGuideOrAdmin())
}

func (h *BookingHandler) createBooking(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	bookingID, err := h.bookingService.CreateBooking(ctx, req)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "guide is not found"})
	case errors.Is(err, model.ErrSlotUnavailable):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"bookingID": bookingID})
}

func (h *BookingHandler) getMyBookings(c echo.Context) error {
	ctx := c.Request().Context()

	bookings, err := h.bookingService.GetMyBookings(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) getGuideBookings(c echo.Context) error {
	ctx := c.Request().Context()

	bookings, err := h.bookingService.GetGuideBookings(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, bookings)
}
