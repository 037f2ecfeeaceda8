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

type VirtualTourHandler struct {
	tourService service.VirtualTour
	validate    *validator.Validate
}

func NewVirtualTourHandler(e *echo.Echo, validate *validator.Validate, tourService service.VirtualTour) {
	handler := &VirtualTourHandler{
		tourService: tourService,
		validate:    validate,
	}

	e.GET("/tours", handler.getVirtualTours)
	e.GET("/tours/:tourID", handler.getVirtualTour)

	route := e.Group("/tours", httpmiddleware.RequireAdmin())
	route.POST("", handler.createVirtualTour)
	route.PUT("/:tourID", handler.updateVirtualTour)
	route.DELETE("/:tourID", handler.deleteVirtualTour)
}

func (h *VirtualTourHandler) getVirtualTours(c echo.Context) error {
	ctx := c.Request().Context()

	tours, err := h.tourService.GetVirtualTours(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, tours)
}

func (h *VirtualTourHandler) getVirtualTour(c echo.Context) error {
	ctx := c.Request().Context()

	tourID := c.Param("tourID")
	if err := h.validate.Var(tourID, "required,uuid"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	tour, err := h.tourService.GetVirtualTour(ctx, tourID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "virtual tour is not found"})
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, tour)
}

func (h *VirtualTourHandler) createVirtualTour(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.CreateVirtualTourRequest
	if err := c.Bind(&req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	tourID, err := h.tourService.CreateVirtualTour(ctx, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"tourID": tourID})
}

func (h *VirtualTourHandler) updateVirtualTour(c echo.Context) error {
	ctx := c.Request().Context()

	tourID := c.Param("tourID")
	if err := h.validate.Var(tourID, "required,uuid"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	var req model.UpdateVirtualTourRequest
	if err := c.Bind(&req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	err := h.tourService.UpdateVirtualTour(ctx, tourID, req)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "virtual tour is not found"})
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *VirtualTourHandler) deleteVirtualTour(c echo.Context) error {
	ctx := c.Request().Context()

	tourID := c.Param("tourID")
	if err := h.validate.Var(tourID, "required,uuid"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	affected, err := h.tourService.DeleteVirtualTour(ctx, tourID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if affected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "virtual tour is not found"})
	}

	return c.NoContent(http.StatusNoContent)
}
