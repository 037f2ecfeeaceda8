package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/virtualpalace/palace-tour-service/service"
)

type GuideHandler struct {
	guideService service.Guide
	validate     *validator.Validate
}

func NewGuideHandler(e *echo.Echo, validate *validator.Validate, guideService service.Guide) {
	handler := &GuideHandler{
		guideService: guideService,
		validate:     validate,
	}

	e.GET("/guides", handler.getGuides)
	e.GET("/guides/:guideID", handler.getGuide)
}

func (h *GuideHandler) getGuides(c echo.Context) error {
	ctx := c.Request().Context()

	guides, err := h.guideService.GetGuides(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, guides)
}

func (h *GuideHandler) getGuide(c echo.Context) error {
	ctx := c.Request().Context()

	guideID := c.Param("guideID")
	if err := h.validate.Var(guideID, "required,uuid"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	guide, err := h.guideService.GetGuide(ctx, guideID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "guide is not found"})
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, guide)
}
