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

type ArtifactHandler struct {
	artifactService service.Artifact
	validate        *validator.Validate
}

func NewArtifactHandler(e *echo.Echo, validate *validator.Validate, artifactService service.Artifact) {
	handler := &ArtifactHandler{
		artifactService: artifactService,
		validate:        validate,
	}

	e.GET("/artifacts", handler.getArtifacts)
	e.GET("/artifacts/:artifactID", handler.getArtifact)

	route := e.Group("/artifacts", httpmiddleware.RequireAdmin())
	route.POST("", handler.createArtifact)
	route.PUT("/:artifactID", handler.updateArtifact)
	route.DELETE("/:artifactID", handler.deleteArtifact)
}

func (h *ArtifactHandler) getArtifacts(c echo.Context) error {
	ctx := c.Request().Context()

	var filter model.ArtifactFilter
	if err := c.Bind(&filter); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	artifacts, err := h.artifactService.GetArtifacts(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, artifacts)
}

func (h *ArtifactHandler) getArtifact(c echo.Context) error {
	ctx := c.Request().Context()

	artifactID := c.Param("artifactID")
	if err := h.validate.Var(artifactID, "required,uuid"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	artifact, err := h.artifactService.GetArtifact(ctx, artifactID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "artifact is not found"})
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, artifact)
}

func (h *ArtifactHandler) createArtifact(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.CreateArtifactRequest
	if err := c.Bind(&req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	artifactID, err := h.artifactService.CreateArtifact(ctx, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"artifactID": artifactID})
}

func (h *ArtifactHandler) updateArtifact(c echo.Context) error {
	ctx := c.Request().Context()

	artifactID := c.Param("artifactID")
	if err := h.validate.Var(artifactID, "required,uuid"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	var req model.UpdateArtifactRequest
	if err := c.Bind(&req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	err := h.artifactService.UpdateArtifact(ctx, artifactID, req)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "artifact is not found"})
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ArtifactHandler) deleteArtifact(c echo.Context) error {
	ctx := c.Request().Context()

	artifactID := c.Param("artifactID")
	if err := h.validate.Var(artifactID, "required,uuid"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	affected, err := h.artifactService.DeleteArtifact(ctx, artifactID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if affected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "artifact is not found"})
	}

	return c.NoContent(http.StatusNoContent)
}
