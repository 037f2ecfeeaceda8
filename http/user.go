package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/virtualpalace/palace-tour-service/model"
	httpmiddleware "github.com/virtualpalace/palace-tour-service/pkg/http/middleware"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
	"github.com/virtualpalace/palace-tour-service/service"
)

type UserHandler struct {
	userService service.User
	validate    *validator.Validate
}

func NewUserHandler(e *echo.Echo, validate *validator.Validate, userService service.User) {
	handler := &UserHandler{
		userService: userService,
		validate:    validate,
	}

	e.GET("/user", handler.getUserInfo)

	route := e.Group("/admin/users", httpmiddleware.RequireAdmin())
	route.GET("", handler.getUsers)
	route.PATCH("/:userID/role", handler.updateUserRole)
	route.DELETE("/:userID", handler.deleteUser)
}

func (h *UserHandler) getUserInfo(c echo.Context) error {
	ctx := c.Request().Context()

	userInfo, err := h.userService.GetUserInfo(ctx)
	if errors.Is(err, model.ErrPrincipalNotFound) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"code": "PRINCIPAL_NOT_FOUND", "error": err.Error()})
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, userInfo)
}

func (h *UserHandler) getUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.GetUsers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) updateUserRole(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.UpdateUserRoleRequest
	if err := c.Bind(&req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	err := h.userService.UpdateUserRole(ctx, c.Param("userID"), req)
	if errors.Is(err, model.ErrPrincipalNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) deleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	err := h.userService.DeleteUser(ctx, c.Param("userID"))
	if errors.Is(err, model.ErrPrincipalNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}
