package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
	"github.com/virtualpalace/palace-tour-service/pkg/session"
	"github.com/virtualpalace/palace-tour-service/service"
)

type AuthenHandler struct {
	authenService service.Authen
	sessionStore  *session.Store
	validate      *validator.Validate
}

func NewAuthenHandler(
	e *echo.Echo,
	validate *validator.Validate,
	authenService service.Authen,
	sessionStore *session.Store,
	rateLimit echo.MiddlewareFunc,
) {
	handler := &AuthenHandler{
		authenService: authenService,
		sessionStore:  sessionStore,
		validate:      validate,
	}

	route := e.Group("/auth", rateLimit)
	route.POST("/register", handler.register)
	route.POST("/login", handler.login)
	route.GET("/refresh", handler.refreshToken)
	route.POST("/logout", handler.logout)
}

func (h *AuthenHandler) register(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	userSession, err := h.authenService.Register(ctx, req)
	if errors.Is(err, model.ErrEmailAlreadyUsed) {
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	h.sessionStore.WriteTokens(c, userSession.JWT)
	return c.JSON(http.StatusCreated, userSession)
}

func (h *AuthenHandler) login(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	userSession, err := h.authenService.Login(ctx, req)
	if errors.Is(err, model.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"code": "UNAUTHORIZED", "error": err.Error()})
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	h.sessionStore.WriteTokens(c, userSession.JWT)
	return c.JSON(http.StatusOK, userSession)
}

// refreshToken mints a fresh access token off the refresh cookie. The refresh
// cookie itself is never rewritten here, so the session still ends at the
// refresh token's original expiry.
func (h *AuthenHandler) refreshToken(c echo.Context) error {
	ctx := c.Request().Context()

	refreshToken, err := h.sessionStore.ReadRefreshToken(c.Request())
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"code": "NO_REFRESH_TOKEN", "error": err.Error()})
	}

	// Failure leaves the cookies untouched: the client decides whether to
	// log out, and a transient mistake must not destroy the session.
	accessToken, err := h.authenService.RefreshToken(ctx, refreshToken)
	switch {
	case errors.Is(err, model.ErrPrincipalNotFound):
		return c.JSON(http.StatusUnauthorized, echo.Map{"code": "PRINCIPAL_NOT_FOUND", "error": err.Error()})
	case errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrTokenMalformed),
		errors.Is(err, model.ErrTokenSignature),
		errors.Is(err, model.ErrTokenRevoked):
		return c.JSON(http.StatusUnauthorized, echo.Map{"code": "INVALID_REFRESH", "error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	h.sessionStore.WriteAccessToken(c, accessToken)
	return c.JSON(http.StatusOK, model.RefreshTokenResponse{AccessToken: accessToken})
}

// logout clears both cookies and denylists the refresh token when a cache is
// configured. It succeeds even without a valid session.
func (h *AuthenHandler) logout(c echo.Context) error {
	ctx := c.Request().Context()

	if refreshToken, err := h.sessionStore.ReadRefreshToken(c.Request()); err == nil {
		if err = h.authenService.RevokeToken(ctx, refreshToken); err != nil {
			logger.Context(ctx).Error(err)
		}
	}

	h.sessionStore.ClearTokens(c)
	return c.NoContent(http.StatusNoContent)
}
