package http

import (
	"errors"
	stdhttp "net/http"
	"time"

	"github.com/labstack/echo/v4"
	"textile-erp-nav/internal/adapters/http/middleware"
	"textile-erp-nav/internal/application"
	"textile-erp-nav/internal/domain"
	"textile-erp-nav/internal/ports"
)

func handleError(c echo.Context, logger ports.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(stdhttp.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(stdhttp.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.JSON(stdhttp.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
	case errors.Is(err, domain.ErrPermissionDeny):
		return c.JSON(stdhttp.StatusForbidden, map[string]string{"error": err.Error()})
	default:
		logger.Error(c.Request().Context(), "request failed", "path", c.Request().URL.Path, "error", err)
		return c.JSON(stdhttp.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func currentUser(c echo.Context) (string, error) {
	uid := middleware.UserID(c)
	if uid == "" {
		return "", domain.ErrUnauthenticated
	}
	return uid, nil
}

type NavigationHandler struct {
	service *application.NavigationService
	logger  ports.Logger
}

func NewNavigationHandler(service *application.NavigationService, logger ports.Logger) *NavigationHandler {
	return &NavigationHandler{service: service, logger: logger}
}

// Get renders the menu for ?path= with an optional ?title= override.
func (h *NavigationHandler) Get(c echo.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	path := c.QueryParam("path")
	if path == "" {
		path = "/"
	}
	view, err := h.service.Build(c.Request().Context(), uid, path, c.QueryParam("title"))
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(stdhttp.StatusOK, view)
}

func (h *NavigationHandler) Flags(c echo.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	flags, err := h.service.Flags(c.Request().Context(), uid)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(stdhttp.StatusOK, flags)
}

func (h *NavigationHandler) Toggle(c echo.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	key := c.Param("key")
	expanded, err := h.service.Toggle(c.Request().Context(), uid, key)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(stdhttp.StatusOK, map[string]any{"key": key, "expanded": expanded})
}

func (h *NavigationHandler) Catalog(c echo.Context) error {
	catalog := h.service.Catalog()
	return c.JSON(stdhttp.StatusOK, map[string]any{
		"appName":  catalog.AppName(),
		"sections": catalog.Sections(),
		"routes":   catalog.Routes(),
	})
}

// SessionIDHeader carries the client session id; one browser tab keeps
// the same id across sign-ins.
const SessionIDHeader = "X-Session-ID"

type SessionHandler struct {
	service *application.SessionService
	logger  ports.Logger
}

func NewSessionHandler(service *application.SessionService, logger ports.Logger) *SessionHandler {
	return &SessionHandler{service: service, logger: logger}
}

func (h *SessionHandler) IdentityChanged(c echo.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	var req struct {
		PreviousUserID string `json:"previous_user_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(stdhttp.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	sessionID := c.Request().Header.Get(SessionIDHeader)
	if sessionID == "" {
		return c.JSON(stdhttp.StatusBadRequest, map[string]string{"error": "missing " + SessionIDHeader + " header"})
	}
	if err := h.service.IdentityChanged(c.Request().Context(), sessionID, req.PreviousUserID, uid); err != nil {
		return handleError(c, h.logger, err)
	}
	return c.NoContent(stdhttp.StatusNoContent)
}

func Health(service string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(stdhttp.StatusOK, map[string]string{
			"status":  "healthy",
			"service": service,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}
