package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type Mode string

const (
	ModeNone    Mode = "none"
	ModeHeader  Mode = "header"
	ModeCognito Mode = "cognito"
)

const (
	UserIDKey    = "user_id"
	UserIDHeader = "X-User-ID"
)

func ParseAuthMode(raw string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(raw)))
	switch mode {
	case "":
		return ModeNone, nil
	case ModeNone, ModeHeader, ModeCognito:
		return mode, nil
	default:
		return "", errors.New("invalid auth mode")
	}
}

// UserID returns the authenticated user id set by the auth middleware.
func UserID(c echo.Context) string {
	uid, _ := c.Get(UserIDKey).(string)
	return uid
}

// AuthMiddleware resolves the caller identity. ModeNone trusts the
// X-User-ID header when present, ModeHeader requires it and ModeCognito
// delegates to the cognito middleware.
func AuthMiddleware(mode Mode, cognito echo.MiddlewareFunc) (echo.MiddlewareFunc, error) {
	if mode == ModeCognito && cognito == nil {
		return nil, errors.New("cognito middleware is required when AUTH_MODE=cognito")
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch mode {
			case ModeNone:
				if uid := c.Request().Header.Get(UserIDHeader); uid != "" {
					c.Set(UserIDKey, uid)
				}
				return next(c)
			case ModeHeader:
				uid := c.Request().Header.Get(UserIDHeader)
				if uid == "" {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + UserIDHeader + " header"})
				}
				c.Set(UserIDKey, uid)
				return next(c)
			case ModeCognito:
				return cognito(next)(c)
			default:
				return echo.NewHTTPError(http.StatusInternalServerError, "invalid auth mode")
			}
		}
	}, nil
}
