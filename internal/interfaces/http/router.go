package http

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

type Middleware struct {
	Auth          echo.MiddlewareFunc
	XRay          echo.MiddlewareFunc
	RequestLogger echo.MiddlewareFunc
}

func newEcho(m Middleware) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	if m.XRay != nil {
		e.Use(m.XRay)
	}
	if m.RequestLogger != nil {
		e.Use(m.RequestLogger)
	}
	return e
}

func NewRouter(service string, nav *NavigationHandler, session *SessionHandler, m Middleware) *echo.Echo {
	e := newEcho(m)
	e.GET("/health", Health(service))
	e.GET("/catalog", nav.Catalog)

	var auth []echo.MiddlewareFunc
	if m.Auth != nil {
		auth = append(auth, m.Auth)
	}
	e.GET("/navigation", nav.Get, auth...)
	e.GET("/access/flags", nav.Flags, auth...)
	e.POST("/navigation/sections/:key/toggle", nav.Toggle, auth...)
	e.POST("/session/identity", session.IdentityChanged, auth...)
	return e
}
