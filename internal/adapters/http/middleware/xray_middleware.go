package middleware

import (
	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/labstack/echo/v4"
)

// XRayMiddleware opens a segment per request, except for skipPaths.
func XRayMiddleware(segmentName string, skipPaths ...string) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := skip[c.Request().URL.Path]; ok {
				return next(c)
			}
			ctx, seg := xray.BeginSegment(c.Request().Context(), segmentName)
			_ = seg.AddAnnotation("method", c.Request().Method)
			c.SetRequest(c.Request().Clone(ctx))
			err := next(c)
			if uid := UserID(c); uid != "" {
				_ = seg.AddAnnotation("user_id", uid)
			}
			seg.Close(err)
			return err
		}
	}
}
