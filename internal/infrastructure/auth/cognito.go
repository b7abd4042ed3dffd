package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"textile-erp-nav/internal/adapters/http/middleware"
	"textile-erp-nav/internal/domain"
)

// Cognito verifies RS256 access and id tokens issued by one user pool.
type Cognito struct {
	issuer string
	keys   *keySet
}

func NewCognito(userPoolID, region string) *Cognito {
	issuer := "https://cognito-idp." + region + ".amazonaws.com/" + userPoolID
	return newCognito(issuer, issuer+"/.well-known/jwks.json", nil)
}

func newCognito(issuer, jwksURL string, client *http.Client) *Cognito {
	return &Cognito{issuer: issuer, keys: newKeySet(jwksURL, 15*time.Minute, client)}
}

// Verify returns the subject of a valid token.
func (c *Cognito) Verify(ctx context.Context, tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, errors.New("missing kid")
		}
		return c.keys.key(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if use, _ := claims["token_use"].(string); use != "" && use != "access" && use != "id" {
		return "", fmt.Errorf("%w: unexpected token_use %q", domain.ErrUnauthenticated, use)
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("%w: missing sub", domain.ErrUnauthenticated)
	}
	return sub, nil
}

func (c *Cognito) Handler(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ec echo.Context) error {
		authHeader := ec.Request().Header.Get("Authorization")
		if authHeader == "" {
			return ec.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authorization token"})
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if tokenString == "" {
			return ec.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid authorization token"})
		}
		sub, err := c.Verify(ec.Request().Context(), tokenString)
		if err != nil {
			return ec.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
		}
		ec.Set(middleware.UserIDKey, sub)
		return next(ec)
	}
}
