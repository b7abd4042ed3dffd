package http

import (
	"errors"
	"fmt"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"textile-erp-nav/internal/domain"
)

func TestHandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("toggle: %w", domain.ErrInvalidInput), stdhttp.StatusBadRequest},
		{domain.ErrNotFound, stdhttp.StatusNotFound},
		{domain.ErrUnauthenticated, stdhttp.StatusUnauthorized},
		{domain.ErrPermissionDeny, stdhttp.StatusForbidden},
		{errors.New("boom"), stdhttp.StatusInternalServerError},
	}
	e := echo.New()
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(stdhttp.MethodGet, "/", nil), rec)
		assert.NoError(t, handleError(c, nopLogger{}, tc.err))
		assert.Equal(t, tc.want, rec.Code, tc.err.Error())
	}
}

func TestCurrentUser(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(stdhttp.MethodGet, "/", nil), httptest.NewRecorder())
	_, err := currentUser(c)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	c.Set("user_id", "u-1")
	uid, err := currentUser(c)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", uid)
}
