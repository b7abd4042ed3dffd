package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"textile-erp-nav/internal/adapters/http/middleware"
	"textile-erp-nav/internal/application"
	"textile-erp-nav/internal/domain"
	"textile-erp-nav/internal/infrastructure/cache"
	"textile-erp-nav/internal/navigation"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Debug(context.Context, string, ...any) {}

type directory struct {
	departments []domain.Department
	users       map[string]domain.User
	roles       map[string][]domain.Role
	failUser    string
}

func (d *directory) List(context.Context) ([]domain.Department, error) { return d.departments, nil }

func (d *directory) GetByID(_ context.Context, userID string) (domain.User, error) {
	if userID == d.failUser {
		return domain.User{}, errors.New("storage unavailable")
	}
	u, ok := d.users[userID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

type roleLister struct{ d *directory }

func (r roleLister) ListByUser(_ context.Context, userID string) ([]domain.Role, error) {
	return r.d.roles[userID], nil
}

type permissionLister struct{}

func (permissionLister) ListByUser(context.Context, string) ([]domain.Permission, error) {
	return nil, domain.ErrNotFound
}

func newTestServer(t *testing.T) (stdhttp.Handler, *directory) {
	t.Helper()
	weaving := int64(2)
	dir := &directory{
		departments: []domain.Department{{ID: 1, Code: "SALES", Name: "Satış"}, {ID: 2, Code: "DKM", Name: "Dokuma"}},
		users: map[string]domain.User{
			"weaver": {ID: "weaver", FullName: "Fatma Demir", DepartmentID: &weaving},
			"boss":   {ID: "boss", FullName: "Ahmet Şahin"},
		},
		roles:    map[string][]domain.Role{"boss": {{Name: "Admin"}}},
		failUser: "broken",
	}
	qc := cache.NewQueryCache(time.Minute)
	states := cache.NewExpandStates(time.Minute)
	directorySvc := application.NewDirectoryService(dir, dir, roleLister{dir}, permissionLister{}, qc)
	navSvc := application.NewNavigationService(directorySvc, navigation.Default(""), states, nopLogger{})
	sessSvc := application.NewSessionService(qc, states, cache.NewSessions(time.Minute), nopLogger{})

	auth, err := middleware.AuthMiddleware(middleware.ModeHeader, nil)
	require.NoError(t, err)
	e := NewRouter("navigation-service", NewNavigationHandler(navSvc, nopLogger{}), NewSessionHandler(sessSvc, nopLogger{}), Middleware{
		Auth:          auth,
		RequestLogger: middleware.RequestLogger(nopLogger{}),
	})
	return e, dir
}

func do(t *testing.T, h stdhttp.Handler, method, target, user, body string) *httptest.ResponseRecorder {
	t.Helper()
	return doSession(t, h, method, target, user, "", body)
}

func doSession(t *testing.T, h stdhttp.Handler, method, target, user, session, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if session != "" {
		req.Header.Set(SessionIDHeader, session)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set(middleware.UserIDHeader, user)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	h, _ := newTestServer(t)
	rec := do(t, h, stdhttp.MethodGet, "/health", "", "")
	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "navigation-service")
}

func TestRouter_NavigationRequiresUser(t *testing.T) {
	h, _ := newTestServer(t)
	rec := do(t, h, stdhttp.MethodGet, "/navigation?path=/weaving/looms", "", "")
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
}

func TestRouter_NavigationForWeaver(t *testing.T) {
	h, _ := newTestServer(t)
	rec := do(t, h, stdhttp.MethodGet, "/navigation?path=/production-tracking/refakat-cards", "weaver", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	var view application.NavigationView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "production-tracking", view.ActiveSection)
	assert.Equal(t, "/production-tracking/refakat-cards", view.ActiveItem)
	assert.Equal(t, "Üretim Takip", view.Title)
	assert.False(t, view.Flags["isAdmin"])
	assert.True(t, view.Flags["isWeaving"])
	keys := make([]string, 0, len(view.Sections))
	for _, s := range view.Sections {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{"dashboard", "production-tracking", "weaving", "warp-preparation"}, keys)
}

func TestRouter_ExplicitTitle(t *testing.T) {
	h, _ := newTestServer(t)
	rec := do(t, h, stdhttp.MethodGet, "/navigation?path=/weaving/looms&title=Tezgah+12", "weaver", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Tezgah 12"`)
}

func TestRouter_Flags(t *testing.T) {
	h, _ := newTestServer(t)
	rec := do(t, h, stdhttp.MethodGet, "/access/flags", "boss", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	var flags map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flags))
	for name, set := range flags {
		assert.True(t, set, name)
	}
	assert.True(t, flags["isMaintenanceStaff"])
}

func TestRouter_Toggle(t *testing.T) {
	h, _ := newTestServer(t)
	rec := do(t, h, stdhttp.MethodPost, "/navigation/sections/weaving/toggle", "weaver", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"key":"weaving","expanded":true}`, rec.Body.String())

	rec = do(t, h, stdhttp.MethodPost, "/navigation/sections/unknown/toggle", "weaver", "")
	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
}

func TestRouter_IdentityChangeRefetches(t *testing.T) {
	h, dir := newTestServer(t)
	rec := doSession(t, h, stdhttp.MethodPost, "/session/identity", "boss", "tab-1", "")
	require.Equal(t, stdhttp.StatusNoContent, rec.Code)

	rec = do(t, h, stdhttp.MethodGet, "/access/flags", "weaver", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"isAdmin":true`)

	dir.roles["weaver"] = []domain.Role{{Name: "Admin"}}
	rec = do(t, h, stdhttp.MethodGet, "/access/flags", "weaver", "")
	assert.NotContains(t, rec.Body.String(), `"isAdmin":true`)

	rec = doSession(t, h, stdhttp.MethodPost, "/session/identity", "weaver", "tab-1", `{"previous_user_id":"boss"}`)
	require.Equal(t, stdhttp.StatusNoContent, rec.Code)

	rec = do(t, h, stdhttp.MethodGet, "/access/flags", "weaver", "")
	assert.Contains(t, rec.Body.String(), `"isAdmin":true`)
}

func TestRouter_IdentityChangeRejectsForeignPrevious(t *testing.T) {
	h, _ := newTestServer(t)
	rec := do(t, h, stdhttp.MethodPost, "/navigation/sections/weaving/toggle", "weaver", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	rec = doSession(t, h, stdhttp.MethodPost, "/session/identity", "weaver", "tab-w", "")
	require.Equal(t, stdhttp.StatusNoContent, rec.Code)

	rec = doSession(t, h, stdhttp.MethodPost, "/session/identity", "boss", "tab-b", `{"previous_user_id":"weaver"}`)
	assert.Equal(t, stdhttp.StatusForbidden, rec.Code)

	// the weaver's expand state survived: toggling again collapses
	rec = do(t, h, stdhttp.MethodPost, "/navigation/sections/weaving/toggle", "weaver", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"key":"weaving","expanded":false}`, rec.Body.String())
}

func TestRouter_IdentityChangeRequiresSession(t *testing.T) {
	h, _ := newTestServer(t)
	rec := do(t, h, stdhttp.MethodPost, "/session/identity", "weaver", "")
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
}

func TestRouter_InternalError(t *testing.T) {
	h, _ := newTestServer(t)
	rec := do(t, h, stdhttp.MethodGet, "/navigation", "broken", "")
	assert.Equal(t, stdhttp.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

func TestRouter_Catalog(t *testing.T) {
	h, _ := newTestServer(t)
	rec := do(t, h, stdhttp.MethodGet, "/catalog", "", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	var body struct {
		AppName  string               `json:"appName"`
		Sections []navigation.Section `json:"sections"`
		Routes   []navigation.Route   `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, navigation.DefaultAppName, body.AppName)
	assert.Len(t, body.Sections, len(navigation.Default("").Sections()))
	assert.NotEmpty(t, body.Routes)
}

func TestRouter_HiddenActiveSectionStillTitles(t *testing.T) {
	h, _ := newTestServer(t)
	rec := do(t, h, stdhttp.MethodGet, "/navigation?path=/admin/users", "weaver", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	var view application.NavigationView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "admin", view.ActiveSection)
	assert.Equal(t, "Yönetim", view.Title)
	for _, s := range view.Sections {
		assert.NotEqual(t, "admin", s.Key)
	}
}
