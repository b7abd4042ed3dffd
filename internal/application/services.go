package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"textile-erp-nav/internal/access"
	"textile-erp-nav/internal/domain"
	"textile-erp-nav/internal/navigation"
	"textile-erp-nav/internal/ports"
)

func DepartmentsKey() string              { return "departments" }
func UserKey(userID string) string        { return "user:" + userID }
func RolesKey(userID string) string       { return "roles:" + userID }
func PermissionsKey(userID string) string { return "permissions:" + userID }

// cached serves key from the cache or fetches and stores it. A not-found
// result from the repository is stored as the zero value.
func cached[T any](ctx context.Context, cache ports.QueryCache, key string, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := cache.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	v, err := fetch(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		var zero T
		return zero, err
	}
	cache.Set(key, v)
	return v, nil
}

type DirectoryService struct {
	departments ports.DepartmentRepository
	users       ports.UserRepository
	roles       ports.RoleRepository
	permissions ports.PermissionRepository
	cache       ports.QueryCache
}

func NewDirectoryService(
	departments ports.DepartmentRepository,
	users ports.UserRepository,
	roles ports.RoleRepository,
	permissions ports.PermissionRepository,
	cache ports.QueryCache,
) *DirectoryService {
	return &DirectoryService{departments: departments, users: users, roles: roles, permissions: permissions, cache: cache}
}

// Load gathers the reference data for userID. Missing records read as empty
// collections; any other repository failure is returned.
func (s *DirectoryService) Load(ctx context.Context, userID string) (domain.Directory, error) {
	if userID == "" {
		return domain.Directory{}, domain.ErrInvalidInput
	}
	user, err := cached(ctx, s.cache, UserKey(userID), func(ctx context.Context) (domain.User, error) {
		return s.users.GetByID(ctx, userID)
	})
	if err != nil {
		return domain.Directory{}, fmt.Errorf("load user: %w", err)
	}
	if user.ID == "" {
		user.ID = userID
	}
	roles, err := cached(ctx, s.cache, RolesKey(userID), func(ctx context.Context) ([]domain.Role, error) {
		return s.roles.ListByUser(ctx, userID)
	})
	if err != nil {
		return domain.Directory{}, fmt.Errorf("load roles: %w", err)
	}
	permissions, err := cached(ctx, s.cache, PermissionsKey(userID), func(ctx context.Context) ([]domain.Permission, error) {
		return s.permissions.ListByUser(ctx, userID)
	})
	if err != nil {
		return domain.Directory{}, fmt.Errorf("load permissions: %w", err)
	}
	departments, err := cached(ctx, s.cache, DepartmentsKey(), s.departments.List)
	if err != nil {
		return domain.Directory{}, fmt.Errorf("load departments: %w", err)
	}
	return domain.Directory{User: user, Roles: roles, Permissions: permissions, Departments: departments}, nil
}

type NavigationView struct {
	UserID        string                   `json:"userId"`
	FullName      string                   `json:"fullName"`
	Department    *domain.Department       `json:"department,omitempty"`
	Flags         access.Flags             `json:"flags"`
	Permissions   []string                 `json:"permissions"`
	Title         string                   `json:"title"`
	ActiveSection string                   `json:"activeSection"`
	ActiveItem    string                   `json:"activeItem"`
	Sections      []navigation.SectionView `json:"sections"`
}

type NavigationService struct {
	directory *DirectoryService
	catalog   *navigation.Catalog
	states    ports.ExpandStateStore
	logger    ports.Logger
}

func NewNavigationService(directory *DirectoryService, catalog *navigation.Catalog, states ports.ExpandStateStore, logger ports.Logger) *NavigationService {
	return &NavigationService{directory: directory, catalog: catalog, states: states, logger: logger}
}

func (s *NavigationService) Catalog() *navigation.Catalog { return s.catalog }

func (s *NavigationService) state(userID, path string) *navigation.ExpandState {
	if st, ok := s.states.Get(userID); ok {
		return st
	}
	return s.states.LoadOrStore(userID, navigation.NewExpandState(s.catalog, path))
}

// Flags resolves the capability flags of userID.
func (s *NavigationService) Flags(ctx context.Context, userID string) (access.Flags, error) {
	dir, err := s.directory.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return access.Resolve(dir.Roles, dir.Departments, dir.User), nil
}

// Build derives flags and the rendered menu in one pass so the menu never
// sees a partially computed flag set.
func (s *NavigationService) Build(ctx context.Context, userID, path, explicitTitle string) (NavigationView, error) {
	dir, err := s.directory.Load(ctx, userID)
	if err != nil {
		return NavigationView{}, err
	}
	flags := access.Resolve(dir.Roles, dir.Departments, dir.User)
	sections := s.catalog.Render(flags, path, s.state(userID, path))

	view := NavigationView{
		UserID:        dir.User.ID,
		FullName:      dir.User.FullName,
		Flags:         flags,
		Permissions:   make([]string, 0, len(dir.Permissions)),
		ActiveSection: s.catalog.ResolveActiveSection(path),
		Sections:      sections,
	}
	for _, p := range dir.Permissions {
		view.Permissions = append(view.Permissions, p.Code)
	}
	for _, sec := range sections {
		for _, item := range sec.Items {
			if item.Selected {
				view.ActiveItem = item.Href
			}
		}
	}
	var deptName string
	if dept, ok := dir.DepartmentOf(); ok {
		view.Department = &dept
		deptName = dept.Name
	} else if dir.User.DepartmentID != nil {
		s.logger.Warn(ctx, "user department not found", "user_id", userID, "department_id", *dir.User.DepartmentID)
	}
	view.Title = s.catalog.ResolveTitle(path, explicitTitle, deptName)
	s.logger.Debug(ctx, "navigation built", "user_id", userID, "path", path, "active_section", view.ActiveSection, "sections", len(sections))
	return view, nil
}

// Toggle flips the expand state of one section for userID.
func (s *NavigationService) Toggle(ctx context.Context, userID, sectionKey string) (bool, error) {
	if userID == "" || sectionKey == "" {
		return false, domain.ErrInvalidInput
	}
	if _, ok := s.catalog.Section(sectionKey); !ok {
		return false, domain.ErrNotFound
	}
	expanded, _ := s.state(userID, "").Toggle(sectionKey)
	s.logger.Debug(ctx, "section toggled", "user_id", userID, "section", sectionKey, "expanded", expanded)
	return expanded, nil
}

type SessionService struct {
	mu       sync.Mutex
	cache    ports.QueryCache
	states   ports.ExpandStateStore
	sessions ports.SessionStore
	logger   ports.Logger
}

func NewSessionService(cache ports.QueryCache, states ports.ExpandStateStore, sessions ports.SessionStore, logger ports.Logger) *SessionService {
	return &SessionService{cache: cache, states: states, sessions: sessions, logger: logger}
}

// IdentityChanged binds sessionID to userID. The previous identity is the one
// the session was bound to, never the caller's claim: a claimedPrevious that
// differs from the bound identity is rejected. Roles, permissions and the
// profile of both identities are refetched on the next pass; departments
// stay cached.
func (s *SessionService) IdentityChanged(ctx context.Context, sessionID, claimedPrevious, userID string) error {
	if userID == "" || sessionID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	previous, bound := s.sessions.Bound(sessionID)
	if claimedPrevious != "" && claimedPrevious != userID && (!bound || previous != claimedPrevious) {
		s.mu.Unlock()
		s.logger.Warn(ctx, "identity change rejected", "session_id", sessionID, "claimed_previous_user_id", claimedPrevious, "user_id", userID)
		return fmt.Errorf("%w: session is not bound to %s", domain.ErrPermissionDeny, claimedPrevious)
	}
	s.sessions.Bind(sessionID, userID)
	s.mu.Unlock()

	if bound && previous == userID {
		return nil
	}
	keys := []string{RolesKey(userID), PermissionsKey(userID), UserKey(userID)}
	if bound && previous != "" {
		keys = append(keys, RolesKey(previous), PermissionsKey(previous), UserKey(previous))
		s.states.Delete(previous)
	}
	s.cache.Delete(keys...)
	s.logger.Info(ctx, "session identity changed", "session_id", sessionID, "previous_user_id", previous, "user_id", userID)
	return nil
}
