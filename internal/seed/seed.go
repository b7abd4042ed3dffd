// Package seed loads reference data (departments, users and their role and
// permission grants) from YAML into the directory store.
package seed

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"textile-erp-nav/internal/domain"
)

type User struct {
	ID          string   `yaml:"id"`
	FullName    string   `yaml:"full_name"`
	Department  *int64   `yaml:"department"`
	Roles       []string `yaml:"roles"`
	Permissions []string `yaml:"permissions"`
}

type File struct {
	Departments []domain.Department `yaml:"departments"`
	Users       []User              `yaml:"users"`
}

// Parse decodes a seed file and rejects unknown fields, duplicate ids and
// users pointing at undeclared departments.
func Parse(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return File{}, fmt.Errorf("%w: decode seed: %v", domain.ErrInvalidInput, err)
	}
	return f, f.validate()
}

func (f File) validate() error {
	depts := make(map[int64]struct{}, len(f.Departments))
	for _, d := range f.Departments {
		if d.Code == "" {
			return fmt.Errorf("%w: department %d has no code", domain.ErrInvalidInput, d.ID)
		}
		if _, dup := depts[d.ID]; dup {
			return fmt.Errorf("%w: duplicate department %d", domain.ErrInvalidInput, d.ID)
		}
		depts[d.ID] = struct{}{}
	}
	users := make(map[string]struct{}, len(f.Users))
	for _, u := range f.Users {
		if u.ID == "" {
			return fmt.Errorf("%w: user without id", domain.ErrInvalidInput)
		}
		if _, dup := users[u.ID]; dup {
			return fmt.Errorf("%w: duplicate user %s", domain.ErrInvalidInput, u.ID)
		}
		users[u.ID] = struct{}{}
		if u.Department != nil {
			if _, ok := depts[*u.Department]; !ok {
				return fmt.Errorf("%w: user %s references unknown department %d", domain.ErrInvalidInput, u.ID, *u.Department)
			}
		}
	}
	return nil
}

type DepartmentWriter interface {
	Put(ctx context.Context, dept domain.Department) error
}

type UserWriter interface {
	Put(ctx context.Context, user domain.User) error
}

type RoleAssigner interface {
	Assign(ctx context.Context, userID, roleName string) error
}

type PermissionGranter interface {
	Grant(ctx context.Context, userID, code string) error
}

type Store struct {
	Departments DepartmentWriter
	Users       UserWriter
	Roles       RoleAssigner
	Permissions PermissionGranter
}

type Result struct {
	Departments int
	Users       int
	Roles       int
	Permissions int
}

// Apply writes f through s. Writes are idempotent upserts, so a failed run
// can be repeated.
func Apply(ctx context.Context, s Store, f File) (Result, error) {
	var res Result
	for _, d := range f.Departments {
		if err := s.Departments.Put(ctx, d); err != nil {
			return res, fmt.Errorf("put department %d: %w", d.ID, err)
		}
		res.Departments++
	}
	for _, u := range f.Users {
		user := domain.User{ID: u.ID, FullName: u.FullName, DepartmentID: u.Department}
		if err := s.Users.Put(ctx, user); err != nil {
			return res, fmt.Errorf("put user %s: %w", u.ID, err)
		}
		res.Users++
		for _, role := range u.Roles {
			if err := s.Roles.Assign(ctx, u.ID, role); err != nil {
				return res, fmt.Errorf("assign role %s to %s: %w", role, u.ID, err)
			}
			res.Roles++
		}
		for _, code := range u.Permissions {
			if err := s.Permissions.Grant(ctx, u.ID, code); err != nil {
				return res, fmt.Errorf("grant %s to %s: %w", code, u.ID, err)
			}
			res.Permissions++
		}
	}
	return res, nil
}
