package ports

import (
	"context"

	"textile-erp-nav/internal/domain"
)

type DepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, userID string) (domain.User, error)
}

type RoleRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Role, error)
}

type PermissionRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Permission, error)
}
