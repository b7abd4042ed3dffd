// Package server wires the navigation service from configuration. Both the
// HTTP and the Lambda entry points build their router here.
package server

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"textile-erp-nav/internal/adapters/http/middleware"
	"textile-erp-nav/internal/application"
	"textile-erp-nav/internal/config"
	"textile-erp-nav/internal/infrastructure/auth"
	"textile-erp-nav/internal/infrastructure/cache"
	"textile-erp-nav/internal/infrastructure/dynamodb"
	httpiface "textile-erp-nav/internal/interfaces/http"
	"textile-erp-nav/internal/navigation"
	"textile-erp-nav/internal/ports"
)

const ServiceName = "navigation-service"

// Repositories bundles the reference data sources behind the directory.
type Repositories struct {
	Departments ports.DepartmentRepository
	Users       ports.UserRepository
	Roles       ports.RoleRepository
	Permissions ports.PermissionRepository
}

// DynamoRepositories opens the configured table.
func DynamoRepositories(ctx context.Context, cfg config.Config) (Repositories, error) {
	client, err := dynamodb.NewClient(ctx, cfg.Region, cfg.TableName)
	if err != nil {
		return Repositories{}, fmt.Errorf("initialize dynamodb client: %w", err)
	}
	return Repositories{
		Departments: dynamodb.NewDepartmentRepository(client),
		Users:       dynamodb.NewUserRepository(client),
		Roles:       dynamodb.NewRoleRepository(client),
		Permissions: dynamodb.NewPermissionRepository(client),
	}, nil
}

func New(cfg config.Config, repos Repositories, logger ports.Logger) (*echo.Echo, error) {
	queries := cache.NewQueryCache(cfg.CacheTTL)
	states := cache.NewExpandStates(cfg.CacheTTL)

	directory := application.NewDirectoryService(repos.Departments, repos.Users, repos.Roles, repos.Permissions, queries)
	navSvc := application.NewNavigationService(directory, navigation.Default(cfg.AppName), states, logger)
	sessionSvc := application.NewSessionService(queries, states, cache.NewSessions(cfg.CacheTTL), logger)

	var cognitoHandler echo.MiddlewareFunc
	switch cfg.AuthMode {
	case middleware.ModeNone:
		logger.Warn(context.Background(), "auth mode none trusts the "+middleware.UserIDHeader+" header; use it for local development only")
	case middleware.ModeCognito:
		cognitoHandler = auth.NewCognito(cfg.UserPoolID, cfg.Region).Handler
	}
	authMiddleware, err := middleware.AuthMiddleware(cfg.AuthMode, cognitoHandler)
	if err != nil {
		return nil, fmt.Errorf("initialize auth middleware: %w", err)
	}

	mw := httpiface.Middleware{
		Auth:          authMiddleware,
		XRay:          middleware.XRayMiddleware("navigation-http", "/health"),
		RequestLogger: middleware.RequestLogger(logger),
	}
	return httpiface.NewRouter(
		ServiceName,
		httpiface.NewNavigationHandler(navSvc, logger),
		httpiface.NewSessionHandler(sessionSvc, logger),
		mw,
	), nil
}
