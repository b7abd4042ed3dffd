package main

import (
	"context"
	"flag"
	"os"

	"github.com/aws/aws-xray-sdk-go/xray"
	adapterlogger "textile-erp-nav/internal/adapters/logger"
	"textile-erp-nav/internal/config"
	"textile-erp-nav/internal/infrastructure/dynamodb"
	"textile-erp-nav/internal/seed"
)

func main() {
	path := flag.String("file", "seed.yaml", "seed file with departments and users")
	flag.Parse()

	logger := adapterlogger.New("navigation-seed", nil)
	cfg, err := config.Load()
	if err != nil {
		logger.Error(context.Background(), "configuration error", "error", err)
		os.Exit(1)
	}
	xray.Configure(xray.Config{LogLevel: "error"})
	ctx, seg := xray.BeginSegment(context.Background(), "navigation-seed")
	defer seg.Close(nil)

	fh, err := os.Open(*path)
	if err != nil {
		logger.Error(ctx, "failed to open seed file", "file", *path, "error", err)
		os.Exit(1)
	}
	defer fh.Close()
	data, err := seed.Parse(fh)
	if err != nil {
		logger.Error(ctx, "invalid seed file", "file", *path, "error", err)
		os.Exit(1)
	}

	client, err := dynamodb.NewClient(ctx, cfg.Region, cfg.TableName)
	if err != nil {
		logger.Error(ctx, "failed to initialize dynamodb client", "error", err)
		os.Exit(1)
	}
	res, err := seed.Apply(ctx, seed.Store{
		Departments: dynamodb.NewDepartmentRepository(client),
		Users:       dynamodb.NewUserRepository(client),
		Roles:       dynamodb.NewRoleRepository(client),
		Permissions: dynamodb.NewPermissionRepository(client),
	}, data)
	if err != nil {
		logger.Error(ctx, "seed failed", "error", err, "applied", res)
		os.Exit(1)
	}
	logger.Info(ctx, "seed applied", "departments", res.Departments, "users", res.Users, "roles", res.Roles, "permissions", res.Permissions)
}
