package main

import (
	"context"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-xray-sdk-go/xray"
	adapterlogger "textile-erp-nav/internal/adapters/logger"
	"textile-erp-nav/internal/config"
	"textile-erp-nav/internal/platform/lambda"
	"textile-erp-nav/internal/platform/server"
)

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		adapterlogger.New(server.ServiceName, nil).Error(ctx, "configuration error", "error", err)
		os.Exit(1)
	}
	logger := server.Logger(cfg.LogLevel)
	xray.Configure(xray.Config{LogLevel: "error"})

	repos, err := server.DynamoRepositories(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "failed to initialize repositories", "error", err)
		os.Exit(1)
	}
	e, err := server.New(cfg, repos, logger)
	if err != nil {
		logger.Error(ctx, "failed to build router", "error", err)
		os.Exit(1)
	}
	awslambda.Start(lambda.NewHandler(e))
}
