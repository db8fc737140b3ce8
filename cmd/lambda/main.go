package main

import (
	"context"
	"log/slog"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/wadjakorntonsri/cloud-resume/internal/app"
	"github.com/wadjakorntonsri/cloud-resume/internal/logging"
	"github.com/wadjakorntonsri/cloud-resume/pkg/adapters/lambda"
	"github.com/wadjakorntonsri/cloud-resume/pkg/config"
)

// One binary backs all three functions; LAMBDA_FUNCTION picks which one.
// Collaborators are built once per cold start and reused across invocations.
func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	a, err := app.New(context.Background(), cfg, slog.Default())
	if err != nil {
		logging.Fatal("failed to initialise", "error", err)
	}

	h, err := lambda.NewHandler(a.Ops, cfg.LambdaFunction)
	if err != nil {
		logging.Fatal("invalid LAMBDA_FUNCTION", "error", err)
	}

	slog.Info("lambda starting", "function", cfg.LambdaFunction, "database", cfg.DatabaseURL)
	awslambda.Start(h.Handle)
}
