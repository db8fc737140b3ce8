package repository

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsddb "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/wadjakorntonsri/cloud-resume/pkg/adapters/repository/dynamodb"
	"github.com/wadjakorntonsri/cloud-resume/pkg/adapters/repository/memory"
	"github.com/wadjakorntonsri/cloud-resume/pkg/adapters/repository/postgres"
	"github.com/wadjakorntonsri/cloud-resume/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/cloud-resume/pkg/config"
	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

// Driver names returned by DriverFor.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverLibSQL   = "libsql"
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
)

// DriverFor picks the store backing dbURL from its scheme.
func DriverFor(dbURL string) (string, error) {
	switch {
	case dbURL == "memory:" || dbURL == "memory://":
		return DriverMemory, nil
	case sqlite.IsRemote(dbURL):
		return DriverLibSQL, nil
	case strings.HasPrefix(dbURL, "postgres://"), strings.HasPrefix(dbURL, "postgresql://"):
		return DriverPostgres, nil
	case strings.HasPrefix(dbURL, "dynamodb://"):
		return DriverDynamoDB, nil
	case strings.HasPrefix(dbURL, "file:"), dbURL == ":memory:",
		strings.HasSuffix(dbURL, ".db"), strings.HasSuffix(dbURL, ".sqlite"):
		return DriverSQLite, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownDriver, dbURL)
}

// Open connects to the visitor store named by cfg.DatabaseURL.
// A dynamodb:// URL without a table name falls back to cfg.TableName.
func Open(ctx context.Context, cfg *config.Config) (ports.VisitorStore, error) {
	driver, err := DriverFor(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	switch driver {
	case DriverMemory:
		return memory.NewRepository(), nil
	case DriverSQLite, DriverLibSQL:
		repo, err := sqlite.NewSQLiteRepository(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open %s store: %w", driver, err)
		}
		return repo, nil
	case DriverPostgres:
		repo, err := postgres.NewPgVisitorRepository(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		return repo, nil
	default:
		table := strings.TrimPrefix(cfg.DatabaseURL, "dynamodb://")
		if table == "" {
			table = cfg.TableName
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return dynamodb.NewRepository(awsddb.NewFromConfig(awsCfg), table), nil
	}
}
