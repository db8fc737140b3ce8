package sqlite

import (
	"context"
	"database/sql"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver
	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
	_ "modernc.org/sqlite" // Local SQLite driver
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ ports.VisitorStore = (*SQLiteRepository)(nil)

// IsRemote reports whether dbURL points at a libsql (Turso) server.
func IsRemote(dbURL string) bool {
	return strings.HasPrefix(dbURL, "libsql://") || strings.HasPrefix(dbURL, "wss://")
}

func NewSQLiteRepository(ctx context.Context, dbURL string) (*SQLiteRepository, error) {
	driverName := "sqlite"
	if IsRemote(dbURL) {
		driverName = "libsql"
	}

	db, err := sql.Open(driverName, dbURL)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS visitors (
		source_address TEXT NOT NULL,
		arrival_time INTEGER NOT NULL,
		PRIMARY KEY (source_address, arrival_time)
	)`
	_, err := db.ExecContext(ctx, query)
	return err
}

// Insert replaces any record with the same key, matching PutItem semantics.
func (r *SQLiteRepository) Insert(ctx context.Context, rec domain.VisitorRecord) error {
	query := `INSERT OR REPLACE INTO visitors (source_address, arrival_time) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, rec.SourceAddress, rec.ArrivalTime)
	return err
}

func (r *SQLiteRepository) Scan(ctx context.Context) ([]domain.VisitorRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT source_address, arrival_time FROM visitors`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.VisitorRecord{}
	for rows.Next() {
		var rec domain.VisitorRecord
		if err := rows.Scan(&rec.SourceAddress, &rec.ArrivalTime); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
