package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	source_address TEXT NOT NULL,
	arrival_time   BIGINT NOT NULL,
	PRIMARY KEY (source_address, arrival_time)
)`

// PgVisitorRepository is the PostgreSQL implementation of ports.VisitorStore.
type PgVisitorRepository struct {
	pool *pgxpool.Pool
}

var _ ports.VisitorStore = (*PgVisitorRepository)(nil)

// NewPool connects to connString and checks the connection.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// NewPgVisitorRepository connects and creates the visitors table if needed.
func NewPgVisitorRepository(ctx context.Context, connString string) (*PgVisitorRepository, error) {
	pool, err := NewPool(ctx, connString)
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}
	return &PgVisitorRepository{pool: pool}, nil
}

// Insert is a no-op when the key already exists; the row would be identical.
func (r *PgVisitorRepository) Insert(ctx context.Context, rec domain.VisitorRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO visitors (source_address, arrival_time)
		 VALUES ($1, $2)
		 ON CONFLICT (source_address, arrival_time) DO NOTHING`,
		rec.SourceAddress, rec.ArrivalTime,
	)
	return err
}

func (r *PgVisitorRepository) Scan(ctx context.Context) ([]domain.VisitorRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT source_address, arrival_time FROM visitors`)
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

func (r *PgVisitorRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PgVisitorRepository) Close() error {
	r.pool.Close()
	return nil
}
