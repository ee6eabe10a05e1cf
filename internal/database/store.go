package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

var ErrNotFound = errors.New("record not found")

// Store persists extracted product records in Postgres, keyed by RPC.
type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS product_records (
			rpc          TEXT PRIMARY KEY,
			url          TEXT NOT NULL,
			title        TEXT NOT NULL DEFAULT '',
			brand        TEXT NOT NULL DEFAULT '',
			extracted_at BIGINT NOT NULL,
			payload      JSONB NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// UpsertRecord inserts a record or replaces the previous extraction of the
// same product.
func (s *Store) UpsertRecord(ctx context.Context, record *models.ProductRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	query := `
		INSERT INTO product_records (rpc, url, title, brand, extracted_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (rpc) DO UPDATE SET
			url = EXCLUDED.url,
			title = EXCLUDED.title,
			brand = EXCLUDED.brand,
			extracted_at = EXCLUDED.extracted_at,
			payload = EXCLUDED.payload,
			updated_at = NOW()`

	_, err = s.pool.Exec(ctx, query,
		record.RPC, record.URL, record.Title, record.Brand, record.Timestamp, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert record: %w", err)
	}
	return nil
}

func (s *Store) GetRecord(ctx context.Context, rpc string) (*models.ProductRecord, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM product_records WHERE rpc = $1`, rpc,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	var record models.ProductRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &record, nil
}

func (s *Store) ListRecords(ctx context.Context, limit, offset int) ([]*models.ProductRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.pool.Query(ctx,
		`SELECT payload FROM product_records ORDER BY updated_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.ProductRecord, 0, limit)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		var record models.ProductRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		records = append(records, &record)
	}
	return records, rows.Err()
}
