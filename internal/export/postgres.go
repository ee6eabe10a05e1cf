package export

import (
	"context"

	"github.com/nahid-013/alkoteka-scraper/internal/database"
	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

// PostgresSink upserts records into the product store.
type PostgresSink struct {
	store *database.Store
}

func NewPostgresSink(store *database.Store) *PostgresSink {
	return &PostgresSink{store: store}
}

func (s *PostgresSink) Write(ctx context.Context, record *models.ProductRecord) error {
	return s.store.UpsertRecord(ctx, record)
}

func (s *PostgresSink) Close() error {
	s.store.Close()
	return nil
}
