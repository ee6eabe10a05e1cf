package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

// NDJSONSink appends one JSON record per line to a writer.
type NDJSONSink struct {
	mu sync.Mutex
	w  io.WriteCloser
}

func NewNDJSONSink(w io.WriteCloser) *NDJSONSink {
	return &NDJSONSink{w: w}
}

// OpenNDJSON opens (or creates) path for appending.
func OpenNDJSON(path string) (*NDJSONSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}
	return NewNDJSONSink(f), nil
}

func (s *NDJSONSink) Write(_ context.Context, record *models.ProductRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

func (s *NDJSONSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Close()
}
