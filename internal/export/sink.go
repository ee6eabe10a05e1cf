package export

import (
	"context"
	"errors"

	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

// Sink receives extracted product records. Implementations must be safe for
// concurrent Write calls: extraction workers fan in here.
type Sink interface {
	Write(ctx context.Context, record *models.ProductRecord) error
	Close() error
}

// MultiSink fans every record out to all children. A failing child does not
// stop delivery to the others.
type MultiSink struct {
	sinks []Sink
}

func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) Write(ctx context.Context, record *models.ProductRecord) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Write(ctx, record); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
