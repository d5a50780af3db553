package history

import (
	"context"

	"github.com/awrigley/markwright/internal/document"
)

// NoopStore is a no-op implementation of Store used when history is
// disabled. It silently discards all writes and returns empty results
// for reads.
type NoopStore struct{}

func (s *NoopStore) Touch(ctx context.Context, path string) error {
	return nil
}

func (s *NoopStore) Recent(ctx context.Context, limit int) ([]Document, error) {
	return nil, nil
}

func (s *NoopStore) Forget(ctx context.Context, path string) error {
	return nil
}

func (s *NoopStore) RecordSnapshot(ctx context.Context, path string, m document.Metrics) error {
	return nil
}

func (s *NoopStore) Snapshots(ctx context.Context, path string, limit int) ([]Snapshot, error) {
	return nil, nil
}

func (s *NoopStore) Close() error {
	return nil
}
