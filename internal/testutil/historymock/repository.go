package historymock

import (
	"context"

	domain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/history"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// The zero value records appended entries in Entries for assertions.
type Repo struct {
	AppendFn          func(ctx context.Context, e *domain.Entry) error
	ListByRequestIDFn func(ctx context.Context, requestID uint64) ([]domain.Entry, error)

	Entries []domain.Entry
}

func (m *Repo) Append(ctx context.Context, e *domain.Entry) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	m.Entries = append(m.Entries, *e)
	return nil
}

func (m *Repo) ListByRequestID(ctx context.Context, requestID uint64) ([]domain.Entry, error) {
	if m.ListByRequestIDFn != nil {
		return m.ListByRequestIDFn(ctx, requestID)
	}
	return m.Entries, nil
}
