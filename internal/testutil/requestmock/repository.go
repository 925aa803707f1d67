package requestmock

import (
	"context"

	domain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the fields a test needs; unfilled ones are benign defaults.
type Repo struct {
	CreateFn          func(ctx context.Context, r *domain.LoanRequest) error
	GetByRequestIDFn  func(ctx context.Context, requestID string) (*domain.LoanRequest, error)
	SaveVersionedFn   func(ctx context.Context, r *domain.LoanRequest) error
	ReplaceScheduleFn func(ctx context.Context, requestID uint64, rows []domain.EMIInstallment) error
	GetScheduleFn     func(ctx context.Context, requestID uint64) ([]domain.EMIInstallment, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.LoanRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}

func (m *Repo) SaveVersioned(ctx context.Context, r *domain.LoanRequest) error {
	if m.SaveVersionedFn != nil {
		return m.SaveVersionedFn(ctx, r)
	}
	return nil
}

func (m *Repo) ReplaceSchedule(ctx context.Context, requestID uint64, rows []domain.EMIInstallment) error {
	if m.ReplaceScheduleFn != nil {
		return m.ReplaceScheduleFn(ctx, requestID, rows)
	}
	return nil
}

func (m *Repo) GetSchedule(ctx context.Context, requestID uint64) ([]domain.EMIInstallment, error) {
	if m.GetScheduleFn != nil {
		return m.GetScheduleFn(ctx, requestID)
	}
	return nil, nil
}
