package request

import "context"

type Repository interface {
	Create(ctx context.Context, r *LoanRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*LoanRequest, error)

	// SaveVersioned persists the mutable workflow fields with a
	// compare-and-set on Version. Returns ErrVersionConflict when the
	// row has moved on since the caller read it.
	SaveVersioned(ctx context.Context, r *LoanRequest) error

	// ReplaceSchedule wholly replaces the EMI snapshot for a request.
	ReplaceSchedule(ctx context.Context, requestID uint64, rows []EMIInstallment) error
	GetSchedule(ctx context.Context, requestID uint64) ([]EMIInstallment, error)
}
