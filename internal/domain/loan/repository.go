package loan

import "context"

type Repository interface {
	// Create inserts the finalized loan (DB uniqueness ensures at most
	// one per request).
	Create(ctx context.Context, l *Loan) error
	GetByRequestID(ctx context.Context, requestID uint64) (*Loan, error)
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
}
