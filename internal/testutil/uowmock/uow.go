package uowmock

import (
	"context"
	"errors"

	"github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinRequestTxFn func(ctx context.Context, requestID string, fn func(r uow.Repos, req *request.LoanRequest) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough builds a UoW whose callbacks run directly against the
// given repos (no transaction semantics), with the request looked up
// through Repos.Requests.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinRequestTxFn: func(ctx context.Context, requestID string, fn func(r uow.Repos, req *request.LoanRequest) error) error {
			req, err := r.Requests.GetByRequestID(ctx, requestID)
			if err != nil {
				return err
			}
			return fn(r, req)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinRequestTx(ctx context.Context, requestID string, fn func(r uow.Repos, req *request.LoanRequest) error) error {
	if m.WithinRequestTxFn != nil {
		return m.WithinRequestTxFn(ctx, requestID, fn)
	}
	return errUnimplemented
}
