package uow

import (
	"context"

	"github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/agent"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/history"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/loan"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"
)

type Repos struct {
	Requests request.Repository
	History  history.Repository
	Agents   agent.Repository
	Loans    loan.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: fetch the request first, then pass it in
	WithinRequestTx(ctx context.Context, requestID string, fn func(r Repos, req *request.LoanRequest) error) error
}
