package mysql

import (
	"context"

	"gorm.io/gorm"

	requestDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Requests: &RequestRepository{db: tx},
		History:  &HistoryRepository{db: tx},
		Agents:   &AgentRepository{db: tx},
		Loans:    &LoanRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

// WithinRequestTx fetches the request up-front inside the transaction
// and hands it to fn. Concurrency control is the optimistic version
// check in SaveVersioned, so no row lock is taken here.
func (u *GormUoW) WithinRequestTx(ctx context.Context, requestID string, fn func(r uow.Repos, req *requestDomain.LoanRequest) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		req, err := r.Requests.GetByRequestID(ctx, requestID)
		if err != nil {
			return err
		}
		return fn(r, req)
	})
}
