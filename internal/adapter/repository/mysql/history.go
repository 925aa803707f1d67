package mysql

import (
	"context"

	"gorm.io/gorm"

	historyDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/history"
)

type HistoryRepository struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) *HistoryRepository { return &HistoryRepository{db: db} }

func (r *HistoryRepository) Append(ctx context.Context, e *historyDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *HistoryRepository) ListByRequestID(ctx context.Context, requestID uint64) ([]historyDomain.Entry, error) {
	var out []historyDomain.Entry
	res := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
