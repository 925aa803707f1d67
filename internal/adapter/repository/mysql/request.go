package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	requestDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"
)

type RequestRepository struct{ db *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{db: db} }

func (r *RequestRepository) Create(ctx context.Context, req *requestDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RequestRepository) GetByRequestID(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
	var out requestDomain.LoanRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

// SaveVersioned writes the workflow-mutable fields behind a
// compare-and-set on version. Two writers racing from the same read
// both pass validation, but only the first matches the WHERE clause;
// the loser sees zero affected rows and gets ErrVersionConflict.
func (r *RequestRepository) SaveVersioned(ctx context.Context, req *requestDomain.LoanRequest) error {
	prev := req.Version
	res := r.db.WithContext(ctx).
		Model(&requestDomain.LoanRequest{}).
		Where("id = ? AND version = ?", req.ID, prev).
		Updates(map[string]any{
			"status":              req.Status,
			"assigned_agent_id":   req.AssignedAgentID,
			"offer_amount":        req.OfferAmount,
			"offer_tenure_months": req.OfferTenure,
			"offer_interest_rate": req.OfferRate,
			"offer_made_at":       req.OfferMadeAt,
			"status_updated_at":   req.StatusUpdatedAt,
			"version":             prev + 1,
			"updated_at":          time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return requestDomain.ErrVersionConflict
	}
	req.Version = prev + 1
	return nil
}

// ReplaceSchedule discards the previous snapshot and inserts the new
// rows. Callers run this inside a UoW transaction so the swap is
// atomic with the status change.
func (r *RequestRepository) ReplaceSchedule(ctx context.Context, requestID uint64, rows []requestDomain.EMIInstallment) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("request_id = ?", requestID).Delete(&requestDomain.EMIInstallment{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (r *RequestRepository) GetSchedule(ctx context.Context, requestID uint64) ([]requestDomain.EMIInstallment, error) {
	var out []requestDomain.EMIInstallment
	res := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("seq ASC").
		Find(&out)
	return out, res.Error
}
