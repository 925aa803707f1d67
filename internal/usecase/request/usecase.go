package request

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	domainHistory "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/history"
	domainRequest "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/uow"
	"github.com/DevKrishnasai/fundifyhub-sub001/pkg/id"
)

// Usecase covers request intake and read paths. All mutations after
// submission go through the workflow executor instead.
type Usecase struct {
	requests domainRequest.Repository
	history  domainHistory.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(requests domainRequest.Repository, hist domainHistory.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{requests: requests, history: hist, uow: tx}
}

type SubmitInput struct {
	CustomerID      string  `json:"customer_id"`
	District        string  `json:"district"`
	RequestedAmount float64 `json:"requested_amount"`
}

// Submit creates a request in SUBMITTED and writes the first history
// entry in the same transaction.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*RequestDTO, error) {
	if in.CustomerID == "" || len(in.CustomerID) != 32 {
		return nil, errors.New("invalid customer id")
	}
	if strings.TrimSpace(in.District) == "" {
		return nil, errors.New("district is required")
	}
	if in.RequestedAmount <= 0 {
		return nil, errors.New("requested amount must be > 0")
	}

	req := &domainRequest.LoanRequest{
		RequestID:       id.NewID32(),
		RequestNumber:   newRequestNumber(),
		CustomerID:      in.CustomerID,
		District:        strings.TrimSpace(in.District),
		Status:          domainRequest.StatusSubmitted,
		RequestedAmount: in.RequestedAmount,
		StatusUpdatedAt: time.Now().UTC(),
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Requests.Create(ctx, req); err != nil {
			return err
		}
		actor := req.CustomerID
		return r.History.Append(ctx, &domainHistory.Entry{
			HistoryID: id.NewID32(),
			RequestID: req.ID,
			ActorID:   &actor,
			Action:    "submit-request",
			Metadata: domainHistory.NewMetadata(map[string]any{
				"requested_amount": req.RequestedAmount,
				"district":         req.District,
			}),
			CreatedAt: time.Now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}
	return toDTO(req, nil), nil
}

// Get returns the request with its current EMI snapshot.
func (u *Usecase) Get(ctx context.Context, requestID string) (*RequestDTO, error) {
	req, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainRequest.ErrNotFound
		}
		return nil, err
	}
	schedule, err := u.requests.GetSchedule(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return toDTO(req, schedule), nil
}

// History returns the audit trail in stable insertion order.
func (u *Usecase) History(ctx context.Context, requestID string) ([]HistoryEntryDTO, error) {
	req, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainRequest.ErrNotFound
		}
		return nil, err
	}
	entries, err := u.history.ListByRequestID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryDTO{
			HistoryID: e.HistoryID,
			ActorID:   e.ActorID,
			Action:    e.Action,
			Metadata:  e.Metadata,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}

// newRequestNumber yields a short human-readable reference like
// LR-3F92A1C4D0. Uniqueness is enforced by the DB index.
func newRequestNumber() string {
	return fmt.Sprintf("LR-%s", strings.ToUpper(id.NewID32()[:10]))
}
