package workflow

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	domainHistory "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/history"
	domainLoan "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/loan"
	domainRequest "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/uow"
	domainWorkflow "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/workflow"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/emi"
	"github.com/DevKrishnasai/fundifyhub-sub001/pkg/id"
)

// Usecase is the transition executor: it re-validates an action against
// the persisted state, applies its side effects, and writes the new
// status plus exactly one history entry in one transaction.
type Usecase struct {
	requests domainRequest.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(requests domainRequest.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{requests: requests, uow: tx}
}

// AvailableActions lists the legal actions for the caller against the
// request's current persisted state.
func (u *Usecase) AvailableActions(ctx context.Context, requestID string, caller domainWorkflow.Caller) ([]ActionDTO, error) {
	req, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainRequest.ErrNotFound
		}
		return nil, err
	}
	actions, err := domainWorkflow.AvailableActions(req.Status, caller, domainWorkflow.ContextFor(req, caller))
	if err != nil {
		return nil, err
	}
	out := make([]ActionDTO, 0, len(actions))
	for _, a := range actions {
		out = append(out, toActionDTO(a))
	}
	return out, nil
}

// Act applies a single action. Validation never trusts a previously
// computed action list; everything is re-checked inside the transaction
// against the row as persisted. On any error nothing is mutated.
func (u *Usecase) Act(ctx context.Context, in ActInput) (*ActResult, error) {
	if u.uow == nil {
		return nil, domainWorkflow.NewError(domainWorkflow.KindValidation, "workflow executor not initialized")
	}

	action, ok := domainWorkflow.Lookup(domainWorkflow.ActionID(in.ActionID))
	if !ok {
		return nil, domainWorkflow.NewError(domainWorkflow.KindValidation, "unknown action %q", in.ActionID)
	}
	if !domainWorkflow.ValidRole(in.Actor.Role) {
		return nil, domainWorkflow.NewError(domainWorkflow.KindValidation, "unknown role %q", in.Actor.Role)
	}

	var res *ActResult
	err := u.uow.WithinRequestTx(ctx, in.RequestID, func(r uow.Repos, req *domainRequest.LoanRequest) error {
		if !domainWorkflow.IsKnown(req.Status) {
			return domainWorkflow.NewUnknownState(req.Status)
		}
		if !domainWorkflow.HasEdge(req.Status, action.ID) {
			return domainWorkflow.NewInvalidTransition(req.Status, action.Target, action.ID)
		}
		wctx := domainWorkflow.ContextFor(req, in.Actor)
		if !domainWorkflow.Permitted(action, in.Actor.Role, wctx) {
			return domainWorkflow.NewError(domainWorkflow.KindAuthorization,
				"role %s may not perform %q on this request", in.Actor.Role, action.ID)
		}

		now := time.Now().UTC()
		meta := map[string]any{
			"from": string(req.Status),
			"to":   string(action.Target),
		}
		if err := u.applySideEffects(ctx, r, req, action, in, now, meta); err != nil {
			return err
		}

		req.Status = action.Target
		req.StatusUpdatedAt = now
		if err := r.Requests.SaveVersioned(ctx, req); err != nil {
			if errors.Is(err, domainRequest.ErrVersionConflict) {
				return domainWorkflow.NewError(domainWorkflow.KindStaleState,
					"request %s changed concurrently, re-fetch and retry", req.RequestID)
			}
			return err
		}

		entry := &domainHistory.Entry{
			HistoryID: id.NewID32(),
			RequestID: req.ID,
			ActorID:   actorPtr(in.Actor.ID),
			Action:    string(action.ID),
			Metadata:  domainHistory.NewMetadata(meta),
			CreatedAt: now,
		}
		if err := r.History.Append(ctx, entry); err != nil {
			return err
		}

		res = &ActResult{
			Request: toRequestDTO(req),
			History: &HistoryEntryDTO{
				HistoryID: entry.HistoryID,
				ActorID:   entry.ActorID,
				Action:    entry.Action,
				Metadata:  entry.Metadata,
				CreatedAt: entry.CreatedAt,
			},
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainRequest.ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (u *Usecase) applySideEffects(ctx context.Context, r uow.Repos, req *domainRequest.LoanRequest,
	action domainWorkflow.Action, in ActInput, now time.Time, meta map[string]any) error {

	switch action.ID {
	case domainWorkflow.ActionCreateOffer, domainWorkflow.ActionReviseOffer:
		return applyOffer(ctx, r, req, in.Offer, now, meta)

	case domainWorkflow.ActionAssignAgent:
		return applyAssignAgent(ctx, r, req, in.AgentID, meta)

	case domainWorkflow.ActionAcceptOffer:
		if !req.HasOffer() {
			return domainWorkflow.NewError(domainWorkflow.KindValidation, "request has no offer to accept")
		}
		meta["offer_amount"] = *req.OfferAmount

	case domainWorkflow.ActionDeclineOffer:
		if reason := strings.TrimSpace(in.Reason); reason != "" {
			meta["reason"] = reason
		}

	case domainWorkflow.ActionRejectRequest:
		reason := strings.TrimSpace(in.Reason)
		if reason == "" {
			return domainWorkflow.NewError(domainWorkflow.KindValidation, "rejection reason is required")
		}
		meta["reason"] = reason

	case domainWorkflow.ActionCompleteInspection:
		if notes := strings.TrimSpace(in.Notes); notes != "" {
			meta["notes"] = notes
		}

	case domainWorkflow.ActionFinalize:
		return applyFinalize(ctx, r, req, now, meta)
	}
	return nil
}

// applyOffer validates terms, computes the schedule and wholly replaces
// the previous snapshot. A revision never merges with the old rows.
func applyOffer(ctx context.Context, r uow.Repos, req *domainRequest.LoanRequest,
	terms *OfferTermsInput, now time.Time, meta map[string]any) error {

	if terms == nil {
		return domainWorkflow.NewError(domainWorkflow.KindValidation, "offer terms are required")
	}
	preview, err := emi.ComputeSchedule(terms.Amount, terms.InterestRate, terms.TenureMonths, now)
	if err != nil {
		if errors.Is(err, emi.ErrInvalidTerms) {
			return domainWorkflow.NewError(domainWorkflow.KindInvalidOfferTerms, "%s", err.Error())
		}
		return err
	}

	req.SetOffer(terms.Amount, terms.TenureMonths, terms.InterestRate, now)

	rows := make([]domainRequest.EMIInstallment, 0, len(preview.Schedule))
	for _, row := range preview.Schedule {
		rows = append(rows, domainRequest.EMIInstallment{
			RequestID:          req.ID,
			Seq:                row.Seq,
			PaymentDate:        row.PaymentDate,
			PaymentAmount:      row.PaymentAmount,
			PrincipalComponent: row.PrincipalComponent,
			InterestComponent:  row.InterestComponent,
			RemainingBalance:   row.RemainingBalance,
		})
	}
	if err := r.Requests.ReplaceSchedule(ctx, req.ID, rows); err != nil {
		return err
	}

	meta["offer_amount"] = terms.Amount
	meta["tenure_months"] = terms.TenureMonths
	meta["interest_rate"] = terms.InterestRate
	meta["emi"] = preview.EMI
	meta["total_payment"] = preview.TotalPayment
	return nil
}

func applyAssignAgent(ctx context.Context, r uow.Repos, req *domainRequest.LoanRequest,
	agentID string, meta map[string]any) error {

	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		return domainWorkflow.NewError(domainWorkflow.KindValidation, "agent id is required")
	}
	a, err := r.Agents.GetByAgentID(ctx, agentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainWorkflow.NewError(domainWorkflow.KindValidation, "unknown agent %q", agentID)
		}
		return err
	}
	if !a.Active {
		return domainWorkflow.NewError(domainWorkflow.KindValidation, "agent %q is inactive", agentID)
	}
	if a.District != req.District {
		return domainWorkflow.NewError(domainWorkflow.KindValidation,
			"agent district %q does not match request district %q", a.District, req.District)
	}
	req.AssignedAgentID = &a.AgentID
	meta["agent_id"] = a.AgentID
	return nil
}

// applyFinalize creates the authoritative loan record from the last
// confirmed offer terms. The snapshot is derived from the same inputs
// that produced the stored schedule, never from fresh ones.
func applyFinalize(ctx context.Context, r uow.Repos, req *domainRequest.LoanRequest,
	now time.Time, meta map[string]any) error {

	if !req.HasOffer() {
		return domainWorkflow.NewError(domainWorkflow.KindValidation, "no confirmed offer to finalize")
	}
	preview, err := emi.ComputeSchedule(*req.OfferAmount, *req.OfferRate, *req.OfferTenure, now)
	if err != nil {
		return err
	}
	l := &domainLoan.Loan{
		LoanID:       id.NewID32(),
		RequestID:    req.ID,
		CustomerID:   req.CustomerID,
		Principal:    *req.OfferAmount,
		InterestRate: *req.OfferRate,
		TenureMonths: *req.OfferTenure,
		EMI:          preview.EMI,
		TotalPayment: preview.TotalPayment,
		State:        "active",
	}
	if err := r.Loans.Create(ctx, l); err != nil {
		return err
	}
	meta["loan_id"] = l.LoanID
	meta["principal"] = l.Principal
	meta["emi"] = l.EMI
	return nil
}

func actorPtr(actorID string) *string {
	if actorID == "" {
		return nil
	}
	return &actorID
}
