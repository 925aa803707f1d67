package workflow

import (
	"encoding/json"
	"time"

	domainRequest "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"
	domainWorkflow "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/workflow"
)

// OfferTermsInput carries the terms for create-offer / revise-offer.
type OfferTermsInput struct {
	Amount       float64 `json:"amount"`
	TenureMonths int     `json:"tenure_months"`
	InterestRate float64 `json:"interest_rate"`
}

// ActInput is one action invocation. Exactly one of the payload fields
// is read, depending on the action's input kind.
type ActInput struct {
	RequestID string
	ActionID  string
	Actor     domainWorkflow.Caller
	Offer     *OfferTermsInput
	AgentID   string
	Reason    string
	Notes     string
}

type RequestDTO struct {
	RequestID       string     `json:"request_id"`
	RequestNumber   string     `json:"request_number"`
	CustomerID      string     `json:"customer_id"`
	District        string     `json:"district"`
	Status          string     `json:"status"`
	AssignedAgentID *string    `json:"assigned_agent_id,omitempty"`
	RequestedAmount float64    `json:"requested_amount"`
	OfferAmount     *float64   `json:"offer_amount,omitempty"`
	OfferTenure     *int       `json:"offer_tenure_months,omitempty"`
	OfferRate       *float64   `json:"offer_interest_rate,omitempty"`
	OfferMadeAt     *time.Time `json:"offer_made_at,omitempty"`
	Version         uint64     `json:"version"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type HistoryEntryDTO struct {
	HistoryID string          `json:"history_id"`
	ActorID   *string         `json:"actor_id,omitempty"`
	Action    string          `json:"action"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type ActResult struct {
	Request *RequestDTO      `json:"request"`
	History *HistoryEntryDTO `json:"history_entry"`
}

// ActionDTO mirrors a workflow action for API consumers. Presentation
// fields are advisory; the server re-validates on act.
type ActionDTO struct {
	ID                   string `json:"id"`
	Label                string `json:"label"`
	TargetStatus         string `json:"target_status"`
	RequiresConfirmation bool   `json:"requires_confirmation"`
	RequiresInput        bool   `json:"requires_input"`
	InputKind            string `json:"input_kind,omitempty"`
	Primary              bool   `json:"primary"`
	Icon                 string `json:"icon,omitempty"`
	Description          string `json:"description,omitempty"`
}

func toRequestDTO(r *domainRequest.LoanRequest) *RequestDTO {
	return &RequestDTO{
		RequestID:       r.RequestID,
		RequestNumber:   r.RequestNumber,
		CustomerID:      r.CustomerID,
		District:        r.District,
		Status:          string(r.Status),
		AssignedAgentID: r.AssignedAgentID,
		RequestedAmount: r.RequestedAmount,
		OfferAmount:     r.OfferAmount,
		OfferTenure:     r.OfferTenure,
		OfferRate:       r.OfferRate,
		OfferMadeAt:     r.OfferMadeAt,
		Version:         r.Version,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toActionDTO(a domainWorkflow.Action) ActionDTO {
	return ActionDTO{
		ID:                   string(a.ID),
		Label:                a.Label,
		TargetStatus:         string(a.Target),
		RequiresConfirmation: a.RequiresConfirmation,
		RequiresInput:        a.RequiresInput(),
		InputKind:            string(a.Input),
		Primary:              a.Primary,
		Icon:                 a.Icon,
		Description:          a.Description,
	}
}
