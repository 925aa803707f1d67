package request

import (
	"encoding/json"
	"time"

	domainRequest "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"
)

type InstallmentDTO struct {
	Seq                int       `json:"installment_number"`
	PaymentDate        time.Time `json:"payment_date"`
	PaymentAmount      float64   `json:"payment_amount"`
	PrincipalComponent float64   `json:"principal_component"`
	InterestComponent  float64   `json:"interest_component"`
	RemainingBalance   float64   `json:"remaining_balance"`
}

type RequestDTO struct {
	RequestID       string           `json:"request_id"`
	RequestNumber   string           `json:"request_number"`
	CustomerID      string           `json:"customer_id"`
	District        string           `json:"district"`
	Status          string           `json:"status"`
	AssignedAgentID *string          `json:"assigned_agent_id,omitempty"`
	RequestedAmount float64          `json:"requested_amount"`
	OfferAmount     *float64         `json:"offer_amount,omitempty"`
	OfferTenure     *int             `json:"offer_tenure_months,omitempty"`
	OfferRate       *float64         `json:"offer_interest_rate,omitempty"`
	OfferMadeAt     *time.Time       `json:"offer_made_at,omitempty"`
	Version         uint64           `json:"version"`
	EMISchedule     []InstallmentDTO `json:"emi_schedule,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

type HistoryEntryDTO struct {
	HistoryID string          `json:"history_id"`
	ActorID   *string         `json:"actor_id,omitempty"`
	Action    string          `json:"action"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func toDTO(r *domainRequest.LoanRequest, schedule []domainRequest.EMIInstallment) *RequestDTO {
	dto := &RequestDTO{
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
		CreatedAt:       r.CreatedAt,
	}
	for _, row := range schedule {
		dto.EMISchedule = append(dto.EMISchedule, InstallmentDTO{
			Seq:                row.Seq,
			PaymentDate:        row.PaymentDate,
			PaymentAmount:      row.PaymentAmount,
			PrincipalComponent: row.PrincipalComponent,
			InterestComponent:  row.InterestComponent,
			RemainingBalance:   row.RemainingBalance,
		})
	}
	return dto
}
