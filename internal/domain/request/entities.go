package request

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("request not found")
	// ErrVersionConflict is returned by SaveVersioned when the optimistic
	// version check matches zero rows (another writer got there first).
	ErrVersionConflict = errors.New("request version conflict")
)

// Status is the sole source of truth for a request's lifecycle position.
type Status string

const (
	StatusSubmitted            Status = "SUBMITTED"
	StatusUnderReview          Status = "UNDER_REVIEW"
	StatusOfferSent            Status = "OFFER_SENT"
	StatusOfferAccepted        Status = "OFFER_ACCEPTED"
	StatusOfferDeclined        Status = "OFFER_DECLINED"
	StatusInspectionScheduled  Status = "INSPECTION_SCHEDULED"
	StatusInspectionInProgress Status = "INSPECTION_IN_PROGRESS"
	StatusInspectionCompleted  Status = "INSPECTION_COMPLETED"
	StatusFinalized            Status = "FINALIZED"
	StatusRejected             Status = "REJECTED"
	StatusCancelled            Status = "CANCELLED"
)

// LoanRequest is a customer's application against a pledged asset.
// Offer fields are all-null or all-set together; use SetOffer/ClearOffer.
type LoanRequest struct {
	ID              uint64     `gorm:"primaryKey;column:id" json:"-"`
	RequestID       string     `gorm:"size:32;uniqueIndex:ux_requests_request_id" json:"request_id"`
	RequestNumber   string     `gorm:"size:16;uniqueIndex:ux_requests_number" json:"request_number"`
	CustomerID      string     `gorm:"size:32;index:idx_requests_customer" json:"customer_id"`
	District        string     `gorm:"size:64" json:"district"`
	Status          Status     `gorm:"type:enum('SUBMITTED','UNDER_REVIEW','OFFER_SENT','OFFER_ACCEPTED','OFFER_DECLINED','INSPECTION_SCHEDULED','INSPECTION_IN_PROGRESS','INSPECTION_COMPLETED','FINALIZED','REJECTED','CANCELLED');default:'SUBMITTED'" json:"status"`
	AssignedAgentID *string    `gorm:"size:32" json:"assigned_agent_id,omitempty"`
	RequestedAmount float64    `gorm:"type:decimal(18,2)" json:"requested_amount"`
	OfferAmount     *float64   `gorm:"type:decimal(18,2)" json:"offer_amount,omitempty"`
	OfferTenure     *int       `gorm:"column:offer_tenure_months" json:"offer_tenure_months,omitempty"`
	OfferRate       *float64   `gorm:"column:offer_interest_rate;type:decimal(6,3)" json:"offer_interest_rate,omitempty"`
	OfferMadeAt     *time.Time `gorm:"column:offer_made_at" json:"offer_made_at,omitempty"`
	// Version backs the optimistic write check in SaveVersioned.
	Version         uint64         `gorm:"not null;default:0" json:"version"`
	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LoanRequest) TableName() string { return "loan_requests" }

// HasOffer reports whether a complete offer is attached.
func (r *LoanRequest) HasOffer() bool {
	return r.OfferAmount != nil && r.OfferTenure != nil && r.OfferRate != nil
}

// SetOffer stores all offer fields as a unit.
func (r *LoanRequest) SetOffer(amount float64, tenureMonths int, ratePercent float64, at time.Time) {
	r.OfferAmount = &amount
	r.OfferTenure = &tenureMonths
	r.OfferRate = &ratePercent
	r.OfferMadeAt = &at
}

// ClearOffer drops all offer fields as a unit.
func (r *LoanRequest) ClearOffer() {
	r.OfferAmount = nil
	r.OfferTenure = nil
	r.OfferRate = nil
	r.OfferMadeAt = nil
}
