package loan

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("loan not found")

// Loan is the authoritative record produced once by the finalize
// transition from the last confirmed offer terms. Its snapshot is
// never recomputed after creation.
type Loan struct {
	ID           uint64     `gorm:"primaryKey;column:id" json:"-"`
	LoanID       string     `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	RequestID    uint64     `gorm:"not null;uniqueIndex:ux_loans_request" json:"-"`
	CustomerID   string     `gorm:"size:32;index:idx_loans_customer" json:"customer_id"`
	Principal    float64    `gorm:"type:decimal(18,2)" json:"principal"`
	InterestRate float64    `gorm:"type:decimal(6,3)" json:"interest_rate"`
	TenureMonths int        `gorm:"not null" json:"tenure_months"`
	EMI          float64    `gorm:"type:decimal(18,2)" json:"emi"`
	TotalPayment float64    `gorm:"type:decimal(18,2)" json:"total_payment"`
	State        string     `gorm:"size:16;default:'active'" json:"state"`
	DisbursedAt  *time.Time `gorm:"column:disbursed_at" json:"disbursed_at,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }
