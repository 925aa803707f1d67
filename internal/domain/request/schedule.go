package request

import "time"

// EMIInstallment is one row of the denormalized repayment snapshot for
// the current offer. The whole set is replaced whenever offer terms
// change; rows are never patched individually.
type EMIInstallment struct {
	ID                 uint64    `gorm:"primaryKey;column:id" json:"-"`
	RequestID          uint64    `gorm:"not null;index:idx_installments_request" json:"-"`
	Seq                int       `gorm:"column:seq;not null" json:"installment_number"`
	PaymentDate        time.Time `gorm:"column:payment_date" json:"payment_date"`
	PaymentAmount      float64   `gorm:"type:decimal(18,2)" json:"payment_amount"`
	PrincipalComponent float64   `gorm:"type:decimal(18,2)" json:"principal_component"`
	InterestComponent  float64   `gorm:"type:decimal(18,2)" json:"interest_component"`
	RemainingBalance   float64   `gorm:"type:decimal(18,2)" json:"remaining_balance"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"-"`
}

func (EMIInstallment) TableName() string { return "emi_installments" }
