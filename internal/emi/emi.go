// Package emi computes equal-installment, reducing-balance repayment
// schedules. It is pure: no persistence, no clock reads, deterministic
// for identical inputs, which is what makes previews safely cacheable.
package emi

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidTerms = errors.New("invalid offer terms")

// Installment is one schedule row. Money values are rounded to two
// decimals; the final row absorbs any rounding residue so that the
// principal components sum to the principal exactly and the final
// remaining balance is exactly zero.
type Installment struct {
	Seq                int       `json:"installment_number"`
	PaymentDate        time.Time `json:"payment_date"`
	PaymentAmount      float64   `json:"payment_amount"`
	PrincipalComponent float64   `json:"principal_component"`
	InterestComponent  float64   `json:"interest_component"`
	RemainingBalance   float64   `json:"remaining_balance"`
}

type Preview struct {
	EMI           float64       `json:"emi"`
	TotalInterest float64       `json:"total_interest"`
	TotalPayment  float64       `json:"total_payment"`
	Schedule      []Installment `json:"schedule"`
}

// ValidateTerms rejects malformed offer terms before any row is built.
func ValidateTerms(principal, annualRatePercent float64, tenureMonths int) error {
	if math.IsNaN(principal) || math.IsInf(principal, 0) || principal <= 0 {
		return fmt.Errorf("%w: principal must be > 0", ErrInvalidTerms)
	}
	if tenureMonths <= 0 {
		return fmt.Errorf("%w: tenure must be a positive number of months", ErrInvalidTerms)
	}
	if math.IsNaN(annualRatePercent) || math.IsInf(annualRatePercent, 0) || annualRatePercent < 0 {
		return fmt.Errorf("%w: interest rate must be >= 0", ErrInvalidTerms)
	}
	return nil
}

// ComputeSchedule builds the full amortization schedule. Payment dates
// step monthly from start. Arithmetic runs in integer paise so the
// row-sum invariants hold exactly, not just within float tolerance.
func ComputeSchedule(principal, annualRatePercent float64, tenureMonths int, start time.Time) (*Preview, error) {
	if err := ValidateTerms(principal, annualRatePercent, tenureMonths); err != nil {
		return nil, err
	}

	r := annualRatePercent / 12 / 100

	var emiPaise int64
	if r == 0 {
		emiPaise = toPaise(principal / float64(tenureMonths))
	} else {
		pow := math.Pow(1+r, float64(tenureMonths))
		emiPaise = toPaise(principal * r * pow / (pow - 1))
	}

	balance := toPaise(principal)
	var totalInterest int64
	rows := make([]Installment, 0, tenureMonths)
	for k := 1; k <= tenureMonths; k++ {
		interest := int64(math.Round(float64(balance) * r))
		var principalPart int64
		if k == tenureMonths {
			// last row absorbs the rounding residue
			principalPart = balance
		} else {
			principalPart = emiPaise - interest
			if principalPart > balance {
				principalPart = balance
			}
		}
		balance -= principalPart
		totalInterest += interest
		rows = append(rows, Installment{
			Seq:                k,
			PaymentDate:        start.AddDate(0, k, 0),
			PaymentAmount:      fromPaise(principalPart + interest),
			PrincipalComponent: fromPaise(principalPart),
			InterestComponent:  fromPaise(interest),
			RemainingBalance:   fromPaise(balance),
		})
	}

	return &Preview{
		EMI:           fromPaise(emiPaise),
		TotalInterest: fromPaise(totalInterest),
		TotalPayment:  fromPaise(toPaise(principal) + totalInterest),
		Schedule:      rows,
	}, nil
}

func toPaise(v float64) int64   { return int64(math.Round(v * 100)) }
func fromPaise(p int64) float64 { return float64(p) / 100 }
