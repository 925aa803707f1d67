package mysql

import (
	"context"
	"errors"
	"testing"

	loanDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/loan"
	"github.com/DevKrishnasai/fundifyhub-sub001/pkg/id"

	"gorm.io/gorm"
)

func TestLoanCreateAndGet(t *testing.T) {
	db := openUowTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	l := &loanDomain.Loan{
		LoanID:       loanID,
		RequestID:    7,
		CustomerID:   id.NewID32(),
		Principal:    45_000,
		InterestRate: 12,
		TenureMonths: 6,
		EMI:          7764.68,
		TotalPayment: 46_588.05,
		State:        "active",
	}
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byLoan, err := repo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if byLoan.EMI != 7764.68 {
		t.Errorf("EMI = %v", byLoan.EMI)
	}

	byReq, err := repo.GetByRequestID(ctx, 7)
	if err != nil {
		t.Fatalf("GetByRequestID: %v", err)
	}
	if byReq.LoanID != loanID {
		t.Errorf("LoanID = %q, want %q", byReq.LoanID, loanID)
	}
}

func TestLoanGetByRequestID_NotFound(t *testing.T) {
	db := openUowTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.GetByRequestID(context.Background(), 404)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
