package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	agentDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/agent"
	historyDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/history"
	loanDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/loan"
	requestDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/uow"
	"github.com/DevKrishnasai/fundifyhub-sub001/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openUowTestDB migrates every table, so UoW can orchestrate all repos.
func openUowTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&requestSQLite{},
		&requestDomain.EMIInstallment{},
		&historyDomain.Entry{},
		&agentDomain.Agent{},
		&loanDomain.Loan{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeEntry(requestNumericID uint64, action string) *historyDomain.Entry {
	actor := id.NewID32()
	return &historyDomain.Entry{
		HistoryID: id.NewID32(),
		RequestID: requestNumericID,
		ActorID:   &actor,
		Action:    action,
		Metadata:  historyDomain.NewMetadata(map[string]any{"from": "SUBMITTED", "to": "UNDER_REVIEW"}),
	}
}

// ----------------------------- Tests -----------------------------

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	reqRepo := NewRequestRepository(db)
	histRepo := NewHistoryRepository(db)

	reqID := id.NewID32()
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		req := makeRequest(reqID, id.NewID32())
		if err := r.Requests.Create(ctx, req); err != nil {
			return err
		}
		if req.ID == 0 {
			t.Fatalf("request auto ID not set")
		}
		return r.History.Append(ctx, makeEntry(req.ID, "submit-request"))
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	// Verify post-commit visibility
	got, err := reqRepo.GetByRequestID(ctx, reqID)
	if err != nil {
		t.Fatalf("request not visible after commit: %v", err)
	}
	entries, err := histRepo.ListByRequestID(ctx, got.ID)
	if err != nil || len(entries) != 1 {
		t.Fatalf("history not visible after commit: %v (%d entries)", err, len(entries))
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	reqRepo := NewRequestRepository(db)

	sentinel := errors.New("boom")
	reqID := id.NewID32()

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		req := makeRequest(reqID, id.NewID32())
		if err := r.Requests.Create(ctx, req); err != nil {
			return err
		}
		if err := r.History.Append(ctx, makeEntry(req.ID, "submit-request")); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := reqRepo.GetByRequestID(ctx, reqID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected request not found after rollback, got %v", err)
	}
}

func TestGormUoW_WithinRequestTx_Commit(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	reqRepo := NewRequestRepository(db)
	histRepo := NewHistoryRepository(db)

	// Seed a submitted request (outside tx)
	reqID := id.NewID32()
	seed := makeRequest(reqID, id.NewID32())
	if err := reqRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := guow.WithinRequestTx(ctx, reqID, func(r uow.Repos, req *requestDomain.LoanRequest) error {
		if req.Status != requestDomain.StatusSubmitted {
			t.Fatalf("fetched status = %q, want SUBMITTED", req.Status)
		}
		req.Status = requestDomain.StatusUnderReview
		req.StatusUpdatedAt = time.Now().UTC()
		if err := r.Requests.SaveVersioned(ctx, req); err != nil {
			return err
		}
		return r.History.Append(ctx, makeEntry(req.ID, "start-review"))
	})
	if err != nil {
		t.Fatalf("WithinRequestTx: %v", err)
	}

	got, err := reqRepo.GetByRequestID(ctx, reqID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != requestDomain.StatusUnderReview || got.Version != 1 {
		t.Errorf("post-tx request: status=%q version=%d", got.Status, got.Version)
	}
	entries, err := histRepo.ListByRequestID(ctx, got.ID)
	if err != nil || len(entries) != 1 {
		t.Fatalf("history after commit: %v (%d entries)", err, len(entries))
	}
	if entries[0].Action != "start-review" {
		t.Errorf("history action = %q", entries[0].Action)
	}
}

// A version conflict inside the tx must roll back the history entry too:
// the audit trail never records a transition that did not land.
func TestGormUoW_WithinRequestTx_ConflictRollsBackHistory(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	reqRepo := NewRequestRepository(db)
	histRepo := NewHistoryRepository(db)

	reqID := id.NewID32()
	seed := makeRequest(reqID, id.NewID32())
	if err := reqRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := guow.WithinRequestTx(ctx, reqID, func(r uow.Repos, req *requestDomain.LoanRequest) error {
		// Append first, then lose the version race.
		if err := r.History.Append(ctx, makeEntry(req.ID, "start-review")); err != nil {
			return err
		}
		req.Version = 99 // stale on purpose
		req.Status = requestDomain.StatusUnderReview
		return r.Requests.SaveVersioned(ctx, req)
	})
	if !errors.Is(err, requestDomain.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}

	entries, err := histRepo.ListByRequestID(ctx, seed.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("history entry survived a rolled-back transition: %+v", entries)
	}
}

func TestGormUoW_WithinRequestTx_NotFound(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	err := guow.WithinRequestTx(ctx, "ffffffffffffffffffffffffffffffff", func(r uow.Repos, req *requestDomain.LoanRequest) error {
		t.Fatal("fn must not run for a missing request")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
