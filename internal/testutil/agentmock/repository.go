package agentmock

import (
	"context"

	domain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/agent"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, a *domain.Agent) error
	GetByAgentIDFn func(ctx context.Context, agentID string) (*domain.Agent, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Agent) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByAgentID(ctx context.Context, agentID string) (*domain.Agent, error) {
	if m.GetByAgentIDFn != nil {
		return m.GetByAgentIDFn(ctx, agentID)
	}
	return nil, gorm.ErrRecordNotFound
}
