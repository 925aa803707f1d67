package mysql

import (
	"context"

	"gorm.io/gorm"

	agentDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/agent"
)

type AgentRepository struct{ db *gorm.DB }

func NewAgentRepository(db *gorm.DB) *AgentRepository { return &AgentRepository{db: db} }

func (r *AgentRepository) Create(ctx context.Context, a *agentDomain.Agent) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AgentRepository) GetByAgentID(ctx context.Context, agentID string) (*agentDomain.Agent, error) {
	var out agentDomain.Agent
	res := r.db.WithContext(ctx).Where("agent_id = ?", agentID).First(&out)
	return &out, res.Error
}
