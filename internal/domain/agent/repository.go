package agent

import "context"

type Repository interface {
	Create(ctx context.Context, a *Agent) error
	GetByAgentID(ctx context.Context, agentID string) (*Agent, error)
}
