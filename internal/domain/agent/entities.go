package agent

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("agent not found")

// Agent is a field inspector. Assignment requires the agent's district
// to match the request's district.
type Agent struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	AgentID   string    `gorm:"size:32;uniqueIndex:ux_agents_agent_id" json:"agent_id"`
	Name      string    `gorm:"size:128" json:"name"`
	District  string    `gorm:"size:64;index:idx_agents_district" json:"district"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Agent) TableName() string { return "agents" }
