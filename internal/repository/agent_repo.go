package repository

import (
	"context"
	"fmt"

	"crm-backend/internal/model"

	"gorm.io/gorm"
)

// AgentRepository reads the sales-agent dimension table.
type AgentRepository interface {
	ListAll(ctx context.Context) ([]model.Agent, error)
	GetByName(ctx context.Context, name string) (*model.Agent, error)
}

type agentRepository struct {
	db *gorm.DB
}

func NewAgentRepository(db *gorm.DB) AgentRepository {
	return &agentRepository{db: db}
}

func (r *agentRepository) ListAll(ctx context.Context) ([]model.Agent, error) {
	var agents []model.Agent
	if err := r.db.WithContext(ctx).Order("name").Find(&agents).Error; err != nil {
		return nil, fmt.Errorf("failed to load agents: %w", err)
	}
	return agents, nil
}

func (r *agentRepository) GetByName(ctx context.Context, name string) (*model.Agent, error) {
	var agent model.Agent
	if err := r.db.WithContext(ctx).First(&agent, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}
