package service

import (
	"context"

	"crm-backend/internal/model"
	"crm-backend/internal/repository"
)

// OpportunityService exposes the raw pipeline rows at the ingestion
// boundary. Unlike the quarterly views, the total count here includes
// opportunities without an engage date.
type OpportunityService interface {
	List(ctx context.Context, page, limit int) ([]model.Opportunity, int64, error)
	TotalCount(ctx context.Context) (int64, error)
}

type opportunityService struct {
	repo repository.OpportunityRepository
}

func NewOpportunityService(repo repository.OpportunityRepository) OpportunityService {
	return &opportunityService{repo: repo}
}

func (s *opportunityService) List(ctx context.Context, page, limit int) ([]model.Opportunity, int64, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *opportunityService) TotalCount(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
