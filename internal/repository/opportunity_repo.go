package repository

import (
	"context"
	"fmt"

	"crm-backend/internal/model"

	"gorm.io/gorm"
)

// OpportunityRepository reads sales-pipeline rows. The analytics pipeline
// never writes opportunities; ingestion happens upstream.
type OpportunityRepository interface {
	ListAll(ctx context.Context) ([]model.Opportunity, error)
	List(ctx context.Context, page, limit int) ([]model.Opportunity, int64, error)
	Count(ctx context.Context) (int64, error)
}

type opportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &opportunityRepository{db: db}
}

// ListAll bulk-reads the full opportunity table for a pipeline run.
func (r *opportunityRepository) ListAll(ctx context.Context) ([]model.Opportunity, error) {
	var opps []model.Opportunity
	if err := r.db.WithContext(ctx).Order("opportunity_id").Find(&opps).Error; err != nil {
		return nil, fmt.Errorf("failed to load opportunities: %w", err)
	}
	return opps, nil
}

func (r *opportunityRepository) List(ctx context.Context, page, limit int) ([]model.Opportunity, int64, error) {
	var opps []model.Opportunity
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Opportunity{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).Order("opportunity_id").Offset(offset).Limit(limit).Find(&opps).Error; err != nil {
		return nil, 0, err
	}

	return opps, total, nil
}

// Count returns the ungrouped total row count at the ingestion boundary,
// including rows without an engage date.
func (r *opportunityRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Opportunity{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
