package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"crm-backend/internal/analytics"
	"crm-backend/internal/repository"
	"crm-backend/internal/websocket"
)

// PerformanceService exposes the three analytical views over the CRM
// dataset. The views are computed artifacts: derived once from a snapshot
// of the input tables, cached, and recomputed only on explicit refresh.
type PerformanceService interface {
	TeamPerformance(ctx context.Context, filter analytics.Filter) ([]analytics.TeamPeriodMetric, error)
	AgentPerformance(ctx context.Context, filter analytics.Filter) ([]analytics.AgentPeriodMetric, error)
	Classification(ctx context.Context, filter analytics.Filter) ([]analytics.RankedAgentPeriod, error)
	EnrichedRowCount(ctx context.Context) (int, error)
	Refresh(ctx context.Context) error
	Invalidate()
}

type performanceService struct {
	oppRepo     repository.OpportunityRepository
	agentRepo   repository.AgentRepository
	accountRepo repository.AccountRepository
	productRepo repository.ProductRepository
	hub         *websocket.Hub

	mu       sync.RWMutex
	enriched []analytics.EnrichedOpportunity
	views    analytics.Views
	loaded   bool
}

func NewPerformanceService(
	oppRepo repository.OpportunityRepository,
	agentRepo repository.AgentRepository,
	accountRepo repository.AccountRepository,
	productRepo repository.ProductRepository,
	hub *websocket.Hub,
) PerformanceService {
	return &performanceService{
		oppRepo:     oppRepo,
		agentRepo:   agentRepo,
		accountRepo: accountRepo,
		productRepo: productRepo,
		hub:         hub,
	}
}

// ensureLoaded computes the enriched set and the three views if the cache
// is empty. Readers share the cached slices read-only.
func (s *performanceService) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	return s.recompute(ctx)
}

// recompute bulk-reads the four input tables and rebuilds every view from
// scratch. Each run is a full, deterministic recomputation of the same
// snapshot; no state survives between runs besides the cache itself.
func (s *performanceService) recompute(ctx context.Context) error {
	opps, err := s.oppRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load opportunities: %w", err)
	}
	agents, err := s.agentRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load agents: %w", err)
	}
	accounts, err := s.accountRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}

	enriched := analytics.Enrich(analytics.Dataset{
		Opportunities: opps,
		Agents:        agents,
		Accounts:      accounts,
		Products:      products,
	})
	views := analytics.BuildViews(enriched)

	s.mu.Lock()
	s.enriched = enriched
	s.views = views
	s.loaded = true
	s.mu.Unlock()

	log.Printf("performance views recomputed: %d enriched rows, %d team rows, %d agent rows",
		len(enriched), len(views.TeamPerformance), len(views.AgentPerformance))
	return nil
}

func (s *performanceService) TeamPerformance(ctx context.Context, filter analytics.Filter) ([]analytics.TeamPeriodMetric, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.FilterTeams(s.views.TeamPerformance, filter), nil
}

func (s *performanceService) AgentPerformance(ctx context.Context, filter analytics.Filter) ([]analytics.AgentPeriodMetric, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.FilterAgents(s.views.AgentPerformance, filter), nil
}

func (s *performanceService) Classification(ctx context.Context, filter analytics.Filter) ([]analytics.RankedAgentPeriod, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.FilterClassification(s.views.Classification, filter), nil
}

// EnrichedRowCount reports how many opportunities made it into the enriched
// set (rows without an engage date are excluded there).
func (s *performanceService) EnrichedRowCount(ctx context.Context) (int, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.enriched), nil
}

// Refresh recomputes all views from the current table contents and notifies
// connected dashboard clients.
func (s *performanceService) Refresh(ctx context.Context) error {
	if err := s.recompute(ctx); err != nil {
		return err
	}
	if s.hub != nil {
		payload, _ := json.Marshal(map[string]any{
			"event":        "performance_refreshed",
			"refreshed_at": time.Now().UTC().Format(time.RFC3339),
		})
		s.hub.Notify(payload)
	}
	return nil
}

// Invalidate drops the cache; the next read triggers a recomputation.
func (s *performanceService) Invalidate() {
	s.mu.Lock()
	s.enriched = nil
	s.views = analytics.Views{}
	s.loaded = false
	s.mu.Unlock()
}
