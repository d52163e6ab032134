package service

import (
	"context"
	"testing"
	"time"

	"crm-backend/internal/analytics"
	"crm-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repository fakes. The pipeline only bulk-reads, so the fakes
// just hand back fixed slices.

type fakeOpportunityRepo struct {
	opps []model.Opportunity
}

func (f *fakeOpportunityRepo) ListAll(ctx context.Context) ([]model.Opportunity, error) {
	return f.opps, nil
}

func (f *fakeOpportunityRepo) List(ctx context.Context, page, limit int) ([]model.Opportunity, int64, error) {
	return f.opps, int64(len(f.opps)), nil
}

func (f *fakeOpportunityRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.opps)), nil
}

type fakeAgentRepo struct{ agents []model.Agent }

func (f *fakeAgentRepo) ListAll(ctx context.Context) ([]model.Agent, error) { return f.agents, nil }
func (f *fakeAgentRepo) GetByName(ctx context.Context, name string) (*model.Agent, error) {
	return nil, nil
}

type fakeAccountRepo struct{ accounts []model.Account }

func (f *fakeAccountRepo) ListAll(ctx context.Context) ([]model.Account, error) {
	return f.accounts, nil
}
func (f *fakeAccountRepo) GetByName(ctx context.Context, name string) (*model.Account, error) {
	return nil, nil
}

type fakeProductRepo struct{ products []model.Product }

func (f *fakeProductRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	return f.products, nil
}
func (f *fakeProductRepo) GetByName(ctx context.Context, name string) (*model.Product, error) {
	return nil, nil
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func newFixtureService() (*fakeOpportunityRepo, PerformanceService) {
	oppRepo := &fakeOpportunityRepo{opps: []model.Opportunity{
		{OpportunityID: "O1", SalesAgent: "Anna", Account: "Acme", Product: "GTX Basic",
			DealStage: "Won", EngageDate: datePtr(2017, time.January, 3), CloseValue: 1000},
		{OpportunityID: "O2", SalesAgent: "Anna", Account: "Acme", Product: "GTX Basic",
			DealStage: "Won", EngageDate: datePtr(2017, time.April, 3), CloseValue: 1500},
		{OpportunityID: "O3", SalesAgent: "Anna", Product: "GTX Basic", DealStage: "Engaging"}, // no engage date
	}}
	agentRepo := &fakeAgentRepo{agents: []model.Agent{{Name: "Anna", Manager: "Dustin", RegionalOffice: "Central"}}}
	accountRepo := &fakeAccountRepo{accounts: []model.Account{{Name: "Acme", Sector: "retail", OfficeLocation: "US"}}}
	productRepo := &fakeProductRepo{products: []model.Product{{Name: "GTX Basic", Series: "GTX", SalesPrice: 550}}}

	svc := NewPerformanceService(oppRepo, agentRepo, accountRepo, productRepo, nil)
	return oppRepo, svc
}

func TestPerformanceServiceComputesViewsLazily(t *testing.T) {
	_, svc := newFixtureService()
	ctx := context.Background()

	teams, err := svc.TeamPerformance(ctx, analytics.Filter{})
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Dustin", teams[0].Manager)

	count, err := svc.EnrichedRowCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "row without engage date is excluded from the enriched set")
}

func TestPerformanceServiceFiltersViews(t *testing.T) {
	_, svc := newFixtureService()
	ctx := context.Background()

	agents, err := svc.AgentPerformance(ctx, analytics.Filter{Year: 2017, Quarter: 2})
	require.NoError(t, err)
	require.Len(t, agents, 1)
	require.NotNil(t, agents[0].PreviousRevenue)
	assert.Equal(t, 1000.0, *agents[0].PreviousRevenue, "delta fields are precomputed, filtering keeps them")

	ranked, err := svc.Classification(ctx, analytics.Filter{Quarter: 1})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].Decile)
}

func TestPerformanceServiceRefreshPicksUpNewRows(t *testing.T) {
	oppRepo, svc := newFixtureService()
	ctx := context.Background()

	teams, err := svc.TeamPerformance(ctx, analytics.Filter{})
	require.NoError(t, err)
	require.Len(t, teams, 2)

	// New quarter lands in the table; cached views must not change until
	// an explicit refresh.
	oppRepo.opps = append(oppRepo.opps, model.Opportunity{
		OpportunityID: "O4", SalesAgent: "Anna", Account: "Acme", Product: "GTX Basic",
		DealStage: "Won", EngageDate: datePtr(2017, time.July, 1), CloseValue: 700,
	})

	teams, err = svc.TeamPerformance(ctx, analytics.Filter{})
	require.NoError(t, err)
	assert.Len(t, teams, 2, "cache serves the old snapshot")

	require.NoError(t, svc.Refresh(ctx))

	teams, err = svc.TeamPerformance(ctx, analytics.Filter{})
	require.NoError(t, err)
	assert.Len(t, teams, 3)
}

func TestPerformanceServiceInvalidateForcesRecompute(t *testing.T) {
	oppRepo, svc := newFixtureService()
	ctx := context.Background()

	_, err := svc.TeamPerformance(ctx, analytics.Filter{})
	require.NoError(t, err)

	oppRepo.opps = oppRepo.opps[:1]
	svc.Invalidate()

	teams, err := svc.TeamPerformance(ctx, analytics.Filter{})
	require.NoError(t, err)
	assert.Len(t, teams, 1)
}
