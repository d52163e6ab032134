package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario: three opportunities for one agent in Q1 2017 with close values
// 100, 200, 0 and stages Won, Won, Lost.
func TestAgentPerformanceWinRateAndAvgDealSize(t *testing.T) {
	rows := []EnrichedOpportunity{
		enrichedRow("agent-x", "M1", "P1", "Won", 2017, 1, 100),
		enrichedRow("agent-x", "M1", "P1", "Won", 2017, 1, 200),
		enrichedRow("agent-x", "M1", "P1", "Lost", 2017, 1, 0),
	}

	metrics := AgentPerformance(rows)
	require.Len(t, metrics, 1)

	m := metrics[0]
	assert.Equal(t, 3, m.NumOpportunities)
	assert.Equal(t, 2, m.NumWonDeals)
	require.NotNil(t, m.WinRate)
	assert.Equal(t, 66.67, *m.WinRate)
	require.NotNil(t, m.AvgDealSize)
	assert.Equal(t, 150.0, *m.AvgDealSize)
}

// Scenario: a team with revenue 1000 in Q1 and 1500 in Q2.
func TestTeamPerformancePeriodDeltas(t *testing.T) {
	rows := []EnrichedOpportunity{
		enrichedRow("a1", "team-y", "P1", "Won", 2017, 1, 1000),
		enrichedRow("a1", "team-y", "P1", "Won", 2017, 2, 1500),
	}

	metrics := TeamPerformance(rows)
	require.Len(t, metrics, 2)

	q1 := metrics[0]
	assert.Nil(t, q1.PreviousRevenue, "first period in partition has no prior row")
	assert.Nil(t, q1.RevenueDelta)
	assert.Nil(t, q1.RevenueDeltaPct)

	q2 := metrics[1]
	require.NotNil(t, q2.PreviousRevenue)
	assert.Equal(t, 1000.0, *q2.PreviousRevenue)
	require.NotNil(t, q2.RevenueDelta)
	assert.Equal(t, 500.0, *q2.RevenueDelta)
	require.NotNil(t, q2.RevenueDeltaPct)
	assert.Equal(t, 50.0, *q2.RevenueDeltaPct)
}

func TestTeamPerformanceDeltasDoNotCrossPartitions(t *testing.T) {
	rows := []EnrichedOpportunity{
		enrichedRow("a1", "M1", "P1", "Won", 2017, 4, 900),
		enrichedRow("a2", "M2", "P1", "Won", 2018, 1, 100),
	}

	metrics := TeamPerformance(rows)
	require.Len(t, metrics, 2)
	assert.Nil(t, metrics[1].PreviousRevenue, "M2's first period must not see M1's revenue")
}

func TestTeamPerformanceDeltaPctNilOnZeroPrevious(t *testing.T) {
	rows := []EnrichedOpportunity{
		enrichedRow("a1", "M1", "P1", "Lost", 2017, 1, 0),
		enrichedRow("a1", "M1", "P1", "Won", 2017, 2, 500),
	}

	metrics := TeamPerformance(rows)
	require.Len(t, metrics, 2)
	q2 := metrics[1]
	require.NotNil(t, q2.PreviousRevenue)
	assert.Equal(t, 0.0, *q2.PreviousRevenue)
	require.NotNil(t, q2.RevenueDelta)
	assert.Equal(t, 500.0, *q2.RevenueDelta)
	assert.Nil(t, q2.RevenueDeltaPct, "percent change is undefined against zero revenue")
}

func TestAvgDealSizeNilIffNoWonDeals(t *testing.T) {
	rows := []EnrichedOpportunity{
		enrichedRow("a1", "M1", "P1", "Lost", 2017, 1, 0),
		enrichedRow("a1", "M1", "P1", "Engaging", 2017, 1, 0),
	}

	teams := TeamPerformance(rows)
	require.Len(t, teams, 1)
	assert.Nil(t, teams[0].AvgDealSize)
	require.NotNil(t, teams[0].WinRate)
	assert.Equal(t, 0.0, *teams[0].WinRate)

	agents := AgentPerformance(rows)
	require.Len(t, agents, 1)
	assert.Nil(t, agents[0].AvgDealSize)
	assert.Nil(t, agents[0].SalesCycleLength, "cycle length needs at least one won deal")
}

func TestWinRateWithinBounds(t *testing.T) {
	rows := []EnrichedOpportunity{
		enrichedRow("a1", "M1", "P1", "Won", 2017, 1, 10),
		enrichedRow("a1", "M1", "P1", "Won", 2017, 1, 10),
		enrichedRow("a2", "M1", "P1", "Lost", 2017, 1, 0),
		enrichedRow("a2", "M2", "P2", "Engaging", 2017, 3, 0),
	}
	for _, m := range TeamPerformance(rows) {
		require.NotNil(t, m.WinRate)
		assert.GreaterOrEqual(t, *m.WinRate, 0.0)
		assert.LessOrEqual(t, *m.WinRate, 100.0)
	}
}

// Agent metrics roll up from product-level groups: two products in the same
// quarter collapse into one window row, never two sequence positions.
func TestAgentPerformanceTwoLevelRollup(t *testing.T) {
	d1, d2 := 12, 18
	rows := []EnrichedOpportunity{
		{SalesAgent: "a1", Product: "GTX Basic", DealStage: "Won", Year: 2017, Quarter: 1, CloseValue: 100, DaysToClose: &d1},
		{SalesAgent: "a1", Product: "MG Special", DealStage: "Won", Year: 2017, Quarter: 1, CloseValue: 300, DaysToClose: &d2},
		{SalesAgent: "a1", Product: "GTX Basic", DealStage: "Won", Year: 2017, Quarter: 2, CloseValue: 500},
	}

	metrics := AgentPerformance(rows)
	require.Len(t, metrics, 2, "same agent-quarter must merge across products")

	q1 := metrics[0]
	assert.Equal(t, 400.0, q1.QuarterlyRevenue)
	assert.Equal(t, 2, q1.NumOpportunities)
	assert.Equal(t, 2, q1.NumWonDeals)
	require.NotNil(t, q1.SalesCycleLength)
	assert.Equal(t, 15.0, *q1.SalesCycleLength, "(12+18)/2 won deals")

	q2 := metrics[1]
	require.NotNil(t, q2.PreviousRevenue)
	assert.Equal(t, 400.0, *q2.PreviousRevenue, "window runs over rolled-up rows")
	require.NotNil(t, q2.RevenueDelta)
	assert.Equal(t, 100.0, *q2.RevenueDelta)
	require.NotNil(t, q2.RevenueDeltaPct)
	assert.Equal(t, 25.0, *q2.RevenueDeltaPct)
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 66.67, round2(200.0/3.0))
	assert.Equal(t, 0.13, round2(0.125))
	assert.Equal(t, -0.13, round2(-0.125))
	assert.Equal(t, 50.0, round2(50))
}

func TestSafeDivGuards(t *testing.T) {
	assert.Nil(t, safeDiv(10, 0))
	got := safeDiv(10, 4)
	require.NotNil(t, got)
	assert.Equal(t, 2.5, *got)

	assert.Nil(t, ratioPct(1, 0))
	pct := ratioPct(1, 3)
	require.NotNil(t, pct)
	assert.Equal(t, 33.33, *pct)
}
