package analytics

import "github.com/shopspring/decimal"

// TeamPeriodMetric is one (manager, year, quarter) row of the team
// performance view. Nullable metrics are pointers and marshal as JSON null
// when the metric is not computable (first period, zero denominators).
type TeamPeriodMetric struct {
	Manager          string   `json:"manager"`
	Year             int      `json:"year"`
	Quarter          int      `json:"quarter"`
	TotalRevenue     float64  `json:"total_revenue"`
	OpportunityCount int      `json:"opportunity_count"`
	WonCount         int      `json:"won_count"`
	WinRate          *float64 `json:"win_rate"`
	AvgDealSize      *float64 `json:"avg_deal_size"`
	PreviousRevenue  *float64 `json:"previous_period_revenue"`
	RevenueDelta     *float64 `json:"revenue_delta"`
	RevenueDeltaPct  *float64 `json:"revenue_delta_pct"`
}

// AgentPeriodMetric is one (agent, year, quarter) row of the agent
// performance view, rolled up from (agent, year, quarter, product) groups.
type AgentPeriodMetric struct {
	SalesAgent       string   `json:"sales_agent"`
	Year             int      `json:"year"`
	Quarter          int      `json:"quarter"`
	QuarterlyRevenue float64  `json:"quarterly_revenue"`
	NumOpportunities int      `json:"num_opportunities_per_agent"`
	NumWonDeals      int      `json:"num_won_deals"`
	WinRate          *float64 `json:"win_rate"`
	AvgDealSize      *float64 `json:"avg_deal_size"`
	SalesCycleLength *float64 `json:"sales_cycle_length"`
	PreviousRevenue  *float64 `json:"previous_period_revenue"`
	RevenueDelta     *float64 `json:"revenue_delta"`
	RevenueDeltaPct  *float64 `json:"revenue_delta_pct"`
}

// TeamPerformance computes the team view: base aggregates per
// (manager, year, quarter) plus the windowed period-over-period metrics
// within each manager partition ordered by (year, quarter) ascending.
func TeamPerformance(rows []EnrichedOpportunity) []TeamPeriodMetric {
	base := teamBase(rows)

	out := make([]TeamPeriodMetric, 0, len(base))
	var prev *TeamPeriodMetric
	for _, b := range base {
		m := TeamPeriodMetric{
			Manager:          b.Manager,
			Year:             b.Year,
			Quarter:          b.Quarter,
			TotalRevenue:     b.TotalRevenue,
			OpportunityCount: b.OpportunityCount,
			WonCount:         b.WonCount,
			WinRate:          ratioPct(float64(b.WonCount), float64(b.OpportunityCount)),
			AvgDealSize:      safeDiv(b.TotalRevenue, b.WonCount),
		}
		if prev != nil && prev.Manager == b.Manager {
			m.PreviousRevenue, m.RevenueDelta, m.RevenueDeltaPct = periodDelta(b.TotalRevenue, prev.TotalRevenue)
		}
		out = append(out, m)
		prev = &out[len(out)-1]
	}
	return out
}

// AgentPerformance computes the agent view. Metrics are first grouped at
// (agent, year, quarter, product) granularity with the exact-match won
// predicate, then summed across products within the same agent-quarter
// partition; the windowed delta fields run over the rolled-up rows.
func AgentPerformance(rows []EnrichedOpportunity) []AgentPeriodMetric {
	base := agentProductBase(rows)

	// Roll product-level groups up to the (agent, year, quarter) partition.
	// Any duplicate base rows for one partition-period merge by summation
	// here, so they can never occupy two window sequence positions.
	rolled := make([]AgentPeriodMetric, 0, len(base))
	daysSums := make([]int, 0, len(base))
	for _, b := range base {
		n := len(rolled)
		if n > 0 && rolled[n-1].SalesAgent == b.SalesAgent &&
			rolled[n-1].Year == b.Year && rolled[n-1].Quarter == b.Quarter {
			rolled[n-1].QuarterlyRevenue += b.Revenue
			rolled[n-1].NumOpportunities += b.OpportunityCount
			rolled[n-1].NumWonDeals += b.WonCount
			daysSums[n-1] += b.DaysToCloseSum
			continue
		}
		rolled = append(rolled, AgentPeriodMetric{
			SalesAgent:       b.SalesAgent,
			Year:             b.Year,
			Quarter:          b.Quarter,
			QuarterlyRevenue: b.Revenue,
			NumOpportunities: b.OpportunityCount,
			NumWonDeals:      b.WonCount,
		})
		daysSums = append(daysSums, b.DaysToCloseSum)
	}

	for i := range rolled {
		m := &rolled[i]
		m.WinRate = ratioPct(float64(m.NumWonDeals), float64(m.NumOpportunities))
		m.AvgDealSize = safeDiv(m.QuarterlyRevenue, m.NumWonDeals)
		m.SalesCycleLength = safeDiv(float64(daysSums[i]), m.NumWonDeals)
		if i > 0 && rolled[i-1].SalesAgent == m.SalesAgent {
			m.PreviousRevenue, m.RevenueDelta, m.RevenueDeltaPct = periodDelta(m.QuarterlyRevenue, rolled[i-1].QuarterlyRevenue)
		}
	}
	return rolled
}

// periodDelta derives the previous-period fields for one window step. The
// percentage change is nil when the previous revenue is zero.
func periodDelta(current, previous float64) (prev, delta, deltaPct *float64) {
	prev = ptr(previous)
	delta = ptr(current - previous)
	if previous != 0 {
		deltaPct = ptr(round2((current - previous) / previous * 100))
	}
	return prev, delta, deltaPct
}

// round2 rounds half away from zero to 2 decimals, matching SQL ROUND.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// ratioPct returns num/den as a percentage rounded to 2 decimals, or nil
// when the denominator is zero.
func ratioPct(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	return ptr(round2(num / den * 100))
}

// safeDiv returns num/den rounded to 2 decimals, or nil when den is zero.
func safeDiv(num float64, den int) *float64 {
	if den == 0 {
		return nil
	}
	return ptr(round2(num / float64(den)))
}

func ptr(v float64) *float64 {
	return &v
}
