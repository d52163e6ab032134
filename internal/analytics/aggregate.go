package analytics

import (
	"sort"
	"strings"
)

// The two won-deal predicates are intentionally different and must not be
// unified: the team view historically counted any stage containing "won"
// while the agent/product view tested for the exact "Won" stage. Merging
// them would silently change historical output.

// wonLoose reports whether a deal stage counts as won at team granularity:
// a case-insensitive substring match on "won".
func wonLoose(stage string) bool {
	return strings.Contains(strings.ToLower(stage), "won")
}

// wonExact reports whether a deal stage is exactly "Won"; applied at
// agent/product granularity.
func wonExact(stage string) bool {
	return stage == "Won"
}

// teamBaseRow is one (manager, year, quarter) group before windowing.
// Rows whose agent dimension did not match carry an empty manager and form
// their own group, mirroring a SQL left join grouping on a NULL key.
type teamBaseRow struct {
	Manager          string
	Year             int
	Quarter          int
	TotalRevenue     float64
	OpportunityCount int
	WonCount         int
}

// agentProductRow is one (agent, year, quarter, product) group, the finer
// granularity that agent-level metrics are rolled up from.
type agentProductRow struct {
	SalesAgent       string
	Year             int
	Quarter          int
	Product          string
	Revenue          float64
	OpportunityCount int
	WonCount         int
	DaysToCloseSum   int
}

type periodKey struct {
	Name    string
	Year    int
	Quarter int
}

// teamBase groups enriched rows at (manager, year, quarter) and computes the
// base aggregates. Output is sorted by manager, then period ascending, which
// is the partition order the windowing step depends on.
func teamBase(rows []EnrichedOpportunity) []teamBaseRow {
	groups := make(map[periodKey]*teamBaseRow)
	for _, r := range rows {
		manager := ""
		if r.Manager != nil {
			manager = *r.Manager
		}
		key := periodKey{Name: manager, Year: r.Year, Quarter: r.Quarter}
		g, ok := groups[key]
		if !ok {
			g = &teamBaseRow{Manager: manager, Year: r.Year, Quarter: r.Quarter}
			groups[key] = g
		}
		g.TotalRevenue += r.CloseValue
		g.OpportunityCount++
		if wonLoose(r.DealStage) {
			g.WonCount++
		}
	}

	out := make([]teamBaseRow, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Manager != out[j].Manager {
			return out[i].Manager < out[j].Manager
		}
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Quarter < out[j].Quarter
	})
	return out
}

type agentProductKey struct {
	SalesAgent string
	Year       int
	Quarter    int
	Product    string
}

// agentProductBase groups enriched rows at (agent, year, quarter, product).
// Days-to-close sums skip rows without a close date.
func agentProductBase(rows []EnrichedOpportunity) []agentProductRow {
	groups := make(map[agentProductKey]*agentProductRow)
	for _, r := range rows {
		key := agentProductKey{SalesAgent: r.SalesAgent, Year: r.Year, Quarter: r.Quarter, Product: r.Product}
		g, ok := groups[key]
		if !ok {
			g = &agentProductRow{SalesAgent: r.SalesAgent, Year: r.Year, Quarter: r.Quarter, Product: r.Product}
			groups[key] = g
		}
		g.Revenue += r.CloseValue
		g.OpportunityCount++
		if wonExact(r.DealStage) {
			g.WonCount++
		}
		if r.DaysToClose != nil {
			g.DaysToCloseSum += *r.DaysToClose
		}
	}

	out := make([]agentProductRow, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.SalesAgent != b.SalesAgent {
			return a.SalesAgent < b.SalesAgent
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Quarter != b.Quarter {
			return a.Quarter < b.Quarter
		}
		return a.Product < b.Product
	})
	return out
}
