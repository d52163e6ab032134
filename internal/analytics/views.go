package analytics

// Views holds the three result sets assembled from one enriched snapshot.
// Each set is a pure function of the enriched rows; none mutates another.
type Views struct {
	TeamPerformance  []TeamPeriodMetric  `json:"team_performance"`
	AgentPerformance []AgentPeriodMetric `json:"agent_performance"`
	Classification   []RankedAgentPeriod `json:"sales_performance_classification"`
}

// BuildViews runs the full derivation over an enriched row set. The
// classification view ranks the rolled-up agent-quarter totals from the
// agent view, so the rollup is computed once and reused.
func BuildViews(rows []EnrichedOpportunity) Views {
	agents := AgentPerformance(rows)
	return Views{
		TeamPerformance:  TeamPerformance(rows),
		AgentPerformance: agents,
		Classification:   ClassifyAgents(agents),
	}
}

// Filter narrows view rows to an explicit period and/or partition name.
// Zero values match everything, so consumers can slice out the latest
// period and read the precomputed previous-period fields directly.
type Filter struct {
	Year       int
	Quarter    int
	Manager    string
	SalesAgent string
}

func (f Filter) matchPeriod(year, quarter int) bool {
	if f.Year != 0 && year != f.Year {
		return false
	}
	if f.Quarter != 0 && quarter != f.Quarter {
		return false
	}
	return true
}

// FilterTeams selects team rows matching the filter.
func FilterTeams(rows []TeamPeriodMetric, f Filter) []TeamPeriodMetric {
	out := make([]TeamPeriodMetric, 0, len(rows))
	for _, r := range rows {
		if !f.matchPeriod(r.Year, r.Quarter) {
			continue
		}
		if f.Manager != "" && r.Manager != f.Manager {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterAgents selects agent rows matching the filter.
func FilterAgents(rows []AgentPeriodMetric, f Filter) []AgentPeriodMetric {
	out := make([]AgentPeriodMetric, 0, len(rows))
	for _, r := range rows {
		if !f.matchPeriod(r.Year, r.Quarter) {
			continue
		}
		if f.SalesAgent != "" && r.SalesAgent != f.SalesAgent {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterClassification selects ranked rows matching the filter.
func FilterClassification(rows []RankedAgentPeriod, f Filter) []RankedAgentPeriod {
	out := make([]RankedAgentPeriod, 0, len(rows))
	for _, r := range rows {
		if !f.matchPeriod(r.Year, r.Quarter) {
			continue
		}
		if f.SalesAgent != "" && r.SalesAgent != f.SalesAgent {
			continue
		}
		out = append(out, r)
	}
	return out
}
