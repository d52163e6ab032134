package analytics

import "sort"

// Performance category labels, one per ranked row.
const (
	CategoryHigh    = "High-performing"
	CategoryAverage = "Average performer"
	CategoryUnder   = "Consistently underperforming"
)

// RankedAgentPeriod places an agent's quarterly revenue total into a decile
// within its (year, quarter) partition and maps the decile to a category.
// Decile values are only comparable between rows of the same partition.
type RankedAgentPeriod struct {
	SalesAgent   string  `json:"sales_agent"`
	Year         int     `json:"year"`
	Quarter      int     `json:"quarter"`
	TotalRevenue float64 `json:"total_revenue"`
	Decile       int     `json:"decile"`
	Category     string  `json:"category"`
}

// ClassifyAgents ranks rolled-up agent-quarter revenue totals ascending
// within each (year, quarter) partition, assigns NTILE(10) deciles and the
// 3-way performance category. Revenue ties break on agent name so repeated
// runs over the same data produce identical bucket assignments.
func ClassifyAgents(rows []AgentPeriodMetric) []RankedAgentPeriod {
	ranked := make([]RankedAgentPeriod, 0, len(rows))
	for _, r := range rows {
		ranked = append(ranked, RankedAgentPeriod{
			SalesAgent:   r.SalesAgent,
			Year:         r.Year,
			Quarter:      r.Quarter,
			TotalRevenue: r.QuarterlyRevenue,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Quarter != b.Quarter {
			return a.Quarter < b.Quarter
		}
		if a.TotalRevenue != b.TotalRevenue {
			return a.TotalRevenue < b.TotalRevenue
		}
		return a.SalesAgent < b.SalesAgent
	})

	// Assign deciles per (year, quarter) partition.
	start := 0
	for i := 1; i <= len(ranked); i++ {
		if i < len(ranked) && ranked[i].Year == ranked[start].Year && ranked[i].Quarter == ranked[start].Quarter {
			continue
		}
		buckets := ntile(i-start, 10)
		for j := start; j < i; j++ {
			ranked[j].Decile = buckets[j-start]
			ranked[j].Category = categoryFor(buckets[j-start])
		}
		start = i
	}

	return ranked
}

// ntile assigns 1-based bucket numbers to n ordered rows spread across the
// given number of equal-size buckets. When n does not divide evenly, the
// remainder rows are front-loaded one per bucket into the lowest bucket
// numbers — standard SQL NTILE semantics, implemented here so bucketing
// does not depend on any storage engine's ranking primitive.
func ntile(n, buckets int) []int {
	out := make([]int, n)
	if n == 0 {
		return out
	}
	size := n / buckets
	remainder := n % buckets
	pos := 0
	for b := 1; b <= buckets && pos < n; b++ {
		count := size
		if b <= remainder {
			count++
		}
		for k := 0; k < count; k++ {
			out[pos] = b
			pos++
		}
	}
	// More buckets than rows: every row got its own bucket above, nothing
	// left to assign.
	return out
}

// categoryFor maps a decile bucket to its performance category. The three
// labels are exhaustive and non-overlapping.
func categoryFor(decile int) string {
	switch {
	case decile >= 9:
		return CategoryHigh
	case decile <= 1:
		return CategoryUnder
	default:
		return CategoryAverage
	}
}
