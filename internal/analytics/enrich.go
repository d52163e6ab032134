package analytics

import (
	"time"

	"crm-backend/internal/model"
)

// Dataset bundles the four input tables as read from storage. The pipeline
// treats it as an immutable snapshot; nothing here is ever mutated.
type Dataset struct {
	Opportunities []model.Opportunity
	Agents        []model.Agent
	Accounts      []model.Account
	Products      []model.Product
}

// EnrichedOpportunity is one opportunity joined with its agent, account and
// product dimensions, plus the derived time-bucket fields. It is computed
// once per pipeline run and shared read-only by every downstream
// aggregation; it is never persisted.
type EnrichedOpportunity struct {
	OpportunityID  string     `json:"opportunity_id"`
	SalesAgent     string     `json:"sales_agent"`
	Manager        *string    `json:"manager"`
	RegionalOffice *string    `json:"regional_office"`
	Account        string     `json:"account"`
	Sector         *string    `json:"sector"`
	OfficeLocation *string    `json:"office_location"`
	Product        string     `json:"product"`
	Series         *string    `json:"series"`
	SalesPrice     *float64   `json:"sales_price"`
	DealStage      string     `json:"deal_stage"`
	EngageDate     time.Time  `json:"engage_date"`
	CloseDate      *time.Time `json:"close_date"`
	CloseValue     float64    `json:"close_value"`
	Year           int        `json:"year"`
	Quarter        int        `json:"quarter"`
	DaysToClose    *int       `json:"days_to_close"`
}

// Enrich left-joins every opportunity with the three dimension tables and
// derives year, quarter and days-to-close. Unmatched dimension keys leave
// nil fields and the row is kept, so opportunities with a missing or
// sentinel account/product reference are never dropped. Rows without an
// engage date are excluded: all downstream consumers bucket by engagement
// time, and such rows have no bucket.
func Enrich(ds Dataset) []EnrichedOpportunity {
	agents := make(map[string]model.Agent, len(ds.Agents))
	for _, a := range ds.Agents {
		agents[a.Name] = a
	}
	accounts := make(map[string]model.Account, len(ds.Accounts))
	for _, a := range ds.Accounts {
		accounts[a.Name] = a
	}
	products := make(map[string]model.Product, len(ds.Products))
	for _, p := range ds.Products {
		products[p.Name] = p
	}

	enriched := make([]EnrichedOpportunity, 0, len(ds.Opportunities))
	for _, opp := range ds.Opportunities {
		if opp.EngageDate == nil {
			continue
		}
		engaged := *opp.EngageDate

		row := EnrichedOpportunity{
			OpportunityID: opp.OpportunityID,
			SalesAgent:    opp.SalesAgent,
			Account:       opp.Account,
			Product:       opp.Product,
			DealStage:     opp.DealStage,
			EngageDate:    engaged,
			CloseDate:     opp.CloseDate,
			CloseValue:    opp.CloseValue,
			Year:          engaged.Year(),
			Quarter:       quarterOf(engaged),
		}

		if agent, ok := agents[opp.SalesAgent]; ok {
			manager, office := agent.Manager, agent.RegionalOffice
			row.Manager = &manager
			row.RegionalOffice = &office
		}
		if account, ok := accounts[opp.Account]; ok {
			sector, location := account.Sector, account.OfficeLocation
			row.Sector = &sector
			row.OfficeLocation = &location
		}
		if product, ok := products[opp.Product]; ok {
			series, price := product.Series, product.SalesPrice
			row.Series = &series
			row.SalesPrice = &price
		}
		if opp.CloseDate != nil {
			days := int(opp.CloseDate.Sub(engaged).Hours() / 24)
			row.DaysToClose = &days
		}

		enriched = append(enriched, row)
	}

	return enriched
}

// quarterOf maps a date to its calendar quarter (1-4), boundaries at
// months 1/4/7/10.
func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}
