package analytics

import (
	"testing"
	"time"

	"crm-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func fixtureDataset() Dataset {
	return Dataset{
		Agents: []model.Agent{
			{Name: "Anna Snelling", Manager: "Dustin Brinkmann", RegionalOffice: "Central"},
			{Name: "Vicki Laflamme", Manager: "Celia Rouche", RegionalOffice: "West"},
		},
		Accounts: []model.Account{
			{Name: "Hottechi", Sector: "technology", OfficeLocation: "Japan"},
		},
		Products: []model.Product{
			{Name: "GTX Basic", Series: "GTX", SalesPrice: 550},
			{Name: "MG Special", Series: "MG", SalesPrice: 55},
		},
	}
}

func TestEnrichJoinsAllDimensions(t *testing.T) {
	ds := fixtureDataset()
	ds.Opportunities = []model.Opportunity{
		{
			OpportunityID: "OPP001",
			SalesAgent:    "Anna Snelling",
			Account:       "Hottechi",
			Product:       "GTX Basic",
			DealStage:     model.DealStageWon,
			EngageDate:    date(2017, time.February, 1),
			CloseDate:     date(2017, time.March, 3),
			CloseValue:    580,
		},
	}

	rows := Enrich(ds)
	require.Len(t, rows, 1)

	row := rows[0]
	require.NotNil(t, row.Manager)
	assert.Equal(t, "Dustin Brinkmann", *row.Manager)
	require.NotNil(t, row.RegionalOffice)
	assert.Equal(t, "Central", *row.RegionalOffice)
	require.NotNil(t, row.Sector)
	assert.Equal(t, "technology", *row.Sector)
	require.NotNil(t, row.SalesPrice)
	assert.Equal(t, 550.0, *row.SalesPrice)
	require.NotNil(t, row.DaysToClose)
	assert.Equal(t, 30, *row.DaysToClose)
	assert.Equal(t, 2017, row.Year)
	assert.Equal(t, 1, row.Quarter)
}

func TestEnrichKeepsRowWithUnmatchedAccount(t *testing.T) {
	ds := fixtureDataset()
	ds.Opportunities = []model.Opportunity{
		{
			OpportunityID: "OPP002",
			SalesAgent:    "Anna Snelling",
			Account:       "Not Available",
			Product:       "GTX Basic",
			DealStage:     model.DealStageLost,
			EngageDate:    date(2017, time.May, 10),
		},
	}

	rows := Enrich(ds)
	require.Len(t, rows, 1, "unmatched account must not drop the row")
	assert.Nil(t, rows[0].Sector)
	assert.Nil(t, rows[0].OfficeLocation)
	require.NotNil(t, rows[0].Manager)
}

func TestEnrichKeepsRowWithUnmatchedProduct(t *testing.T) {
	ds := fixtureDataset()
	ds.Opportunities = []model.Opportunity{
		{
			OpportunityID: "OPP003",
			SalesAgent:    "Nobody Known",
			Account:       "Hottechi",
			Product:       "GTK 500",
			DealStage:     model.DealStageEngaging,
			EngageDate:    date(2017, time.August, 20),
		},
	}

	rows := Enrich(ds)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Series)
	assert.Nil(t, rows[0].SalesPrice)
	assert.Nil(t, rows[0].Manager, "unmatched agent leaves team fields nil")
	assert.Nil(t, rows[0].DaysToClose, "no close date, no cycle length contribution")
}

func TestEnrichExcludesRowsWithoutEngageDate(t *testing.T) {
	ds := fixtureDataset()
	ds.Opportunities = []model.Opportunity{
		{OpportunityID: "OPP004", SalesAgent: "Anna Snelling", Product: "GTX Basic", DealStage: model.DealStageEngaging},
		{OpportunityID: "OPP005", SalesAgent: "Anna Snelling", Product: "GTX Basic", DealStage: model.DealStageWon,
			EngageDate: date(2017, time.October, 5), CloseValue: 100},
	}

	rows := Enrich(ds)
	require.Len(t, rows, 1)
	assert.Equal(t, "OPP005", rows[0].OpportunityID)
}

func TestQuarterOfAllMonths(t *testing.T) {
	expected := map[time.Month]int{
		time.January: 1, time.February: 1, time.March: 1,
		time.April: 2, time.May: 2, time.June: 2,
		time.July: 3, time.August: 3, time.September: 3,
		time.October: 4, time.November: 4, time.December: 4,
	}
	for month, quarter := range expected {
		got := quarterOf(time.Date(2017, month, 15, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, quarter, got, "month %s", month)
		assert.GreaterOrEqual(t, got, 1)
		assert.LessOrEqual(t, got, 4)
	}
}
