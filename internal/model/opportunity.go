package model

import (
	"time"

	"github.com/google/uuid"
)

// DealStage enum constants. Upstream cleansing guarantees these values,
// but any unrecognized stage is simply treated as not won.
const (
	DealStageProspecting = "Prospecting"
	DealStageEngaging    = "Engaging"
	DealStageWon         = "Won"
	DealStageLost        = "Lost"
)

// Opportunity is one record of the sales pipeline. Rows are loaded by the
// ingestion pipeline and are read-only for this service.
type Opportunity struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OpportunityID string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"opportunity_id"`
	SalesAgent    string     `gorm:"type:varchar(255);not null;index" json:"sales_agent"`
	Product       string     `gorm:"type:varchar(255);not null" json:"product"`
	Account       string     `gorm:"type:varchar(255)" json:"account"` // "Not Available" sentinel for missing accounts
	DealStage     string     `gorm:"type:varchar(50);not null;index" json:"deal_stage"`
	EngageDate    *time.Time `gorm:"type:date" json:"engage_date"`
	CloseDate     *time.Time `gorm:"type:date" json:"close_date"`
	CloseValue    float64    `gorm:"type:decimal(12,2);default:0" json:"close_value"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
