package model

import (
	"time"

	"github.com/google/uuid"
)

// Account is a customer company. Used only as a join dimension for
// enrichment; no amounts are aggregated over it.
type Account struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Sector          string    `gorm:"type:varchar(100)" json:"sector"`
	OfficeLocation  string    `gorm:"type:varchar(100)" json:"office_location"`
	YearEstablished int       `gorm:"type:int" json:"year_established"`
	AnnualRevenue   float64   `gorm:"type:decimal(14,2)" json:"annual_revenue"`
	Employees       int       `gorm:"type:int" json:"employees"`
	SubsidiaryOf    string    `gorm:"type:varchar(255)" json:"subsidiary_of"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
