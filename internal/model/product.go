package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable item with its reference list price, used for
// price-vs-close-value comparisons in the enriched set.
type Product struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Series     string    `gorm:"type:varchar(100)" json:"series"`
	SalesPrice float64   `gorm:"type:decimal(12,2);not null" json:"sales_price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
