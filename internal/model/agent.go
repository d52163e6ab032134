package model

import (
	"time"

	"github.com/google/uuid"
)

// Agent represents a sales agent. The Manager column doubles as the team
// key: agents reporting to the same manager form one team.
type Agent struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Manager        string    `gorm:"type:varchar(255);not null;index" json:"manager"`
	RegionalOffice string    `gorm:"type:varchar(100);not null" json:"regional_office"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
