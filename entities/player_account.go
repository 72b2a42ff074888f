package entities

import (
	"time"

	"github.com/google/uuid"
)

type PlayerAccount struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email           string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash    string    `json:"-"`
	Balance         float64   `gorm:"type:numeric(20,2)" json:"balance"`
	IncomePerSecond float64   `gorm:"type:numeric(20,2)" json:"income_per_second"`
	LastUpdatedAt   time.Time `json:"last_updated_at"`

	Timestamp
}
