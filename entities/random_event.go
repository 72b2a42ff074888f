package entities

import (
	"time"

	"github.com/google/uuid"
)

type RandomEventState struct {
	AccountID     uuid.UUID  `gorm:"type:uuid;primary_key" json:"account_id"`
	ActiveEventID *string    `json:"active_event_id"`
	Multiplier    float64    `json:"multiplier"`
	StartedAt     *time.Time `json:"started_at"`
	EndsAt        *time.Time `json:"ends_at"`
	NextEventAt   *time.Time `json:"next_event_at"`

	Account *PlayerAccount `gorm:"foreignKey:AccountID" json:"-"`
	Timestamp
}
