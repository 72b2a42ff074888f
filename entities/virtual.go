package entities

import (
	"time"

	"github.com/google/uuid"
)

type VirtualAccount struct {
	AccountID uuid.UUID `gorm:"type:uuid;primary_key" json:"account_id"`
	Balance   float64   `gorm:"type:numeric(20,2)" json:"balance"`

	Account *PlayerAccount `gorm:"foreignKey:AccountID" json:"-"`
	Timestamp
}

type VirtualOfferState struct {
	AccountID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"account_id"`
	OfferID          *uuid.UUID `gorm:"type:uuid" json:"offer_id"`
	OfferName        string     `json:"offer_name"`
	OfferCost        float64    `gorm:"type:numeric(20,2)" json:"offer_cost"`
	OfferIncomeBoost float64    `gorm:"type:numeric(20,2)" json:"offer_income_boost"`
	OfferSpawnedAt   *time.Time `json:"offer_spawned_at"`
	ExpiresAt        *time.Time `json:"expires_at"`
	NextOfferAt      *time.Time `json:"next_offer_at"`
	PurchasedAt      *time.Time `json:"purchased_at"`

	Account *PlayerAccount `gorm:"foreignKey:AccountID" json:"-"`
	Timestamp
}

type VirtualPurchase struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AccountID   uuid.UUID `json:"account_id"`
	OfferID     uuid.UUID `gorm:"type:uuid" json:"offer_id"`
	OfferName   string    `json:"offer_name"`
	Cost        float64   `gorm:"type:numeric(20,2)" json:"cost"`
	IncomeBoost float64   `gorm:"type:numeric(20,2)" json:"income_boost"`
	PurchasedAt time.Time `json:"purchased_at"`

	Account *PlayerAccount `gorm:"foreignKey:AccountID" json:"-"`
	Timestamp
}
