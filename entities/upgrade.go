package entities

import (
	"github.com/google/uuid"
)

type Upgrade struct {
	ID               string  `gorm:"primary_key" json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Cost             float64 `gorm:"type:numeric(20,2)" json:"cost"`
	IncomeBoost      float64 `gorm:"type:numeric(20,2)" json:"income_boost"`
	Icon             string  `json:"icon"`
	SortOrder        int     `json:"sort_order"`
	CostMultiplier   float64 `json:"cost_multiplier"`
	IncomeMultiplier float64 `json:"income_multiplier"`

	Timestamp
}

type PurchasedUpgrade struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AccountID uuid.UUID `gorm:"uniqueIndex:idx_account_upgrade" json:"account_id"`
	UpgradeID string    `gorm:"uniqueIndex:idx_account_upgrade" json:"upgrade_id"`
	Level     int       `json:"level"`

	Account *PlayerAccount `gorm:"foreignKey:AccountID" json:"-"`
	Upgrade *Upgrade       `gorm:"foreignKey:UpgradeID" json:"-"`
	Timestamp
}
