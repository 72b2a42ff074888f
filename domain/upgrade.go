package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetUpgrades          = "upgrades retrieved successfully"
	MessageSuccessGetPurchasedUpgrades = "purchased upgrades retrieved successfully"
	MessageSuccessCreatePurchased      = "purchased upgrade created successfully"
	MessageSuccessUpdatePurchased      = "purchased upgrade updated successfully"
	MessageSuccessBuyUpgrade           = "upgrade purchased successfully"

	MessageFailedGetUpgrades          = "failed to retrieve upgrades"
	MessageFailedGetPurchasedUpgrades = "failed to retrieve purchased upgrades"
	MessageFailedCreatePurchased      = "failed to create purchased upgrade"
	MessageFailedUpdatePurchased      = "failed to update purchased upgrade"
	MessageFailedBuyUpgrade           = "failed to purchase upgrade"

	ErrUpgradeNotFound   = errors.New("upgrade not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

type (
	UpgradeResponse struct {
		ID               string  `json:"id"`
		Name             string  `json:"name"`
		Description      string  `json:"description"`
		Cost             float64 `json:"cost"`
		IncomeBoost      float64 `json:"income_boost"`
		Icon             string  `json:"icon"`
		SortOrder        int     `json:"sort_order"`
		CostMultiplier   float64 `json:"cost_multiplier"`
		IncomeMultiplier float64 `json:"income_multiplier"`
	}

	PurchasedUpgradeResponse struct {
		ID        string    `json:"id"`
		AccountID string    `json:"account_id"`
		UpgradeID string    `json:"upgrade_id"`
		Level     int       `json:"level"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	CreatePurchasedUpgradeRequest struct {
		AccountID string `json:"account_id" validate:"required,uuid"`
		UpgradeID string `json:"upgrade_id" validate:"required"`
		Level     int    `json:"level" validate:"required,min=1"`
	}

	UpdatePurchasedUpgradeRequest struct {
		AccountID string `json:"account_id" validate:"required,uuid"`
		UpgradeID string `json:"upgrade_id" validate:"required"`
		Level     int    `json:"level" validate:"required,min=1"`
	}

	BuyUpgradeRequest struct {
		UpgradeID string `json:"upgrade_id" validate:"required"`
	}

	BuyUpgradeResponse struct {
		Account   AccountResponse          `json:"account"`
		Purchased PurchasedUpgradeResponse `json:"purchased"`
		PaidCost  float64                  `json:"paid_cost"`
		Boost     float64                  `json:"boost"`
	}
)
