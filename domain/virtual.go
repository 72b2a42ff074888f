package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetVirtualAccount = "virtual account retrieved successfully"
	MessageSuccessTransfer          = "transfer completed successfully"
	MessageSuccessGetVirtualOffer   = "virtual offer retrieved successfully"
	MessageSuccessPurchaseOffer     = "virtual offer purchased successfully"
	MessageSuccessGetVirtualHistory = "virtual purchases retrieved successfully"

	MessageFailedGetVirtualAccount = "failed to retrieve virtual account"
	MessageFailedTransfer          = "failed to transfer funds"
	MessageFailedGetVirtualOffer   = "failed to retrieve virtual offer"
	MessageFailedPurchaseOffer     = "failed to purchase virtual offer"
	MessageFailedGetVirtualHistory = "failed to retrieve virtual purchases"

	ErrInvalidTransferAmount = errors.New("transfer amount must be a positive number")
	ErrNoActiveOffer         = errors.New("no active offer")
	ErrOfferExpired          = errors.New("offer expired")
	ErrOfferAlreadyPurchased = errors.New("offer already purchased")
	ErrMalformedOffer        = errors.New("offer is malformed")
	ErrInsufficientVirtual   = errors.New("insufficient virtual balance")
)

const (
	// An offer stays purchasable this long after it spawns, then the
	// account waits out the cooldown before the next one.
	OfferLifetimeSeconds = 20
	OfferCooldownSeconds = 30

	MinOfferCost = 10.0
)

// OfferTier bounds the generated income boost and the cost multiplier
// applied to it. Selection is weighted, like the event catalog.
type OfferTier struct {
	Name     string
	Weight   int
	MinBoost float64
	MaxBoost float64
	CostMin  float64
	CostMax  float64
}

var OfferTiers = []OfferTier{
	{Name: "Quick Boost", Weight: 55, MinBoost: 0.5, MaxBoost: 5, CostMin: 25, CostMax: 120},
	{Name: "Premium Boost", Weight: 30, MinBoost: 5, MaxBoost: 25, CostMin: 20, CostMax: 90},
	{Name: "Executive Package", Weight: 12, MinBoost: 25, MaxBoost: 150, CostMin: 15, CostMax: 60},
	{Name: "Legendary Windfall", Weight: 3, MinBoost: 150, MaxBoost: 1000, CostMin: 10, CostMax: 35},
}

type (
	VirtualAccountResponse struct {
		AccountID string  `json:"account_id"`
		Balance   float64 `json:"balance"`
	}

	TransferRequest struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
	}

	TransferResponse struct {
		Account AccountResponse        `json:"account"`
		Virtual VirtualAccountResponse `json:"virtual"`
	}

	VirtualOffer struct {
		ID          string     `json:"id"`
		Name        string     `json:"name"`
		Cost        float64    `json:"cost"`
		IncomeBoost float64    `json:"income_boost"`
		SpawnedAt   time.Time  `json:"spawned_at"`
		ExpiresAt   time.Time  `json:"expires_at"`
		PurchasedAt *time.Time `json:"purchased_at"`
	}

	VirtualOfferResponse struct {
		Offer       *VirtualOffer `json:"offer"`
		NextOfferAt *time.Time    `json:"next_offer_at"`
	}

	PurchaseOfferResponse struct {
		Account AccountResponse        `json:"account"`
		Virtual VirtualAccountResponse `json:"virtual"`
	}

	VirtualPurchaseResponse struct {
		ID          string    `json:"id"`
		OfferID     string    `json:"offer_id"`
		OfferName   string    `json:"offer_name"`
		Cost        float64   `json:"cost"`
		IncomeBoost float64   `json:"income_boost"`
		PurchasedAt time.Time `json:"purchased_at"`
	}
)
