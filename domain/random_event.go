package domain

import (
	"time"
)

var (
	MessageSuccessGetEventState  = "random event state retrieved successfully"
	MessageSuccessSaveEventState = "random event state saved successfully"

	MessageFailedGetEventState  = "failed to retrieve random event state"
	MessageFailedSaveEventState = "failed to save random event state"
)

// RandomEvent is one entry of the fixed event catalog. Duration is in
// seconds; the multiplier scales the client's income tick while the event
// is active.
type RandomEvent struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
	Duration   int     `json:"duration"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
	Weight     int     `json:"-"`
}

// Catalog order matters: weighted selection walks it cumulatively.
var RandomEvents = []RandomEvent{
	{ID: "crash", Name: "Market Crash", Multiplier: 0.5, Duration: 30, Color: "hsl(0, 70%, 50%)", Icon: "📉", Weight: 25},
	{ID: "bonus", Name: "Tax Bonus", Multiplier: 2, Duration: 20, Color: "hsl(120, 60%, 45%)", Icon: "💰", Weight: 40},
	{ID: "bull", Name: "Bull Market", Multiplier: 4, Duration: 15, Color: "hsl(45, 90%, 50%)", Icon: "🐂", Weight: 20},
	{ID: "jackpot", Name: "Bank Jackpot", Multiplier: 10, Duration: 10, Color: "hsl(280, 70%, 55%)", Icon: "🎰", Weight: 10},
	{ID: "miracle", Name: "Financial Miracle", Multiplier: 100, Duration: 5, Color: "hsl(320, 80%, 60%)", Icon: "✨", Weight: 5},
}

const (
	// Idle delay before the next event, drawn uniformly from this range.
	EventMinDelaySeconds = 30
	EventMaxDelaySeconds = 120
)

type (
	RandomEventStateResponse struct {
		AccountID     string     `json:"account_id"`
		ActiveEventID *string    `json:"active_event_id"`
		Multiplier    float64    `json:"multiplier"`
		StartedAt     *time.Time `json:"started_at"`
		EndsAt        *time.Time `json:"ends_at"`
		NextEventAt   *time.Time `json:"next_event_at"`
	}

	UpsertRandomEventStateRequest struct {
		ActiveEventID *string    `json:"active_event_id"`
		Multiplier    *float64   `json:"multiplier"`
		StartedAt     *time.Time `json:"started_at"`
		EndsAt        *time.Time `json:"ends_at"`
		NextEventAt   *time.Time `json:"next_event_at"`
	}
)
