package virtual

import (
	"math"
	"math/rand"
	"time"

	"Banking-Clicker-Backend/domain"
	"Banking-Clicker-Backend/entities"

	"github.com/google/uuid"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PickTier draws an offer tier by cumulative weight; the first tier
// whose cumulative weight meets or exceeds the drawn value wins.
func PickTier(rng *rand.Rand) domain.OfferTier {
	total := 0
	for _, t := range domain.OfferTiers {
		total += t.Weight
	}

	drawn := rng.Float64() * float64(total)
	cumulative := 0.0
	for _, t := range domain.OfferTiers {
		cumulative += float64(t.Weight)
		if drawn <= cumulative {
			return t
		}
	}

	return domain.OfferTiers[0]
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// GenerateOffer rolls a fresh offer into the given state: tier by
// weight, boost uniform in the tier range, cost floored at MinOfferCost,
// both rounded to two decimals. The offer lives OfferLifetimeSeconds and
// the next one spawns OfferCooldownSeconds after it expires.
func GenerateOffer(state *entities.VirtualOfferState, rng *rand.Rand, now time.Time) {
	tier := PickTier(rng)
	boost := round2(uniform(rng, tier.MinBoost, tier.MaxBoost))
	cost := round2(math.Max(domain.MinOfferCost, boost*uniform(rng, tier.CostMin, tier.CostMax)))

	id := uuid.New()
	spawned := now
	expires := now.Add(domain.OfferLifetimeSeconds * time.Second)
	nextAt := expires.Add(domain.OfferCooldownSeconds * time.Second)

	state.OfferID = &id
	state.OfferName = tier.Name
	state.OfferCost = cost
	state.OfferIncomeBoost = boost
	state.OfferSpawnedAt = &spawned
	state.ExpiresAt = &expires
	state.NextOfferAt = &nextAt
	state.PurchasedAt = nil
}

// ValidatePurchasableOffer applies the ordered purchase checks that do
// not touch the virtual balance. Check order is part of the contract:
// absence, expiry, double purchase, then malformed amounts.
func ValidatePurchasableOffer(state *entities.VirtualOfferState, now time.Time) error {
	if state == nil || state.OfferID == nil || state.ExpiresAt == nil {
		return domain.ErrNoActiveOffer
	}
	if !now.Before(*state.ExpiresAt) {
		return domain.ErrOfferExpired
	}
	if state.PurchasedAt != nil {
		return domain.ErrOfferAlreadyPurchased
	}
	if math.IsNaN(state.OfferCost) || math.IsInf(state.OfferCost, 0) ||
		math.IsNaN(state.OfferIncomeBoost) || math.IsInf(state.OfferIncomeBoost, 0) ||
		state.OfferCost < 0 || state.OfferIncomeBoost < 0 {
		return domain.ErrMalformedOffer
	}
	return nil
}
