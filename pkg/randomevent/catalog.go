package randomevent

import (
	"math/rand"
	"time"

	"Banking-Clicker-Backend/domain"
)

// PickEvent draws from the catalog by walking cumulative weights: the
// first entry whose cumulative weight meets or exceeds the drawn value
// wins.
func PickEvent(rng *rand.Rand) domain.RandomEvent {
	total := 0
	for _, e := range domain.RandomEvents {
		total += e.Weight
	}

	drawn := rng.Float64() * float64(total)
	cumulative := 0.0
	for _, e := range domain.RandomEvents {
		cumulative += float64(e.Weight)
		if drawn <= cumulative {
			return e
		}
	}

	return domain.RandomEvents[0]
}

// NextEventDelay is the idle wait before a new event, uniform over the
// configured range.
func NextEventDelay(rng *rand.Rand) time.Duration {
	span := domain.EventMaxDelaySeconds - domain.EventMinDelaySeconds
	seconds := rng.Float64()*float64(span) + domain.EventMinDelaySeconds
	return time.Duration(seconds * float64(time.Second))
}

func EventByID(id string) (domain.RandomEvent, bool) {
	for _, e := range domain.RandomEvents {
		if e.ID == id {
			return e, true
		}
	}
	return domain.RandomEvent{}, false
}
