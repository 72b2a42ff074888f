package randomevent

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"Banking-Clicker-Backend/domain"
	"Banking-Clicker-Backend/entities"

	"github.com/google/uuid"
)

type (
	EventService interface {
		GetState(ctx context.Context, accountID string) (*domain.RandomEventStateResponse, error)
		UpsertState(ctx context.Context, accountID string, req domain.UpsertRandomEventStateRequest) (*domain.RandomEventStateResponse, error)
	}

	eventService struct {
		eventRepository EventRepository
		rng             *rand.Rand
		mu              sync.Mutex
		now             func() time.Time
	}
)

func NewEventService(eventRepository EventRepository, rng *rand.Rand) EventService {
	return &eventService{
		eventRepository: eventRepository,
		rng:             rng,
		now:             time.Now,
	}
}

// GetState advances the per-account state machine lazily: reads are the
// only thing that moves it, so an expired event is rolled back to idle
// (and a due idle period into a fresh event) at the moment it is
// observed. State is never returned in an inconsistent shape.
func (s *eventService) GetState(ctx context.Context, accountID string) (*domain.RandomEventStateResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	state, err := s.eventRepository.GetState(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	changed := false
	if state == nil {
		state = &entities.RandomEventState{
			AccountID:  id,
			Multiplier: 1,
		}
		s.scheduleNext(state, now)
		changed = true
	}

	if state.ActiveEventID != nil && state.EndsAt != nil && !now.Before(*state.EndsAt) {
		s.scheduleNext(state, now)
		changed = true
	}

	if state.ActiveEventID == nil {
		if state.NextEventAt == nil {
			s.scheduleNext(state, now)
			changed = true
		} else if !now.Before(*state.NextEventAt) {
			s.activate(state, now)
			changed = true
		}
	}

	if changed {
		if err := s.eventRepository.SaveState(ctx, state); err != nil {
			return nil, err
		}
	}

	return stateToResponse(state), nil
}

// UpsertState is the raw client-driven write path; it stores whatever
// the client computed, defaulting the multiplier to 1.
func (s *eventService) UpsertState(ctx context.Context, accountID string, req domain.UpsertRandomEventStateRequest) (*domain.RandomEventStateResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	multiplier := 1.0
	if req.Multiplier != nil {
		multiplier = *req.Multiplier
	}

	state := &entities.RandomEventState{
		AccountID:     id,
		ActiveEventID: req.ActiveEventID,
		Multiplier:    multiplier,
		StartedAt:     req.StartedAt,
		EndsAt:        req.EndsAt,
		NextEventAt:   req.NextEventAt,
	}
	if err := s.eventRepository.SaveState(ctx, state); err != nil {
		return nil, err
	}

	return stateToResponse(state), nil
}

func (s *eventService) scheduleNext(state *entities.RandomEventState, now time.Time) {
	s.mu.Lock()
	delay := NextEventDelay(s.rng)
	s.mu.Unlock()

	next := now.Add(delay)
	state.ActiveEventID = nil
	state.Multiplier = 1
	state.StartedAt = nil
	state.EndsAt = nil
	state.NextEventAt = &next
}

func (s *eventService) activate(state *entities.RandomEventState, now time.Time) {
	s.mu.Lock()
	event := PickEvent(s.rng)
	s.mu.Unlock()

	ends := now.Add(time.Duration(event.Duration) * time.Second)
	eventID := event.ID
	startedAt := now
	state.ActiveEventID = &eventID
	state.Multiplier = event.Multiplier
	state.StartedAt = &startedAt
	state.EndsAt = &ends
	state.NextEventAt = nil
}

func stateToResponse(state *entities.RandomEventState) *domain.RandomEventStateResponse {
	return &domain.RandomEventStateResponse{
		AccountID:     state.AccountID.String(),
		ActiveEventID: state.ActiveEventID,
		Multiplier:    state.Multiplier,
		StartedAt:     state.StartedAt,
		EndsAt:        state.EndsAt,
		NextEventAt:   state.NextEventAt,
	}
}
