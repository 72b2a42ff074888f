package virtual

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"Banking-Clicker-Backend/domain"
	"Banking-Clicker-Backend/entities"
	"Banking-Clicker-Backend/pkg/account"

	"github.com/google/uuid"
)

type (
	VirtualService interface {
		GetVirtualAccount(ctx context.Context, accountID string) (*domain.VirtualAccountResponse, error)
		Transfer(ctx context.Context, accountID string, req domain.TransferRequest) (*domain.TransferResponse, error)
		GetOffer(ctx context.Context, accountID string) (*domain.VirtualOfferResponse, error)
		PurchaseOffer(ctx context.Context, accountID string) (*domain.PurchaseOfferResponse, error)
		GetPurchases(ctx context.Context, accountID string) ([]*domain.VirtualPurchaseResponse, error)
	}

	virtualService struct {
		virtualRepository VirtualRepository
		rng               *rand.Rand
		mu                sync.Mutex
		now               func() time.Time
	}
)

func NewVirtualService(virtualRepository VirtualRepository, rng *rand.Rand) VirtualService {
	return &virtualService{
		virtualRepository: virtualRepository,
		rng:               rng,
		now:               time.Now,
	}
}

func virtualAccountToResponse(v *entities.VirtualAccount) domain.VirtualAccountResponse {
	return domain.VirtualAccountResponse{
		AccountID: v.AccountID.String(),
		Balance:   v.Balance,
	}
}

func (s *virtualService) GetVirtualAccount(ctx context.Context, accountID string) (*domain.VirtualAccountResponse, error) {
	v, err := s.virtualRepository.GetOrCreateVirtualAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	resp := virtualAccountToResponse(v)
	return &resp, nil
}

func (s *virtualService) Transfer(ctx context.Context, accountID string, req domain.TransferRequest) (*domain.TransferResponse, error) {
	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return nil, domain.ErrInvalidTransferAmount
	}

	player, v, err := s.virtualRepository.Transfer(ctx, accountID, req.Amount)
	if err != nil {
		return nil, err
	}

	return &domain.TransferResponse{
		Account: account.AccountToResponse(player),
		Virtual: virtualAccountToResponse(v),
	}, nil
}

// GetOffer is the lazy half of the offer lifecycle. A fresh offer is
// rolled when the cooldown has elapsed (or no state exists); an offer
// past its window is reported as absent while keeping next_offer_at so
// the client countdown is stable across polls.
func (s *virtualService) GetOffer(ctx context.Context, accountID string) (*domain.VirtualOfferResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	state, err := s.virtualRepository.GetOfferState(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	changed := false
	if state == nil {
		state = &entities.VirtualOfferState{AccountID: id}
		s.generate(state, now)
		changed = true
	}

	live := state.OfferID != nil && state.ExpiresAt != nil && now.Before(*state.ExpiresAt)
	if !live {
		if state.NextOfferAt == nil || !now.Before(*state.NextOfferAt) {
			s.generate(state, now)
			changed = true
			live = true
		} else if state.OfferID != nil {
			// Expired but not yet rolled over: clear the dead offer,
			// keep the cooldown.
			state.OfferID = nil
			state.OfferName = ""
			state.OfferCost = 0
			state.OfferIncomeBoost = 0
			state.OfferSpawnedAt = nil
			state.ExpiresAt = nil
			state.PurchasedAt = nil
			changed = true
		}
	}

	if changed {
		if err := s.virtualRepository.SaveOfferState(ctx, state); err != nil {
			return nil, err
		}
	}

	resp := &domain.VirtualOfferResponse{NextOfferAt: state.NextOfferAt}
	if live {
		resp.Offer = &domain.VirtualOffer{
			ID:          state.OfferID.String(),
			Name:        state.OfferName,
			Cost:        state.OfferCost,
			IncomeBoost: state.OfferIncomeBoost,
			SpawnedAt:   *state.OfferSpawnedAt,
			ExpiresAt:   *state.ExpiresAt,
			PurchasedAt: state.PurchasedAt,
		}
	}
	return resp, nil
}

func (s *virtualService) generate(state *entities.VirtualOfferState, now time.Time) {
	s.mu.Lock()
	GenerateOffer(state, s.rng, now)
	s.mu.Unlock()
}

func (s *virtualService) PurchaseOffer(ctx context.Context, accountID string) (*domain.PurchaseOfferResponse, error) {
	player, v, err := s.virtualRepository.PurchaseOffer(ctx, accountID, s.now())
	if err != nil {
		return nil, err
	}

	return &domain.PurchaseOfferResponse{
		Account: account.AccountToResponse(player),
		Virtual: virtualAccountToResponse(v),
	}, nil
}

func (s *virtualService) GetPurchases(ctx context.Context, accountID string) ([]*domain.VirtualPurchaseResponse, error) {
	purchases, err := s.virtualRepository.GetPurchases(ctx, accountID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.VirtualPurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		result = append(result, &domain.VirtualPurchaseResponse{
			ID:          p.ID.String(),
			OfferID:     p.OfferID.String(),
			OfferName:   p.OfferName,
			Cost:        p.Cost,
			IncomeBoost: p.IncomeBoost,
			PurchasedAt: p.PurchasedAt,
		})
	}

	return result, nil
}
