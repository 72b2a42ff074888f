package virtual

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	"Banking-Clicker-Backend/domain"
	"Banking-Clicker-Backend/entities"
	"Banking-Clicker-Backend/pkg/randomevent"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVirtualRepository mirrors the database-backed repository's purchase
// and transfer contracts over in-memory maps.
type fakeVirtualRepository struct {
	players   map[string]*entities.PlayerAccount
	virtuals  map[string]*entities.VirtualAccount
	offers    map[string]*entities.VirtualOfferState
	purchases []*entities.VirtualPurchase

	transferCalls int
}

func newFakeVirtualRepository() *fakeVirtualRepository {
	return &fakeVirtualRepository{
		players:  map[string]*entities.PlayerAccount{},
		virtuals: map[string]*entities.VirtualAccount{},
		offers:   map[string]*entities.VirtualOfferState{},
	}
}

func (f *fakeVirtualRepository) GetOrCreateVirtualAccount(ctx context.Context, accountID string) (*entities.VirtualAccount, error) {
	if v, ok := f.virtuals[accountID]; ok {
		return v, nil
	}
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	v := &entities.VirtualAccount{AccountID: id}
	f.virtuals[accountID] = v
	return v, nil
}

func (f *fakeVirtualRepository) Transfer(ctx context.Context, accountID string, amount float64) (*entities.PlayerAccount, *entities.VirtualAccount, error) {
	f.transferCalls++
	player, ok := f.players[accountID]
	if !ok {
		return nil, nil, domain.ErrAccountNotFound
	}
	if player.Balance < amount {
		return nil, nil, domain.ErrInsufficientFunds
	}
	v, err := f.GetOrCreateVirtualAccount(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	player.Balance -= amount
	v.Balance += amount
	return player, v, nil
}

func (f *fakeVirtualRepository) GetOfferState(ctx context.Context, accountID string) (*entities.VirtualOfferState, error) {
	state, ok := f.offers[accountID]
	if !ok {
		return nil, nil
	}
	copied := *state
	return &copied, nil
}

func (f *fakeVirtualRepository) SaveOfferState(ctx context.Context, state *entities.VirtualOfferState) error {
	copied := *state
	f.offers[state.AccountID.String()] = &copied
	return nil
}

func (f *fakeVirtualRepository) PurchaseOffer(ctx context.Context, accountID string, now time.Time) (*entities.PlayerAccount, *entities.VirtualAccount, error) {
	state, ok := f.offers[accountID]
	if !ok {
		return nil, nil, domain.ErrNoActiveOffer
	}
	if err := ValidatePurchasableOffer(state, now); err != nil {
		return nil, nil, err
	}
	player, ok := f.players[accountID]
	if !ok {
		return nil, nil, domain.ErrAccountNotFound
	}
	v, err := f.GetOrCreateVirtualAccount(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	if v.Balance < state.OfferCost {
		return nil, nil, domain.ErrInsufficientVirtual
	}

	v.Balance -= state.OfferCost
	player.IncomePerSecond += state.OfferIncomeBoost
	purchasedAt := now
	state.PurchasedAt = &purchasedAt
	f.purchases = append(f.purchases, &entities.VirtualPurchase{
		ID:          uuid.New(),
		AccountID:   player.ID,
		OfferID:     *state.OfferID,
		OfferName:   state.OfferName,
		Cost:        state.OfferCost,
		IncomeBoost: state.OfferIncomeBoost,
		PurchasedAt: now,
	})
	return player, v, nil
}

func (f *fakeVirtualRepository) GetPurchases(ctx context.Context, accountID string) ([]*entities.VirtualPurchase, error) {
	var result []*entities.VirtualPurchase
	for _, p := range f.purchases {
		if p.AccountID.String() == accountID {
			result = append(result, p)
		}
	}
	return result, nil
}

func newTestVirtualService(repo VirtualRepository, at time.Time) *virtualService {
	service := NewVirtualService(repo, rand.New(rand.NewSource(5))).(*virtualService)
	service.now = func() time.Time { return at }
	return service
}

func (s *virtualService) setNow(at time.Time) {
	s.now = func() time.Time { return at }
}

func TestGetOfferGeneratesFreshOffer(t *testing.T) {
	repo := newFakeVirtualRepository()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newTestVirtualService(repo, base)
	accountID := uuid.New().String()

	resp, err := service.GetOffer(context.Background(), accountID)
	require.NoError(t, err)

	require.NotNil(t, resp.Offer)
	assert.Equal(t, base.Add(20*time.Second), resp.Offer.ExpiresAt)
	require.NotNil(t, resp.NextOfferAt)
	assert.Equal(t, base.Add(50*time.Second), *resp.NextOfferAt)
	assert.Nil(t, resp.Offer.PurchasedAt)
}

func TestGetOfferExpiredDuringCooldown(t *testing.T) {
	repo := newFakeVirtualRepository()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newTestVirtualService(repo, base)
	accountID := uuid.New().String()

	resp, err := service.GetOffer(context.Background(), accountID)
	require.NoError(t, err)
	nextAt := *resp.NextOfferAt

	// 25s later the offer is expired but the cooldown has not elapsed.
	service.setNow(base.Add(25 * time.Second))
	resp, err = service.GetOffer(context.Background(), accountID)
	require.NoError(t, err)

	assert.Nil(t, resp.Offer)
	require.NotNil(t, resp.NextOfferAt)
	assert.True(t, resp.NextOfferAt.Equal(nextAt))

	// Countdown stays stable across repeated polls.
	resp, err = service.GetOffer(context.Background(), accountID)
	require.NoError(t, err)
	assert.Nil(t, resp.Offer)
	assert.True(t, resp.NextOfferAt.Equal(nextAt))
}

func TestGetOfferRollsOverAfterCooldown(t *testing.T) {
	repo := newFakeVirtualRepository()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newTestVirtualService(repo, base)
	accountID := uuid.New().String()

	resp, err := service.GetOffer(context.Background(), accountID)
	require.NoError(t, err)
	firstID := resp.Offer.ID

	service.setNow(base.Add(55 * time.Second))
	resp, err = service.GetOffer(context.Background(), accountID)
	require.NoError(t, err)

	require.NotNil(t, resp.Offer)
	assert.NotEqual(t, firstID, resp.Offer.ID)
	assert.Equal(t, base.Add(75*time.Second), resp.Offer.ExpiresAt)
}

func TestGetOfferPurchasedStaysVisible(t *testing.T) {
	repo := newFakeVirtualRepository()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newTestVirtualService(repo, base)

	playerID := uuid.New()
	accountID := playerID.String()
	repo.players[accountID] = &entities.PlayerAccount{ID: playerID, Balance: 0}
	repo.virtuals[accountID] = &entities.VirtualAccount{AccountID: playerID, Balance: 100000}

	resp, err := service.GetOffer(context.Background(), accountID)
	require.NoError(t, err)
	require.NotNil(t, resp.Offer)

	service.setNow(base.Add(5 * time.Second))
	_, err = service.PurchaseOffer(context.Background(), accountID)
	require.NoError(t, err)

	resp, err = service.GetOffer(context.Background(), accountID)
	require.NoError(t, err)
	require.NotNil(t, resp.Offer)
	require.NotNil(t, resp.Offer.PurchasedAt)
	assert.True(t, resp.Offer.PurchasedAt.Equal(base.Add(5*time.Second)))
}

func TestPurchaseOfferAtMostOnce(t *testing.T) {
	repo := newFakeVirtualRepository()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newTestVirtualService(repo, base)

	playerID := uuid.New()
	accountID := playerID.String()
	repo.players[accountID] = &entities.PlayerAccount{ID: playerID, IncomePerSecond: 1}
	repo.virtuals[accountID] = &entities.VirtualAccount{AccountID: playerID, Balance: 100000}

	offerResp, err := service.GetOffer(context.Background(), accountID)
	require.NoError(t, err)
	cost := offerResp.Offer.Cost
	boost := offerResp.Offer.IncomeBoost

	service.setNow(base.Add(2 * time.Second))
	resp, err := service.PurchaseOffer(context.Background(), accountID)
	require.NoError(t, err)

	assert.InDelta(t, 100000-cost, resp.Virtual.Balance, 1e-9)
	assert.InDelta(t, 1+boost, resp.Account.IncomePerSecond, 1e-9)

	_, err = service.PurchaseOffer(context.Background(), accountID)
	assert.ErrorIs(t, err, domain.ErrOfferAlreadyPurchased)

	// Only the first attempt changed balances.
	assert.InDelta(t, 100000-cost, repo.virtuals[accountID].Balance, 1e-9)
	assert.Len(t, repo.purchases, 1)
}

func TestPurchaseOfferInsufficientVirtual(t *testing.T) {
	repo := newFakeVirtualRepository()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newTestVirtualService(repo, base)

	playerID := uuid.New()
	accountID := playerID.String()
	repo.players[accountID] = &entities.PlayerAccount{ID: playerID}
	repo.virtuals[accountID] = &entities.VirtualAccount{AccountID: playerID, Balance: 0.01}

	_, err := service.GetOffer(context.Background(), accountID)
	require.NoError(t, err)

	_, err = service.PurchaseOffer(context.Background(), accountID)
	assert.ErrorIs(t, err, domain.ErrInsufficientVirtual)
	assert.InDelta(t, 0.01, repo.virtuals[accountID].Balance, 1e-9)
}

// The polling stubs discard all state so every call rolls fresh
// randomness; only the services' own rngs are shared across goroutines.
type statelessOfferRepo struct{}

func (statelessOfferRepo) GetOrCreateVirtualAccount(ctx context.Context, accountID string) (*entities.VirtualAccount, error) {
	return &entities.VirtualAccount{}, nil
}

func (statelessOfferRepo) Transfer(ctx context.Context, accountID string, amount float64) (*entities.PlayerAccount, *entities.VirtualAccount, error) {
	return &entities.PlayerAccount{}, &entities.VirtualAccount{}, nil
}

func (statelessOfferRepo) GetOfferState(ctx context.Context, accountID string) (*entities.VirtualOfferState, error) {
	return nil, nil
}

func (statelessOfferRepo) SaveOfferState(ctx context.Context, state *entities.VirtualOfferState) error {
	return nil
}

func (statelessOfferRepo) PurchaseOffer(ctx context.Context, accountID string, now time.Time) (*entities.PlayerAccount, *entities.VirtualAccount, error) {
	return &entities.PlayerAccount{}, &entities.VirtualAccount{}, nil
}

func (statelessOfferRepo) GetPurchases(ctx context.Context, accountID string) ([]*entities.VirtualPurchase, error) {
	return nil, nil
}

type statelessEventRepo struct{}

func (statelessEventRepo) GetState(ctx context.Context, accountID string) (*entities.RandomEventState, error) {
	return nil, nil
}

func (statelessEventRepo) SaveState(ctx context.Context, state *entities.RandomEventState) error {
	return nil
}

// Mirrors the app wiring: the offer and event services each carry their
// own rng, so hammering both at once must stay race-free under -race.
func TestConcurrentOfferAndEventPolling(t *testing.T) {
	offerService := NewVirtualService(statelessOfferRepo{}, rand.New(rand.NewSource(1)))
	eventService := randomevent.NewEventService(statelessEventRepo{}, rand.New(rand.NewSource(2)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		accountID := uuid.New().String()
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				resp, err := offerService.GetOffer(context.Background(), accountID)
				assert.NoError(t, err)
				assert.NotNil(t, resp.Offer)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				state, err := eventService.GetState(context.Background(), accountID)
				assert.NoError(t, err)
				assert.NotNil(t, state.NextEventAt)
			}
		}()
	}
	wg.Wait()
}

func TestTransferValidatesAmount(t *testing.T) {
	repo := newFakeVirtualRepository()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newTestVirtualService(repo, base)
	accountID := uuid.New().String()

	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := service.Transfer(context.Background(), accountID, domain.TransferRequest{Amount: amount})
		assert.ErrorIs(t, err, domain.ErrInvalidTransferAmount)
	}
	// Validation happens before any repository work.
	assert.Zero(t, repo.transferCalls)
}

func TestTransferMovesFunds(t *testing.T) {
	repo := newFakeVirtualRepository()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newTestVirtualService(repo, base)

	playerID := uuid.New()
	accountID := playerID.String()
	repo.players[accountID] = &entities.PlayerAccount{ID: playerID, Balance: 500}

	resp, err := service.Transfer(context.Background(), accountID, domain.TransferRequest{Amount: 120})
	require.NoError(t, err)

	assert.InDelta(t, 380, resp.Account.Balance, 1e-9)
	assert.InDelta(t, 120, resp.Virtual.Balance, 1e-9)

	_, err = service.Transfer(context.Background(), accountID, domain.TransferRequest{Amount: 1000})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}
