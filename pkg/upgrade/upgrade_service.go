package upgrade

import (
	"context"

	"Banking-Clicker-Backend/domain"
	"Banking-Clicker-Backend/entities"
	"Banking-Clicker-Backend/pkg/account"

	"github.com/google/uuid"
)

type (
	UpgradeService interface {
		GetUpgrades(ctx context.Context) ([]*domain.UpgradeResponse, error)
		GetPurchasedUpgrades(ctx context.Context, accountID string) ([]*domain.PurchasedUpgradeResponse, error)
		CreatePurchasedUpgrade(ctx context.Context, req domain.CreatePurchasedUpgradeRequest) (*domain.PurchasedUpgradeResponse, error)
		UpdatePurchasedUpgrade(ctx context.Context, req domain.UpdatePurchasedUpgradeRequest) error
		BuyUpgrade(ctx context.Context, accountID string, req domain.BuyUpgradeRequest) (*domain.BuyUpgradeResponse, error)
	}

	upgradeService struct {
		upgradeRepository UpgradeRepository
	}
)

func NewUpgradeService(upgradeRepository UpgradeRepository) UpgradeService {
	return &upgradeService{
		upgradeRepository: upgradeRepository,
	}
}

func (s *upgradeService) GetUpgrades(ctx context.Context) ([]*domain.UpgradeResponse, error) {
	upgrades, err := s.upgradeRepository.GetUpgrades(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.UpgradeResponse, 0, len(upgrades))
	for _, u := range upgrades {
		result = append(result, &domain.UpgradeResponse{
			ID:               u.ID,
			Name:             u.Name,
			Description:      u.Description,
			Cost:             u.Cost,
			IncomeBoost:      u.IncomeBoost,
			Icon:             u.Icon,
			SortOrder:        u.SortOrder,
			CostMultiplier:   u.CostMultiplier,
			IncomeMultiplier: u.IncomeMultiplier,
		})
	}

	return result, nil
}

func purchasedToResponse(p *entities.PurchasedUpgrade) *domain.PurchasedUpgradeResponse {
	return &domain.PurchasedUpgradeResponse{
		ID:        p.ID.String(),
		AccountID: p.AccountID.String(),
		UpgradeID: p.UpgradeID,
		Level:     p.Level,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (s *upgradeService) GetPurchasedUpgrades(ctx context.Context, accountID string) ([]*domain.PurchasedUpgradeResponse, error) {
	purchased, err := s.upgradeRepository.GetPurchasedUpgrades(ctx, accountID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.PurchasedUpgradeResponse, 0, len(purchased))
	for _, p := range purchased {
		result = append(result, purchasedToResponse(p))
	}

	return result, nil
}

func (s *upgradeService) CreatePurchasedUpgrade(ctx context.Context, req domain.CreatePurchasedUpgradeRequest) (*domain.PurchasedUpgradeResponse, error) {
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	purchased := &entities.PurchasedUpgrade{
		ID:        uuid.New(),
		AccountID: accountID,
		UpgradeID: req.UpgradeID,
		Level:     req.Level,
	}
	if err := s.upgradeRepository.CreatePurchasedUpgrade(ctx, purchased); err != nil {
		return nil, err
	}

	return purchasedToResponse(purchased), nil
}

func (s *upgradeService) UpdatePurchasedUpgrade(ctx context.Context, req domain.UpdatePurchasedUpgradeRequest) error {
	return s.upgradeRepository.UpdatePurchasedLevel(ctx, req.AccountID, req.UpgradeID, req.Level)
}

func (s *upgradeService) BuyUpgrade(ctx context.Context, accountID string, req domain.BuyUpgradeRequest) (*domain.BuyUpgradeResponse, error) {
	acc, purchased, cost, boost, err := s.upgradeRepository.PurchaseUpgrade(ctx, accountID, req.UpgradeID)
	if err != nil {
		return nil, err
	}

	return &domain.BuyUpgradeResponse{
		Account:   account.AccountToResponse(acc),
		Purchased: *purchasedToResponse(purchased),
		PaidCost:  cost,
		Boost:     boost,
	}, nil
}
