package upgrade

import (
	"context"
	"errors"
	"time"

	"Banking-Clicker-Backend/domain"
	"Banking-Clicker-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	UpgradeRepository interface {
		GetUpgrades(ctx context.Context) ([]*entities.Upgrade, error)
		GetUpgradeByID(ctx context.Context, id string) (*entities.Upgrade, error)
		GetPurchasedUpgrades(ctx context.Context, accountID string) ([]*entities.PurchasedUpgrade, error)
		CreatePurchasedUpgrade(ctx context.Context, purchased *entities.PurchasedUpgrade) error
		UpdatePurchasedLevel(ctx context.Context, accountID, upgradeID string, level int) error
		PurchaseUpgrade(ctx context.Context, accountID, upgradeID string) (*entities.PlayerAccount, *entities.PurchasedUpgrade, float64, float64, error)
	}

	upgradeRepository struct {
		db *gorm.DB
	}
)

func NewUpgradeRepository(db *gorm.DB) UpgradeRepository {
	return &upgradeRepository{
		db: db,
	}
}

func (r *upgradeRepository) GetUpgrades(ctx context.Context) ([]*entities.Upgrade, error) {
	var upgrades []*entities.Upgrade
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Find(&upgrades).Error; err != nil {
		return nil, err
	}
	return upgrades, nil
}

func (r *upgradeRepository) GetUpgradeByID(ctx context.Context, id string) (*entities.Upgrade, error) {
	var upgrade entities.Upgrade
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&upgrade).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUpgradeNotFound
		}
		return nil, err
	}
	return &upgrade, nil
}

func (r *upgradeRepository) GetPurchasedUpgrades(ctx context.Context, accountID string) ([]*entities.PurchasedUpgrade, error) {
	var purchased []*entities.PurchasedUpgrade
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Find(&purchased).Error; err != nil {
		return nil, err
	}
	return purchased, nil
}

func (r *upgradeRepository) CreatePurchasedUpgrade(ctx context.Context, purchased *entities.PurchasedUpgrade) error {
	return r.db.WithContext(ctx).Create(purchased).Error
}

func (r *upgradeRepository) UpdatePurchasedLevel(ctx context.Context, accountID, upgradeID string, level int) error {
	return r.db.WithContext(ctx).
		Model(&entities.PurchasedUpgrade{}).
		Where("account_id = ? AND upgrade_id = ?", accountID, upgradeID).
		Update("level", level).Error
}

// PurchaseUpgrade runs the whole buy inside one transaction: the account
// row is locked, the cost at the current owned level is charged, and the
// ownership row is created or incremented. Returns the updated account,
// the ownership row, and the cost/boost that were applied.
func (r *upgradeRepository) PurchaseUpgrade(ctx context.Context, accountID, upgradeID string) (*entities.PlayerAccount, *entities.PurchasedUpgrade, float64, float64, error) {
	var (
		account   entities.PlayerAccount
		purchased entities.PurchasedUpgrade
		cost      float64
		boost     float64
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upgrade, err := r.getUpgradeTx(tx, upgradeID)
		if err != nil {
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", accountID).
			First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAccountNotFound
			}
			return err
		}

		level := 0
		existing := true
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account_id = ? AND upgrade_id = ?", accountID, upgradeID).
			First(&purchased).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			existing = false
		} else {
			level = purchased.Level
		}

		cost = CostAtLevel(upgrade, level)
		boost = BoostAtLevel(upgrade, level)

		if account.Balance < cost {
			return domain.ErrInsufficientFunds
		}

		now := time.Now()
		account.Balance -= cost
		account.IncomePerSecond += boost
		account.LastUpdatedAt = now
		if err := tx.Model(&entities.PlayerAccount{}).
			Where("id = ?", accountID).
			Updates(map[string]interface{}{
				"balance":           account.Balance,
				"income_per_second": account.IncomePerSecond,
				"last_updated_at":   now,
			}).Error; err != nil {
			return err
		}

		if existing {
			purchased.Level = level + 1
			return tx.Model(&entities.PurchasedUpgrade{}).
				Where("account_id = ? AND upgrade_id = ?", accountID, upgradeID).
				Update("level", purchased.Level).Error
		}

		purchased = entities.PurchasedUpgrade{
			ID:        uuid.New(),
			AccountID: account.ID,
			UpgradeID: upgradeID,
			Level:     1,
		}
		return tx.Create(&purchased).Error
	})
	if err != nil {
		return nil, nil, 0, 0, err
	}

	return &account, &purchased, cost, boost, nil
}

func (r *upgradeRepository) getUpgradeTx(tx *gorm.DB, id string) (*entities.Upgrade, error) {
	var upgrade entities.Upgrade
	if err := tx.Where("id = ?", id).First(&upgrade).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUpgradeNotFound
		}
		return nil, err
	}
	return &upgrade, nil
}
