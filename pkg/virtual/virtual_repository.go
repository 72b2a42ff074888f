package virtual

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
	VirtualRepository interface {
		GetOrCreateVirtualAccount(ctx context.Context, accountID string) (*entities.VirtualAccount, error)
		Transfer(ctx context.Context, accountID string, amount float64) (*entities.PlayerAccount, *entities.VirtualAccount, error)
		GetOfferState(ctx context.Context, accountID string) (*entities.VirtualOfferState, error)
		SaveOfferState(ctx context.Context, state *entities.VirtualOfferState) error
		PurchaseOffer(ctx context.Context, accountID string, now time.Time) (*entities.PlayerAccount, *entities.VirtualAccount, error)
		GetPurchases(ctx context.Context, accountID string) ([]*entities.VirtualPurchase, error)
	}

	virtualRepository struct {
		db *gorm.DB
	}
)

func NewVirtualRepository(db *gorm.DB) VirtualRepository {
	return &virtualRepository{
		db: db,
	}
}

func (r *virtualRepository) GetOrCreateVirtualAccount(ctx context.Context, accountID string) (*entities.VirtualAccount, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	var account entities.VirtualAccount
	err = r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&account).Error
	if err == nil {
		return &account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account = entities.VirtualAccount{AccountID: id, Balance: 0}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// Transfer debits the main ledger and credits the virtual one inside a
// single transaction; the player row is locked so concurrent transfers
// cannot overdraw.
func (r *virtualRepository) Transfer(ctx context.Context, accountID string, amount float64) (*entities.PlayerAccount, *entities.VirtualAccount, error) {
	var (
		player  entities.PlayerAccount
		virtual entities.VirtualAccount
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", accountID).
			First(&player).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAccountNotFound
			}
			return err
		}

		if player.Balance < amount {
			return domain.ErrInsufficientFunds
		}

		virtualAccount, err := lockOrCreateVirtualAccount(tx, player.ID)
		if err != nil {
			return err
		}

		now := time.Now()
		player.Balance -= amount
		player.LastUpdatedAt = now
		if err := tx.Model(&entities.PlayerAccount{}).
			Where("id = ?", accountID).
			Updates(map[string]interface{}{
				"balance":         player.Balance,
				"last_updated_at": now,
			}).Error; err != nil {
			return err
		}

		virtualAccount.Balance += amount
		if err := tx.Model(&entities.VirtualAccount{}).
			Where("account_id = ?", accountID).
			Update("balance", virtualAccount.Balance).Error; err != nil {
			return err
		}

		virtual = *virtualAccount
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &player, &virtual, nil
}

func (r *virtualRepository) GetOfferState(ctx context.Context, accountID string) (*entities.VirtualOfferState, error) {
	var state entities.VirtualOfferState
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

func (r *virtualRepository) SaveOfferState(ctx context.Context, state *entities.VirtualOfferState) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			UpdateAll: true,
		}).
		Create(state).Error
}

// PurchaseOffer runs the whole buy flow in one transaction: the offer
// state and both ledgers are locked, the ordered checks run, then the
// virtual balance is debited, the income boost credited, the audit row
// appended and the offer stamped purchased. Any failed check aborts the
// transaction with its domain error.
func (r *virtualRepository) PurchaseOffer(ctx context.Context, accountID string, now time.Time) (*entities.PlayerAccount, *entities.VirtualAccount, error) {
	var (
		player  entities.PlayerAccount
		virtual entities.VirtualAccount
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var state entities.VirtualOfferState
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account_id = ?", accountID).
			First(&state).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoActiveOffer
			}
			return err
		}

		if err := ValidatePurchasableOffer(&state, now); err != nil {
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", accountID).
			First(&player).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAccountNotFound
			}
			return err
		}

		virtualAccount, err := lockOrCreateVirtualAccount(tx, player.ID)
		if err != nil {
			return err
		}

		if virtualAccount.Balance < state.OfferCost {
			return domain.ErrInsufficientVirtual
		}

		virtualAccount.Balance -= state.OfferCost
		if err := tx.Model(&entities.VirtualAccount{}).
			Where("account_id = ?", accountID).
			Update("balance", virtualAccount.Balance).Error; err != nil {
			return err
		}

		player.IncomePerSecond += state.OfferIncomeBoost
		player.LastUpdatedAt = now
		if err := tx.Model(&entities.PlayerAccount{}).
			Where("id = ?", accountID).
			Updates(map[string]interface{}{
				"income_per_second": player.IncomePerSecond,
				"last_updated_at":   now,
			}).Error; err != nil {
			return err
		}

		purchase := entities.VirtualPurchase{
			ID:          uuid.New(),
			AccountID:   player.ID,
			OfferID:     *state.OfferID,
			OfferName:   state.OfferName,
			Cost:        state.OfferCost,
			IncomeBoost: state.OfferIncomeBoost,
			PurchasedAt: now,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}

		// The offer stays visible as "purchased" until it expires
		// naturally; only purchased_at changes here.
		if err := tx.Model(&entities.VirtualOfferState{}).
			Where("account_id = ?", accountID).
			Update("purchased_at", now).Error; err != nil {
			return err
		}

		virtual = *virtualAccount
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &player, &virtual, nil
}

func (r *virtualRepository) GetPurchases(ctx context.Context, accountID string) ([]*entities.VirtualPurchase, error) {
	var purchases []*entities.VirtualPurchase
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("purchased_at DESC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func lockOrCreateVirtualAccount(tx *gorm.DB, accountID uuid.UUID) (*entities.VirtualAccount, error) {
	var account entities.VirtualAccount
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_id = ?", accountID).
		First(&account).Error
	if err == nil {
		return &account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account = entities.VirtualAccount{AccountID: accountID, Balance: 0}
	if err := tx.Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
