package account

import (
	"context"
	"errors"

	"Banking-Clicker-Backend/entities"

	"gorm.io/gorm"
)

type (
	AccountRepository interface {
		CreateAccount(ctx context.Context, account *entities.PlayerAccount) error
		GetAccountByID(ctx context.Context, id string) (*entities.PlayerAccount, error)
		GetAccountByEmail(ctx context.Context, email string) (*entities.PlayerAccount, error)
		UpdateAccount(ctx context.Context, id string, fields map[string]interface{}) (*entities.PlayerAccount, error)
	}

	accountRepository struct {
		db *gorm.DB
	}
)

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (r *accountRepository) CreateAccount(ctx context.Context, account *entities.PlayerAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) GetAccountByID(ctx context.Context, id string) (*entities.PlayerAccount, error) {
	var account entities.PlayerAccount
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetAccountByEmail(ctx context.Context, email string) (*entities.PlayerAccount, error) {
	var account entities.PlayerAccount
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) UpdateAccount(ctx context.Context, id string, fields map[string]interface{}) (*entities.PlayerAccount, error) {
	if err := r.db.WithContext(ctx).
		Model(&entities.PlayerAccount{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetAccountByID(ctx, id)
}
