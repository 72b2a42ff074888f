package account

import (
	"context"
	"testing"
	"time"

	"Banking-Clicker-Backend/domain"
	"Banking-Clicker-Backend/entities"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAccountRepository struct {
	byID    map[string]*entities.PlayerAccount
	byEmail map[string]*entities.PlayerAccount
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{
		byID:    map[string]*entities.PlayerAccount{},
		byEmail: map[string]*entities.PlayerAccount{},
	}
}

func (f *fakeAccountRepository) CreateAccount(ctx context.Context, account *entities.PlayerAccount) error {
	f.byID[account.ID.String()] = account
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepository) GetAccountByID(ctx context.Context, id string) (*entities.PlayerAccount, error) {
	account, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return account, nil
}

func (f *fakeAccountRepository) GetAccountByEmail(ctx context.Context, email string) (*entities.PlayerAccount, error) {
	account, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	return account, nil
}

func (f *fakeAccountRepository) UpdateAccount(ctx context.Context, id string, fields map[string]interface{}) (*entities.PlayerAccount, error) {
	account, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := fields["balance"]; ok {
		account.Balance = v.(float64)
	}
	if v, ok := fields["income_per_second"]; ok {
		account.IncomePerSecond = v.(float64)
	}
	if v, ok := fields["last_updated_at"]; ok {
		account.LastUpdatedAt = v.(time.Time)
	}
	return account, nil
}

type fakeJWTService struct{}

func (fakeJWTService) GenerateTokenUser(userId string, role string) string {
	return "token-for-" + userId
}

func (fakeJWTService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (fakeJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", domain.ErrTokenInvalid
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeAccountRepository()
	service := NewAccountService(repo, fakeJWTService{})

	auth, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "player@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.Equal(t, "token-for-"+auth.User.ID, auth.Token)
	assert.Zero(t, auth.User.Balance)
	assert.Zero(t, auth.User.IncomePerSecond)

	// Stored hash is bcrypt, never the plaintext.
	stored := repo.byEmail["player@example.com"]
	assert.NotEqual(t, "hunter22", stored.PasswordHash)

	auth, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "player@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, stored.ID.String(), auth.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepository()
	service := NewAccountService(repo, fakeJWTService{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "player@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Email:    "player@example.com",
		Password: "other-password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyUsed)
}

func TestRegisterMissingCredentials(t *testing.T) {
	service := NewAccountService(newFakeAccountRepository(), fakeJWTService{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{Email: "player@example.com"})
	assert.ErrorIs(t, err, domain.ErrCredentialsRequired)

	_, err = service.Register(context.Background(), domain.RegisterRequest{Password: "hunter22"})
	assert.ErrorIs(t, err, domain.ErrCredentialsRequired)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAccountRepository()
	service := NewAccountService(repo, fakeJWTService{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "player@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "player@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUpdateAccountClientTimestamp(t *testing.T) {
	repo := newFakeAccountRepository()
	service := NewAccountService(repo, fakeJWTService{})

	auth, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "player@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	balance := 1234.5
	income := 6.7
	stamp := "2025-03-01T12:00:00Z"
	resp, err := service.UpdateAccount(context.Background(), auth.User.ID, domain.UpdateAccountRequest{
		Balance:         &balance,
		IncomePerSecond: &income,
		LastUpdatedAt:   &stamp,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1234.5, resp.Balance, 1e-9)
	assert.InDelta(t, 6.7, resp.IncomePerSecond, 1e-9)
	assert.True(t, resp.LastUpdatedAt.Equal(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestUpdateAccountNotFound(t *testing.T) {
	service := NewAccountService(newFakeAccountRepository(), fakeJWTService{})

	balance := 1.0
	_, err := service.UpdateAccount(context.Background(), "00000000-0000-0000-0000-000000000000", domain.UpdateAccountRequest{
		Balance: &balance,
	})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
