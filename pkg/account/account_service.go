package account

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Banking-Clicker-Backend/domain"
	"Banking-Clicker-Backend/entities"
	"Banking-Clicker-Backend/internal/utils/mailing"
	"Banking-Clicker-Backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	AccountService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
		Profile(ctx context.Context, userID string) (*domain.AccountResponse, error)
		GetAccount(ctx context.Context, id string) (*domain.AccountResponse, error)
		CreateAccount(ctx context.Context, req domain.CreateAccountRequest) (*domain.AccountResponse, error)
		UpdateAccount(ctx context.Context, id string, req domain.UpdateAccountRequest) (*domain.AccountResponse, error)
	}

	accountService struct {
		accountRepository AccountRepository
		jwtService        jwt.JWTService
	}
)

func NewAccountService(accountRepository AccountRepository, jwtService jwt.JWTService) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		jwtService:        jwtService,
	}
}

func AccountToResponse(account *entities.PlayerAccount) domain.AccountResponse {
	return domain.AccountResponse{
		ID:              account.ID.String(),
		Email:           account.Email,
		Balance:         account.Balance,
		IncomePerSecond: account.IncomePerSecond,
		LastUpdatedAt:   account.LastUpdatedAt,
		CreatedAt:       account.CreatedAt,
	}
}

func (s *accountService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.ErrCredentialsRequired
	}

	existing, err := s.accountRepository.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return nil, err
	}

	account := &entities.PlayerAccount{
		ID:              uuid.New(),
		Email:           req.Email,
		PasswordHash:    string(hash),
		Balance:         0,
		IncomePerSecond: 0,
		LastUpdatedAt:   time.Now(),
	}
	if err := s.accountRepository.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	if mailing.Configured() {
		go func(email string) {
			body := fmt.Sprintf("<p>Welcome to Banking Clicker, %s! Your account is ready.</p>", email)
			if err := mailing.SendMail(email, "Welcome to Banking Clicker", body); err != nil {
				log.Printf("welcome mail to %s failed: %v", email, err)
			}
		}(account.Email)
	}

	token := s.jwtService.GenerateTokenUser(account.ID.String(), domain.RoleUser)
	return &domain.AuthResponse{
		Token: token,
		User:  AccountToResponse(account),
	}, nil
}

func (s *accountService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.ErrCredentialsRequired
	}

	account, err := s.accountRepository.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(account.ID.String(), domain.RoleUser)
	return &domain.AuthResponse{
		Token: token,
		User:  AccountToResponse(account),
	}, nil
}

func (s *accountService) Profile(ctx context.Context, userID string) (*domain.AccountResponse, error) {
	account, err := s.accountRepository.GetAccountByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	resp := AccountToResponse(account)
	return &resp, nil
}

func (s *accountService) GetAccount(ctx context.Context, id string) (*domain.AccountResponse, error) {
	return s.Profile(ctx, id)
}

func (s *accountService) CreateAccount(ctx context.Context, req domain.CreateAccountRequest) (*domain.AccountResponse, error) {
	account := &entities.PlayerAccount{
		ID:              uuid.New(),
		Email:           req.Email,
		PasswordHash:    req.PasswordHash,
		Balance:         req.Balance,
		IncomePerSecond: req.IncomePerSecond,
		LastUpdatedAt:   time.Now(),
	}
	if err := s.accountRepository.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	resp := AccountToResponse(account)
	return &resp, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, id string, req domain.UpdateAccountRequest) (*domain.AccountResponse, error) {
	fields := map[string]interface{}{}

	if req.Balance != nil {
		fields["balance"] = *req.Balance
	}
	if req.IncomePerSecond != nil {
		fields["income_per_second"] = *req.IncomePerSecond
	}

	// The client stamps its own tick time; fall back to server time so
	// last_updated_at always moves forward on a write.
	if req.LastUpdatedAt != nil {
		if ts, err := time.Parse(time.RFC3339, *req.LastUpdatedAt); err == nil {
			fields["last_updated_at"] = ts
		} else {
			fields["last_updated_at"] = time.Now()
		}
	} else {
		fields["last_updated_at"] = time.Now()
	}

	account, err := s.accountRepository.UpdateAccount(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	resp := AccountToResponse(account)
	return &resp, nil
}
