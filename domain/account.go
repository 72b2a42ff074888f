package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister      = "account registered successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessGetAccount    = "account retrieved successfully"
	MessageSuccessCreateAccount = "account created successfully"
	MessageSuccessUpdateAccount = "account updated successfully"

	MessageFailedRegister      = "failed to register account"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedGetAccount    = "failed to retrieve account"
	MessageFailedCreateAccount = "failed to create account"
	MessageFailedUpdateAccount = "failed to update account"

	ErrCredentialsRequired = errors.New("email and password are required")
	ErrEmailAlreadyUsed    = errors.New("email already in use")
	ErrInvalidCredentials  = errors.New("incorrect email or password")
	ErrAccountNotFound     = errors.New("account not found")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token string          `json:"token"`
		User  AccountResponse `json:"user"`
	}

	AccountResponse struct {
		ID              string    `json:"id"`
		Email           string    `json:"email"`
		Balance         float64   `json:"balance"`
		IncomePerSecond float64   `json:"income_per_second"`
		LastUpdatedAt   time.Time `json:"last_updated_at"`
		CreatedAt       time.Time `json:"created_at"`
	}

	// UpdateAccountRequest carries the client-pushed balance tick.
	// Income accrual runs client-side; the server stores what it is sent.
	UpdateAccountRequest struct {
		Balance         *float64 `json:"balance" validate:"omitempty,gte=0"`
		IncomePerSecond *float64 `json:"income_per_second" validate:"omitempty,gte=0"`
		LastUpdatedAt   *string  `json:"last_updated_at"`
	}

	CreateAccountRequest struct {
		Email           string  `json:"email" validate:"required,email"`
		PasswordHash    string  `json:"password_hash"`
		Balance         float64 `json:"balance" validate:"gte=0"`
		IncomePerSecond float64 `json:"income_per_second" validate:"gte=0"`
	}
)
