package handlers

import (
	"errors"

	"Banking-Clicker-Backend/domain"
	"Banking-Clicker-Backend/internal/api/presenters"
	"Banking-Clicker-Backend/pkg/account"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AccountHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Profile(c *fiber.Ctx) error
		GetAccount(c *fiber.Ctx) error
		CreateAccount(c *fiber.Ctx) error
		UpdateAccount(c *fiber.Ctx) error
	}

	accountHandler struct {
		accountService account.AccountService
		validator      *validator.Validate
	}
)

func NewAccountHandler(accountService account.AccountService, validator *validator.Validate) AccountHandler {
	return &accountHandler{
		accountService: accountService,
		validator:      validator,
	}
}

func (h *accountHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	resp, err := h.accountService.Register(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialsRequired) || errors.Is(err, domain.ErrEmailAlreadyUsed) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessRegister)
}

func (h *accountHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	resp, err := h.accountService.Login(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialsRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *accountHandler) Profile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	resp, err := h.accountService.Profile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetProfile, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *accountHandler) GetAccount(c *fiber.Ctx) error {
	resp, err := h.accountService.GetAccount(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetAccount, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAccount, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetAccount)
}

func (h *accountHandler) CreateAccount(c *fiber.Ctx) error {
	req := new(domain.CreateAccountRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateAccount, err)
	}

	resp, err := h.accountService.CreateAccount(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateAccount, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessCreateAccount)
}

func (h *accountHandler) UpdateAccount(c *fiber.Ctx) error {
	req := new(domain.UpdateAccountRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAccount, err)
	}

	resp, err := h.accountService.UpdateAccount(c.Context(), c.Params("id"), *req)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateAccount, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateAccount, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessUpdateAccount)
}
