package handlers

import (
	"errors"

	"Banking-Clicker-Backend/domain"
	"Banking-Clicker-Backend/internal/api/presenters"
	"Banking-Clicker-Backend/pkg/upgrade"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UpgradeHandler interface {
		GetUpgrades(c *fiber.Ctx) error
		GetPurchasedUpgrades(c *fiber.Ctx) error
		CreatePurchasedUpgrade(c *fiber.Ctx) error
		UpdatePurchasedUpgrade(c *fiber.Ctx) error
		BuyUpgrade(c *fiber.Ctx) error
	}

	upgradeHandler struct {
		upgradeService upgrade.UpgradeService
		validator      *validator.Validate
	}
)

func NewUpgradeHandler(upgradeService upgrade.UpgradeService, validator *validator.Validate) UpgradeHandler {
	return &upgradeHandler{
		upgradeService: upgradeService,
		validator:      validator,
	}
}

func (h *upgradeHandler) GetUpgrades(c *fiber.Ctx) error {
	upgrades, err := h.upgradeService.GetUpgrades(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUpgrades, err)
	}

	return presenters.SuccessResponse(c, upgrades, fiber.StatusOK, domain.MessageSuccessGetUpgrades)
}

func (h *upgradeHandler) GetPurchasedUpgrades(c *fiber.Ctx) error {
	purchased, err := h.upgradeService.GetPurchasedUpgrades(c.Context(), c.Params("accountId"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPurchasedUpgrades, err)
	}

	return presenters.SuccessResponse(c, purchased, fiber.StatusOK, domain.MessageSuccessGetPurchasedUpgrades)
}

func (h *upgradeHandler) CreatePurchasedUpgrade(c *fiber.Ctx) error {
	req := new(domain.CreatePurchasedUpgradeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePurchased, err)
	}

	purchased, err := h.upgradeService.CreatePurchasedUpgrade(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePurchased, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreatePurchased, err)
	}

	return presenters.SuccessResponse(c, purchased, fiber.StatusOK, domain.MessageSuccessCreatePurchased)
}

func (h *upgradeHandler) UpdatePurchasedUpgrade(c *fiber.Ctx) error {
	req := new(domain.UpdatePurchasedUpgradeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePurchased, err)
	}

	if err := h.upgradeService.UpdatePurchasedUpgrade(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdatePurchased, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdatePurchased)
}

func (h *upgradeHandler) BuyUpgrade(c *fiber.Ctx) error {
	accountID, ok := requireOwnAccount(c, "accountId")
	if !ok {
		return nil
	}

	req := new(domain.BuyUpgradeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBuyUpgrade, err)
	}

	resp, err := h.upgradeService.BuyUpgrade(c.Context(), accountID, *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUpgradeNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedBuyUpgrade, err)
		case errors.Is(err, domain.ErrInsufficientFunds), errors.Is(err, domain.ErrAccountNotFound):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBuyUpgrade, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedBuyUpgrade, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessBuyUpgrade)
}
