package handlers

import (
	"errors"

	"Banking-Clicker-Backend/domain"
	"Banking-Clicker-Backend/internal/api/presenters"
	"Banking-Clicker-Backend/pkg/virtual"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	VirtualHandler interface {
		GetVirtualAccount(c *fiber.Ctx) error
		Transfer(c *fiber.Ctx) error
		GetOffer(c *fiber.Ctx) error
		PurchaseOffer(c *fiber.Ctx) error
		GetPurchases(c *fiber.Ctx) error
	}

	virtualHandler struct {
		virtualService virtual.VirtualService
		validator      *validator.Validate
	}
)

func NewVirtualHandler(virtualService virtual.VirtualService, validator *validator.Validate) VirtualHandler {
	return &virtualHandler{
		virtualService: virtualService,
		validator:      validator,
	}
}

func (h *virtualHandler) GetVirtualAccount(c *fiber.Ctx) error {
	accountID, ok := requireOwnAccount(c, "accountId")
	if !ok {
		return nil
	}

	resp, err := h.virtualService.GetVirtualAccount(c.Context(), accountID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetVirtualAccount, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetVirtualAccount)
}

func (h *virtualHandler) Transfer(c *fiber.Ctx) error {
	accountID, ok := requireOwnAccount(c, "accountId")
	if !ok {
		return nil
	}

	req := new(domain.TransferRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTransfer, domain.ErrInvalidTransferAmount)
	}

	resp, err := h.virtualService.Transfer(c.Context(), accountID, *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTransferAmount), errors.Is(err, domain.ErrInsufficientFunds):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTransfer, err)
		case errors.Is(err, domain.ErrAccountNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedTransfer, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedTransfer, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessTransfer)
}

func (h *virtualHandler) GetOffer(c *fiber.Ctx) error {
	accountID, ok := requireOwnAccount(c, "accountId")
	if !ok {
		return nil
	}

	resp, err := h.virtualService.GetOffer(c.Context(), accountID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetVirtualOffer, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetVirtualOffer)
}

func (h *virtualHandler) PurchaseOffer(c *fiber.Ctx) error {
	accountID, ok := requireOwnAccount(c, "accountId")
	if !ok {
		return nil
	}

	resp, err := h.virtualService.PurchaseOffer(c.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoActiveOffer),
			errors.Is(err, domain.ErrOfferExpired),
			errors.Is(err, domain.ErrOfferAlreadyPurchased),
			errors.Is(err, domain.ErrMalformedOffer),
			errors.Is(err, domain.ErrInsufficientVirtual):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPurchaseOffer, err)
		case errors.Is(err, domain.ErrAccountNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedPurchaseOffer, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedPurchaseOffer, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessPurchaseOffer)
}

func (h *virtualHandler) GetPurchases(c *fiber.Ctx) error {
	accountID, ok := requireOwnAccount(c, "accountId")
	if !ok {
		return nil
	}

	purchases, err := h.virtualService.GetPurchases(c.Context(), accountID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetVirtualHistory, err)
	}

	return presenters.SuccessResponse(c, purchases, fiber.StatusOK, domain.MessageSuccessGetVirtualHistory)
}
