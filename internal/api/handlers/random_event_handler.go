package handlers

import (
	"Banking-Clicker-Backend/domain"
	"Banking-Clicker-Backend/internal/api/presenters"
	"Banking-Clicker-Backend/pkg/randomevent"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RandomEventHandler interface {
		GetState(c *fiber.Ctx) error
		UpsertState(c *fiber.Ctx) error
	}

	randomEventHandler struct {
		eventService randomevent.EventService
		validator    *validator.Validate
	}
)

func NewRandomEventHandler(eventService randomevent.EventService, validator *validator.Validate) RandomEventHandler {
	return &randomEventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *randomEventHandler) GetState(c *fiber.Ctx) error {
	accountID, ok := requireOwnAccount(c, "accountId")
	if !ok {
		return nil
	}

	state, err := h.eventService.GetState(c.Context(), accountID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetEventState, err)
	}

	return presenters.SuccessResponse(c, state, fiber.StatusOK, domain.MessageSuccessGetEventState)
}

func (h *randomEventHandler) UpsertState(c *fiber.Ctx) error {
	accountID, ok := requireOwnAccount(c, "accountId")
	if !ok {
		return nil
	}

	req := new(domain.UpsertRandomEventStateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	state, err := h.eventService.UpsertState(c.Context(), accountID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveEventState, err)
	}

	return presenters.SuccessResponse(c, state, fiber.StatusOK, domain.MessageSuccessSaveEventState)
}
