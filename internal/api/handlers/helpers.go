package handlers

import (
	"Banking-Clicker-Backend/domain"
	"Banking-Clicker-Backend/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
)

// requireOwnAccount enforces that the authenticated principal matches
// the account id in the path. Returns the account id, or writes a 403
// and returns ok=false.
func requireOwnAccount(c *fiber.Ctx, param string) (string, bool) {
	accountID := c.Params(param)
	userID, _ := c.Locals("user_id").(string)
	if userID == "" || userID != accountID {
		_ = presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
		return "", false
	}
	return accountID, true
}
