package security

import (
	"github.com/gofiber/fiber/v2"
	"github.com/strandworks/strand/pkg/internal/models"
	"github.com/strandworks/strand/pkg/internal/services"
)

// AuthContextMiddleware resolves the session cookie into the acting account
// and stores it at c.Locals("user"). Requests without a valid session pass
// through unauthenticated; handlers gate themselves with EnsureAuthenticated.
func AuthContextMiddleware(c *fiber.Ctx) error {
	token := c.Cookies(CookieName())
	if len(token) == 0 {
		return c.Next()
	}

	accountID, err := VerifyToken(token)
	if err != nil {
		return c.Next()
	}

	account, err := services.GetAccount(accountID)
	if err != nil {
		return c.Next()
	}

	c.Locals("user", account)
	return c.Next()
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); ok {
		return nil
	}
	return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
}
