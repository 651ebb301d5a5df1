package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/strandworks/strand/pkg/internal/security"
)

func setSessionCookie(c *fiber.Ctx, accountID uint) error {
	token, err := security.IssueToken(accountID)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     security.CookieName(),
		Value:    token,
		Expires:  time.Now().Add(security.CookieMaxAge()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return nil
}
