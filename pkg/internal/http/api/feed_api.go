package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/strandworks/strand/pkg/internal/models"
	"github.com/strandworks/strand/pkg/internal/security"
	"github.com/strandworks/strand/pkg/internal/services"
)

func getFeed(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	items, err := services.GetFeed(user.ID)
	if err != nil {
		return err
	}

	return c.JSON(items)
}
