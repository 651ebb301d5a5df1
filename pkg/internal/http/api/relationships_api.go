package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/strandworks/strand/pkg/internal/models"
	"github.com/strandworks/strand/pkg/internal/security"
	"github.com/strandworks/strand/pkg/internal/services"
)

// One route toggles both directions; there is no separate unfollow.
func toggleFollowAccount(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	targetID, _ := c.ParamsInt("userId", 0)

	following, err := services.ToggleFollow(user.ID, uint(targetID))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"following": following,
	})
}
