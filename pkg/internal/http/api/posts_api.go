package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/strandworks/strand/pkg/internal/http/exts"
	"github.com/strandworks/strand/pkg/internal/models"
	"github.com/strandworks/strand/pkg/internal/security"
	"github.com/strandworks/strand/pkg/internal/services"
)

func createPost(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Text  string  `json:"text" validate:"required,max=500"`
		Image *string `json:"image"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewPost(user.ID, models.Post{
		Text:      data.Text,
		Image:     data.Image,
		AccountID: user.ID,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func getPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(uint(id))
	if err != nil {
		return err
	}

	return c.JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	if err := services.DeletePost(uint(id), user.ID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "post deleted",
	})
}

func toggleLikePost(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	liked, err := services.ToggleLike(uint(id), user.ID)
	if err != nil {
		return err
	}

	return c.Status(lo.Ternary(liked, fiber.StatusCreated, fiber.StatusOK)).JSON(fiber.Map{
		"liked": liked,
	})
}

func createPostReply(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	var data struct {
		Text string `json:"text" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.AppendReply(uint(id), user.ID, data.Text)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func listAccountPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("userId", 0)

	items, err := services.ListPostWithAuthor(uint(id))
	if err != nil {
		return err
	}

	return c.JSON(items)
}
