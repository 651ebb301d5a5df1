package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/strandworks/strand/pkg/internal/http/exts"
	"github.com/strandworks/strand/pkg/internal/models"
	"github.com/strandworks/strand/pkg/internal/security"
	"github.com/strandworks/strand/pkg/internal/services"
)

func signupAccount(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" validate:"required"`
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	hash, err := security.HashPassword(data.Password)
	if err != nil {
		return err
	}

	account, err := services.CreateAccount(data.Name, data.Username, data.Email, hash)
	if err != nil {
		return err
	}

	if err := setSessionCookie(c, account.ID); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(account)
}

func loginAccount(c *fiber.Ctx) error {
	var data struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	// Same response whether the account is missing or the password is wrong
	account, err := services.GetAccountWithUsername(data.Username)
	if err != nil || !security.VerifyPassword(account.PasswordHash, data.Password) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid username or password")
	}

	if err := setSessionCookie(c, account.ID); err != nil {
		return err
	}

	return c.JSON(account)
}

func logoutAccount(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     security.CookieName(),
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"message": "logged out",
	})
}

func getAccountProfile(c *fiber.Ctx) error {
	account, err := services.GetAccountWithQuery(c.Params("query"))
	if err != nil {
		return err
	}

	return c.JSON(account)
}

func updateAccountProfile(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, _ := c.ParamsInt("userId", 0)
	if uint(id) != user.ID {
		return fiber.NewError(fiber.StatusBadRequest, "cannot update other user's profile")
	}

	var data struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Avatar   string `json:"avatar"`
		Bio      string `json:"bio"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	patch := services.AccountPatch{
		Name:     data.Name,
		Username: data.Username,
		Email:    data.Email,
		Avatar:   data.Avatar,
		Bio:      data.Bio,
	}
	if len(data.Password) > 0 {
		hash, err := security.HashPassword(data.Password)
		if err != nil {
			return err
		}
		patch.PasswordHash = hash
	}

	account, err := services.UpdateAccountProfile(user.ID, patch)
	if err != nil {
		return err
	}

	return c.JSON(account)
}
