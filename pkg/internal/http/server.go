package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/strandworks/strand/pkg/internal/http/api"
	"github.com/strandworks/strand/pkg/internal/security"
	"github.com/strandworks/strand/pkg/internal/services"
)

type App struct {
	*fiber.App
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Strand",
		AppName:               "Strand",
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		ErrorHandler:          errorHandler,
	})

	app.Use(security.AuthContextMiddleware)

	api.MapAPIs(app, "/api")

	return &App{app}
}

// errorHandler translates domain errors into client responses; anything not
// recognized is a store failure and stays a 500.
func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrSelfAction):
		status = fiber.StatusBadRequest
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("An unexpected error occurred when handling request...")
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (v *App) Listen() {
	if err := v.App.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting http server.")
	}
}
