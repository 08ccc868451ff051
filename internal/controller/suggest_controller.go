package controller

import (
	"gift-recommender-be/internal/dto"
	"gift-recommender-be/internal/pkg/serverutils"
	"gift-recommender-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISuggestController interface {
	RegisterRoutes(app *fiber.App, api fiber.Router)
	Suggest(ctx *fiber.Ctx) error
}

type suggestController struct {
	service service.ISuggestService
}

func NewSuggestController(service service.ISuggestService) ISuggestController {
	return &suggestController{service: service}
}

// RegisterRoutes mounts the versioned route and the legacy top-level /suggest.
func (c *suggestController) RegisterRoutes(app *fiber.App, api fiber.Router) {
	app.Post("/suggest", c.Suggest)
	api.Post("/suggest/v1", c.Suggest)
}

// Suggest answers with the pipeline result as-is. Pipeline failures still
// produce a 200 carrying the apology message and an error field.
func (c *suggestController) Suggest(ctx *fiber.Ctx) error {
	var req dto.SuggestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	return ctx.JSON(c.service.Suggest(ctx.UserContext(), &req))
}
