package controller

import (
	"time"

	"gift-recommender-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const welcomeMessage = "أهلاً بيك في مساعد الهدايا! ابعت سؤالك على /suggest"

// HealthProbe reports live figures for /health.
type HealthProbe interface {
	OpenConversations() int
	EmbeddingState() string
}

type ISystemController interface {
	RegisterRoutes(app *fiber.App)
	Welcome(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type systemController struct {
	probe HealthProbe
}

func NewSystemController(probe HealthProbe) ISystemController {
	return &systemController{probe: probe}
}

func (c *systemController) RegisterRoutes(app *fiber.App) {
	app.Get("/", c.Welcome)
	app.Get("/health", c.Health)
}

func (c *systemController) Welcome(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"message": welcomeMessage})
}

func (c *systemController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:        "ok",
		Conversations: c.probe.OpenConversations(),
		Embedding:     c.probe.EmbeddingState(),
		Time:          time.Now().UTC(),
	})
}
