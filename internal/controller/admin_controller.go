package controller

import (
	"gift-recommender-be/internal/dto"
	"gift-recommender-be/internal/pkg/serverutils"
	"gift-recommender-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)

	// Session Management
	GetSessions(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	SweepSessions(ctx *fiber.Ctx) error

	// Embedding Cache
	GetEmbeddingStats(ctx *fiber.Ctx) error
	SearchEmbeddings(ctx *fiber.Ctx) error
	PurgeEmbeddings(ctx *fiber.Ctx) error
}

type adminController struct {
	sessionService   service.ISessionService
	embeddingService service.IEmbeddingService
	jwtSecret        string
}

func NewAdminController(sessionService service.ISessionService, embeddingService service.IEmbeddingService, jwtSecret string) IAdminController {
	return &adminController{
		sessionService:   sessionService,
		embeddingService: embeddingService,
		jwtSecret:        jwtSecret,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	admin := r.Group("/admin")
	admin.Use(serverutils.JwtMiddleware(c.jwtSecret))

	sessions := admin.Group("/session/v1")
	sessions.Get("", c.GetSessions)
	sessions.Delete(":id", c.DeleteSession)
	sessions.Post("sweep", c.SweepSessions)

	embeddings := admin.Group("/embedding/v1")
	embeddings.Get("", c.GetEmbeddingStats)
	embeddings.Get("search", c.SearchEmbeddings)
	embeddings.Delete("", c.PurgeEmbeddings)
}

func (c *adminController) GetSessions(ctx *fiber.Ctx) error {
	res, err := c.sessionService.List(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get sessions", res))
}

func (c *adminController) DeleteSession(ctx *fiber.Ctx) error {
	if err := c.sessionService.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}

func (c *adminController) SweepSessions(ctx *fiber.Ctx) error {
	res, err := c.sessionService.Sweep(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success sweep sessions", res))
}

func (c *adminController) GetEmbeddingStats(ctx *fiber.Ctx) error {
	res, err := c.embeddingService.Stats(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get embedding stats", res))
}

func (c *adminController) SearchEmbeddings(ctx *fiber.Ctx) error {
	var req dto.EmbeddingSearchRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.embeddingService.Search(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search embeddings", res))
}

func (c *adminController) PurgeEmbeddings(ctx *fiber.Ctx) error {
	if err := c.embeddingService.Purge(ctx.UserContext()); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success purge embeddings", nil))
}
