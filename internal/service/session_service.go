package service

import (
	"context"
	"errors"
	"time"

	"gift-recommender-be/internal/dto"
	"gift-recommender-be/internal/pkg/logger"
	"gift-recommender-be/pkg/events"
	"gift-recommender-be/pkg/session"
	"gift-recommender-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

type ISessionService interface {
	Create(ctx context.Context) (*dto.CreateSessionResponse, error)
	Export(ctx context.Context, id string) ([]byte, error)
	List(ctx context.Context) (*dto.SessionListResponse, error)
	Delete(ctx context.Context, id string) error
	Sweep(ctx context.Context) (*dto.SweepSessionsResponse, error)
	AppendMessage(ctx context.Context, id, role, content string) error
}

type sessionService struct {
	manager   *session.Manager
	publisher events.Publisher
	logger    logger.ILogger
}

func NewSessionService(manager *session.Manager, publisher events.Publisher, log logger.ILogger) ISessionService {
	return &sessionService{manager: manager, publisher: publisher, logger: log}
}

func (s *sessionService) Create(ctx context.Context) (*dto.CreateSessionResponse, error) {
	id, err := s.manager.Create(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CreateSessionResponse{SessionID: id}, nil
}

func (s *sessionService) Export(ctx context.Context, id string) ([]byte, error) {
	raw, err := s.manager.Export(ctx, id)
	if errors.Is(err, store.ErrSessionNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}
	return raw, err
}

func (s *sessionService) List(ctx context.Context) (*dto.SessionListResponse, error) {
	ids, err := s.manager.List(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SessionListResponse{Sessions: ids, Count: len(ids)}, nil
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	ok, err := s.manager.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "session not found")
	}
	return nil
}

func (s *sessionService) Sweep(ctx context.Context) (*dto.SweepSessionsResponse, error) {
	removed, err := s.manager.Sweep(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.SessionsSwept(removed, time.Now())); err != nil {
		s.logger.Warn("SessionService", "Failed to publish sweep event", map[string]interface{}{"error": err.Error()})
	}
	return &dto.SweepSessionsResponse{Removed: removed}, nil
}

func (s *sessionService) AppendMessage(ctx context.Context, id, role, content string) error {
	return s.manager.AppendMessage(ctx, id, role, content)
}
