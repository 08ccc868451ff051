package service

import (
	"context"

	"gift-recommender-be/internal/dto"
	"gift-recommender-be/pkg/recommend"
)

type ISuggestService interface {
	Suggest(ctx context.Context, req *dto.SuggestRequest) recommend.Result
}

type suggestService struct {
	pipeline *recommend.Pipeline
}

func NewSuggestService(pipeline *recommend.Pipeline) ISuggestService {
	return &suggestService{pipeline: pipeline}
}

func (s *suggestService) Suggest(ctx context.Context, req *dto.SuggestRequest) recommend.Result {
	return s.pipeline.Suggest(ctx, recommend.Request{
		Question:  req.Question,
		TopK:      req.TopK,
		SessionID: req.SessionID,
	})
}
