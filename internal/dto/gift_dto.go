package dto

import "time"

type SuggestRequest struct {
	Question  string      `json:"question" validate:"required,max=2000"`
	TopK      interface{} `json:"top_k"`
	SessionID string      `json:"session_id" validate:"max=128"`
}

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

type SessionListResponse struct {
	Sessions []string `json:"sessions"`
	Count    int      `json:"count"`
}

type SweepSessionsResponse struct {
	Removed int `json:"removed"`
}

type HealthResponse struct {
	Status        string    `json:"status"`
	Conversations int       `json:"open_conversations"`
	Embedding     string    `json:"embedding_breaker"`
	Time          time.Time `json:"time"`
}

// ConversationFrame is one inbound websocket message.
type ConversationFrame struct {
	Question string      `json:"question" validate:"required,max=2000"`
	TopK     interface{} `json:"top_k"`
}

type EmbeddingSearchRequest struct {
	Query     string  `query:"q" validate:"required"`
	Limit     int     `query:"limit" validate:"min=0,max=100"`
	Threshold float64 `query:"threshold"`
}

type EmbeddingSearchResult struct {
	Id         string  `json:"id"`
	Document   string  `json:"document"`
	Similarity float64 `json:"similarity"`
}

type EmbeddingStatsResponse struct {
	Model    string `json:"model"`
	Stored   int64  `json:"stored"`
	Memoized int    `json:"memoized"`
}
