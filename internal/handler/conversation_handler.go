package handler

import (
	"context"
	"time"

	"gift-recommender-be/internal/dto"
	"gift-recommender-be/internal/pkg/logger"
	"gift-recommender-be/internal/pkg/serverutils"
	"gift-recommender-be/internal/service"
	internalWS "gift-recommender-be/internal/websocket"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/websocket/v2"
)

const turnTimeout = 30 * time.Second

const (
	FrameSession = "session"
	FrameResult  = "result"
	FrameError   = "error"
)

type frame struct {
	Type      string      `json:"type"`
	SessionID string      `json:"session_id"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// ConversationHandler runs multi-turn suggestion chats over a websocket. Each
// inbound frame is one question; the reply goes to every socket of the session.
type ConversationHandler struct {
	suggest  service.ISuggestService
	sessions service.ISessionService
	hub      *internalWS.Hub
	logger   logger.ILogger
}

func NewConversationHandler(suggest service.ISuggestService, sessions service.ISessionService, hub *internalWS.Hub, log logger.ILogger) *ConversationHandler {
	return &ConversationHandler{
		suggest:  suggest,
		sessions: sessions,
		hub:      hub,
		logger:   log,
	}
}

func (h *ConversationHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/conversation/v1/ws", h.ServeWs)
}

// ServeWs joins the session named by ?session_id, or opens a new one.
func (h *ConversationHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	sessionID, err := h.resolveSession(c)
	if err != nil {
		return err
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("ConversationHandler", "Conversation opened", map[string]interface{}{"session_id": sessionID})

		// the write pump has not started yet, so this write is not concurrent
		hello, _ := json.Marshal(frame{Type: FrameSession, SessionID: sessionID})
		if err := conn.WriteMessage(websocket.TextMessage, hello); err != nil {
			conn.Close()
			return
		}

		internalWS.ServeWs(h.hub, conn, sessionID, h.onMessage)
		h.logger.Info("ConversationHandler", "Conversation closed", map[string]interface{}{"session_id": sessionID})
	})(c)
}

// resolveSession returns the requested session id, creating a session when
// none was named. The id lives as long as the socket, so it is copied out of
// the upgrade request's buffer.
func (h *ConversationHandler) resolveSession(c *fiber.Ctx) (string, error) {
	if id := c.Query("session_id"); id != "" {
		return utils.CopyString(id), nil
	}

	created, err := h.sessions.Create(c.UserContext())
	if err != nil {
		return "", err
	}
	return created.SessionID, nil
}

// onMessage handles one turn.
func (h *ConversationHandler) onMessage(client *internalWS.Client, payload []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
	defer cancel()

	var in dto.ConversationFrame
	if err := json.Unmarshal(payload, &in); err != nil {
		h.reply(ctx, client.SessionID, frame{Type: FrameError, SessionID: client.SessionID, Message: "invalid frame"})
		return
	}
	if err := serverutils.ValidateRequest(in); err != nil {
		h.reply(ctx, client.SessionID, frame{Type: FrameError, SessionID: client.SessionID, Message: err.Error()})
		return
	}

	h.reply(ctx, client.SessionID, h.turn(ctx, client.SessionID, &in))
}

func (h *ConversationHandler) turn(ctx context.Context, sessionID string, in *dto.ConversationFrame) frame {
	result := h.suggest.Suggest(ctx, &dto.SuggestRequest{
		Question:  in.Question,
		TopK:      in.TopK,
		SessionID: sessionID,
	})

	// the pipeline has created the session by now if it was unknown
	if err := h.sessions.AppendMessage(ctx, sessionID, "user", in.Question); err != nil {
		h.logger.Warn("ConversationHandler", "Failed to log user turn", map[string]interface{}{"session_id": sessionID, "error": err.Error()})
	}
	if err := h.sessions.AppendMessage(ctx, sessionID, "assistant", result.Message); err != nil {
		h.logger.Warn("ConversationHandler", "Failed to log assistant turn", map[string]interface{}{"session_id": sessionID, "error": err.Error()})
	}

	return frame{Type: FrameResult, SessionID: sessionID, Data: result}
}

func (h *ConversationHandler) reply(ctx context.Context, sessionID string, f frame) {
	data, err := json.Marshal(f)
	if err != nil {
		h.logger.Error("ConversationHandler", "Failed to encode frame", map[string]interface{}{"error": err.Error()})
		return
	}
	h.hub.Send(ctx, sessionID, data)
}
