package handlers

import (
	"net/http"
	"strings"

	"tripmate/models"
	"tripmate/services/assistant"
	"tripmate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the chat session endpoints backing the in-page widget.
type ChatHandler struct {
	Manager *assistant.SessionManager
	Metrics *utils.Metrics
}

func NewChatHandler(manager *assistant.SessionManager, metrics *utils.Metrics) *ChatHandler {
	return &ChatHandler{Manager: manager, Metrics: metrics}
}

// CreateSessionHandler starts a new chat session. The transcript already
// carries the bot greeting and the active section defaults to transport.
func (h *ChatHandler) CreateSessionHandler(c *gin.Context) {
	s := h.Manager.Create()
	h.Metrics.SessionsCreated.Inc()
	c.JSON(http.StatusCreated, s.Snapshot())
}

// GetSessionHandler returns the transcript and render flags for one session.
func (h *ChatHandler) GetSessionHandler(c *gin.Context) {
	s, ok := h.Manager.Get(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Session not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// SendMessageHandler submits one user message. Blank input and input sent
// while a reply is pending are acknowledged but not accepted; the session
// never fails outwardly on bad chat input.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	s, ok := h.Manager.Get(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Session not found", c.Param("id"))
		return
	}

	var req models.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Warn("Invalid chat message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	accepted := s.Submit(req.Text)
	if accepted {
		h.Metrics.MessagesSubmitted.Inc()
	} else if strings.TrimSpace(req.Text) == "" {
		h.Metrics.MessagesRejected.WithLabelValues("blank").Inc()
	} else {
		h.Metrics.MessagesRejected.WithLabelValues("busy").Inc()
	}

	c.JSON(http.StatusAccepted, models.ChatMessageResponse{
		Accepted:          accepted,
		IsWaitingForReply: s.Snapshot().IsWaitingForReply,
	})
}

// SwitchSectionHandler is the quick-action endpoint: it moves the active
// section immediately without touching the transcript or a pending reply.
func (h *ChatHandler) SwitchSectionHandler(c *gin.Context) {
	s, ok := h.Manager.Get(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Session not found", c.Param("id"))
		return
	}

	var req models.SwitchSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if !req.Section.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown section: " + string(req.Section)})
		return
	}

	s.SwitchSection(req.Section)
	h.Metrics.SectionSwitches.WithLabelValues(string(req.Section)).Inc()
	c.JSON(http.StatusOK, s.Snapshot())
}

// ToggleChatHandler opens or minimizes the chat widget.
func (h *ChatHandler) ToggleChatHandler(c *gin.Context) {
	s, ok := h.Manager.Get(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Session not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"isOpen": s.ToggleVisibility()})
}

// CloseSessionHandler tears a session down, discarding any pending reply.
func (h *ChatHandler) CloseSessionHandler(c *gin.Context) {
	if _, ok := h.Manager.Get(c.Param("id")); !ok {
		utils.JSONError(c, http.StatusNotFound, "Session not found", c.Param("id"))
		return
	}
	h.Manager.Close(c.Param("id"))
	c.Status(http.StatusNoContent)
}
