package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"abstract-main/pkg/logger"
	"abstract-main/pkg/reactive"
	"abstract-main/services/session/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Options struct {
	DefaultHandle  string
	AllowedOrigins []string
	EventBuffer    int
}

type SessionHandler struct {
	sessionUseCase usecase.SessionUseCase
	defaultHandle  string
	eventBuffer    int
	upgrader       websocket.Upgrader
	logger         *logger.Logger
}

func NewSessionHandler(sessionUseCase usecase.SessionUseCase, opts Options, logger *logger.Logger) *SessionHandler {
	if opts.EventBuffer <= 0 {
		opts.EventBuffer = 64
	}
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		defaultHandle:  opts.DefaultHandle,
		eventBuffer:    opts.EventBuffer,
		upgrader: websocket.Upgrader{
			CheckOrigin: originChecker(opts.AllowedOrigins),
		},
		logger: logger,
	}
}

type StartSessionRequest struct {
	Handle string `json:"handle"`
}

type TextRequest struct {
	Text string `json:"text"`
}

type ExpandedRequest struct {
	Expanded *bool `json:"expanded" binding:"required"`
}

type ReplyTargetRequest struct {
	CommentID string `json:"comment_id"`
}

func (h *SessionHandler) respondError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound), errors.Is(err, usecase.ErrSessionClosed):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session not found"})
	case errors.Is(err, reactive.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, reactive.ErrDuplicateIdentity):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, reactive.ErrEmptyText):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, reactive.ErrNotSupported):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request cancelled"})
	default:
		h.logger.Error("Failed to %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

func kindParam(c *gin.Context) (reactive.Kind, bool) {
	kind, ok := reactive.ParseKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown kind " + c.Param("kind")})
	}
	return kind, ok
}

// StartSession godoc
// @Summary      Start a session
// @Description  Creates a session with its own stores, seeded with demo content, and returns its token
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body StartSessionRequest false "Session handle"
// @Success      201  {object}  usecase.SessionInfo
// @Failure      500  {object}  map[string]string
// @Router       /sessions [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.Handle == "" {
		req.Handle = h.defaultHandle
	}

	info, err := h.sessionUseCase.StartSession(req.Handle)
	if err != nil {
		h.respondError(c, "start session", err)
		return
	}

	c.JSON(http.StatusCreated, info)
}

// EndSession godoc
// @Summary      End the current session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /sessions [delete]
func (h *SessionHandler) EndSession(c *gin.Context) {
	if err := h.sessionUseCase.EndSession(c.GetString("session_id")); err != nil {
		h.respondError(c, "end session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session ended"})
}

// List godoc
// @Summary      List entities
// @Description  Lists posts, clips or products in feed order
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Entity kind" Enums(posts, clips, products)
// @Param        limit query int false "Number of items to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /feed/{kind} [get]
func (h *SessionHandler) List(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	items, err := h.sessionUseCase.List(c.Request.Context(), c.GetString("session_id"), kind)
	if err != nil {
		h.respondError(c, "list "+string(kind), err)
		return
	}

	limit, offset := pagination(c)
	c.JSON(http.StatusOK, gin.H{
		"items":  page(items, limit, offset),
		"total":  len(items),
		"limit":  limit,
		"offset": offset,
	})
}

// Get godoc
// @Summary      Get an entity
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Entity kind" Enums(posts, clips, products)
// @Param        id path string true "Entity ID"
// @Success      200  {object}  usecase.EntityView
// @Failure      404  {object}  map[string]string
// @Router       /feed/{kind}/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	view, err := h.sessionUseCase.Get(c.Request.Context(), c.GetString("session_id"), kind, c.Param("id"))
	if err != nil {
		h.respondError(c, "get "+string(kind), err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ToggleLike godoc
// @Summary      Like an entity
// @Description  Toggle - if already liked, removes the like
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Entity kind" Enums(posts, clips)
// @Param        id path string true "Entity ID"
// @Success      200  {object}  usecase.LikeResult
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /feed/{kind}/{id}/like [post]
func (h *SessionHandler) ToggleLike(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	res, err := h.sessionUseCase.ToggleLike(c.Request.Context(), c.GetString("session_id"), kind, c.Param("id"))
	if err != nil {
		h.respondError(c, "toggle like", err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ToggleSave godoc
// @Summary      Save an entity
// @Description  Toggle - if already saved, removes it from the saved list
// @Tags         saved
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Entity kind" Enums(posts, clips, products)
// @Param        id path string true "Entity ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /feed/{kind}/{id}/save [post]
func (h *SessionHandler) ToggleSave(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	id := c.Param("id")
	saved, err := h.sessionUseCase.ToggleSave(c.Request.Context(), c.GetString("session_id"), kind, id)
	if err != nil {
		h.respondError(c, "toggle save", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "saved": saved})
}

// ListSaved godoc
// @Summary      List saved entities
// @Tags         saved
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Entity kind" Enums(posts, clips, products)
// @Success      200  {object}  map[string]interface{}
// @Router       /saved/{kind} [get]
func (h *SessionHandler) ListSaved(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	items, err := h.sessionUseCase.ListSaved(c.Request.Context(), c.GetString("session_id"), kind)
	if err != nil {
		h.respondError(c, "list saved", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func pagination(c *gin.Context) (int, int) {
	limit := 20
	offset := 0

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}
	return limit, offset
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
