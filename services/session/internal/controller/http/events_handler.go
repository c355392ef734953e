package http

import (
	"net/http"
	"sync/atomic"
	"time"

	"abstract-main/services/session/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// originChecker accepts requests without an Origin header, and any origin
// when the allow list is empty or contains "*".
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// Events godoc
// @Summary      Stream store changes
// @Description  Upgrades to a websocket and sends one "change" message per committed mutation in the session. When the session ends a "session_ended" message is sent and the socket is closed. The token may be passed as the "token" query parameter.
// @Tags         events
// @Security     BearerAuth
// @Param        token query string false "Session token"
// @Success      101
// @Failure      401  {object}  map[string]string
// @Router       /events [get]
func (h *SessionHandler) Events(c *gin.Context) {
	sessionID := c.GetString("session_id")

	// Observers run on the session goroutine, so they only hand events off.
	events := make(chan usecase.Event, h.eventBuffer)
	var dropped atomic.Int64
	sub, err := h.sessionUseCase.Subscribe(c.Request.Context(), sessionID, func(e usecase.Event) {
		select {
		case events <- e:
		default:
			dropped.Add(1)
		}
	})
	if err != nil {
		h.respondError(c, "subscribe to events", err)
		return
	}
	defer sub.Cancel()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("[EVENTS] WebSocket upgrade failed for session %s: %v", sessionID, err)
		return
	}
	defer conn.Close()

	h.logger.Info("[EVENTS] Session %s connected", sessionID)
	defer func() {
		if n := dropped.Load(); n > 0 {
			h.logger.Warn("[EVENTS] Session %s dropped %d events on a slow connection", sessionID, n)
		}
		h.logger.Info("[EVENTS] Session %s disconnected", sessionID)
	}()

	if err := conn.WriteJSON(WSMessage{Type: "connected", Data: gin.H{"session_id": sessionID}}); err != nil {
		return
	}

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case e := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(WSMessage{Type: "change", Data: e}); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-sub.Done:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteJSON(WSMessage{Type: "session_ended", Data: gin.H{"session_id": sessionID}})
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended"),
				time.Now().Add(writeWait))
			return
		case <-closed:
			return
		}
	}
}
