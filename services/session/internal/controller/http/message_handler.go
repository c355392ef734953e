package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Messages godoc
// @Summary      List chat messages
// @Description  Returns the session's chat messages oldest first
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of items to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /messages [get]
func (h *SessionHandler) Messages(c *gin.Context) {
	items, err := h.sessionUseCase.Messages(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		h.respondError(c, "list messages", err)
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

// SendMessage godoc
// @Summary      Send a chat message
// @Description  Appends a message from the session handle. Blank text is rejected.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TextRequest true "Message text"
// @Success      201  {object}  usecase.MessageView
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /messages [post]
func (h *SessionHandler) SendMessage(c *gin.Context) {
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.sessionUseCase.SendMessage(c.Request.Context(), c.GetString("session_id"), req.Text)
	if err != nil {
		h.respondError(c, "send message", err)
		return
	}

	c.JSON(http.StatusCreated, view)
}
