package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Comments godoc
// @Summary      Get the comment thread of an entity
// @Description  Returns comments with replies, the expanded comment ids and the active reply target
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Entity kind" Enums(posts, clips)
// @Param        id path string true "Entity ID"
// @Success      200  {object}  usecase.ThreadView
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /feed/{kind}/{id}/comments [get]
func (h *SessionHandler) Comments(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	view, err := h.sessionUseCase.Comments(c.Request.Context(), c.GetString("session_id"), kind, c.Param("id"))
	if err != nil {
		h.respondError(c, "get comments", err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// AddComment godoc
// @Summary      Comment on an entity
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Entity kind" Enums(posts, clips)
// @Param        id path string true "Entity ID"
// @Param        request body TextRequest true "Comment text"
// @Success      201  {object}  usecase.CommentView
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /feed/{kind}/{id}/comments [post]
func (h *SessionHandler) AddComment(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.sessionUseCase.AddComment(c.Request.Context(), c.GetString("session_id"), kind, c.Param("id"), req.Text)
	if err != nil {
		h.respondError(c, "add comment", err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// AddReply godoc
// @Summary      Reply to a comment
// @Description  Expands the parent, closes the reply composer and clears the parent's draft
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Entity kind" Enums(posts, clips)
// @Param        id path string true "Entity ID"
// @Param        comment_id path string true "Parent comment ID"
// @Param        request body TextRequest true "Reply text"
// @Success      201  {object}  usecase.CommentView
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /feed/{kind}/{id}/comments/{comment_id}/replies [post]
func (h *SessionHandler) AddReply(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.sessionUseCase.AddReply(c.Request.Context(), c.GetString("session_id"), kind, c.Param("id"), c.Param("comment_id"), req.Text)
	if err != nil {
		h.respondError(c, "add reply", err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// ToggleCommentLike godoc
// @Summary      Like a comment or reply
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Entity kind" Enums(posts, clips)
// @Param        id path string true "Entity ID"
// @Param        comment_id path string true "Comment ID"
// @Success      200  {object}  usecase.LikeResult
// @Failure      404  {object}  map[string]string
// @Router       /feed/{kind}/{id}/comments/{comment_id}/like [post]
func (h *SessionHandler) ToggleCommentLike(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	res, err := h.sessionUseCase.ToggleCommentLike(c.Request.Context(), c.GetString("session_id"), kind, c.Param("id"), c.Param("comment_id"))
	if err != nil {
		h.respondError(c, "toggle comment like", err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ToggleReplyLike godoc
// @Summary      Like a reply by position
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Entity kind" Enums(posts, clips)
// @Param        id path string true "Entity ID"
// @Param        comment_id path string true "Parent comment ID"
// @Param        index path int true "Reply index"
// @Success      200  {object}  usecase.LikeResult
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /feed/{kind}/{id}/comments/{comment_id}/replies/{index}/like [post]
func (h *SessionHandler) ToggleReplyLike(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reply index"})
		return
	}

	res, err := h.sessionUseCase.ToggleReplyLike(c.Request.Context(), c.GetString("session_id"), kind, c.Param("id"), c.Param("comment_id"), index)
	if err != nil {
		h.respondError(c, "toggle reply like", err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Removes the comment together with all of its replies
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Entity kind" Enums(posts, clips)
// @Param        id path string true "Entity ID"
// @Param        comment_id path string true "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /feed/{kind}/{id}/comments/{comment_id} [delete]
func (h *SessionHandler) DeleteComment(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	if err := h.sessionUseCase.DeleteComment(c.Request.Context(), c.GetString("session_id"), kind, c.Param("id"), c.Param("comment_id")); err != nil {
		h.respondError(c, "delete comment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

// SetExpanded godoc
// @Summary      Expand or collapse the replies of a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Entity kind" Enums(posts, clips)
// @Param        id path string true "Entity ID"
// @Param        comment_id path string true "Comment ID"
// @Param        request body ExpandedRequest true "Expanded state"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /feed/{kind}/{id}/comments/{comment_id}/expanded [put]
func (h *SessionHandler) SetExpanded(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	var req ExpandedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	commentID := c.Param("comment_id")
	if err := h.sessionUseCase.SetExpanded(c.Request.Context(), c.GetString("session_id"), kind, c.Param("id"), commentID, *req.Expanded); err != nil {
		h.respondError(c, "set expanded", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment_id": commentID, "expanded": *req.Expanded})
}

// SetReplyTarget godoc
// @Summary      Open the reply composer
// @Description  Sets the single active reply target; an empty comment_id closes the composer
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Entity kind" Enums(posts, clips)
// @Param        id path string true "Entity ID"
// @Param        request body ReplyTargetRequest true "Reply target"
// @Success      200  {object}  map[string]string
// @Router       /feed/{kind}/{id}/reply-target [put]
func (h *SessionHandler) SetReplyTarget(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	var req ReplyTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sessionUseCase.SetReplyTarget(c.Request.Context(), c.GetString("session_id"), kind, c.Param("id"), req.CommentID); err != nil {
		h.respondError(c, "set reply target", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply_target": req.CommentID})
}

// SetReplyDraft godoc
// @Summary      Save the reply draft of a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Entity kind" Enums(posts, clips)
// @Param        id path string true "Entity ID"
// @Param        comment_id path string true "Comment ID"
// @Param        request body TextRequest true "Draft text"
// @Success      200  {object}  map[string]string
// @Router       /feed/{kind}/{id}/comments/{comment_id}/draft [put]
func (h *SessionHandler) SetReplyDraft(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sessionUseCase.SetReplyDraft(c.Request.Context(), c.GetString("session_id"), kind, c.Param("id"), c.Param("comment_id"), req.Text); err != nil {
		h.respondError(c, "save draft", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Draft saved"})
}
