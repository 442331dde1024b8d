package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "videotube/internal/application"
	"videotube/pkg/pagination"
	"videotube/pkg/response"
	"videotube/pkg/validation"
)

type CommentHandler struct {
	Svc *app.CommentService
}

func NewCommentHandler(svc *app.CommentService) *CommentHandler {
	return &CommentHandler{Svc: svc}
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *CommentHandler) Add(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cm, err := h.Svc.Add(c.Request.Context(), c.Param("videoId"), actorID(c), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cm, "comment added", nil)
}

func (h *CommentHandler) ListByVideo(c *gin.Context) {
	p := pagination.FromQuery(c, 10)
	comments, meta, err := h.Svc.ListByVideo(c.Request.Context(), c.Param("videoId"), p)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, comments, "comments", meta)
}

func (h *CommentHandler) Update(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cm, err := h.Svc.Update(c.Request.Context(), c.Param("commentId"), actorID(c), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, cm, "comment updated", nil)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("commentId"), actorID(c)); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "comment deleted", nil)
}
