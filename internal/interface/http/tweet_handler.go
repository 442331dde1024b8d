package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "videotube/internal/application"
	"videotube/pkg/pagination"
	"videotube/pkg/response"
	"videotube/pkg/validation"
)

type TweetHandler struct {
	Svc *app.TweetService
}

func NewTweetHandler(svc *app.TweetService) *TweetHandler {
	return &TweetHandler{Svc: svc}
}

type tweetRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *TweetHandler) Create(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), actorID(c), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "tweet created", nil)
}

func (h *TweetHandler) ListByUser(c *gin.Context) {
	p := pagination.FromQuery(c, 10)
	tweets, meta, err := h.Svc.ListByUser(c.Request.Context(), c.Param("userId"), p)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, tweets, "tweets", meta)
}

func (h *TweetHandler) Update(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), c.Param("tweetId"), actorID(c), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "tweet updated", nil)
}

func (h *TweetHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("tweetId"), actorID(c)); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "tweet deleted", nil)
}
