package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "videotube/internal/application"
	"videotube/internal/domain/entity"
	"videotube/pkg/pagination"
	"videotube/pkg/response"
)

type LikeHandler struct {
	Svc *app.LikeService
}

func NewLikeHandler(svc *app.LikeService) *LikeHandler {
	return &LikeHandler{Svc: svc}
}

type toggleFn func(c *gin.Context) (*entity.ToggleResult, error)

func (h *LikeHandler) toggle(c *gin.Context, kind string, fn toggleFn) {
	res, err := fn(c)
	if err != nil {
		fail(c, err)
		return
	}
	msg := kind + " unliked successfully"
	if res.Active {
		msg = kind + " liked successfully"
	}
	response.Success(c, http.StatusOK, res, msg, nil)
}

func (h *LikeHandler) ToggleVideo(c *gin.Context) {
	h.toggle(c, "video", func(c *gin.Context) (*entity.ToggleResult, error) {
		return h.Svc.ToggleVideoLike(c.Request.Context(), actorID(c), c.Param("videoId"))
	})
}

func (h *LikeHandler) ToggleComment(c *gin.Context) {
	h.toggle(c, "comment", func(c *gin.Context) (*entity.ToggleResult, error) {
		return h.Svc.ToggleCommentLike(c.Request.Context(), actorID(c), c.Param("commentId"))
	})
}

func (h *LikeHandler) ToggleTweet(c *gin.Context) {
	h.toggle(c, "tweet", func(c *gin.Context) (*entity.ToggleResult, error) {
		return h.Svc.ToggleTweetLike(c.Request.Context(), actorID(c), c.Param("tweetId"))
	})
}

// LikedVideos lists the session actor's liked, still-published videos.
func (h *LikeHandler) LikedVideos(c *gin.Context) {
	p := pagination.FromQuery(c, 12)
	videos, meta, err := h.Svc.LikedVideos(c.Request.Context(), actorID(c), p)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, videos, "liked videos", meta)
}
