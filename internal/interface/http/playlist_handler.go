package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "videotube/internal/application"
	"videotube/internal/domain/entity"
	"videotube/pkg/response"
	"videotube/pkg/validation"
)

type PlaylistHandler struct {
	Svc *app.PlaylistService
}

func NewPlaylistHandler(svc *app.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{Svc: svc}
}

type createPlaylistRequest struct {
	Name        string `json:"name" binding:"required,playlistname"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"is_public"`
}

type updatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}

type playlistVideoRequest struct {
	VideoID string `json:"video_id" binding:"required"`
}

func (h *PlaylistHandler) Create(c *gin.Context) {
	var req createPlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	pl, err := h.Svc.Create(c.Request.Context(), actorID(c), app.CreatePlaylistInput{
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, pl, "playlist created", nil)
}

// ListByUser shows all playlists to their owner and only public ones to
// everyone else.
func (h *PlaylistHandler) ListByUser(c *gin.Context) {
	playlists, err := h.Svc.ListByUser(c.Request.Context(), c.Param("userId"), actorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, playlists, "playlists", nil)
}

func (h *PlaylistHandler) Get(c *gin.Context) {
	pl, err := h.Svc.Get(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, pl, "playlist", nil)
}

func (h *PlaylistHandler) Update(c *gin.Context) {
	var req updatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	pl, err := h.Svc.Update(c.Request.Context(), c.Param("id"), actorID(c), entity.PlaylistPatch{
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, pl, "playlist updated", nil)
}

func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	var req playlistVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	pl, err := h.Svc.AddVideo(c.Request.Context(), c.Param("id"), req.VideoID, actorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, pl, "video added to playlist", nil)
}

func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	var req playlistVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	pl, err := h.Svc.RemoveVideo(c.Request.Context(), c.Param("id"), req.VideoID, actorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, pl, "video removed from playlist", nil)
}

func (h *PlaylistHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "playlist deleted", nil)
}
