package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "videotube/internal/application"
	"videotube/pkg/pagination"
	"videotube/pkg/response"
	"videotube/pkg/validation"
)

type VideoHandler struct {
	Svc    *app.VideoService
	Logger *logrus.Logger
}

func NewVideoHandler(svc *app.VideoService, logger *logrus.Logger) *VideoHandler {
	return &VideoHandler{Svc: svc, Logger: logger}
}

type publishVideoRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description"`
	Duration    float64 `form:"duration"`
	IsPublished *bool   `form:"is_published"`
}

type updateVideoRequest struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
}

func openUpload(fh *multipart.FileHeader) (multipart.File, string, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", "", err
	}
	return f, fh.Filename, fh.Header.Get("Content-Type"), nil
}

// Publish uploads a video file plus thumbnail and creates the record.
func (h *VideoHandler) Publish(c *gin.Context) {
	var req publishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	videoFH, err := c.FormFile("video")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "video file is required", nil)
		return
	}
	thumbFH, err := c.FormFile("thumbnail")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "thumbnail file is required", nil)
		return
	}

	videoFile, videoName, videoType, err := openUpload(videoFH)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable video file", nil)
		return
	}
	defer videoFile.Close()
	thumbFile, thumbName, thumbType, err := openUpload(thumbFH)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable thumbnail file", nil)
		return
	}
	defer thumbFile.Close()

	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	v, err := h.Svc.Publish(c.Request.Context(), actorID(c), app.PublishVideoInput{
		Title:         req.Title,
		Description:   req.Description,
		Duration:      req.Duration,
		IsPublished:   published,
		Video:         videoFile,
		VideoName:     videoName,
		VideoType:     videoType,
		Thumbnail:     thumbFile,
		ThumbnailName: thumbName,
		ThumbnailType: thumbType,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, v, "video published", nil)
}

// Watch returns a single video. Views are counted at most once per viewer
// within the dedupe window, and the watch lands in history for signed-in
// viewers.
func (h *VideoHandler) Watch(c *gin.Context) {
	v, err := h.Svc.Watch(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, v, "video", nil)
}

func (h *VideoHandler) List(c *gin.Context) {
	p := pagination.FromQuery(c, 12)
	videos, meta, err := h.Svc.List(c.Request.Context(), app.ListVideosInput{
		Query:    c.Query("query"),
		OwnerID:  c.Query("user_id"),
		SortBy:   c.Query("sort_by"),
		SortType: c.Query("sort_type"),
		ViewerID: actorID(c),
	}, p)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, videos, "videos", meta)
}

// Update patches title/description and optionally replaces the thumbnail.
func (h *VideoHandler) Update(c *gin.Context) {
	var req updateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := app.UpdateVideoInput{Title: req.Title, Description: req.Description}
	if fh, ferr := c.FormFile("thumbnail"); ferr == nil {
		f, name, ctype, oerr := openUpload(fh)
		if oerr != nil {
			response.Error[any](c, http.StatusBadRequest, "unreadable thumbnail file", nil)
			return
		}
		defer f.Close()
		in.Thumbnail = f
		in.ThumbnailName = name
		in.ThumbnailType = ctype
	}

	v, err := h.Svc.Update(c.Request.Context(), c.Param("id"), actorID(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, v, "video updated", nil)
}

func (h *VideoHandler) TogglePublish(c *gin.Context) {
	published, err := h.Svc.TogglePublish(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	msg := "video unpublished"
	if published {
		msg = "video published"
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "is_published": published}, msg, nil)
}

func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "video deleted", nil)
}

func (h *VideoHandler) ChannelVideos(c *gin.Context) {
	p := pagination.FromQuery(c, 12)
	videos, meta, err := h.Svc.List(c.Request.Context(), app.ListVideosInput{
		OwnerID:  c.Param("channelId"),
		SortBy:   c.Query("sort_by"),
		SortType: c.Query("sort_type"),
		ViewerID: actorID(c),
	}, p)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, videos, "channel videos", meta)
}

func (h *VideoHandler) ChannelStats(c *gin.Context) {
	stats, err := h.Svc.ChannelStats(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats, "channel stats", nil)
}
