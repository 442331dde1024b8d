package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"videotube/internal/container"
	handlers "videotube/internal/interface/http"
	"videotube/internal/interface/middleware"
	"videotube/pkg/helpers"
)

// VideoModule wires the video catalog routes.
// Listing and watching work for guests; owners additionally see their drafts.

type VideoModule struct {
	Handler *handlers.VideoHandler
	JWT     *helpers.JWTManager
}

func NewVideoModule(h *handlers.VideoHandler, jwt *helpers.JWTManager) *VideoModule {
	return &VideoModule{Handler: h, JWT: jwt}
}

func (m *VideoModule) Register(rg *gin.RouterGroup) {
	optional := middleware.OptionalAuth(container.GetRedis(), m.JWT)

	rg.GET("/videos", optional, m.Handler.List)
	rg.GET("/videos/:id", optional, m.Handler.Watch)
	rg.GET("/videos/channel/:channelId/videos", optional, m.Handler.ChannelVideos)
	rg.GET("/videos/channel/:channelId/stats", m.Handler.ChannelStats)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		publishLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Hour, middleware.KeyByUserID(), nil)
		auth.POST("/videos/publish", publishLimiter, m.Handler.Publish)
		auth.PATCH("/videos/:id", m.Handler.Update)
		auth.PATCH("/videos/:id/publish-status", m.Handler.TogglePublish)
		auth.DELETE("/videos/:id", m.Handler.Delete)
	}
}
