package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"videotube/internal/container"
	handlers "videotube/internal/interface/http"
	"videotube/internal/interface/middleware"
	"videotube/pkg/helpers"
)

// LikeModule wires the like toggles. All routes need a session: likes are
// always attributed to the signed-in actor.

type LikeModule struct {
	Handler *handlers.LikeHandler
	JWT     *helpers.JWTManager
}

func NewLikeModule(h *handlers.LikeHandler, jwt *helpers.JWTManager) *LikeModule {
	return &LikeModule{Handler: h, JWT: jwt}
}

func (m *LikeModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/likes/toggle/video/:videoId", m.Handler.ToggleVideo)
		auth.POST("/likes/toggle/comment/:commentId", m.Handler.ToggleComment)
		auth.POST("/likes/toggle/tweet/:tweetId", m.Handler.ToggleTweet)
		auth.GET("/likes/videos", m.Handler.LikedVideos)
	}
}
