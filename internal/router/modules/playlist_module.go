package modules

import (
	"github.com/gin-gonic/gin"

	"videotube/internal/container"
	handlers "videotube/internal/interface/http"
	"videotube/internal/interface/middleware"
	"videotube/pkg/helpers"
)

type PlaylistModule struct {
	Handler *handlers.PlaylistHandler
	JWT     *helpers.JWTManager
}

func NewPlaylistModule(h *handlers.PlaylistHandler, jwt *helpers.JWTManager) *PlaylistModule {
	return &PlaylistModule{Handler: h, JWT: jwt}
}

func (m *PlaylistModule) Register(rg *gin.RouterGroup) {
	optional := middleware.OptionalAuth(container.GetRedis(), m.JWT)

	// Visibility depends on the viewer: owners see private playlists too.
	rg.GET("/playlists/user/:userId", optional, m.Handler.ListByUser)
	rg.GET("/playlists/:id", optional, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/playlists", m.Handler.Create)
		auth.PATCH("/playlists/:id", m.Handler.Update)
		auth.PATCH("/playlists/:id/add", m.Handler.AddVideo)
		auth.PATCH("/playlists/:id/remove", m.Handler.RemoveVideo)
		auth.DELETE("/playlists/:id", m.Handler.Delete)
	}
}
