package modules

import (
	"github.com/gin-gonic/gin"

	"videotube/internal/container"
	handlers "videotube/internal/interface/http"
	"videotube/internal/interface/middleware"
	"videotube/pkg/helpers"
)

type CommentModule struct {
	Handler *handlers.CommentHandler
	JWT     *helpers.JWTManager
}

func NewCommentModule(h *handlers.CommentHandler, jwt *helpers.JWTManager) *CommentModule {
	return &CommentModule{Handler: h, JWT: jwt}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	rg.GET("/comments/video/:videoId", m.Handler.ListByVideo)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/comments/video/:videoId", m.Handler.Add)
		auth.PATCH("/comments/:commentId", m.Handler.Update)
		auth.DELETE("/comments/:commentId", m.Handler.Delete)
	}
}
