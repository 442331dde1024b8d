package modules

import (
	"github.com/gin-gonic/gin"

	"videotube/internal/container"
	handlers "videotube/internal/interface/http"
	"videotube/internal/interface/middleware"
	"videotube/pkg/helpers"
)

type NotificationModule struct {
	Handler *handlers.NotificationHandler
	JWT     *helpers.JWTManager
}

func NewNotificationModule(h *handlers.NotificationHandler, jwt *helpers.JWTManager) *NotificationModule {
	return &NotificationModule{Handler: h, JWT: jwt}
}

func (m *NotificationModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.GET("/notifications", m.Handler.List)
		auth.PATCH("/notifications/:id/read", m.Handler.MarkRead)
	}
}
