package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"videotube/internal/container"
	handlers "videotube/internal/interface/http"
	"videotube/internal/interface/middleware"
	"videotube/pkg/helpers"
)

type SubscriptionModule struct {
	Handler *handlers.SubscriptionHandler
	JWT     *helpers.JWTManager
}

func NewSubscriptionModule(h *handlers.SubscriptionHandler, jwt *helpers.JWTManager) *SubscriptionModule {
	return &SubscriptionModule{Handler: h, JWT: jwt}
}

func (m *SubscriptionModule) Register(rg *gin.RouterGroup) {
	rg.GET("/subscriptions/channel/:channelId/subscribers", m.Handler.Subscribers)
	rg.GET("/subscriptions/user/:subscriberId/channels", m.Handler.SubscribedChannels)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/subscriptions/subscribe/:channelId", m.Handler.Toggle)
	}
}
