package modules

import (
	"github.com/gin-gonic/gin"

	"videotube/internal/container"
	handlers "videotube/internal/interface/http"
	"videotube/internal/interface/middleware"
	"videotube/pkg/helpers"
)

type TweetModule struct {
	Handler *handlers.TweetHandler
	JWT     *helpers.JWTManager
}

func NewTweetModule(h *handlers.TweetHandler, jwt *helpers.JWTManager) *TweetModule {
	return &TweetModule{Handler: h, JWT: jwt}
}

func (m *TweetModule) Register(rg *gin.RouterGroup) {
	rg.GET("/tweets/user/:userId", m.Handler.ListByUser)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/tweets", m.Handler.Create)
		auth.PATCH("/tweets/:tweetId", m.Handler.Update)
		auth.DELETE("/tweets/:tweetId", m.Handler.Delete)
	}
}
