package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"videotube/internal/container"
	handlers "videotube/internal/interface/http"
	"videotube/internal/interface/middleware"
	"videotube/pkg/helpers"
)

// UserModule wires account and channel routes.
// Public: register, login, refresh, channel pages.
// Protected: logout, profile, avatar/cover, watch history.

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/users/register", registerLimiter, m.Handler.Register)
	rg.POST("/users/login", loginLimiter, m.Handler.Login)
	rg.POST("/users/refresh", refreshLimiter, m.Handler.Refresh)

	// Channel profile works for guests; is_subscribed needs the viewer.
	rg.GET("/users/channel/:username", middleware.OptionalAuth(container.GetRedis(), m.JWT), m.Handler.Channel)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/users/logout", m.Handler.Logout)
		auth.GET("/users/me", m.Handler.Me)
		auth.PATCH("/users/me", m.Handler.UpdateProfile)
		auth.PATCH("/users/me/avatar", m.Handler.UploadAvatar)
		auth.PATCH("/users/me/cover", m.Handler.UploadCover)
		auth.GET("/users/history", m.Handler.WatchHistory)
	}
}
