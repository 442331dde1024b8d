package router

import (
	app "videotube/internal/application"
	"videotube/internal/container"
	pginfra "videotube/internal/infrastructure/postgres"
	handlers "videotube/internal/interface/http"
	"videotube/internal/router/modules"
)

// InitModules builds every repository, service and handler from the
// container singletons and registers the feature modules with the registry.
// Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	pool := container.GetPGPool()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(pool)
	videoRepo := pginfra.NewVideoRepository(pool)
	commentRepo := pginfra.NewCommentRepository(pool)
	likeRepo := pginfra.NewLikeRepository(pool)
	subRepo := pginfra.NewSubscriptionRepository(pool)
	playlistRepo := pginfra.NewPlaylistRepository(pool)
	tweetRepo := pginfra.NewTweetRepository(pool)
	notifRepo := pginfra.NewNotificationRepository(pool)

	userSvc := app.NewUserService(userRepo, container.GetJWT(), container.GetGCS(), cfg.GCSBucket, container.GetRedis(), logger)
	videoSvc := app.NewVideoService(videoRepo, userRepo, container.GetGCS(), cfg.GCSBucket, container.GetRedis(), logger, container.GetES(), cfg.ESVideosIndex, container.GetRabbitPub(), cfg.ViewDedupeTTL)
	commentSvc := app.NewCommentService(commentRepo, videoRepo)
	likeSvc := app.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo)
	subSvc := app.NewSubscriptionService(subRepo, userRepo)
	playlistSvc := app.NewPlaylistService(playlistRepo, videoRepo)
	tweetSvc := app.NewTweetService(tweetRepo, userRepo)
	notifSvc := app.NewNotificationService(notifRepo, subRepo, userRepo, logger)

	userHandler := handlers.NewUserHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	videoHandler := handlers.NewVideoHandler(videoSvc, logger)
	commentHandler := handlers.NewCommentHandler(commentSvc)
	likeHandler := handlers.NewLikeHandler(likeSvc)
	subHandler := handlers.NewSubscriptionHandler(subSvc)
	playlistHandler := handlers.NewPlaylistHandler(playlistSvc)
	tweetHandler := handlers.NewTweetHandler(tweetSvc)
	notifHandler := handlers.NewNotificationHandler(notifSvc)
	healthHandler := handlers.NewHealthHandler(pool, container.GetRedis())

	jwt := container.GetJWT()
	r.Add(modules.NewUserModule(userHandler, jwt))
	r.Add(modules.NewVideoModule(videoHandler, jwt))
	r.Add(modules.NewCommentModule(commentHandler, jwt))
	r.Add(modules.NewLikeModule(likeHandler, jwt))
	r.Add(modules.NewSubscriptionModule(subHandler, jwt))
	r.Add(modules.NewPlaylistModule(playlistHandler, jwt))
	r.Add(modules.NewTweetModule(tweetHandler, jwt))
	r.Add(modules.NewNotificationModule(notifHandler, jwt))
	r.Add(modules.NewHealthModule(healthHandler))
}
