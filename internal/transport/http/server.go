package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "github.com/a-epstein/microblog/internal/app"
	"github.com/a-epstein/microblog/internal/bootstrap"
	"github.com/a-epstein/microblog/internal/cache"
	"github.com/a-epstein/microblog/internal/platform/rabbitmq"
	"github.com/a-epstein/microblog/internal/repository"
	"github.com/a-epstein/microblog/internal/transport/http/handler"
	"github.com/a-epstein/microblog/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	postRepo := repository.NewPostRepository(app.MySQL)
	followRepo := repository.NewFollowRepository(app.MySQL)
	timelineRepo := repository.NewTimelineRepository(app.MySQL)

	timelineCache := cache.NewTimelineCache(
		app.Redis,
		time.Duration(app.Config.Redis.TimelineTTLSeconds)*time.Second,
		time.Duration(app.Config.Redis.TimelineDirtyTTLSeconds)*time.Second,
	)
	seenPublisher := rabbitmq.NewSeenPublisher(app.MQConn, app.Config.RabbitMQ.SeenQueue)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	profileService := appsvc.NewProfileService(userRepo, postRepo, followRepo)
	graphService := appsvc.NewGraphService(userRepo, followRepo, timelineRepo, timelineCache)
	postService := appsvc.NewPostService(userRepo, postRepo, followRepo, timelineRepo, timelineCache)
	timelineService := appsvc.NewTimelineService(timelineRepo, timelineCache)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	postHandler := handler.NewPostHandler(postService)
	followHandler := handler.NewFollowHandler(graphService)
	timelineHandler := handler.NewTimelineHandler(timelineService)

	v1 := router.Group("/api/v1")
	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", middleware.AuthJWT(app.Config.Auth.JWTSecret), authHandler.Me)

	protected := v1.Group("")
	protected.Use(
		middleware.AuthJWT(app.Config.Auth.JWTSecret),
		middleware.TouchLastSeen(seenPublisher),
	)
	protected.GET("/timeline", timelineHandler.Home)
	protected.POST("/posts", postHandler.Create)
	protected.PUT("/profile", profileHandler.UpdateProfile)
	protected.GET("/users/:username", profileHandler.GetProfile)
	protected.GET("/users/:username/posts", postHandler.ListByAuthor)
	protected.POST("/users/:username/follow", followHandler.Follow)
	protected.DELETE("/users/:username/follow", followHandler.Unfollow)
	protected.GET("/users/:username/followers", followHandler.Followers)
	protected.GET("/users/:username/following", followHandler.Following)

	return router
}
