package httpapi

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"newshub/database"
	"newshub/internal/config"
	"newshub/internal/microservices/http-api/handler"
	"newshub/internal/microservices/http-api/middleware"
	"newshub/internal/microservices/http-api/repository"
	"newshub/internal/microservices/http-api/service"
)

// Services bundles what the router needs. Tests substitute mocks here.
type Services struct {
	Articles service.ArticleService
	Comments service.CommentService
	Topics   service.TopicService
	Users    service.UserService
}

// NewServices wires repositories over db into services.
func NewServices(db *database.DB, cfg *config.Config) Services {
	articleRepo := repository.NewArticleRepository(db.Pool)
	commentRepo := repository.NewCommentRepository(db.Pool)
	topicRepo := repository.NewTopicRepository(db.Gorm)
	userRepo := repository.NewUserRepository(db.Gorm)

	return Services{
		Articles: service.NewArticleService(articleRepo, topicRepo, userRepo, cfg.DefaultArticleImgURL),
		Comments: service.NewCommentService(commentRepo, articleRepo, userRepo),
		Topics:   service.NewTopicService(topicRepo),
		Users:    service.NewUserService(userRepo),
	}
}

// NewRouter builds the gin engine serving /api.
func NewRouter(cfg *config.Config, svcs Services, logger zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
	)
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())
	}
	if cfg.GzipEnabled {
		r.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	r.Use(middleware.ErrorResponder(logger))

	r.NoRoute(handler.NotFound)

	api := r.Group("/api")
	api.GET("", handler.Endpoints)

	articleHandler := handler.NewArticleHandler(svcs.Articles)
	commentHandler := handler.NewCommentHandler(svcs.Comments)
	topicHandler := handler.NewTopicHandler(svcs.Topics)
	userHandler := handler.NewUserHandler(svcs.Users)

	articles := api.Group("/articles")
	articleHandler.RegisterRoutes(articles)
	commentHandler.RegisterArticleRoutes(articles)

	commentHandler.RegisterRoutes(api.Group("/comments"))
	topicHandler.RegisterRoutes(api.Group("/topics"))
	userHandler.RegisterRoutes(api.Group("/users"))

	return r
}
