package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/OrangesCloud/wealist-advanced-go-pkg/health"

	"community-board-api/internal/handler"
	"community-board-api/internal/metrics"
	"community-board-api/internal/middleware"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
	"community-board-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer // defaults to prometheus.DefaultGatherer
	BasePath       string
	AllowedOrigins []string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}

	r := gin.New()

	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	r.NoRoute(func(c *gin.Context) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, response.MsgNotFound)
	})

	// Prometheus metrics endpoint
	metricsHandler := gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	r.GET("/metrics", metricsHandler)

	// Health check routes
	healthHandler := health.NewHandler()
	healthHandler.AddChecker(health.NewDatabaseChecker(cfg.DB))
	healthHandler.RegisterRoutes(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize repositories
	postRepo := repository.NewPostRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)

	// Initialize services
	postService := service.NewPostService(postRepo, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, postRepo, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	postHandler := handler.NewPostHandler(postService, cfg.Logger)
	commentHandler := handler.NewCommentHandler(commentService, cfg.Logger)

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		api.GET("/metrics", metricsHandler)
	}

	posts := api.Group("/posts")
	{
		posts.GET("", postHandler.ListPosts)
		posts.POST("", postHandler.CreatePost)
		posts.GET("/:id", postHandler.GetPost)
		posts.GET("/:id/comment", commentHandler.ListComments)
		posts.POST("/:id/comment", commentHandler.CreateComment)
	}

	return r
}
