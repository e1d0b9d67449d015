package v1

import (
	"time"

	"sportloods-backend/config"
	"sportloods-backend/internal/content"
	"sportloods-backend/internal/delivery/http/middleware"
	"sportloods-backend/internal/domain"
	"sportloods-backend/internal/usecase"
	"sportloods-backend/pkg/audit"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Content   *content.Document
	Redis     *goredis.Client // nil when rate limiting runs in memory
	Audit     *audit.Logger
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.SiteURL, cfg.AllowedOrigins, cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	contactLimit := middleware.RateLimitMiddleware(deps.Redis, middleware.ContactRateLimitConfig(
		cfg.RateLimitContactThreshold,
		time.Duration(cfg.RateLimitWindowSeconds)*time.Second,
		domain.MsgTooManySubmission,
	), deps.Audit)

	NewContactHandler(api, deps.ContactUC, contactLimit)
	NewSiteHandler(r, api, deps.Content, cfg.SiteURL, deps.HealthUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
