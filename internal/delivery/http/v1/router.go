package v1

import (
	"net/http"

	"europlast-backend/config"
	"europlast-backend/internal/delivery/http/middleware"
	"europlast-backend/internal/delivery/http/response"
	"europlast-backend/internal/domain"
	"europlast-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	CatalogUC domain.CatalogUsecase
	HealthUC  usecase.HealthUsecase
	// Redis backs the rate limiters; nil selects the in-memory fallback
	Redis  *goredis.Client
	Config *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(corsOrigins(deps.Config), deps.Config.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware("/v1/swagger"))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(deps.Config), deps.Redis))

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status := map[string]string{"status": "ok"}
		if deps.HealthUC != nil {
			status = deps.HealthUC.Check(c.Request.Context())
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	contactLimit := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(deps.Config), deps.Redis)
	NewContactHandler(v1, deps.ContactUC, deps.CatalogUC, contactLimit)
	NewCatalogHandler(v1, deps.CatalogUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsOrigins(cfg *config.Config) []string {
	origins := append([]string(nil), cfg.AllowedOrigins...)
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}
	return origins
}
