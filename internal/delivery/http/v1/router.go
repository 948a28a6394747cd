package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"matchdb-jobs-service/config"
	"matchdb-jobs-service/internal/delivery/http/middleware"
	"matchdb-jobs-service/internal/delivery/http/response"
	"matchdb-jobs-service/internal/domain"
)

type RouterDeps struct {
	JobUC         domain.JobUsecase
	ProfileUC     domain.ProfileUsecase
	ApplicationUC domain.ApplicationUsecase
	MatchUC       domain.MatchUsecase
	PokeUC        domain.PokeUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config))
	{
		NewJobHandler(v1, protected, deps.JobUC)
		NewProfileHandler(v1, protected, deps.ProfileUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewMatchHandler(protected, deps.MatchUC)
		NewPokeHandler(protected, deps.PokeUC)
	}

	return r
}
