package v1

import (
	"form-relay-backend/config"
	"form-relay-backend/internal/delivery/http/middleware"
	"form-relay-backend/internal/domain"
	"form-relay-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CheckoutUC     domain.CheckoutUsecase
	ConfiguratorUC domain.ConfiguratorUsecase
	ContactUC      domain.ContactUsecase
	QuoteUC        domain.QuoteUsecase
	HealthUC       usecase.HealthUsecase
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	verbose := !deps.Config.IsProduction()
	maxUpload := deps.Config.MaxUploadBytes()

	r.MaxMultipartMemory = maxUpload

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(verbose))
	r.Use(gin.Logger())
	r.Use(middleware.ErrorHandler(verbose))

	// Swagger UI needs scripts, so it stays outside the strict headers
	if verbose {
		r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	api.Use(middleware.SecurityHeadersMiddleware())
	{
		NewHealthHandler(api, deps.HealthUC)
		NewCheckoutHandler(api, deps.CheckoutUC)
		NewConfiguratorHandler(api, deps.ConfiguratorUC)
		NewContactHandler(api, deps.ContactUC)
		NewQuoteHandler(api, deps.QuoteUC, maxUpload, middleware.MaxBodySize(maxUpload))
	}

	return r
}
