package routes

import (
	"context"
	"net/http"
	"time"

	_ "doctrust/docs" // generated by swag init
	"doctrust/internal/adapter/http/handlers"
	"doctrust/internal/adapter/http/middleware"
	"doctrust/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run will start the server
func Run(cfg config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	deps, err := newDependencies(ctx, cfg)
	cancel()
	if err != nil {
		zap.S().Fatalw("Failed to wire the application", "error", err)
	}

	router := NewRouter(cfg, deps)
	if err := router.Run(":" + cfg.HTTPPort); err != nil && err != http.ErrServerClosed {
		zap.S().Fatalw("Failed to startup the application", "error", err)
	}
}

// NewRouter builds the gin engine with every route of the service.
func NewRouter(cfg config.Config, deps *Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, cfg, deps)
	return router
}

func getRoutes(router *gin.Engine, cfg config.Config, deps *Dependencies) {
	documentHandler := handlers.NewDocumentHandler(deps.Documents, deps.Audit, deps.Certificates)
	signatureHandler := handlers.NewSignatureHandler(deps.Signatures, deps.OTP)
	paymentHandler := handlers.NewPaymentHandler(deps.Payments, cfg.MercadoPagoWebhookSecret)
	installmentHandler := handlers.NewInstallmentHandler(deps.Installments)

	if cfg.JWTSecret == "" {
		zap.S().Warnw("[routes] JWT_SECRET is empty; owner routes will reject every request")
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// the token in the path is the credential on public routes
	addPublicRoutes(v1, signatureHandler, paymentHandler)
	addWebhookRoutes(v1, paymentHandler)

	owner := v1.Group("", middleware.OwnerAuth(cfg.JWTSecret))
	addDocumentRoutes(owner, documentHandler, signatureHandler, paymentHandler)
	addInstallmentRoutes(owner, installmentHandler)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
}
