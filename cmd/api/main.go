package main

import (
	_ "doctrust/docs"
	"doctrust/internal/adapter/http/routes"
	"doctrust/internal/infrastructure/config"
	"doctrust/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           DocTrust API
// @version         1.0
// @description     Document signing with e-mail OTP, audit trail and certificates, plus payment links and installments backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	l := logger.New()
	zap.ReplaceGlobals(l)
	defer func() { _ = l.Sync() }()

	cfg := config.Load()
	cfg.Log()

	routes.Run(cfg)
}
