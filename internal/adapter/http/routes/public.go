package routes

import (
	"net/http"

	"doctrust/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPublicSignatures = "/public/signatures"
	PathPublicPayments   = "/public/payments"
	PathWebhooks         = "/webhooks"
	PathPing             = "/ping"
)

func addPublicRoutes(rg *gin.RouterGroup, signatureHandler *handlers.SignatureHandler, paymentHandler *handlers.PaymentHandler) {
	signatures := rg.Group(PathPublicSignatures)
	{
		signatures.GET("/:token", signatureHandler.OpenSession)
		signatures.POST("/:token/otp", signatureHandler.SendOTP)
		signatures.POST("/:token/otp/verify", signatureHandler.VerifyOTP)
		signatures.POST("/:token/complete", signatureHandler.CompleteSignature)
	}

	payments := rg.Group(PathPublicPayments)
	{
		payments.GET("/:token", paymentHandler.GetPublicPayment)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/payments", paymentHandler.PaymentWebhook)
	}
}

// Ping godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, ping)
}
