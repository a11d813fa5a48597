package routes

import (
	"doctrust/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDocuments    = "/documents"
	PathInvoices     = "/invoices"
	PathInstallments = "/installments"
)

func addDocumentRoutes(rg *gin.RouterGroup, documentHandler *handlers.DocumentHandler, signatureHandler *handlers.SignatureHandler, paymentHandler *handlers.PaymentHandler) {
	documents := rg.Group(PathDocuments)
	{
		documents.POST("", documentHandler.CreateDocument)
		documents.GET("/:id", documentHandler.GetDocument)
		documents.GET("/:id/events", documentHandler.ListEvents)
		documents.GET("/:id/certificate", documentHandler.GetCertificate)
		documents.POST("/:id/signature-sessions", signatureHandler.IssueSession)
		documents.POST("/:id/payment-links", paymentHandler.CreatePaymentLink)
		documents.GET("/:id/payments", paymentHandler.ListPayments)
	}
}

func addInstallmentRoutes(rg *gin.RouterGroup, installmentHandler *handlers.InstallmentHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("/:id/installments", installmentHandler.ScheduleInstallments)
		invoices.GET("/:id/installments", installmentHandler.ListInstallments)
	}

	installments := rg.Group(PathInstallments)
	{
		installments.POST("/:id/payment-link", installmentHandler.SendInstallmentLink)
	}
}
