package handlers

import (
	"errors"
	"net/http"
	"strings"

	"doctrust/internal/adapter/http/dto/request"
	"doctrust/internal/adapter/http/dto/response"
	"doctrust/internal/adapter/http/middleware"
	"doctrust/internal/domain/entities"
	"doctrust/internal/infrastructure/payments"
	"doctrust/internal/usecase"
	"doctrust/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const idempotencyKeyHeader = "Idempotency-Key"

var (
	errInvalidWebhookSignature = pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)
)

// PaymentHandler handles payment links, the public payment page and processor notifications.
type PaymentHandler struct {
	usecase       usecase.IPaymentUseCase
	webhookSecret string
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, webhookSecret string) *PaymentHandler {
	return &PaymentHandler{usecase: uc, webhookSecret: webhookSecret}
}

// CreatePaymentLink godoc
// @Summary      Open a payment link on a signed document
// @Description  Repeating a request for the same charge, or with the same Idempotency-Key, returns the same link.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id               path      string                      true   "Document id"
// @Param        Idempotency-Key  header    string                      false  "Client retry key"
// @Param        body             body      request.PaymentLinkRequest  true   "Payment"
// @Success      201              {object}  response.PaymentLinkResponse
// @Success      200              {object}  response.PaymentLinkResponse
// @Failure      400              {object}  pkg.HTTPError
// @Failure      409              {object}  pkg.HTTPError
// @Failure      502              {object}  pkg.HTTPError
// @Router       /documents/{id}/payment-links [post]
func (h *PaymentHandler) CreatePaymentLink(c *gin.Context) {
	var payload request.PaymentLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	amount, err := payload.ResolveAmountCents()
	if err != nil {
		c.JSON(errInvalidAmount.HTTPStatus, errInvalidAmount.ToHTTPError())
		return
	}
	documentID := c.Param("id")
	zap.S().Infow("[payment][handler] create link start", "document_id", documentID, "payment_type", payload.ResolveType())

	link, err := h.usecase.CreatePaymentLink(c.Request.Context(), usecase.PaymentLinkCommand{
		OwnerID:        middleware.OwnerID(c),
		DocumentID:     documentID,
		Type:           entities.PaymentType(payload.ResolveType()),
		AmountCents:    amount,
		InstallmentID:  payload.InstallmentID,
		IdempotencyKey: strings.TrimSpace(c.GetHeader(idempotencyKeyHeader)),
	})
	if err != nil {
		zap.S().Infow("[payment][handler] create link failed", "document_id", documentID, "error", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	status := http.StatusCreated
	if link.Reused {
		status = http.StatusOK
	}
	c.JSON(status, response.FromPaymentLink(link))
}

// ListPayments godoc
// @Summary      Payments opened on a document
// @Tags         payments
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Document id"
// @Success      200  {array}   response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /documents/{id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	list, err := h.usecase.ListByDocument(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(list))
}

// GetPublicPayment godoc
// @Summary      Resolve a payment link
// @Tags         public
// @Produce      json
// @Param        token  path      string  true  "Payment token"
// @Success      200    {object}  response.PaymentPageResponse
// @Failure      404    {object}  pkg.HTTPError
// @Failure      410    {object}  pkg.HTTPError
// @Router       /public/payments/{token} [get]
func (h *PaymentHandler) GetPublicPayment(c *gin.Context) {
	page, err := h.usecase.GetPublicPayment(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentPage(page))
}

// PaymentWebhook godoc
// @Summary      Mercado Pago payment notification
// @Description  The payment is re-read from the processor; the body is only trusted for its id. Replays are acknowledged without effect.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        x-signature   header    string                       false  "ts=...,v1=..."
// @Param        x-request-id  header    string                       false  "Request id"
// @Param        body          body      request.PaymentNotification  false  "Notification"
// @Success      200           {object}  response.WebhookResponse
// @Failure      401           {object}  pkg.HTTPError
// @Failure      502           {object}  pkg.HTTPError
// @Router       /webhooks/payments [post]
func (h *PaymentHandler) PaymentWebhook(c *gin.Context) {
	var payload request.PaymentNotification
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}
	// query parameters win: they are what the signature manifest covers
	providerID := firstNonEmpty(c.Query("data.id"), c.Query("id"), string(payload.Data.ID))
	if topic := firstNonEmpty(c.Query("type"), c.Query("topic")); topic != "" {
		payload.Type = topic
	}

	if err := payments.VerifyWebhookSignature(h.webhookSecret, c.GetHeader("x-signature"), c.GetHeader("x-request-id"), providerID); err != nil {
		zap.S().Warnw("[payment][webhook] rejected notification", "provider_payment_id", providerID, "error", err)
		c.JSON(errInvalidWebhookSignature.HTTPStatus, errInvalidWebhookSignature.ToHTTPError())
		return
	}
	if !payload.IsPayment() || providerID == "" {
		c.JSON(http.StatusOK, response.WebhookResponse{Status: "ignored"})
		return
	}

	p, err := h.usecase.ConfirmFromProvider(c.Request.Context(), providerID)
	if err != nil {
		// only transient failures ask the processor to retry
		if errors.Is(err, usecase.ErrExternalProcessor) || errors.Is(err, usecase.ErrConfiguration) || !isDomainError(err) {
			zap.S().Errorw("[payment][webhook] confirmation failed", "provider_payment_id", providerID, "error", err)
			appErr := mapPaymentError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		zap.S().Warnw("[payment][webhook] notification not applied", "provider_payment_id", providerID, "error", err)
		c.JSON(http.StatusOK, response.WebhookResponse{Status: "ignored"})
		return
	}
	c.JSON(http.StatusOK, response.WebhookResponse{Status: string(p.Status)})
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotSigned):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_SIGNED", "Document must be signed before payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrDocumentSettled):
		return pkg.NewDomainErrorSimple("DOCUMENT_SETTLED", "Document already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrBalanceCommitted):
		return pkg.NewDomainErrorSimple("BALANCE_COMMITTED", "Open payment links already cover the remaining balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPaymentType):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_TYPE", "Invalid payment type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return errInvalidAmount
	case errors.Is(err, usecase.ErrAmountExceedsRemaining):
		return pkg.NewDomainErrorSimple("AMOUNT_EXCEEDS_REMAINING", "Amount exceeds the remaining balance", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound), errors.Is(err, usecase.ErrTokenNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTokenExpired):
		return pkg.NewDomainErrorSimple("PAYMENT_LINK_EXPIRED", "Payment link expired", http.StatusGone)
	case errors.Is(err, usecase.ErrPaymentAlreadyPaid):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_PAID", "Payment already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrAmountMismatch):
		return pkg.NewDomainErrorSimple("AMOUNT_MISMATCH", "Paid amount does not match the payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallmentNotFound):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_FOUND", "Installment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstallmentPaid):
		return pkg.NewDomainErrorSimple("INSTALLMENT_PAID", "Installment already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallmentCancelled):
		return pkg.NewDomainErrorSimple("INSTALLMENT_CANCELLED", "Installment cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrNoPublicBaseURL):
		return pkg.NewDomainErrorSimple("PUBLIC_URL_NOT_CONFIGURED", "No public URL configured for links", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrExternalProcessor):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider unavailable, retry later", err, http.StatusBadGateway)
	default:
		return mapKindError(err)
	}
}

// isDomainError reports whether err carries one of the use case error kinds.
func isDomainError(err error) bool {
	for _, kind := range []error{
		usecase.ErrNotFound, usecase.ErrValidation, usecase.ErrExpired, usecase.ErrAlreadyConsumed,
		usecase.ErrAlreadySigned, usecase.ErrAlreadySettled, usecase.ErrPrecondition,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
