package handlers

import (
	"errors"
	"net/http"

	"doctrust/internal/adapter/http/dto/request"
	"doctrust/internal/adapter/http/dto/response"
	"doctrust/internal/adapter/http/middleware"
	"doctrust/internal/usecase"
	"doctrust/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InstallmentHandler struct {
	usecase usecase.IInstallmentUseCase
}

func NewInstallmentHandler(uc usecase.IInstallmentUseCase) *InstallmentHandler {
	return &InstallmentHandler{usecase: uc}
}

// ScheduleInstallments godoc
// @Summary      Split an invoice into monthly installments
// @Description  Sending the same count again returns the existing schedule.
// @Tags         installments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                               true  "Invoice id"
// @Param        body  body      request.ScheduleInstallmentsRequest  true  "Schedule"
// @Success      201   {array}   response.InstallmentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /invoices/{id}/installments [post]
func (h *InstallmentHandler) ScheduleInstallments(c *gin.Context) {
	var payload request.ScheduleInstallmentsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	invoiceID := c.Param("id")
	items, err := h.usecase.Schedule(c.Request.Context(), middleware.OwnerID(c), invoiceID, payload.Installments, payload.StartDate)
	if err != nil {
		zap.S().Infow("[installment][handler] schedule failed", "invoice_id", invoiceID, "error", err)
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromInstallments(items))
}

// ListInstallments godoc
// @Summary      Installments of an invoice with their current status
// @Tags         installments
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {array}   response.InstallmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{id}/installments [get]
func (h *InstallmentHandler) ListInstallments(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInstallments(items))
}

// SendInstallmentLink godoc
// @Summary      Open or refresh the payment link of one installment
// @Tags         installments
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Installment id"
// @Success      200  {object}  response.InstallmentLinkResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /installments/{id}/payment-link [post]
func (h *InstallmentHandler) SendInstallmentLink(c *gin.Context) {
	installmentID := c.Param("id")
	link, err := h.usecase.SendLink(c.Request.Context(), middleware.OwnerID(c), installmentID)
	if err != nil {
		zap.S().Infow("[installment][handler] send link failed", "installment_id", installmentID, "error", err)
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInstallmentLink(link))
}

func mapInstallmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInstallmentCount):
		return pkg.NewDomainErrorSimple("INVALID_INSTALLMENT_COUNT", "Installment count out of range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAnInvoice):
		return pkg.NewDomainErrorSimple("NOT_AN_INVOICE", "Only invoices can be paid in installments", http.StatusConflict)
	case errors.Is(err, usecase.ErrScheduleExists):
		return pkg.NewDomainErrorSimple("SCHEDULE_EXISTS", "A different schedule already exists", http.StatusConflict)
	default:
		return mapPaymentError(err)
	}
}
