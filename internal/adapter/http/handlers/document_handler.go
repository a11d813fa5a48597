package handlers

import (
	"errors"
	"net/http"

	"doctrust/internal/adapter/http/dto/request"
	"doctrust/internal/adapter/http/dto/response"
	"doctrust/internal/adapter/http/middleware"
	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase"
	"doctrust/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)
)

// DocumentHandler serves the owner side of a document: registration, audit trail and certificate.
type DocumentHandler struct {
	documents    usecase.IDocumentUseCase
	audit        usecase.IAuditUseCase
	certificates usecase.ICertificateUseCase
}

func NewDocumentHandler(documents usecase.IDocumentUseCase, audit usecase.IAuditUseCase, certificates usecase.ICertificateUseCase) *DocumentHandler {
	return &DocumentHandler{documents: documents, audit: audit, certificates: certificates}
}

// CreateDocument godoc
// @Summary      Register a quote or an invoice
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.CreateDocumentRequest  true  "Document"
// @Success      201   {object}  response.DocumentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var payload request.CreateDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}
	total, excl, err := payload.ResolveAmounts()
	if err != nil {
		c.JSON(errInvalidAmount.HTTPStatus, errInvalidAmount.ToHTTPError())
		return
	}

	doc, err := h.documents.Create(c.Request.Context(), middleware.OwnerID(c), usecase.CreateDocumentCommand{
		Kind:               entities.DocumentKind(payload.ResolveKind()),
		Number:             payload.Number,
		ClientName:         payload.ClientName,
		ClientEmail:        payload.ClientEmail,
		AmountCents:        total,
		AmountExclTaxCents: excl,
		Currency:           payload.Currency,
	})
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDocument(doc))
}

// GetDocument godoc
// @Summary      Get a document with its pipeline status
// @Tags         documents
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Document id"
// @Success      200  {object}  response.DocumentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.documents.Get(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// ListEvents godoc
// @Summary      Audit trail of a document, oldest first
// @Tags         documents
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Document id"
// @Success      200  {array}   response.EventResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /documents/{id}/events [get]
func (h *DocumentHandler) ListEvents(c *gin.Context) {
	events, err := h.audit.HistoryForOwner(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEvents(events))
}

// GetCertificate godoc
// @Summary      Generate the signature certificate of a signed document
// @Tags         documents
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Document id"
// @Success      200  {object}  response.CertificateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /documents/{id}/certificate [get]
func (h *DocumentHandler) GetCertificate(c *gin.Context) {
	documentID := c.Param("id")
	cert, err := h.certificates.GenerateForOwner(c.Request.Context(), middleware.OwnerID(c), documentID, clientIP(c), userAgent(c))
	if err != nil {
		zap.S().Infow("[certificate][handler] generate failed", "document_id", documentID, "error", err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCertificate(cert))
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocument):
		return errInvalidDocumentPayload
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotSigned):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_SIGNED", "Document is not signed", http.StatusConflict)
	default:
		return mapKindError(err)
	}
}
