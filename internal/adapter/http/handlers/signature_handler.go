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

// SignatureHandler serves the signing flow: the owner issues a session,
// the signer opens it, proves the email with a code and signs.
type SignatureHandler struct {
	signatures usecase.ISignatureUseCase
	otp        usecase.IOTPUseCase
}

func NewSignatureHandler(signatures usecase.ISignatureUseCase, otp usecase.IOTPUseCase) *SignatureHandler {
	return &SignatureHandler{signatures: signatures, otp: otp}
}

// IssueSession godoc
// @Summary      Send a document for signature
// @Description  Reuses the live session of the same signer instead of creating a second one.
// @Tags         signatures
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                                true  "Document id"
// @Param        body  body      request.IssueSignatureSessionRequest  true  "Signer"
// @Success      201   {object}  response.SignatureSessionResponse
// @Success      200   {object}  response.SignatureSessionResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /documents/{id}/signature-sessions [post]
func (h *SignatureHandler) IssueSession(c *gin.Context) {
	var payload request.IssueSignatureSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	documentID := c.Param("id")
	issued, err := h.signatures.IssueSession(c.Request.Context(), middleware.OwnerID(c), documentID, payload.SignerEmail, payload.SignerName)
	if err != nil {
		zap.S().Infow("[signature][handler] issue failed", "document_id", documentID, "error", err)
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	status := http.StatusCreated
	if issued.Reused {
		status = http.StatusOK
	}
	c.JSON(status, response.FromIssuedSession(issued))
}

// OpenSession godoc
// @Summary      Open a signing link
// @Tags         public
// @Produce      json
// @Param        token  path      string  true  "Signature session token"
// @Success      200    {object}  response.SigningPageResponse
// @Failure      404    {object}  pkg.HTTPError
// @Failure      410    {object}  pkg.HTTPError
// @Router       /public/signatures/{token} [get]
func (h *SignatureHandler) OpenSession(c *gin.Context) {
	view, err := h.signatures.Open(c.Request.Context(), c.Param("token"), clientIP(c), userAgent(c))
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(view))
}

// SendOTP godoc
// @Summary      Email a one-time code to the signer
// @Description  A new code supersedes any code sent before for the same session.
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        token  path      string                  true  "Signature session token"
// @Param        body   body      request.SendOTPRequest  true  "Signer email"
// @Success      200    {object}  response.OTPSentResponse
// @Failure      403    {object}  pkg.HTTPError
// @Failure      502    {object}  pkg.HTTPError
// @Router       /public/signatures/{token}/otp [post]
func (h *SignatureHandler) SendOTP(c *gin.Context) {
	var payload request.SendOTPRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	challenge, err := h.otp.Send(c.Request.Context(), c.Param("token"), payload.Email, clientIP(c), userAgent(c))
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOTPChallenge(challenge))
}

// VerifyOTP godoc
// @Summary      Check the one-time code
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        token  path      string                    true  "Signature session token"
// @Param        body   body      request.VerifyOTPRequest  true  "Code"
// @Success      200    {object}  response.OTPVerifiedResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      410    {object}  pkg.HTTPError
// @Failure      429    {object}  pkg.HTTPError
// @Router       /public/signatures/{token}/otp/verify [post]
func (h *SignatureHandler) VerifyOTP(c *gin.Context) {
	var payload request.VerifyOTPRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	if err := h.otp.Verify(c.Request.Context(), c.Param("token"), payload.Code, clientIP(c), userAgent(c)); err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OTPVerifiedResponse{Verified: true})
}

// CompleteSignature godoc
// @Summary      Sign the document
// @Description  Requires a verified code for this session. The document, the session and the audit trail change together or not at all.
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        token  path      string                            true  "Signature session token"
// @Param        body   body      request.CompleteSignatureRequest  true  "Signature"
// @Success      200    {object}  response.CompletedSignatureResponse
// @Failure      403    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Router       /public/signatures/{token}/complete [post]
func (h *SignatureHandler) CompleteSignature(c *gin.Context) {
	var payload request.CompleteSignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	done, err := h.signatures.Complete(c.Request.Context(), usecase.CompleteSignatureCommand{
		Token:      c.Param("token"),
		Payload:    payload.SignatureData,
		SignerName: payload.SignerName,
		IPAddress:  clientIP(c),
		UserAgent:  userAgent(c),
	})
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompletedSignature(done))
}

func mapSignatureError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTokenNotFound), errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SIGNATURE_SESSION_NOT_FOUND", "Signature link not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTokenExpired), errors.Is(err, usecase.ErrSessionExpired), errors.Is(err, usecase.ErrSessionClosed):
		return pkg.NewDomainErrorSimple("SIGNATURE_SESSION_EXPIRED", "Signature link expired", http.StatusGone)
	case errors.Is(err, usecase.ErrSessionCompleted), errors.Is(err, usecase.ErrDocumentAlreadySigned):
		return pkg.NewDomainErrorSimple("ALREADY_SIGNED", "Document already signed", http.StatusConflict)
	case errors.Is(err, usecase.ErrOTPNotFound):
		return pkg.NewDomainErrorSimple("OTP_NOT_SENT", "No code was sent for this signature", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOTPMismatch):
		return pkg.NewDomainErrorSimple("OTP_INVALID", "Invalid code", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOTPExpired):
		return pkg.NewDomainErrorSimple("OTP_EXPIRED", "Code expired, request a new one", http.StatusGone)
	case errors.Is(err, usecase.ErrOTPAlreadyConsumed):
		return pkg.NewDomainErrorSimple("OTP_ALREADY_USED", "Code already used", http.StatusConflict)
	case errors.Is(err, usecase.ErrOTPTooManyAttempts):
		return pkg.NewDomainErrorSimple("OTP_TOO_MANY_ATTEMPTS", "Too many attempts, request a new code", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrOTPEmailMismatch):
		return pkg.NewDomainErrorSimple("EMAIL_MISMATCH", "Email does not match the signer", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOTPNotVerified):
		return pkg.NewDomainErrorSimple("OTP_NOT_VERIFIED", "Verify the code before signing", http.StatusForbidden)
	case errors.Is(err, usecase.ErrDocumentNotSignable), errors.Is(err, usecase.ErrDocumentCancelled):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_SIGNABLE", "Document cannot be signed in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidSigner):
		return pkg.NewDomainErrorSimple("INVALID_SIGNER", "Invalid signer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptySignature):
		return pkg.NewDomainErrorSimple("EMPTY_SIGNATURE", "Signature is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoPublicBaseURL):
		return pkg.NewDomainErrorSimple("PUBLIC_URL_NOT_CONFIGURED", "No public URL configured for links", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrExternalProcessor):
		return pkg.NewDomainError("EMAIL_DELIVERY_FAILED", "Email could not be sent, retry later", err, http.StatusBadGateway)
	default:
		return mapKindError(err)
	}
}
