package handlers

import (
	"errors"
	"net/http"

	"doctrust/internal/usecase"
	"doctrust/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidAmount  = pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be a positive decimal with at most two places", http.StatusBadRequest)
)

// mapKindError is the fallback for errors no handler maps explicitly.
func mapKindError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExpired):
		return pkg.NewDomainError("EXPIRED", "Link expired", err, http.StatusGone)
	case errors.Is(err, usecase.ErrAlreadyConsumed):
		return pkg.NewDomainError("ALREADY_CONSUMED", "Already used", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadySigned):
		return pkg.NewDomainError("ALREADY_SIGNED", "Document already signed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadySettled):
		return pkg.NewDomainError("ALREADY_SETTLED", "Already settled", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPrecondition):
		return pkg.NewDomainError("PRECONDITION_FAILED", "Operation not allowed in the current state", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrExternalProcessor):
		return pkg.NewDomainError("EXTERNAL_PROCESSOR_ERROR", "External service unavailable, retry later", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrConfiguration):
		return pkg.NewDomainError("CONFIGURATION_ERROR", "Service not configured for this operation", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func clientIP(c *gin.Context) string {
	return c.ClientIP()
}

func userAgent(c *gin.Context) string {
	return c.Request.UserAgent()
}
