package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Errors returned by this package wrap one of them so callers
// can branch on the kind with errors.Is.
var (
	ErrExpired           = errors.New("expired")
	ErrAlreadyConsumed   = errors.New("already consumed")
	ErrAlreadySigned     = errors.New("already signed")
	ErrAlreadySettled    = errors.New("already settled")
	ErrPrecondition      = errors.New("precondition failed")
	ErrExternalProcessor = errors.New("external processor error")
	ErrConfiguration     = errors.New("configuration error")
	ErrValidation        = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
)

func kindError(kind error, msg string) error {
	return fmt.Errorf("%w: %s", kind, msg)
}

var (
	ErrDocumentNotFound  = kindError(ErrNotFound, "document not found")
	ErrInvalidDocument   = kindError(ErrValidation, "invalid document")
	ErrDocumentCancelled = kindError(ErrPrecondition, "document cancelled")
	ErrStatusConflict    = kindError(ErrPrecondition, "status changed concurrently")

	ErrTokenNotFound   = kindError(ErrNotFound, "token not found")
	ErrTokenExpired    = kindError(ErrExpired, "token expired")
	ErrNoPublicBaseURL = kindError(ErrConfiguration, "no public base url configured")

	ErrOTPNotFound        = kindError(ErrNotFound, "no otp challenge for this session")
	ErrOTPMismatch        = kindError(ErrValidation, "otp code mismatch")
	ErrOTPExpired         = kindError(ErrExpired, "otp code expired")
	ErrOTPAlreadyConsumed = kindError(ErrAlreadyConsumed, "otp code already used")
	ErrOTPTooManyAttempts = kindError(ErrAlreadyConsumed, "too many otp attempts")
	ErrOTPEmailMismatch   = kindError(ErrPrecondition, "email does not match the signer")

	ErrSessionNotFound       = kindError(ErrNotFound, "signature session not found")
	ErrSessionExpired        = kindError(ErrExpired, "signature session expired")
	ErrOTPNotVerified        = kindError(ErrPrecondition, "otp not verified for this session")
	ErrDocumentNotSignable   = kindError(ErrPrecondition, "document cannot be signed in its current status")
	ErrInvalidSigner         = kindError(ErrValidation, "invalid signer")
	ErrEmptySignature        = kindError(ErrValidation, "signature payload is empty")
	ErrDocumentAlreadySigned = kindError(ErrAlreadySigned, "document already signed")

	// a closed session is both terminal and a caller ordering bug
	ErrSessionCompleted = fmt.Errorf("%w: %w: signature session already completed", ErrAlreadySigned, ErrPrecondition)
	ErrSessionClosed    = fmt.Errorf("%w: %w: signature session expired", ErrExpired, ErrPrecondition)

	ErrNotSigned = kindError(ErrPrecondition, "document is not signed")

	ErrDocumentNotSigned      = kindError(ErrPrecondition, "document not signed")
	ErrInvalidPaymentType     = kindError(ErrValidation, "invalid payment type")
	ErrInvalidAmount          = kindError(ErrValidation, "amount must be positive")
	ErrAmountExceedsRemaining = kindError(ErrValidation, "amount exceeds remaining")
	ErrDocumentSettled        = kindError(ErrAlreadySettled, "document already settled")
	ErrBalanceCommitted       = kindError(ErrPrecondition, "open payment links already cover the remaining balance")
	ErrPaymentNotFound        = kindError(ErrNotFound, "payment not found")
	ErrPaymentAlreadyPaid     = kindError(ErrAlreadySettled, "payment already paid")
	ErrAmountMismatch         = kindError(ErrPrecondition, "provider amount does not match payment")
	ErrGatewayNotConfigured   = kindError(ErrConfiguration, "payment gateway not configured")

	ErrInvalidInstallmentCount = kindError(ErrValidation, "invalid installment count")
	ErrNotAnInvoice            = kindError(ErrPrecondition, "installments require an invoice")
	ErrScheduleExists          = kindError(ErrPrecondition, "a different schedule already exists")
	ErrInstallmentNotFound     = kindError(ErrNotFound, "installment not found")
	ErrInstallmentPaid         = kindError(ErrAlreadySettled, "installment already paid")
	ErrInstallmentCancelled    = kindError(ErrPrecondition, "installment cancelled")
)

// externalError marks a processor or transport failure as retryable.
func externalError(err error) error {
	return fmt.Errorf("%w: %v", ErrExternalProcessor, err)
}
