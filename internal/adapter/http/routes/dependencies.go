package routes

import (
	"context"
	"fmt"

	"doctrust/internal/adapter/persistence/memory"
	"doctrust/internal/adapter/persistence/repository"
	"doctrust/internal/infrastructure/config"
	"doctrust/internal/infrastructure/database"
	"doctrust/internal/infrastructure/mail"
	"doctrust/internal/infrastructure/payments"
	"doctrust/internal/usecase"
	"doctrust/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Repositories is one storage backend seen through the use case ports.
type Repositories struct {
	Documents    interfaces.IDocumentRepository
	Accounts     interfaces.IAccountSettingsRepository
	Tokens       interfaces.ITokenRepository
	Sessions     interfaces.ISignatureSessionRepository
	Challenges   interfaces.IOTPChallengeRepository
	Events       interfaces.ISignatureEventRepository
	Payments     interfaces.IPaymentRepository
	Installments interfaces.IInstallmentRepository
}

// Dependencies holds the use cases the handlers are built from.
type Dependencies struct {
	Documents    usecase.IDocumentUseCase
	Audit        usecase.IAuditUseCase
	Certificates usecase.ICertificateUseCase
	Signatures   usecase.ISignatureUseCase
	OTP          usecase.IOTPUseCase
	Payments     usecase.IPaymentUseCase
	Installments usecase.IInstallmentUseCase
}

func newDependencies(ctx context.Context, cfg config.Config) (*Dependencies, error) {
	repos, err := newRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}
	mailer, err := mail.New(cfg.Mail)
	if err != nil {
		return nil, err
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		zap.S().Warnw("[routes] Mercado Pago gateway not configured; payment links are disabled", "error", err)
	} else {
		gateway = mpGateway
	}
	return NewDependencies(cfg, repos, mailer, gateway), nil
}

// NewDependencies wires every use case on top of repos. gateway may be nil.
func NewDependencies(cfg config.Config, repos Repositories, mailer interfaces.IMailer, gateway interfaces.IPaymentGateway) *Dependencies {
	urls := usecase.NewPublicURLBuilder(
		usecase.AccountBaseURL(repos.Accounts),
		usecase.StaticBaseURL(cfg.AppPublicURL),
		usecase.StaticBaseURL(cfg.PublicSiteURL),
	)
	tokens := usecase.NewTokenUseCase(repos.Tokens)
	audit := usecase.NewAuditUseCase(repos.Events, repos.Documents)
	certificates := usecase.NewCertificateUseCase(repos.Documents, audit)
	paymentUseCase := usecase.NewPaymentUseCase(repos.Payments, repos.Documents, repos.Installments, tokens, urls, gateway, usecase.PaymentOptions{
		GatewayTimeout:  cfg.PaymentGatewayTimeout,
		NotificationURL: cfg.PaymentNotificationURL,
	})

	return &Dependencies{
		Documents:    usecase.NewDocumentUseCase(repos.Documents),
		Audit:        audit,
		Certificates: certificates,
		Signatures:   usecase.NewSignatureUseCase(repos.Documents, repos.Sessions, tokens, urls, audit, certificates, mailer),
		OTP:          usecase.NewOTPUseCase(repos.Challenges, repos.Sessions, tokens, audit, mailer).WithHashCost(cfg.OTPHashCost),
		Payments:     paymentUseCase,
		Installments: usecase.NewInstallmentUseCase(repos.Installments, repos.Documents, paymentUseCase),
	}
}

func newRepositories(ctx context.Context, cfg config.Config) (Repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		zap.S().Warnw("[routes] in-memory storage selected; data is lost on restart")
		return MemoryRepositories(memory.NewStore()), nil
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return Repositories{}, err
		}
		return Repositories{
			Documents:    repository.NewDocumentDynamoRepository(ddb),
			Accounts:     repository.NewAccountSettingsDynamoRepository(ddb),
			Tokens:       repository.NewTokenDynamoRepository(ddb),
			Sessions:     repository.NewSignatureSessionDynamoRepository(ddb),
			Challenges:   repository.NewOTPChallengeDynamoRepository(ddb),
			Events:       repository.NewSignatureEventDynamoRepository(ddb),
			Payments:     repository.NewPaymentDynamoRepository(ddb),
			Installments: repository.NewInstallmentDynamoRepository(ddb),
		}, nil
	default:
		return Repositories{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

func MemoryRepositories(s *memory.Store) Repositories {
	return Repositories{
		Documents:    s.Documents(),
		Accounts:     s.Accounts(),
		Tokens:       s.Tokens(),
		Sessions:     s.Sessions(),
		Challenges:   s.Challenges(),
		Events:       s.Events(),
		Payments:     s.Payments(),
		Installments: s.Installments(),
	}
}
