package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// IOTPUseCase issues and verifies the one-time codes that gate signing.
//
// The target of a challenge is the signature session token.
type IOTPUseCase interface {
	Send(ctx context.Context, sessionToken, email, ip, userAgent string) (entities.OTPChallenge, error)
	Verify(ctx context.Context, sessionToken, code, ip, userAgent string) error
}

type OTPUseCase struct {
	repo     interfaces.IOTPChallengeRepository
	sessions interfaces.ISignatureSessionRepository
	tokens   ITokenUseCase
	audit    Recorder
	mailer   interfaces.IMailer
	hashCost int
	generate func() (string, error)
	now      func() time.Time
}

var _ IOTPUseCase = (*OTPUseCase)(nil)

func NewOTPUseCase(
	repo interfaces.IOTPChallengeRepository,
	sessions interfaces.ISignatureSessionRepository,
	tokens ITokenUseCase,
	audit Recorder,
	mailer interfaces.IMailer,
) *OTPUseCase {
	return &OTPUseCase{
		repo:     repo,
		sessions: sessions,
		tokens:   tokens,
		audit:    audit,
		mailer:   mailer,
		hashCost: bcrypt.DefaultCost,
		generate: generateOTPCode,
		now:      time.Now,
	}
}

// WithHashCost sets the bcrypt cost; values outside bcrypt's range keep the default.
func (u *OTPUseCase) WithHashCost(cost int) *OTPUseCase {
	if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		u.hashCost = cost
	}
	return u
}

func (u *OTPUseCase) Send(ctx context.Context, sessionToken, email, ip, userAgent string) (entities.OTPChallenge, error) {
	session, err := resolveSignatureSession(ctx, u.tokens, u.sessions, u.now(), sessionToken)
	if err != nil {
		return entities.OTPChallenge{}, err
	}
	log := zap.S().With("document_id", session.DocumentID, "session_id", session.ID)
	if session.Status != entities.SignatureSessionPending {
		return entities.OTPChallenge{}, ErrSessionCompleted
	}
	email = strings.TrimSpace(email)
	if email == "" {
		email = session.SignerEmail
	}
	if !session.IsFor(email) {
		log.Warnw("[otp][usecase] email does not match signer")
		return entities.OTPChallenge{}, ErrOTPEmailMismatch
	}

	code, err := u.generate()
	if err != nil {
		return entities.OTPChallenge{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), u.hashCost)
	if err != nil {
		return entities.OTPChallenge{}, err
	}

	now := u.now().UTC()
	challenge := entities.OTPChallenge{
		ID:           uuid.NewString(),
		DocumentID:   session.DocumentID,
		SessionToken: session.Token,
		Email:        session.SignerEmail,
		CodeHash:     string(hash),
		ExpiresAt:    now.Add(entities.OTPTTL),
		IPAddress:    ip,
		CreatedAt:    now,
	}
	// delivered before it supersedes the live challenge
	if err := u.mailer.Send(ctx, otpEmail(challenge.Email, code)); err != nil {
		log.Errorw("[otp][usecase] otp email failed", "challenge_id", challenge.ID, "error", err)
		return entities.OTPChallenge{}, externalError(err)
	}
	sent, err := u.audit.Prepare(ctx, EventInput{
		DocumentID:   session.DocumentID,
		SessionToken: session.Token,
		Type:         entities.EventOTPSent,
		Data: map[string]any{
			"challenge_id": challenge.ID,
			"email":        challenge.Email,
			"expires_at":   challenge.ExpiresAt.Format(time.RFC3339),
		},
		IPAddress: ip,
		UserAgent: userAgent,
	})
	if err != nil {
		return entities.OTPChallenge{}, err
	}
	if err := u.repo.Create(ctx, challenge, sent); err != nil {
		log.Errorw("[otp][usecase] challenge create failed", "error", err)
		return entities.OTPChallenge{}, err
	}
	log.Infow("[otp][usecase] challenge issued", "challenge_id", challenge.ID, "expires_at", challenge.ExpiresAt)
	return challenge, nil
}

func (u *OTPUseCase) Verify(ctx context.Context, sessionToken, code, ip, userAgent string) error {
	session, err := resolveSignatureSession(ctx, u.tokens, u.sessions, u.now(), sessionToken)
	if err != nil {
		return err
	}
	log := zap.S().With("document_id", session.DocumentID, "session_id", session.ID)

	challenge, err := u.repo.GetLive(ctx, session.Token)
	if err != nil {
		return err
	}
	if challenge.ID == "" {
		return ErrOTPNotFound
	}
	now := u.now().UTC()
	switch {
	case challenge.Consumed:
		return ErrOTPAlreadyConsumed
	case challenge.IsExpired(now):
		return ErrOTPExpired
	case challenge.Attempts >= entities.OTPMaxAttempts:
		return ErrOTPTooManyAttempts
	}

	// the attempt is taken before comparing so parallel guesses share the budget
	attempts, err := u.repo.ReserveAttempt(ctx, challenge.ID, entities.OTPMaxAttempts)
	if err != nil {
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			return err
		}
		current, gerr := u.repo.GetLive(ctx, session.Token)
		if gerr == nil && current.ID == challenge.ID && current.Consumed {
			return ErrOTPAlreadyConsumed
		}
		log.Infow("[otp][usecase] attempt budget exhausted", "challenge_id", challenge.ID)
		return ErrOTPTooManyAttempts
	}

	if bcrypt.CompareHashAndPassword([]byte(challenge.CodeHash), []byte(strings.TrimSpace(code))) != nil {
		log.Infow("[otp][usecase] code mismatch", "challenge_id", challenge.ID, "attempts", attempts)
		return ErrOTPMismatch
	}

	verified, err := u.audit.Prepare(ctx, EventInput{
		DocumentID:   session.DocumentID,
		SessionToken: session.Token,
		Type:         entities.EventOTPVerified,
		Data:         map[string]any{"challenge_id": challenge.ID, "email": challenge.Email},
		IPAddress:    ip,
		UserAgent:    userAgent,
	})
	if err != nil {
		return err
	}
	if err := u.repo.Consume(ctx, challenge.ID, now, verified); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return ErrOTPAlreadyConsumed
		}
		log.Errorw("[otp][usecase] consume failed", "challenge_id", challenge.ID, "error", err)
		return err
	}
	log.Infow("[otp][usecase] challenge verified", "challenge_id", challenge.ID)
	return nil
}

var otpSpace = big.NewInt(1_000_000)

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", entities.OTPCodeLength, n.Int64()), nil
}

func otpEmail(to, code string) interfaces.Email {
	return interfaces.Email{
		To:      to,
		Subject: "Your signature verification code",
		Body: fmt.Sprintf("Your verification code is %s.\n\nIt expires in %d minutes. Never share it.\n",
			code, int(entities.OTPTTL/time.Minute)),
	}
}
