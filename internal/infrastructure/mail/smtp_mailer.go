package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"doctrust/internal/infrastructure/config"
	"doctrust/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrSMTPNotConfigured = errors.New("smtp host not configured")

// SMTPMailer sends plain text mail through an SMTP relay.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, ErrSMTPNotConfigured
	}
	m := &SMTPMailer{
		addr: net.JoinHostPort(cfg.Host, cfg.Port),
		from: cfg.From,
		send: smtp.SendMail,
	}
	if cfg.Username != "" {
		m.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return m, nil
}

// Send honours ctx cancellation; the SMTP exchange itself keeps running in
// the background when ctx ends first.
func (m *SMTPMailer) Send(ctx context.Context, msg interfaces.Email) error {
	raw := buildMessage(m.from, msg, time.Now())
	done := make(chan error, 1)
	go func() { done <- m.send(m.addr, m.auth, m.from, []string{msg.To}, raw) }()

	select {
	case err := <-done:
		if err != nil {
			zap.S().Errorw("[mail] smtp send failed", "to", msg.To, "error", err)
			return err
		}
		zap.S().Infow("[mail] sent", "to", msg.To, "subject", msg.Subject)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func buildMessage(from string, msg interfaces.Email, at time.Time) []byte {
	var b strings.Builder
	header := func(k, v string) {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\r\n")
	}
	header("From", from)
	header("To", msg.To)
	header("Subject", sanitizeHeader(msg.Subject))
	header("Date", at.Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("Content-Type", "text/plain; charset=UTF-8")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}

func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

// LogMailer only logs. It backs MAIL_MOCK and local runs; OTP codes end up
// in the log, so it must never run in production.
type LogMailer struct{}

var _ interfaces.IMailer = LogMailer{}

func (LogMailer) Send(_ context.Context, msg interfaces.Email) error {
	zap.S().Infow("[mail][mock] email", "to", msg.To, "subject", msg.Subject, "body", msg.Body)
	return nil
}

// New picks the transport for the configuration.
func New(cfg config.MailConfig) (interfaces.IMailer, error) {
	if cfg.Mock {
		return LogMailer{}, nil
	}
	m, err := NewSMTPMailer(cfg)
	if err != nil {
		return nil, fmt.Errorf("mail: %w", err)
	}
	return m, nil
}
