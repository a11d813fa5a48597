package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"doctrust/internal/infrastructure/config"
	"doctrust/internal/usecase/interfaces"
)

func TestSMTPMailerSend(t *testing.T) {
	m, err := NewSMTPMailer(config.MailConfig{Host: "smtp.example.com", Port: "587", From: "no-reply@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var gotAddr string
	var gotTo []string
	var gotMsg []byte
	m.send = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, msg
		return nil
	}

	err = m.Send(context.Background(), interfaces.Email{To: "ada@example.com", Subject: "Hi\r\nBcc: x@evil.com", Body: "line1\nline2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAddr != "smtp.example.com:587" {
		t.Fatalf("addr = %q", gotAddr)
	}
	if len(gotTo) != 1 || gotTo[0] != "ada@example.com" {
		t.Fatalf("to = %v", gotTo)
	}
	raw := string(gotMsg)
	if strings.Contains(raw, "\r\nBcc:") {
		t.Fatalf("header injection not neutralised: %q", raw)
	}
	if !strings.Contains(raw, "line1\r\nline2") {
		t.Fatalf("body not normalised: %q", raw)
	}
}

func TestSMTPMailerPropagatesFailure(t *testing.T) {
	m, _ := NewSMTPMailer(config.MailConfig{Host: "smtp.example.com", Port: "25"})
	boom := errors.New("relay down")
	m.send = func(string, smtp.Auth, string, []string, []byte) error { return boom }

	if err := m.Send(context.Background(), interfaces.Email{To: "a@b.c"}); !errors.Is(err, boom) {
		t.Fatalf("expected relay error, got %v", err)
	}
}

func TestSMTPMailerHonoursContext(t *testing.T) {
	m, _ := NewSMTPMailer(config.MailConfig{Host: "smtp.example.com", Port: "25"})
	release := make(chan struct{})
	defer close(release)
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		<-release
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := m.Send(ctx, interfaces.Email{To: "a@b.c"}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestNewPicksTransport(t *testing.T) {
	m, err := New(config.MailConfig{Mock: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := m.(LogMailer); !ok {
		t.Fatalf("expected LogMailer, got %T", m)
	}
	if _, err := New(config.MailConfig{}); !errors.Is(err, ErrSMTPNotConfigured) {
		t.Fatalf("expected ErrSMTPNotConfigured, got %v", err)
	}
}
