package interfaces

import "context"

type Email struct {
	To      string
	Subject string
	Body    string
}

// IMailer is the outbound email transport.
type IMailer interface {
	Send(ctx context.Context, msg Email) error
}
