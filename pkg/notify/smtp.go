package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds mail transport settings
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	SSL      bool // implicit TLS, e.g. port 465
}

// SMTPSender delivers messages over SMTP
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender creates an SMTP sender
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send dispatches one message to all recipients and returns its message id
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	m := mail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return "", fmt.Errorf("set from address: %w", err)
	}
	if err := m.To(msg.To...); err != nil {
		return "", fmt.Errorf("set recipients: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	m.SetMessageID()

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.User),
		mail.WithPassword(s.cfg.Password),
	}
	if s.cfg.SSL {
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return "", fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return "", fmt.Errorf("send mail: %w", err)
	}

	return m.GetMessageID(), nil
}
