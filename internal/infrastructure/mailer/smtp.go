package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"bakery/internal/config"
	"bakery/internal/domain"
)

// SMTPTransport sends each message over its own SMTP session. Connection
// reuse and retries are left to the server side.
type SMTPTransport struct {
	host   string
	opts   []mail.Option
	logger *zap.Logger
}

func NewSMTPTransport(cfg config.SMTPConfig, logger *zap.Logger) (*SMTPTransport, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is not configured")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
	}
	if cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	return &SMTPTransport{
		host:   cfg.Host,
		opts:   opts,
		logger: logger,
	}, nil
}

func (t *SMTPTransport) Send(ctx context.Context, msg domain.Message) error {
	m, err := buildMessage(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(t.host, t.opts...)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("delivering message: %w", err)
	}

	t.logger.Debug("message delivered", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func buildMessage(msg domain.Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to %q: %w", msg.ReplyTo, err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	return m, nil
}
