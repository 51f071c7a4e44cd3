// Package mailer delivers outbound notifications.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

type Message struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Notifier sends a message to its recipients.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	UseTLS   bool
	UseSSL   bool
	From     string
}

// ConfigSource resolves the transport settings at send time, so changes to
// stored settings apply without a restart.
type ConfigSource func(ctx context.Context) SMTPConfig

type SMTPNotifier struct {
	source  ConfigSource
	timeout time.Duration
}

func NewSMTPNotifier(source ConfigSource) *SMTPNotifier {
	return &SMTPNotifier{source: source, timeout: 10 * time.Second}
}

// Send delivers msg over SMTP. Without a configured host the message is
// logged and dropped.
func (n *SMTPNotifier) Send(ctx context.Context, msg Message) error {
	cfg := n.source(ctx)
	if msg.From == "" {
		msg.From = cfg.From
	}
	if cfg.Host == "" {
		log.WithFields(log.Fields{
			"to":      strings.Join(msg.To, ","),
			"subject": msg.Subject,
		}).Info("SMTP not configured, message not delivered")
		return nil
	}

	m, err := build(msg)
	if err != nil {
		return err
	}
	client, err := mail.NewClient(cfg.Host, n.options(cfg)...)
	if err != nil {
		return fmt.Errorf("smtp client %s: %w", cfg.Host, err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send via %s: %w", cfg.Host, err)
	}
	return nil
}

func (n *SMTPNotifier) options(cfg SMTPConfig) []mail.Option {
	opts := []mail.Option{mail.WithTimeout(n.timeout)}
	switch {
	case cfg.UseSSL:
		opts = append(opts, mail.WithSSL())
	case cfg.UseTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	return opts
}

// build turns msg into a MIME message. Header values are encoded by
// go-mail, so control characters never start a new header line.
func build(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", msg.From, err)
	}
	if err := m.To(msg.To...); err != nil {
		return nil, fmt.Errorf("invalid recipients: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}

// Compose renders msg as it would be handed to the SMTP server.
func Compose(msg Message) ([]byte, error) {
	m, err := build(msg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var headerSafe = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Invitation builds the message sent to someone invited into a project.
func Invitation(projectName, role, link, to string) Message {
	return Message{
		To:      []string{to},
		Subject: headerSafe.Replace(fmt.Sprintf("Invitation to join the project '%s'", projectName)),
		Body: fmt.Sprintf(
			"You have been invited to join the project '%s' as a %s.\n\nClick the link below to accept the invitation:\n%s",
			projectName, role, link,
		),
	}
}
