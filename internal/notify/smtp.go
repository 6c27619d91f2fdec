package notify

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPConfig holds the connection settings for an SMTP server.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Configured reports whether a server is configured at all.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Port != 0
}

// SMTPNotifier delivers notifications as email via SMTP.
type SMTPNotifier struct {
	config SMTPConfig

	// send is replaceable for tests
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotifier returns a notifier delivering via the configured
// server.
func NewSMTPNotifier(config SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		config: config,
		send:   smtp.SendMail,
	}
}

func (n *SMTPNotifier) Notify(_ context.Context, toEmail, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", n.config.Host, n.config.Port)

	var auth smtp.Auth
	if n.config.User != "" {
		auth = smtp.PlainAuth("", n.config.User, n.config.Pass, n.config.Host)
	}

	from := n.config.From
	if from == "" {
		from = n.config.User
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", from, toEmail, subject, body)

	err := n.send(addr, auth, from, []string{toEmail}, []byte(msg))
	if err != nil {
		return fmt.Errorf("sending notification to %s failed: %w", toEmail, err)
	}

	return nil
}
