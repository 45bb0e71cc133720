package export

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// EmailSender delivers a rendered report over SMTP.
type EmailSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewEmailSender creates a sender with the given SMTP settings.
func NewEmailSender(host string, port int, username, password, from string) *EmailSender {
	return &EmailSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Configured reports whether SMTP delivery is set up.
func (s *EmailSender) Configured() bool {
	return s != nil && s.host != "" && s.from != ""
}

// SendReport mails the HTML rendition as the message body.
func (s *EmailSender) SendReport(to string, subject string, htmlBody []byte) error {
	if !s.Configured() {
		return fmt.Errorf("email delivery is not configured")
	}
	if to == "" {
		return fmt.Errorf("recipient address is empty")
	}

	msg := email.NewEmail()
	msg.From = s.from
	msg.To = []string{to}
	msg.Subject = subject
	msg.HTML = htmlBody

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}
	if err := msg.Send(addr, auth); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}
	return nil
}
