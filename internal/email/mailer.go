package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer delivers contact-form submissions to the site owner.
type Mailer interface {
	SendContactMessage(name, replyTo, subject, body string) error
}

type Config struct {
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	From     string
	To       string
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewSMTPMailer(cfg Config) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.From,
		to:     cfg.To,
	}
}

func (m *smtpMailer) SendContactMessage(name, replyTo, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Reply-To", replyTo)
	msg.SetHeader("Subject", fmt.Sprintf("[Contact] %s", subject))
	msg.SetBody("text/plain", fmt.Sprintf("From: %s <%s>\n\n%s", name, replyTo, body))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send contact message: %w", err)
	}
	return nil
}
