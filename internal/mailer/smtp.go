package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig holds SMTP connection and addressing settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the sender address on all notifications
	From string
	// InternalTo is the campaign-owner address for internal notices
	InternalTo string
}

// SMTPMailer sends notifications through an SMTP relay
type SMTPMailer struct {
	cfg SMTPConfig
	// send is swappable for testing
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// Ensure SMTPMailer implements Mailer
var _ Mailer = (*SMTPMailer)(nil)

// NewSMTP creates a new SMTP mailer
func NewSMTP(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		cfg:  cfg,
		send: smtp.SendMail,
	}
}

// SendWinnerNotice notifies the player of their prize
func (m *SMTPMailer) SendWinnerNotice(ctx context.Context, email, name, prizeName string) error {
	subject := "Congratulations, you won!"
	body := fmt.Sprintf("Hi %s,\r\n\r\nYou won: %s.\r\n\r\nWe will be in touch about delivery.\r\n", name, prizeName)
	return m.sendMail(email, subject, body)
}

// SendInternalNotice notifies the campaign owners of a win
func (m *SMTPMailer) SendInternalNotice(ctx context.Context, identifier, name, prizeName, email string) error {
	subject := fmt.Sprintf("Prize won: %s", prizeName)
	body := fmt.Sprintf("VAT number: %s\r\nName: %s\r\nPrize: %s\r\nEmail: %s\r\n", identifier, name, prizeName, email)
	return m.sendMail(m.cfg.InternalTo, subject, body)
}

func (m *SMTPMailer) sendMail(to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("no recipient address")
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	if err := m.send(addr, auth, m.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
