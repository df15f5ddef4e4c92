package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/suite"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

type SMTPMailerSuite struct {
	suite.Suite
	mailer *SMTPMailer
	sent   []sentMail
	ctx    context.Context
}

func TestSMTPMailerSuite(t *testing.T) {
	suite.Run(t, new(SMTPMailerSuite))
}

func (s *SMTPMailerSuite) SetupTest() {
	s.sent = nil
	s.ctx = context.Background()

	s.mailer = NewSMTP(SMTPConfig{
		Host:       "smtp.example.com",
		Port:       587,
		From:       "noreply@example.com",
		InternalTo: "wins@example.com",
	})
	s.mailer.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		s.sent = append(s.sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})
		return nil
	}
}

func (s *SMTPMailerSuite) TestWinnerNotice() {
	err := s.mailer.SendWinnerNotice(s.ctx, "alice@example.com", "Alice", "Coffee Mug")
	s.Require().NoError(err)

	s.Require().Len(s.sent, 1)
	s.Equal("smtp.example.com:587", s.sent[0].addr)
	s.Equal("noreply@example.com", s.sent[0].from)
	s.Equal([]string{"alice@example.com"}, s.sent[0].to)
	s.Contains(s.sent[0].msg, "Subject: Congratulations, you won!")
	s.Contains(s.sent[0].msg, "Coffee Mug")
	s.Contains(s.sent[0].msg, "Hi Alice")
}

func (s *SMTPMailerSuite) TestInternalNotice() {
	err := s.mailer.SendInternalNotice(s.ctx, "IT123", "Alice", "Coffee Mug", "alice@example.com")
	s.Require().NoError(err)

	s.Require().Len(s.sent, 1)
	s.Equal([]string{"wins@example.com"}, s.sent[0].to)
	s.Contains(s.sent[0].msg, "VAT number: IT123")
	s.Contains(s.sent[0].msg, "Prize: Coffee Mug")
}

func (s *SMTPMailerSuite) TestWinnerNoticeWithoutRecipient() {
	err := s.mailer.SendWinnerNotice(s.ctx, "", "Alice", "Coffee Mug")
	s.ErrorContains(err, "no recipient")
	s.Empty(s.sent)
}

func (s *SMTPMailerSuite) TestSendFailureWrapped() {
	s.mailer.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		return errors.New("connection refused")
	}

	err := s.mailer.SendWinnerNotice(s.ctx, "alice@example.com", "Alice", "Coffee Mug")
	s.ErrorContains(err, "send mail to alice@example.com")
	s.ErrorContains(err, "connection refused")
}
