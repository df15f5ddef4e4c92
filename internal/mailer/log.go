package mailer

import (
	"context"
	"log/slog"
)

// LogMailer records notifications in the log instead of sending them.
// Used when no SMTP relay is configured.
type LogMailer struct {
	logger *slog.Logger
}

// Ensure LogMailer implements Mailer
var _ Mailer = (*LogMailer)(nil)

// NewLog creates a log-only mailer
func NewLog(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// SendWinnerNotice logs the winner notification
func (m *LogMailer) SendWinnerNotice(ctx context.Context, email, name, prizeName string) error {
	m.logger.Info("winner notice (mail disabled)",
		slog.String("email", email),
		slog.String("name", name),
		slog.String("prize", prizeName),
	)
	return nil
}

// SendInternalNotice logs the internal notification
func (m *LogMailer) SendInternalNotice(ctx context.Context, identifier, name, prizeName, email string) error {
	m.logger.Info("internal notice (mail disabled)",
		slog.String("identifier", identifier),
		slog.String("name", name),
		slog.String("prize", prizeName),
		slog.String("email", email),
	)
	return nil
}
