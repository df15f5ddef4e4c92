package mocks

import (
	"context"
	"sync"

	"github.com/promoplay/eggdraw/internal/mailer"
)

// SentNotice records one call to the mock mailer
type SentNotice struct {
	Kind       string // "winner" or "internal"
	Identifier string
	Email      string
	Name       string
	PrizeName  string
}

// MockMailer is a mock implementation of Mailer for testing
type MockMailer struct {
	mu sync.Mutex

	// FailWith, when set, is returned from every send
	FailWith error

	sent []SentNotice
}

// Ensure MockMailer implements Mailer
var _ mailer.Mailer = (*MockMailer)(nil)

// NewMockMailer creates a new MockMailer
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// SendWinnerNotice records a winner notice
func (m *MockMailer) SendWinnerNotice(ctx context.Context, email, name, prizeName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	m.sent = append(m.sent, SentNotice{Kind: "winner", Email: email, Name: name, PrizeName: prizeName})
	return nil
}

// SendInternalNotice records an internal notice
func (m *MockMailer) SendInternalNotice(ctx context.Context, identifier, name, prizeName, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	m.sent = append(m.sent, SentNotice{Kind: "internal", Identifier: identifier, Email: email, Name: name, PrizeName: prizeName})
	return nil
}

// Sent returns a copy of the recorded notices
func (m *MockMailer) Sent() []SentNotice {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentNotice, len(m.sent))
	copy(out, m.sent)
	return out
}
