// Package notifier delivers formatted alert messages to the destination
// Telegram chat.
package notifier

import (
	"context"
	"sync"
)

// Sender is the interface for message delivery backends.
type Sender interface {
	// Send delivers one message. Returns an error if delivery fails.
	Send(ctx context.Context, text string) error
	// IsConfigured reports whether the backend has the credentials it
	// needs to attempt delivery at all.
	IsConfigured() bool
}

// MockSender records deliveries for development and testing. Safe for
// concurrent use.
type MockSender struct {
	Configured bool
	Err        error

	mu   sync.Mutex
	sent []string
}

func (m *MockSender) IsConfigured() bool { return m.Configured }

func (m *MockSender) Send(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, text)
	return m.Err
}

// Calls returns how many deliveries were attempted.
func (m *MockSender) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

// Sent returns a copy of every delivered message text in order.
func (m *MockSender) Sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.sent))
	copy(out, m.sent)
	return out
}
