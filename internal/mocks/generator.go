package mocks

import (
	"context"
	"sync"
)

// Generator implements generation.Generator for testing
type Generator struct {
	// GenerateDraftFn allows test cases to script the GenerateDraft behavior
	GenerateDraftFn func(ctx context.Context, topic string) (string, error)

	// Default response values used when GenerateDraftFn is nil
	Draft string
	Err   error

	mu     sync.Mutex
	calls  int
	topics []string
}

// GenerateDraft implements the generation.Generator interface
func (m *Generator) GenerateDraft(ctx context.Context, topic string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.topics = append(m.topics, topic)
	m.mu.Unlock()

	if m.GenerateDraftFn != nil {
		return m.GenerateDraftFn(ctx, topic)
	}

	return m.Draft, m.Err
}

// CallCount returns how many times GenerateDraft was invoked.
func (m *Generator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Topics returns a copy of the topics passed to GenerateDraft.
func (m *Generator) Topics() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.topics...)
}
