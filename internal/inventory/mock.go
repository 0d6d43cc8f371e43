package inventory

import (
	"context"
	"slices"
	"sync"
)

// MockSource is a test double for Source.
type MockSource struct {
	Records []Record
	Err     error
	LoadFn  func(context.Context) ([]Record, error)

	mu            sync.Mutex
	LoadCallCount int
}

// Describe implements Source.
func (m *MockSource) Describe() string {
	return "mock"
}

// Load implements Source.
func (m *MockSource) Load(ctx context.Context) ([]Record, error) {
	m.mu.Lock()
	m.LoadCallCount++
	m.mu.Unlock()

	if m.LoadFn != nil {
		return m.LoadFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return slices.Clone(m.Records), nil
}
