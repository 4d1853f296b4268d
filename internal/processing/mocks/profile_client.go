package mocks

import (
	"context"
	"fmt"

	"bestiary_rankings/internal/app"
)

// MockProfileClient is a test double for bestiary.Client
type MockProfileClient struct {
	// Responses to return by username
	Profiles map[string]*app.Profile

	// Errors to return by username; checked before Profiles
	Errors map[string]error

	// Call tracking
	FetchCalls   []string
	apiCallCount int64
}

// NewMockProfileClient creates a new mock profile client
func NewMockProfileClient() *MockProfileClient {
	return &MockProfileClient{
		Profiles: make(map[string]*app.Profile),
		Errors:   make(map[string]error),
	}
}

func (m *MockProfileClient) FetchProfile(ctx context.Context, username string) (*app.Profile, error) {
	m.FetchCalls = append(m.FetchCalls, username)
	m.apiCallCount++

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.Errors[username]; ok {
		return nil, err
	}
	if profile, ok := m.Profiles[username]; ok {
		return profile, nil
	}
	return nil, fmt.Errorf("mock: no response configured for %q", username)
}

func (m *MockProfileClient) GetAPICallCount() int64 {
	return m.apiCallCount
}

// Reset clears all call tracking and responses
func (m *MockProfileClient) Reset() {
	m.Profiles = make(map[string]*app.Profile)
	m.Errors = make(map[string]error)
	m.FetchCalls = nil
	m.apiCallCount = 0
}
