package llm

import "context"

const defaultMockReply = `{"prediction":"Home Team wins","roast_loser":"The away side could not hit a barn door from two yards.","confidence":0.7,"reasoning":"Mock reasoning based on recent form."}`

// MockReasoner is a configurable, deterministic reasoner for testing.
// Set Response/Err to control what Generate returns.
type MockReasoner struct {
	Response string
	Err      error

	// Call tracking for assertions
	Calls []string
}

func NewMockReasoner() *MockReasoner {
	return &MockReasoner{Response: defaultMockReply}
}

func (m *MockReasoner) Generate(ctx context.Context, prompt string) (string, error) {
	m.Calls = append(m.Calls, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Reset clears recorded calls and restores the default response.
func (m *MockReasoner) Reset() {
	m.Response = defaultMockReply
	m.Err = nil
	m.Calls = nil
}
