package semantic

import (
	"context"
	"strings"
	"time"
)

type mockResolver struct{}

// NewMockResolver returns a deterministic backend for tests and development:
// every input token that appears verbatim in the vocabulary is returned with
// a fixed confidence.
func NewMockResolver() Resolver { return &mockResolver{} }

func (m *mockResolver) Resolve(ctx context.Context, text string, vocabulary []string) ([]Candidate, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(10 * time.Millisecond):
	}
	known := make(map[string]struct{}, len(vocabulary))
	for _, w := range vocabulary {
		known[strings.ToLower(w)] = struct{}{}
	}
	var out []Candidate
	for _, token := range strings.Fields(strings.ToLower(text)) {
		if _, ok := known[token]; ok {
			out = append(out, Candidate{Word: token, Confidence: 0.9, MatchedFrom: token})
		}
	}
	return out, nil
}
