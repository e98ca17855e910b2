package semantic

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/signbridge-labs/signbridge-core/internal/config"
)

// Candidate is a vocabulary suggestion returned by an intent backend.
type Candidate struct {
	Word        string  `json:"word"`
	Confidence  float64 `json:"confidence"`
	MatchedFrom string  `json:"matched_from,omitempty"`
}

// Resolver defines a pluggable intent-matching backend. Implementations map
// free text onto the supplied vocabulary and report their own certainty.
type Resolver interface {
	Resolve(ctx context.Context, text string, vocabulary []string) ([]Candidate, error)
}

// Provider wraps a resolver together with its availability. A provider that
// is not configured never errors; callers skip the semantic pass instead.
type Provider struct {
	resolver   Resolver
	configured bool
	mode       string
}

// NewProvider builds the backend selected by config. A disabled section or a
// gemini backend without its API key yields an unconfigured provider, not an
// error.
func NewProvider(cfg config.SemanticConfig) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{}, nil
	}
	switch cfg.Mode {
	case "mock":
		return &Provider{resolver: NewMockResolver(), configured: true, mode: cfg.Mode}, nil
	case "gemini":
		key := strings.TrimSpace(os.Getenv(cfg.APIKeyEnv))
		if key == "" {
			return &Provider{mode: cfg.Mode}, nil
		}
		return &Provider{resolver: NewGeminiResolver(cfg, key), configured: true, mode: cfg.Mode}, nil
	case "exec":
		r, err := NewExecResolver(cfg.Command)
		if err != nil {
			return nil, err
		}
		return &Provider{resolver: r, configured: true, mode: cfg.Mode}, nil
	default:
		return nil, fmt.Errorf("unknown semantic mode %q", cfg.Mode)
	}
}

// Configured reports whether the semantic pass can be attempted.
func (p *Provider) Configured() bool {
	return p != nil && p.configured
}

// Mode returns the configured backend name, empty when disabled.
func (p *Provider) Mode() string {
	if p == nil {
		return ""
	}
	return p.mode
}

// Resolver returns the active backend, nil when unconfigured.
func (p *Provider) Resolver() Resolver {
	if p == nil || !p.configured {
		return nil
	}
	return p.resolver
}
