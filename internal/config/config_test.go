package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Matcher.ExactConfidence != 1.0 {
		t.Fatalf("expected default exact confidence 1.0, got %v", cfg.Matcher.ExactConfidence)
	}
	if cfg.Matcher.SynonymConfidence != 0.85 {
		t.Fatalf("expected default synonym confidence 0.85, got %v", cfg.Matcher.SynonymConfidence)
	}
	if cfg.HTTP.RequestsPerMinute != 120 {
		t.Fatalf("expected default rate limit 120, got %d", cfg.HTTP.RequestsPerMinute)
	}
	if cfg.Semantic.APIKeyEnv != "GEMINI_API_KEY" {
		t.Fatalf("expected default api key env, got %q", cfg.Semantic.APIKeyEnv)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "signbridge.yaml")
	body := `
runtime_name: test-runtime
matcher:
  fingerspell_confidence: 0.4
semantic:
  enabled: true
  mode: mock
  timeout_ms: 500
history:
  retention_mode: ephemeral
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RuntimeName != "test-runtime" {
		t.Fatalf("expected runtime name override, got %q", cfg.RuntimeName)
	}
	if cfg.Matcher.FingerspellConfidence != 0.4 {
		t.Fatalf("expected fingerspell confidence 0.4, got %v", cfg.Matcher.FingerspellConfidence)
	}
	if !cfg.Semantic.Enabled || cfg.Semantic.Mode != "mock" {
		t.Fatalf("expected semantic mock enabled, got %+v", cfg.Semantic)
	}
	if cfg.History.RetentionMode != "ephemeral" {
		t.Fatalf("expected ephemeral retention, got %q", cfg.History.RetentionMode)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SIGNBRIDGE_RUNTIME_NAME", "env-runtime")
	t.Setenv("SIGNBRIDGE_HTTP_PORT", "9090")
	t.Setenv("SIGNBRIDGE_HTTP_REQUESTS_PER_MINUTE", "30")
	t.Setenv("SIGNBRIDGE_BUS_ENABLED", "true")
	t.Setenv("SIGNBRIDGE_BUS_SERVERS", "nats://one:4222, nats://two:4222")
	t.Setenv("SIGNBRIDGE_MATCHER_SYNONYM_CONFIDENCE", "0.7")
	t.Setenv("SIGNBRIDGE_SEMANTIC_ENABLED", "true")
	t.Setenv("SIGNBRIDGE_SEMANTIC_MODE", "exec")
	t.Setenv("SIGNBRIDGE_SEMANTIC_COMMAND", "/usr/local/bin/intent-match")
	t.Setenv("SIGNBRIDGE_HISTORY_PATH", "./tmp.db")
	t.Setenv("SIGNBRIDGE_HISTORY_RETENTION_MODE", "persistent")
	t.Setenv("SIGNBRIDGE_HISTORY_RETENTION_DAYS", "7")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RuntimeName != "env-runtime" {
		t.Fatalf("expected runtime name override")
	}
	if cfg.HTTP.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.RequestsPerMinute != 30 {
		t.Fatalf("expected rate limit 30, got %d", cfg.HTTP.RequestsPerMinute)
	}
	if len(cfg.Bus.Servers) != 2 {
		t.Fatalf("expected 2 servers, got %v", cfg.Bus.Servers)
	}
	if cfg.Matcher.SynonymConfidence != 0.7 {
		t.Fatalf("expected synonym confidence override, got %v", cfg.Matcher.SynonymConfidence)
	}
	if cfg.Semantic.Mode != "exec" || cfg.Semantic.Command == "" {
		t.Fatalf("expected semantic exec override, got %+v", cfg.Semantic)
	}
	if cfg.History.RetentionMode != "persistent" || cfg.History.RetentionDays != 7 {
		t.Fatalf("expected history overrides, got %+v", cfg.History)
	}
}

func TestValidateRejectsBadModes(t *testing.T) {
	t.Setenv("SIGNBRIDGE_SEMANTIC_ENABLED", "true")
	t.Setenv("SIGNBRIDGE_SEMANTIC_MODE", "oracle")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unknown semantic mode")
	}

	t.Setenv("SIGNBRIDGE_SEMANTIC_MODE", "mock")
	t.Setenv("SIGNBRIDGE_HISTORY_RETENTION_MODE", "forever")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unknown retention mode")
	}
}

func TestValidateGatewayRequiresBus(t *testing.T) {
	t.Setenv("SIGNBRIDGE_GATEWAY_ENABLED", "true")
	t.Setenv("SIGNBRIDGE_BUS_ENABLED", "false")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error when gateway enabled without bus")
	}
}
