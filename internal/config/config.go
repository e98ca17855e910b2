package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type TelemetryConfig struct {
	LogLevel     string `yaml:"log_level"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	OTLPInsecure bool   `yaml:"otlp_insecure"`
}

type HTTPConfig struct {
	Bind              string `yaml:"bind"`
	Port              int    `yaml:"port"`
	MaxBodyBytes      int64  `yaml:"max_body_bytes"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
}

type BusConfig struct {
	Enabled        bool     `yaml:"enabled"`
	Embedded       bool     `yaml:"embedded"`
	Port           int      `yaml:"port"`
	Servers        []string `yaml:"servers"`
	Username       string   `yaml:"username"`
	Password       string   `yaml:"password"`
	Token          string   `yaml:"token"`
	TLSInsecure    bool     `yaml:"tls_insecure"`
	ConnectTimeout int      `yaml:"connect_timeout_ms"`
}

type VocabularyConfig struct {
	Path string `yaml:"path"`
}

type MatcherConfig struct {
	ExactConfidence       float64 `yaml:"exact_confidence"`
	SynonymConfidence     float64 `yaml:"synonym_confidence"`
	FingerspellConfidence float64 `yaml:"fingerspell_confidence"`
	MinAIConfidence       float64 `yaml:"min_ai_confidence"`
	MaxTextLength         int     `yaml:"max_text_length"`
}

type SemanticConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Mode        string  `yaml:"mode"` // mock, gemini, exec
	Endpoint    string  `yaml:"endpoint"`
	Model       string  `yaml:"model"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	Command     string  `yaml:"command"`
	TimeoutMS   int     `yaml:"timeout_ms"`
	Temperature float64 `yaml:"temperature"`
}

type AssetsConfig struct {
	VideosDir string `yaml:"videos_dir"`
	URLPrefix string `yaml:"url_prefix"`
}

type HistoryConfig struct {
	Path          string `yaml:"path"`
	RetentionMode string `yaml:"retention_mode"`
	RetentionDays int    `yaml:"retention_days"`
	MaxSessions   int    `yaml:"max_sessions"`
	VacuumOnStart bool   `yaml:"vacuum_on_start"`
}

type GatewayConfig struct {
	Enabled      bool   `yaml:"enabled"`
	PrivacyScope string `yaml:"privacy_scope"`
}

type Config struct {
	RuntimeName string           `yaml:"runtime_name"`
	Environment string           `yaml:"environment"`
	HTTP        HTTPConfig       `yaml:"http"`
	Telemetry   TelemetryConfig  `yaml:"telemetry"`
	Bus         BusConfig        `yaml:"bus"`
	Vocabulary  VocabularyConfig `yaml:"vocabulary"`
	Matcher     MatcherConfig    `yaml:"matcher"`
	Semantic    SemanticConfig   `yaml:"semantic"`
	Assets      AssetsConfig     `yaml:"assets"`
	History     HistoryConfig    `yaml:"history"`
	Gateway     GatewayConfig    `yaml:"gateway"`
}

func Default() Config {
	return Config{
		RuntimeName: "signbridge-runtime",
		Environment: "development",
		HTTP: HTTPConfig{
			Bind:              "0.0.0.0",
			Port:              8080,
			MaxBodyBytes:      64 * 1024,
			RequestsPerMinute: 120,
		},
		Telemetry: TelemetryConfig{
			LogLevel:     "info",
			OTLPEndpoint: "",
			OTLPInsecure: true,
		},
		Bus: BusConfig{
			Enabled:        false,
			Embedded:       true,
			Port:           4222,
			Servers:        []string{"nats://localhost:4222"},
			ConnectTimeout: 2000,
		},
		Matcher: MatcherConfig{
			ExactConfidence:       1.0,
			SynonymConfidence:     0.85,
			FingerspellConfidence: 0.5,
			MinAIConfidence:       0.35,
			MaxTextLength:         2000,
		},
		Semantic: SemanticConfig{
			Enabled:     false,
			Mode:        "mock",
			Endpoint:    "https://generativelanguage.googleapis.com",
			Model:       "gemini-2.0-flash",
			APIKeyEnv:   "GEMINI_API_KEY",
			TimeoutMS:   10000,
			Temperature: 0.1,
		},
		Assets: AssetsConfig{
			VideosDir: "./videos",
			URLPrefix: "/videos",
		},
		History: HistoryConfig{
			Path:          "./data/signbridge-history.db",
			RetentionMode: "session",
			RetentionDays: 30,
			MaxSessions:   10000,
		},
		Gateway: GatewayConfig{
			Enabled:      false,
			PrivacyScope: "internal",
		},
	}
}

func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// absent file means run on defaults plus env overrides
		case err != nil:
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyEnvOverrides(&cfg)
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	overrideString(&cfg.RuntimeName, "SIGNBRIDGE_RUNTIME_NAME")
	overrideString(&cfg.Environment, "SIGNBRIDGE_RUNTIME_ENVIRONMENT")
	overrideString(&cfg.HTTP.Bind, "SIGNBRIDGE_HTTP_BIND")
	overrideInt(&cfg.HTTP.Port, "SIGNBRIDGE_HTTP_PORT")
	overrideInt64(&cfg.HTTP.MaxBodyBytes, "SIGNBRIDGE_HTTP_MAX_BODY_BYTES")
	overrideInt(&cfg.HTTP.RequestsPerMinute, "SIGNBRIDGE_HTTP_REQUESTS_PER_MINUTE")
	overrideString(&cfg.Telemetry.LogLevel, "SIGNBRIDGE_TELEMETRY_LOG_LEVEL")
	overrideString(&cfg.Telemetry.OTLPEndpoint, "SIGNBRIDGE_TELEMETRY_OTLP_ENDPOINT")
	overrideBool(&cfg.Telemetry.OTLPInsecure, "SIGNBRIDGE_TELEMETRY_OTLP_INSECURE")
	overrideBool(&cfg.Bus.Enabled, "SIGNBRIDGE_BUS_ENABLED")
	overrideBool(&cfg.Bus.Embedded, "SIGNBRIDGE_BUS_EMBEDDED")
	overrideInt(&cfg.Bus.Port, "SIGNBRIDGE_BUS_PORT")
	overrideStringSlice(&cfg.Bus.Servers, "SIGNBRIDGE_BUS_SERVERS")
	overrideString(&cfg.Bus.Username, "SIGNBRIDGE_BUS_USERNAME")
	overrideString(&cfg.Bus.Password, "SIGNBRIDGE_BUS_PASSWORD")
	overrideString(&cfg.Bus.Token, "SIGNBRIDGE_BUS_TOKEN")
	overrideBool(&cfg.Bus.TLSInsecure, "SIGNBRIDGE_BUS_TLS_INSECURE")
	overrideInt(&cfg.Bus.ConnectTimeout, "SIGNBRIDGE_BUS_CONNECT_TIMEOUT_MS")
	overrideString(&cfg.Vocabulary.Path, "SIGNBRIDGE_VOCABULARY_PATH")
	overrideFloat(&cfg.Matcher.ExactConfidence, "SIGNBRIDGE_MATCHER_EXACT_CONFIDENCE")
	overrideFloat(&cfg.Matcher.SynonymConfidence, "SIGNBRIDGE_MATCHER_SYNONYM_CONFIDENCE")
	overrideFloat(&cfg.Matcher.FingerspellConfidence, "SIGNBRIDGE_MATCHER_FINGERSPELL_CONFIDENCE")
	overrideFloat(&cfg.Matcher.MinAIConfidence, "SIGNBRIDGE_MATCHER_MIN_AI_CONFIDENCE")
	overrideInt(&cfg.Matcher.MaxTextLength, "SIGNBRIDGE_MATCHER_MAX_TEXT_LENGTH")
	overrideBool(&cfg.Semantic.Enabled, "SIGNBRIDGE_SEMANTIC_ENABLED")
	overrideString(&cfg.Semantic.Mode, "SIGNBRIDGE_SEMANTIC_MODE")
	overrideString(&cfg.Semantic.Endpoint, "SIGNBRIDGE_SEMANTIC_ENDPOINT")
	overrideString(&cfg.Semantic.Model, "SIGNBRIDGE_SEMANTIC_MODEL")
	overrideString(&cfg.Semantic.APIKeyEnv, "SIGNBRIDGE_SEMANTIC_API_KEY_ENV")
	overrideString(&cfg.Semantic.Command, "SIGNBRIDGE_SEMANTIC_COMMAND")
	overrideInt(&cfg.Semantic.TimeoutMS, "SIGNBRIDGE_SEMANTIC_TIMEOUT_MS")
	overrideFloat(&cfg.Semantic.Temperature, "SIGNBRIDGE_SEMANTIC_TEMPERATURE")
	overrideString(&cfg.Assets.VideosDir, "SIGNBRIDGE_ASSETS_VIDEOS_DIR")
	overrideString(&cfg.Assets.URLPrefix, "SIGNBRIDGE_ASSETS_URL_PREFIX")
	overrideString(&cfg.History.Path, "SIGNBRIDGE_HISTORY_PATH")
	overrideString(&cfg.History.RetentionMode, "SIGNBRIDGE_HISTORY_RETENTION_MODE")
	overrideInt(&cfg.History.RetentionDays, "SIGNBRIDGE_HISTORY_RETENTION_DAYS")
	overrideInt(&cfg.History.MaxSessions, "SIGNBRIDGE_HISTORY_MAX_SESSIONS")
	overrideBool(&cfg.History.VacuumOnStart, "SIGNBRIDGE_HISTORY_VACUUM_ON_START")
	overrideBool(&cfg.Gateway.Enabled, "SIGNBRIDGE_GATEWAY_ENABLED")
	overrideString(&cfg.Gateway.PrivacyScope, "SIGNBRIDGE_GATEWAY_PRIVACY_SCOPE")
}

func overrideString(target *string, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok && strings.TrimSpace(value) != "" {
		*target = value
	}
}

func overrideInt(target *int, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}

func overrideInt64(target *int64, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			*target = parsed
		}
	}
}

func overrideBool(target *bool, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			*target = parsed
		}
	}
}

func overrideFloat(target *float64, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			*target = parsed
		}
	}
}

func overrideStringSlice(target *[]string, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		parts := strings.Split(value, ",")
		var trimmed []string
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				trimmed = append(trimmed, s)
			}
		}
		if len(trimmed) > 0 {
			*target = trimmed
		}
	}
}

func validate(cfg Config) error {
	if cfg.RuntimeName == "" {
		return errors.New("runtime_name must not be empty")
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return errors.New("http.port must be between 1 and 65535")
	}
	if cfg.HTTP.MaxBodyBytes <= 0 {
		return errors.New("http.max_body_bytes must be positive")
	}
	if cfg.HTTP.RequestsPerMinute < 0 {
		return errors.New("http.requests_per_minute must be >= 0")
	}
	if cfg.Bus.Enabled {
		if cfg.Bus.Embedded {
			if cfg.Bus.Port <= 0 || cfg.Bus.Port > 65535 {
				return errors.New("bus.port must be between 1 and 65535 when embedded mode is enabled")
			}
		} else if len(cfg.Bus.Servers) == 0 {
			return errors.New("bus.servers must not be empty when embedded mode is disabled")
		}
	}
	if cfg.Matcher.ExactConfidence <= 0 || cfg.Matcher.ExactConfidence > 1 {
		return errors.New("matcher.exact_confidence must be in (0, 1]")
	}
	if cfg.Matcher.SynonymConfidence <= 0 || cfg.Matcher.SynonymConfidence > 1 {
		return errors.New("matcher.synonym_confidence must be in (0, 1]")
	}
	if cfg.Matcher.FingerspellConfidence <= 0 || cfg.Matcher.FingerspellConfidence > 1 {
		return errors.New("matcher.fingerspell_confidence must be in (0, 1]")
	}
	if cfg.Matcher.MinAIConfidence < 0 || cfg.Matcher.MinAIConfidence > 1 {
		return errors.New("matcher.min_ai_confidence must be in [0, 1]")
	}
	if cfg.Matcher.MaxTextLength <= 0 {
		return errors.New("matcher.max_text_length must be positive")
	}
	if cfg.Semantic.Enabled {
		switch cfg.Semantic.Mode {
		case "mock", "gemini", "exec":
		default:
			return errors.New("semantic.mode must be one of mock|gemini|exec")
		}
		if cfg.Semantic.Mode == "gemini" && cfg.Semantic.Endpoint == "" {
			return errors.New("semantic.endpoint must be set when mode=gemini")
		}
		if cfg.Semantic.Mode == "gemini" && cfg.Semantic.APIKeyEnv == "" {
			return errors.New("semantic.api_key_env must be set when mode=gemini")
		}
		if cfg.Semantic.Mode == "exec" && cfg.Semantic.Command == "" {
			return errors.New("semantic.command must be set when mode=exec")
		}
		if cfg.Semantic.TimeoutMS <= 0 {
			return errors.New("semantic.timeout_ms must be positive")
		}
	}
	if cfg.History.Path == "" {
		return errors.New("history.path must not be empty")
	}
	switch cfg.History.RetentionMode {
	case "ephemeral", "session", "persistent":
		// ok
	default:
		return errors.New("history.retention_mode must be one of ephemeral|session|persistent")
	}
	if cfg.History.RetentionDays < 0 {
		return errors.New("history.retention_days must be >= 0")
	}
	if cfg.Gateway.Enabled && !cfg.Bus.Enabled {
		return errors.New("gateway.enabled requires bus.enabled")
	}
	if cfg.Gateway.PrivacyScope == "" {
		return errors.New("gateway.privacy_scope must not be empty")
	}
	return nil
}
