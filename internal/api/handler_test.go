package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/signbridge-labs/signbridge-core/internal/config"
	"github.com/signbridge-labs/signbridge-core/internal/match"
	"github.com/signbridge-labs/signbridge-core/internal/semantic"
	"github.com/signbridge-labs/signbridge-core/internal/vocabulary"
)

func testHandler(t *testing.T) *Handler {
	t.Helper()
	cfg := config.Default()
	vocab := vocabulary.NewSet(vocabulary.Builtin())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	matcher := match.New(cfg.Matcher, vocab, nil, time.Second, logger)
	provider, err := semantic.NewProvider(cfg.Semantic)
	if err != nil {
		t.Fatalf("provider: %v", err)
	}
	return NewHandler(cfg.HTTP, matcher, vocab, nil, provider, nil, logger)
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	testHandler(t).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postMatch(t *testing.T, srv *httptest.Server, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/match", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp, decoded
}

func TestMatchKnownWord(t *testing.T) {
	srv := testServer(t)
	resp, body := postMatch(t, srv, `{"text": "hello", "use_ai": false}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body["method"] != "local" {
		t.Fatalf("method = %v, want local", body["method"])
	}
	signs, ok := body["signs"].([]any)
	if !ok || len(signs) != 1 {
		t.Fatalf("signs = %v, want one entry", body["signs"])
	}
	sign := signs[0].(map[string]any)
	if sign["word"] != "hello" {
		t.Fatalf("word = %v, want hello", sign["word"])
	}
}

func TestMatchEmptyText(t *testing.T) {
	srv := testServer(t)
	resp, body := postMatch(t, srv, `{"text": "   "}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body["error"] != "no text provided" {
		t.Fatalf("error = %v", body["error"])
	}
	if signs, ok := body["signs"].([]any); !ok || len(signs) != 0 {
		t.Fatalf("signs = %v, want empty array", body["signs"])
	}
}

func TestMatchRejectsMalformedJSON(t *testing.T) {
	srv := testServer(t)
	resp, _ := postMatch(t, srv, `{"text": `)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestMatchRejectsNonJSONContentType(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Post(srv.URL+"/api/match", "text/plain", strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestMatchRejectsOversizedBody(t *testing.T) {
	srv := testServer(t)
	payload := `{"text": "` + strings.Repeat("a", 70*1024) + `"}`
	resp, _ := postMatch(t, srv, payload)
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", resp.StatusCode)
	}
}

func TestMatchForceFingerspell(t *testing.T) {
	srv := testServer(t)
	resp, body := postMatch(t, srv, `{"text": "hello", "force_fingerspell": true}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body["method"] != "fingerspell" {
		t.Fatalf("method = %v, want fingerspell", body["method"])
	}
	signs := body["signs"].([]any)
	sign := signs[0].(map[string]any)
	letters, ok := sign["letters"].([]any)
	if !ok || len(letters) != 5 {
		t.Fatalf("letters = %v, want h-e-l-l-o", sign["letters"])
	}
}

func TestVocabularyListing(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/api/vocabulary")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var body struct {
		Vocabulary map[string]vocabulary.Entry `json:"vocabulary"`
		Categories []string                    `json:"categories"`
		Count      int                         `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count == 0 || body.Count != len(body.Vocabulary) {
		t.Fatalf("count = %d, vocabulary size = %d", body.Count, len(body.Vocabulary))
	}
	if len(body.Categories) == 0 {
		t.Fatal("expected categories")
	}
}

func TestVocabularyCategoryFilter(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/api/vocabulary?category=colors")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var body struct {
		Vocabulary map[string]vocabulary.Entry `json:"vocabulary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Vocabulary) == 0 {
		t.Fatal("expected color entries")
	}
	for word, entry := range body.Vocabulary {
		if entry.Category != "colors" {
			t.Fatalf("entry %q has category %q", word, entry.Category)
		}
	}
}

func TestVocabularyWordLookup(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/api/vocabulary/hello")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	missing, err := http.Get(srv.URL + "/api/vocabulary/zzzznotaword")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", missing.StatusCode)
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/api/status")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var body struct {
		AIConfigured    bool `json:"ai_configured"`
		VocabularyCount int  `json:"vocabulary_count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.AIConfigured {
		t.Fatal("ai should be unconfigured by default")
	}
	if body.VocabularyCount == 0 {
		t.Fatal("expected non-empty vocabulary")
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/api/status")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	checks := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Referrer-Policy":         "no-referrer",
		"Content-Security-Policy": "default-src 'self'",
	}
	for name, want := range checks {
		if got := resp.Header.Get(name); got != want {
			t.Fatalf("%s = %q, want %q", name, got, want)
		}
	}
}

func TestRateLimitReturns429(t *testing.T) {
	cfg := config.Default()
	cfg.HTTP.RequestsPerMinute = 2
	vocab := vocabulary.NewSet(vocabulary.Builtin())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	matcher := match.New(cfg.Matcher, vocab, nil, time.Second, logger)
	provider, err := semantic.NewProvider(cfg.Semantic)
	if err != nil {
		t.Fatalf("provider: %v", err)
	}
	mux := http.NewServeMux()
	NewHandler(cfg.HTTP, matcher, vocab, nil, provider, nil, logger).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	var last int
	for i := 0; i < 3; i++ {
		resp, err := http.Post(srv.URL+"/api/match", "application/json", strings.NewReader(`{"text": "hello"}`))
		if err != nil {
			t.Fatalf("post: %v", err)
		}
		resp.Body.Close()
		last = resp.StatusCode
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", last)
	}
}

func TestRateLimitExhaustion(t *testing.T) {
	vl := newVisitorLimiter(5)
	for i := 0; i < 5; i++ {
		if !vl.allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if vl.allow("10.0.0.1") {
		t.Fatal("burst exhausted, request should be denied")
	}
	if !vl.allow("10.0.0.2") {
		t.Fatal("distinct client should have its own bucket")
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/api/history/session-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Matches []historyItem `json:"matches"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Matches) != 0 {
		t.Fatalf("matches = %v, want empty", body.Matches)
	}
}
