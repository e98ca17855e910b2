package match

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/signbridge-labs/signbridge-core/internal/config"
	"github.com/signbridge-labs/signbridge-core/internal/semantic"
	"github.com/signbridge-labs/signbridge-core/internal/vocabulary"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newMatcher(t *testing.T, resolver semantic.Resolver) *Matcher {
	t.Helper()
	return New(config.Default().Matcher, vocabulary.NewSet(vocabulary.Builtin()), resolver, time.Second, newLogger())
}

type stubResolver struct {
	candidates []semantic.Candidate
	err        error
	calls      int
}

func (s *stubResolver) Resolve(_ context.Context, _ string, _ []string) ([]semantic.Candidate, error) {
	s.calls++
	return s.candidates, s.err
}

func TestMatchEmptyRejected(t *testing.T) {
	m := newMatcher(t, nil)
	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := m.Match(context.Background(), text, false); !errors.Is(err, ErrEmptyUtterance) {
			t.Fatalf("expected ErrEmptyUtterance for %q, got %v", text, err)
		}
	}
}

func TestMatchKnownWord(t *testing.T) {
	m := newMatcher(t, nil)
	resp, err := m.Match(context.Background(), "hello", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Signs) != 1 {
		t.Fatalf("expected 1 sign, got %d", len(resp.Signs))
	}
	sign := resp.Signs[0]
	if sign.Word != "hello" || sign.Confidence != 1.0 {
		t.Fatalf("unexpected sign: %+v", sign)
	}
	if sign.Letters != nil {
		t.Fatalf("vocabulary match must not carry letters: %+v", sign)
	}
	if resp.Method != MethodLocal {
		t.Fatalf("expected local method, got %q", resp.Method)
	}
}

func TestMatchUnknownWordFingerspelled(t *testing.T) {
	m := newMatcher(t, nil)
	resp, err := m.Match(context.Background(), "xyznotaword", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Signs) != 1 {
		t.Fatalf("expected 1 sign, got %d", len(resp.Signs))
	}
	sign := resp.Signs[0]
	if !sign.Fingerspelled() {
		t.Fatalf("expected fingerspelled category, got %q", sign.Category)
	}
	want := []string{"x", "y", "z", "n", "o", "t", "a", "w", "o", "r", "d"}
	if !reflect.DeepEqual(sign.Letters, want) {
		t.Fatalf("expected letters %v, got %v", want, sign.Letters)
	}
	if sign.Confidence != 0.5 {
		t.Fatalf("expected fingerspell confidence 0.5, got %v", sign.Confidence)
	}
}

func TestMatchCoverageInvariant(t *testing.T) {
	m := newMatcher(t, nil)
	utterances := []string{
		"hello world",
		"the quick brown fox",
		"thank you zzqat",
		"one flibber two jabber",
	}
	for _, text := range utterances {
		resp, err := m.Match(context.Background(), text, false)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", text, err)
		}
		if len(resp.Signs) == 0 {
			t.Fatalf("expected at least one sign for %q", text)
		}
		// Word-level coverage: every token is represented by exactly one
		// match unless a phrase collapsed several tokens into one.
		tokens := len(strings.Fields(text))
		covered := 0
		for _, s := range resp.Signs {
			covered += len(strings.Fields(s.MatchedFrom))
		}
		if covered != tokens {
			t.Fatalf("expected %d covered tokens for %q, got %d", tokens, text, covered)
		}
	}
}

func TestMatchPhraseCollapses(t *testing.T) {
	m := newMatcher(t, nil)
	resp, err := m.Match(context.Background(), "thank you very much", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Signs) < 2 {
		t.Fatalf("expected phrase plus residual signs, got %+v", resp.Signs)
	}
	first := resp.Signs[0]
	if first.Word != "thank you" || first.Confidence != 1.0 {
		t.Fatalf("expected leading thank you phrase match, got %+v", first)
	}
	for _, s := range resp.Signs[1:] {
		if s.Word == "thank" || s.Word == "you" {
			t.Fatalf("phrase tokens must not match individually: %+v", resp.Signs)
		}
	}
}

func TestMatchSynonymConfidence(t *testing.T) {
	m := newMatcher(t, nil)
	resp, err := m.Match(context.Background(), "thanks", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Signs) != 1 {
		t.Fatalf("expected 1 sign, got %d", len(resp.Signs))
	}
	sign := resp.Signs[0]
	if sign.Word != "thank you" || sign.Confidence != 0.85 {
		t.Fatalf("expected synonym match with 0.85, got %+v", sign)
	}
	if sign.MatchedFrom != "thanks" {
		t.Fatalf("expected matched_from thanks, got %q", sign.MatchedFrom)
	}
}

func TestMatchPreservesOrder(t *testing.T) {
	m := newMatcher(t, nil)
	resp, err := m.Match(context.Background(), "please zzqat help", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := make([]string, len(resp.Signs))
	for i, s := range resp.Signs {
		got[i] = s.Word
	}
	want := []string{"please", "zzqat", "help"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
}

func TestMatchPunctuationInsensitive(t *testing.T) {
	m := newMatcher(t, nil)
	resp, err := m.Match(context.Background(), "Hello, teacher!", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Signs) != 2 || resp.Signs[0].Word != "hello" || resp.Signs[1].Word != "teacher" {
		t.Fatalf("unexpected signs: %+v", resp.Signs)
	}
}

func TestMatchDisabledAIForcesLocal(t *testing.T) {
	stub := &stubResolver{candidates: []semantic.Candidate{{Word: "confused", Confidence: 0.9, MatchedFrom: "zzqat"}}}
	m := newMatcher(t, stub)
	resp, err := m.Match(context.Background(), "zzqat", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Method != MethodLocal {
		t.Fatalf("expected local method with AI disabled, got %q", resp.Method)
	}
	if stub.calls != 0 {
		t.Fatalf("resolver must not be called with AI disabled, got %d calls", stub.calls)
	}
}

func TestMatchSemanticResolvesResidual(t *testing.T) {
	stub := &stubResolver{candidates: []semantic.Candidate{{Word: "confused", Confidence: 0.9, MatchedFrom: "befuddled"}}}
	m := newMatcher(t, stub)
	resp, err := m.Match(context.Background(), "hello befuddled", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Method != MethodAI {
		t.Fatalf("expected ai method, got %q", resp.Method)
	}
	if len(resp.Signs) != 2 {
		t.Fatalf("expected 2 signs, got %+v", resp.Signs)
	}
	if resp.Signs[0].Word != "hello" || resp.Signs[1].Word != "confused" {
		t.Fatalf("unexpected signs: %+v", resp.Signs)
	}
	if resp.Signs[1].Confidence != 0.9 {
		t.Fatalf("expected resolver confidence passed through, got %v", resp.Signs[1].Confidence)
	}
}

func TestMatchSemanticSkippedWhenNothingResidual(t *testing.T) {
	stub := &stubResolver{}
	m := newMatcher(t, stub)
	if _, err := m.Match(context.Background(), "hello teacher", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("resolver must not run when rules resolve everything, got %d calls", stub.calls)
	}
}

func TestMatchSemanticErrorFallsBack(t *testing.T) {
	stub := &stubResolver{err: errors.New("backend unreachable")}
	m := newMatcher(t, stub)
	resp, err := m.Match(context.Background(), "zzqat", true)
	if err != nil {
		t.Fatalf("semantic failure must not fail the request: %v", err)
	}
	if resp.Method != MethodLocal {
		t.Fatalf("expected local method after fallback, got %q", resp.Method)
	}
	if len(resp.Signs) != 1 || !resp.Signs[0].Fingerspelled() {
		t.Fatalf("expected fingerspelled fallback, got %+v", resp.Signs)
	}
}

func TestMatchSemanticLowConfidenceDropped(t *testing.T) {
	stub := &stubResolver{candidates: []semantic.Candidate{{Word: "confused", Confidence: 0.1, MatchedFrom: "zzqat"}}}
	m := newMatcher(t, stub)
	resp, err := m.Match(context.Background(), "zzqat", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Method != MethodLocal || !resp.Signs[0].Fingerspelled() {
		t.Fatalf("expected low-confidence candidate dropped, got %+v", resp)
	}
}

func TestMatchIdempotent(t *testing.T) {
	stub := &stubResolver{candidates: []semantic.Candidate{{Word: "help", Confidence: 0.8, MatchedFrom: "zzqat"}}}
	m := newMatcher(t, stub)
	first, err := m.Match(context.Background(), "hello zzqat please", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := m.Match(context.Background(), "hello zzqat please", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical calls must produce identical responses:\n%+v\n%+v", first, second)
	}
}

func TestMatchFingerspellForced(t *testing.T) {
	m := newMatcher(t, nil)
	resp, err := m.MatchFingerspell("hello 42 world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Method != MethodFingerspell {
		t.Fatalf("expected fingerspell method, got %q", resp.Method)
	}
	if len(resp.Signs) != 2 {
		t.Fatalf("expected numeric-only token skipped, got %+v", resp.Signs)
	}
	for _, s := range resp.Signs {
		if !s.Fingerspelled() || s.Confidence != 1.0 {
			t.Fatalf("expected forced fingerspelling with confidence 1, got %+v", s)
		}
	}
}

func TestMatchTruncatesLongInput(t *testing.T) {
	cfg := config.Default().Matcher
	cfg.MaxTextLength = 5
	m := New(cfg, vocabulary.NewSet(vocabulary.Builtin()), nil, time.Second, newLogger())
	resp, err := m.Match(context.Background(), "hello world", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "hello" {
		t.Fatalf("expected truncated text, got %q", resp.Text)
	}
	if len(resp.Signs) != 1 || resp.Signs[0].Word != "hello" {
		t.Fatalf("unexpected signs: %+v", resp.Signs)
	}
}
