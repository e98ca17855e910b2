package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/signbridge-labs/signbridge-core/internal/config"
	"github.com/signbridge-labs/signbridge-core/internal/semantic"
	"github.com/signbridge-labs/signbridge-core/internal/vocabulary"
)

// ErrEmptyUtterance rejects blank input before any strategy runs.
var ErrEmptyUtterance = errors.New("utterance is empty")

// Matcher maps utterances onto the sign vocabulary through an ordered list
// of strategies: whole phrases, single words and synonyms, an optional
// semantic backend, and finally fingerspelling. Every input token produces
// exactly one match.
type Matcher struct {
	cfg        config.MatcherConfig
	vocab      *vocabulary.Set
	resolver   semantic.Resolver
	aiTimeout  time.Duration
	logger     *slog.Logger
	strategies []strategy
}

type strategy func(ctx context.Context, st *matchState)

// matchState carries residual tokens between strategies. A consumed token
// is owned by an earlier match and skipped by later passes.
type matchState struct {
	tokens   []string
	consumed []bool
	matches  []positioned
	useAI    bool
	usedAI   bool
}

type positioned struct {
	pos int
	m   Match
}

func New(cfg config.MatcherConfig, vocab *vocabulary.Set, resolver semantic.Resolver, aiTimeout time.Duration, logger *slog.Logger) *Matcher {
	m := &Matcher{
		cfg:       cfg,
		vocab:     vocab,
		resolver:  resolver,
		aiTimeout: aiTimeout,
		logger:    logger.With(slog.String("component", "matcher")),
	}
	m.strategies = []strategy{
		m.matchPhrases,
		m.matchWords,
		m.matchSemantic,
		m.fingerspellResidual,
	}
	return m
}

// Match runs the strategy pipeline over text. The semantic stage only runs
// when useAI is set and a resolver is configured; its failures downgrade
// silently to the local result.
func (m *Matcher) Match(ctx context.Context, text string, useAI bool) (Response, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Response{}, ErrEmptyUtterance
	}
	trimmed = truncate(trimmed, m.cfg.MaxTextLength)

	st := &matchState{tokens: tokenize(trimmed), useAI: useAI}
	st.consumed = make([]bool, len(st.tokens))
	if len(st.tokens) == 0 {
		return Response{}, ErrEmptyUtterance
	}

	for _, step := range m.strategies {
		step(ctx, st)
	}

	sort.SliceStable(st.matches, func(i, j int) bool {
		return st.matches[i].pos < st.matches[j].pos
	})
	signs := make([]Match, 0, len(st.matches))
	for _, pm := range st.matches {
		signs = append(signs, pm.m)
	}

	method := MethodLocal
	if st.usedAI {
		method = MethodAI
	}
	return Response{Signs: signs, Method: method, Text: trimmed}, nil
}

// MatchFingerspell spells every alphabetic token of text, bypassing the
// vocabulary entirely.
func (m *Matcher) MatchFingerspell(text string) (Response, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Response{}, ErrEmptyUtterance
	}
	trimmed = truncate(trimmed, m.cfg.MaxTextLength)

	var signs []Match
	for _, token := range tokenize(trimmed) {
		glyphs := letters(token)
		if len(glyphs) == 0 {
			continue
		}
		signs = append(signs, fingerspellMatch(token, glyphs, 1.0))
	}
	if len(signs) == 0 {
		return Response{}, ErrEmptyUtterance
	}
	return Response{Signs: signs, Method: MethodFingerspell, Text: trimmed}, nil
}

func (m *Matcher) matchPhrases(_ context.Context, st *matchState) {
	for _, phrase := range m.vocab.Phrases() {
		parts := strings.Fields(normalize(phrase))
		if len(parts) == 0 {
			continue
		}
		for i := 0; i+len(parts) <= len(st.tokens); i++ {
			if !st.spanMatches(i, parts) {
				continue
			}
			entry, ok := m.vocab.Lookup(phrase)
			if !ok {
				break
			}
			st.consume(i, len(parts))
			st.matches = append(st.matches, positioned{
				pos: i,
				m:   entryMatch(entry, m.cfg.ExactConfidence, phrase),
			})
		}
	}
}

func (m *Matcher) matchWords(_ context.Context, st *matchState) {
	for i, token := range st.tokens {
		if st.consumed[i] {
			continue
		}
		if entry, ok := m.vocab.Lookup(token); ok {
			st.consumed[i] = true
			st.matches = append(st.matches, positioned{pos: i, m: entryMatch(entry, m.cfg.ExactConfidence, token)})
			continue
		}
		if entry, ok := m.vocab.LookupSynonym(token); ok {
			st.consumed[i] = true
			st.matches = append(st.matches, positioned{pos: i, m: entryMatch(entry, m.cfg.SynonymConfidence, token)})
		}
	}
}

func (m *Matcher) matchSemantic(ctx context.Context, st *matchState) {
	if !st.useAI || m.resolver == nil {
		return
	}
	residual := st.residualText()
	if residual == "" {
		return
	}

	resolveCtx := ctx
	if m.aiTimeout > 0 {
		var cancel context.CancelFunc
		resolveCtx, cancel = context.WithTimeout(ctx, m.aiTimeout)
		defer cancel()
	}

	candidates, err := m.resolver.Resolve(resolveCtx, residual, m.vocab.Words())
	if err != nil {
		// Best effort only: the local result stands.
		m.logger.Warn("semantic pass failed, keeping local matches", slog.String("error", err.Error()))
		return
	}

	for _, c := range candidates {
		if c.Confidence < m.cfg.MinAIConfidence {
			continue
		}
		entry, ok := m.vocab.Lookup(c.Word)
		if !ok {
			continue
		}
		pos, ok := st.claimSource(c.MatchedFrom)
		if !ok {
			continue
		}
		conf := c.Confidence
		if conf > 1 {
			conf = 1
		}
		st.matches = append(st.matches, positioned{pos: pos, m: entryMatch(entry, conf, c.MatchedFrom)})
		st.usedAI = true
	}
}

func (m *Matcher) fingerspellResidual(_ context.Context, st *matchState) {
	for i, token := range st.tokens {
		if st.consumed[i] {
			continue
		}
		glyphs := letters(token)
		if len(glyphs) == 0 {
			st.consumed[i] = true
			continue
		}
		st.consumed[i] = true
		st.matches = append(st.matches, positioned{pos: i, m: fingerspellMatch(token, glyphs, m.cfg.FingerspellConfidence)})
	}
}

func (st *matchState) spanMatches(start int, parts []string) bool {
	for k, part := range parts {
		if st.consumed[start+k] || st.tokens[start+k] != part {
			return false
		}
	}
	return true
}

func (st *matchState) consume(start, n int) {
	for k := 0; k < n; k++ {
		st.consumed[start+k] = true
	}
}

func (st *matchState) residualText() string {
	var parts []string
	for i, token := range st.tokens {
		if !st.consumed[i] {
			parts = append(parts, token)
		}
	}
	return strings.Join(parts, " ")
}

// claimSource consumes the token span a semantic candidate was matched
// from and returns its position. When the source phrase cannot be located
// among the residual tokens the candidate is dropped, leaving its tokens to
// the fingerspelling fallback.
func (st *matchState) claimSource(matchedFrom string) (int, bool) {
	parts := strings.Fields(normalize(matchedFrom))
	if len(parts) == 0 {
		return 0, false
	}
	for i := 0; i+len(parts) <= len(st.tokens); i++ {
		if st.spanMatches(i, parts) {
			st.consume(i, len(parts))
			return i, true
		}
	}
	// Fall back to the first residual occurrence of the leading word.
	for i, token := range st.tokens {
		if !st.consumed[i] && token == parts[0] {
			st.consumed[i] = true
			return i, true
		}
	}
	return 0, false
}

func entryMatch(entry vocabulary.Entry, confidence float64, matchedFrom string) Match {
	return Match{
		Word:        entry.Word,
		Category:    entry.Category,
		Description: entry.Description,
		Confidence:  confidence,
		MatchedFrom: matchedFrom,
	}
}

func fingerspellMatch(token string, glyphs []string, confidence float64) Match {
	return Match{
		Word:        token,
		Category:    CategoryFingerspelled,
		Description: fmt.Sprintf("Finger-spell the word '%s'", token),
		Confidence:  confidence,
		MatchedFrom: token,
		Letters:     glyphs,
	}
}
