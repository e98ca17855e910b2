package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/signbridge-labs/signbridge-core/internal/assets"
	"github.com/signbridge-labs/signbridge-core/internal/config"
	"github.com/signbridge-labs/signbridge-core/internal/history"
	"github.com/signbridge-labs/signbridge-core/internal/match"
	"github.com/signbridge-labs/signbridge-core/internal/semantic"
	"github.com/signbridge-labs/signbridge-core/internal/vocabulary"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Handler serves the matching API consumed by the browser front end.
type Handler struct {
	cfg      config.HTTPConfig
	matcher  *match.Matcher
	vocab    *vocabulary.Set
	library  *assets.Library
	provider *semantic.Provider
	store    *history.Store
	logger   *slog.Logger
	limiter  *visitorLimiter

	matchCounter metric.Int64Counter
}

func NewHandler(cfg config.HTTPConfig, matcher *match.Matcher, vocab *vocabulary.Set, library *assets.Library, provider *semantic.Provider, store *history.Store, logger *slog.Logger) *Handler {
	h := &Handler{
		cfg:      cfg,
		matcher:  matcher,
		vocab:    vocab,
		library:  library,
		provider: provider,
		store:    store,
		logger:   logger.With(slog.String("component", "api")),
		limiter:  newVisitorLimiter(cfg.RequestsPerMinute),
	}
	meter := otel.Meter("github.com/signbridge-labs/signbridge-core/api")
	counter, err := meter.Int64Counter("signbridge.api.match_requests",
		metric.WithDescription("Match requests served, by method"))
	if err != nil {
		h.logger.Warn("failed to initialize match counter", slog.String("error", err.Error()))
	} else {
		h.matchCounter = counter
	}
	return h
}

// Register mounts the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.Handle("POST /api/match", h.secure(h.limit(http.HandlerFunc(h.handleMatch))))
	mux.Handle("GET /api/vocabulary", h.secure(http.HandlerFunc(h.handleVocabulary)))
	mux.Handle("GET /api/vocabulary/{word}", h.secure(http.HandlerFunc(h.handleVocabularyWord)))
	mux.Handle("GET /api/status", h.secure(http.HandlerFunc(h.handleStatus)))
	mux.Handle("GET /api/history/{session}", h.secure(http.HandlerFunc(h.handleHistory)))
	if h.library != nil {
		mux.Handle("GET /videos/", h.secure(http.StripPrefix("/videos/", http.FileServer(http.Dir(h.library.Dir())))))
	}
}

type matchRequest struct {
	Text             string `json:"text"`
	UseAI            *bool  `json:"use_ai"`
	ForceFingerspell bool   `json:"force_fingerspell"`
}

func (h *Handler) handleMatch(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		writeError(w, http.StatusBadRequest, "expected JSON payload")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)

	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"signs":  []match.Match{},
			"method": "none",
			"error":  "no text provided",
		})
		return
	}
	useAI := true
	if req.UseAI != nil {
		useAI = *req.UseAI
	}

	var (
		resp match.Response
		err  error
	)
	if req.ForceFingerspell {
		resp, err = h.matcher.MatchFingerspell(req.Text)
	} else {
		resp, err = h.matcher.Match(r.Context(), req.Text, useAI)
	}
	if err != nil {
		if errors.Is(err, match.ErrEmptyUtterance) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"signs":  []match.Match{},
				"method": "none",
				"error":  "no text provided",
			})
			return
		}
		h.logger.Error("match request failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.library != nil {
		h.library.Annotate(resp.Signs)
	}
	if h.matchCounter != nil {
		h.matchCounter.Add(r.Context(), 1, metric.WithAttributes(attribute.String("method", resp.Method)))
	}
	if resp.Signs == nil {
		resp.Signs = []match.Match{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleVocabulary(w http.ResponseWriter, r *http.Request) {
	categories := h.vocab.Categories()
	entries := h.vocab.Entries()
	if category := r.URL.Query().Get("category"); category != "" {
		entries = h.vocab.ByCategory(category)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"vocabulary": entries,
		"categories": categories,
		"count":      len(entries),
	})
}

func (h *Handler) handleVocabularyWord(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")
	entry, ok := h.vocab.Lookup(word)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"word": entry.Word,
		"data": entry,
	})
}

func (h *Handler) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ai_configured":    h.provider.Configured(),
		"vocabulary_count": h.vocab.Len(),
	})
}

type historyItem struct {
	Utterance string `json:"utterance"`
	Method    string `json:"method"`
	SignCount int    `json:"sign_count"`
	CreatedAt string `json:"created_at"`
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session")
	if h.store == nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"session_id": sessionID,
			"matches":    []historyItem{},
		})
		return
	}
	records, err := h.store.ListSessionMatches(r.Context(), sessionID, 100)
	if err != nil {
		h.logger.Error("history query failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	items := make([]historyItem, 0, len(records))
	for _, rec := range records {
		items = append(items, historyItem{
			Utterance: rec.Utterance,
			Method:    rec.Method,
			SignCount: rec.SignCount,
			CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": sessionID,
		"matches":    items,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
