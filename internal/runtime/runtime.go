package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/signbridge-labs/signbridge-core/internal/api"
	"github.com/signbridge-labs/signbridge-core/internal/assets"
	"github.com/signbridge-labs/signbridge-core/internal/bus"
	"github.com/signbridge-labs/signbridge-core/internal/config"
	"github.com/signbridge-labs/signbridge-core/internal/gateway"
	"github.com/signbridge-labs/signbridge-core/internal/history"
	"github.com/signbridge-labs/signbridge-core/internal/match"
	"github.com/signbridge-labs/signbridge-core/internal/natsserver"
	"github.com/signbridge-labs/signbridge-core/internal/semantic"
	"github.com/signbridge-labs/signbridge-core/internal/vocabulary"
)

// Runtime owns the full service: vocabulary, matcher, HTTP API, the
// optional message-bus gateway and the match-history store.
type Runtime struct {
	cfg         config.Config
	logger      *slog.Logger
	httpServer  *http.Server
	tracerClose func(context.Context) error
	ready       atomic.Bool
	wg          sync.WaitGroup
}

func New(cfg config.Config, logger *slog.Logger) *Runtime {
	return &Runtime{
		cfg:    cfg,
		logger: logger,
	}
}

// Start brings every component up, serves until ctx is cancelled, then
// shuts down in reverse order.
func (r *Runtime) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdownTelemetry, metricsHandler, err := setupTelemetry(r.cfg, r.logger)
	if err != nil {
		return fmt.Errorf("failed to setup telemetry: %w", err)
	}
	r.tracerClose = shutdownTelemetry

	entries := vocabulary.Builtin()
	if path := r.cfg.Vocabulary.Path; path != "" {
		extra, err := vocabulary.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary file: %w", err)
		}
		entries = append(entries, extra...)
		r.logger.Info("vocabulary extended", slog.String("path", path), slog.Int("entries", len(extra)))
	}
	vocab := vocabulary.NewSet(entries)
	r.logger.Info("vocabulary ready", slog.Int("signs", vocab.Len()))

	provider, err := semantic.NewProvider(r.cfg.Semantic)
	if err != nil {
		return fmt.Errorf("failed to configure semantic backend: %w", err)
	}
	if provider.Configured() {
		r.logger.Info("semantic matching enabled", slog.String("mode", provider.Mode()))
	} else {
		r.logger.Info("semantic matching unavailable, using local matching only")
	}

	aiTimeout := time.Duration(r.cfg.Semantic.TimeoutMS) * time.Millisecond
	matcher := match.New(r.cfg.Matcher, vocab, provider.Resolver(), aiTimeout, r.logger)
	library := assets.NewLibrary(r.cfg.Assets, r.logger)

	store, err := history.Open(ctx, r.cfg.History, r.logger)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			r.logger.Error("history close error", slog.String("error", err.Error()))
		}
	}()

	var (
		embedded  *natsserver.EmbeddedServer
		busClient *bus.Client
		gw        *gateway.Service
	)
	if r.cfg.Bus.Enabled {
		if r.cfg.Bus.Embedded {
			embedded, err = natsserver.Start(r.cfg.Bus, r.logger)
			if err != nil {
				return fmt.Errorf("failed to start embedded bus: %w", err)
			}
			defer embedded.Shutdown()
		}
		busClient, err = bus.Connect(r.cfg.Bus, r.logger)
		if err != nil {
			return fmt.Errorf("failed to connect to bus: %w", err)
		}
		defer busClient.Close()
	}
	if r.cfg.Gateway.Enabled && busClient != nil {
		gw = gateway.NewService(ctx, r.cfg.Gateway, busClient, matcher, library, store, r.logger)
		if err := gw.Start(); err != nil {
			return fmt.Errorf("failed to start gateway: %w", err)
		}
		defer gw.Close()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", r.handleHealth)
	mux.HandleFunc("/readyz", r.handleReady)
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}
	handler := api.NewHandler(r.cfg.HTTP, matcher, vocab, library, provider, store, r.logger)
	handler.Register(mux)

	addr := fmt.Sprintf("%s:%d", r.cfg.HTTP.Bind, r.cfg.HTTP.Port)
	r.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			r.logger.Error("http server failed", slog.String("error", err.Error()))
		}
	}()

	r.ready.Store(true)
	r.logger.Info("runtime started", slog.String("addr", addr))

	<-ctx.Done()
	r.ready.Store(false)
	r.logger.Info("runtime stopping")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := r.httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Error("http shutdown error", slog.String("error", err.Error()))
	}
	r.wg.Wait()

	if r.tracerClose != nil {
		if err := r.tracerClose(shutdownCtx); err != nil {
			r.logger.Error("telemetry shutdown error", slog.String("error", err.Error()))
		}
	}

	return nil
}

func (r *Runtime) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (r *Runtime) handleReady(w http.ResponseWriter, _ *http.Request) {
	if r.ready.Load() {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write([]byte("not ready"))
}
